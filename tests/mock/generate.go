package mock

//go:generate sh -c "cd ../.. && go run go.uber.org/mock/mockgen -destination=tests/mock/commands/commands.go -package=commandsmock baby-registry/internal/usecase/commands LeaseStore,ContributionCommands,ItemCommands,ReservationCommands"
//go:generate sh -c "cd ../.. && go run go.uber.org/mock/mockgen -destination=tests/mock/notification/notification.go -package=notificationmock baby-registry/internal/usecase/notification Sender,RecipientSource,Notifier"
//go:generate sh -c "cd ../.. && go run go.uber.org/mock/mockgen -destination=tests/mock/queries/queries.go -package=queriesmock baby-registry/internal/usecase/queries ItemQueries,ItemReadStore,ContributionReadStore"
//go:generate sh -c "cd ../.. && go run go.uber.org/mock/mockgen -destination=tests/mock/repository/queries.go -package=repositorymock baby-registry/internal/infra/repository ItemWriteQueries,ContributionWriteQueries,IdempotencyWriteQueries"
//go:generate sh -c "cd ../.. && go run go.uber.org/mock/mockgen -destination=tests/mock/shared/uow.go -package=sharedmock baby-registry/internal/usecase/shared UnitOfWork,Tx,CommandReads,ItemRepository,ContributionRepository,IdempotencyRepository"
//go:generate sh -c "cd ../.. && go run go.uber.org/mock/mockgen -destination=tests/mock/usecase/usecase.go -package=usecasemock baby-registry/internal/usecase AuthUseCase,TokenValidator"
