package components

import (
	"baby-registry/internal/usecase"
	"baby-registry/internal/usecase/commands"
	"baby-registry/internal/usecase/notification"
	"baby-registry/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseNotificationModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewContributionUseCase,
		commands.NewReservationUseCase,
		commands.NewItemUseCase,
		usecase.NewAuthUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewItemQueries,
	),
)

var usecaseNotificationModule = fx.Module("usecase/notification",
	fx.Provide(
		notification.NewNotifier,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
