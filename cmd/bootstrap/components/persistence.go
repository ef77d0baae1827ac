package components

import (
	"baby-registry/internal/infra/lease"
	"baby-registry/internal/infra/readstore"
	sqlc "baby-registry/internal/infra/sqlc/generated"
	"baby-registry/internal/infra/uow"
	"baby-registry/internal/usecase/commands"
	"baby-registry/internal/usecase/notification"
	"baby-registry/internal/usecase/queries"
	"baby-registry/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	cacheModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Item
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ItemReadQueries)),
		),
		fx.Annotate(
			readstore.NewItemReadStore,
			fx.As(new(queries.ItemReadStore)),
		),
		// Contribution
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ContributionReadQueries)),
		),
		fx.Annotate(
			readstore.NewContributionReadStore,
			fx.As(new(queries.ContributionReadStore)),
			fx.As(new(notification.RecipientSource)),
		),
	),
)

// Repositories are bound per transaction inside the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		fx.Annotate(
			lease.NewRedisStore,
			fx.As(new(commands.LeaseStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
