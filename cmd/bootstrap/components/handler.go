package components

import (
	"baby-registry/internal/handler"
	"baby-registry/internal/handler/api"
	"baby-registry/internal/handler/middleware"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewItemHandler,
		api.NewContributionHandler,
		api.NewReservationHandler,
		api.NewMailingHandler,
		api.NewPaymentHandler,
		fx.Annotate(
			func(pool *pgxpool.Pool) *pgxpool.Pool { return pool },
			fx.As(new(api.DBPinger)),
		),
		api.NewHealthHandler,
		middleware.NewAuthMiddleware,
		middleware.NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)
