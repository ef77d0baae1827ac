package bootstrap

import (
	"context"
	"log/slog"

	"baby-registry/internal/infra/cache"
	"baby-registry/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
	),
)

// NewRedis does not fail startup when Redis is down; only reservations depend on it.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) redis.Cmdable {
	client := cache.NewClient(cfg.Redis)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := cache.Ping(ctx, client); err != nil {
				logger.Warn("redis unavailable, reservations will be degraded", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}
