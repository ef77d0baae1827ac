package bootstrap

import (
	"baby-registry/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.MailConfig { return cfg.Mail },
		func(cfg config.Config) config.RegistryConfig { return cfg.Registry },
		func(cfg config.Config) config.AdminConfig { return cfg.Admin },
		func(cfg config.Config) config.ReservationConfig { return cfg.Reservation },
		func(cfg config.Config) config.RateLimitConfig { return cfg.RateLimit },
	),
)
