package bootstrap

import (
	"log/slog"

	"baby-registry/internal/infra/mailer"
	"baby-registry/internal/pkg/config"
	"baby-registry/internal/usecase/notification"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		NewMailSender,
	),
)

func NewMailSender(cfg config.Config, logger *slog.Logger) (notification.Sender, error) {
	sender, err := mailer.New(cfg.Mail, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("mail transport configured", "driver", cfg.Mail.Driver, "host", cfg.Mail.Host)
	return sender, nil
}
