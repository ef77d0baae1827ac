package mailer

import (
	"log/slog"

	"baby-registry/internal/pkg/config"
	"baby-registry/internal/usecase/notification"
)

const DriverLog = "log"

// New selects the transport configured by MAIL_DRIVER.
func New(cfg config.MailConfig, logger *slog.Logger) (notification.Sender, error) {
	if cfg.Driver == DriverLog {
		return NewLogSender(logger), nil
	}
	return NewSMTPSender(cfg)
}
