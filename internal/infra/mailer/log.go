package mailer

import (
	"context"
	"log/slog"
	"strings"

	"baby-registry/internal/usecase/notification"
)

// LogSender writes messages to the logger instead of delivering them.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, msg notification.Message) error {
	if _, err := buildMsg(msg); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "mail (log driver)",
		"from", msg.From,
		"to", strings.Join(msg.To, ","),
		"bcc_count", len(msg.Bcc),
		"subject", msg.Subject,
		"html_bytes", len(msg.HTML))
	return nil
}
