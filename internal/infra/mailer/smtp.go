package mailer

import (
	"context"

	"baby-registry/internal/pkg/config"
	"baby-registry/internal/pkg/errs"
	"baby-registry/internal/usecase/notification"

	mail "github.com/wneessen/go-mail"
)

const smtpsPort = 465

type SMTPSender struct {
	client *mail.Client
}

func NewSMTPSender(cfg config.MailConfig) (*SMTPSender, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(cfg.Timeout),
	}
	if cfg.Port == smtpsPort {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create smtp client")
	}
	return &SMTPSender{client: client}, nil
}

// Send opens one connection per message; failures are reported for the whole message.
func (s *SMTPSender) Send(ctx context.Context, msg notification.Message) error {
	m, err := buildMsg(msg)
	if err != nil {
		return err
	}
	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return errs.Wrap(err, "smtp send failed")
	}
	return nil
}

func buildMsg(msg notification.Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.FromFormat(msg.FromName, msg.From); err != nil {
		return nil, errs.Wrap(err, "invalid sender address")
	}
	if err := m.To(msg.To...); err != nil {
		return nil, errs.Wrap(err, "invalid recipient address")
	}
	if len(msg.Bcc) > 0 {
		if err := m.Bcc(msg.Bcc...); err != nil {
			return nil, errs.Wrap(err, "invalid bcc address")
		}
	}
	m.Subject(msg.Subject)
	m.SetDate()
	m.SetMessageID()
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)
	return m, nil
}
