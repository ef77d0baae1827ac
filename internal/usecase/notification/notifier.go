package notification

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"baby-registry/internal/pkg/config"
	"baby-registry/internal/pkg/errs"
	"baby-registry/internal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotificationFailed = errs.ErrNotificationFailed
	ErrNoRecipients       = errs.ErrNoRecipients
	ErrSendFailed         = errs.ErrSendFailed
)

const (
	kindOwner     = "owner"
	kindThankYou  = "thank_you"
	kindBroadcast = "broadcast"
)

type ContributionNotice struct {
	ItemID             uuid.UUID
	ItemName           string
	Amount             decimal.Decimal
	ContributorName    string
	ContributorSurname string
	ContributorEmail   string
	Message            string
	PaymentMethod      string
	NewTotal           decimal.Decimal
	Price              decimal.Decimal
	Completed          bool
}

// BroadcastInput: a nil Recipients, or one holding only blanks, means every
// historical contributor.
type BroadcastInput struct {
	Subject    string
	HTML       string
	Recipients *[]string
}

type PaymentDetails struct {
	PayPalLink     string
	SatispayHandle string
	IBAN           string
	AccountHolder  string
	TransferReason string
}

type Notifier interface {
	NotifyContribution(ctx context.Context, n ContributionNotice) error
	Broadcast(ctx context.Context, in BroadcastInput) (int, error)
}

type notifierImpl struct {
	sender     Sender
	recipients RecipientSource
	from       string
	fromName   string
	owner      string
	siteTitle  string
	payment    PaymentDetails
	logger     *slog.Logger
}

func NewNotifier(sender Sender, recipients RecipientSource, mailCfg config.MailConfig, registryCfg config.RegistryConfig, logger *slog.Logger) Notifier {
	return &notifierImpl{
		sender:     sender,
		recipients: recipients,
		from:       mailCfg.From,
		fromName:   mailCfg.FromName,
		owner:      registryCfg.OwnerEmail,
		siteTitle:  registryCfg.PublicSiteTitle,
		payment: PaymentDetails{
			PayPalLink:     registryCfg.PayPalLink,
			SatispayHandle: registryCfg.SatispayHandle,
			IBAN:           registryCfg.IBAN,
			AccountHolder:  registryCfg.AccountHolder,
			TransferReason: registryCfg.TransferReason,
		},
		logger: logger,
	}
}

// NotifyContribution attempts the owner notice and the thank-you independently.
// A failure of one never prevents the other.
func (n *notifierImpl) NotifyContribution(ctx context.Context, notice ContributionNotice) error {
	data := templateData{
		ContributionNotice: notice,
		Amount:             notice.Amount.StringFixed(2),
		NewTotal:           notice.NewTotal.StringFixed(2),
		Price:              notice.Price.StringFixed(2),
		Payment:            &n.payment,
		SiteTitle:          n.siteTitle,
	}

	ownerErr := n.sendRendered(ctx, kindOwner, ownerTemplate, data, Message{
		To:      []string{n.owner},
		Subject: fmt.Sprintf("New contribution for %s", notice.ItemName),
	})
	thanksErr := n.sendRendered(ctx, kindThankYou, thankYouTemplate, data, Message{
		To:      []string{notice.ContributorEmail},
		Subject: fmt.Sprintf("Thank you for your gift: %s", notice.ItemName),
	})

	if ownerErr == nil && thanksErr == nil {
		return nil
	}
	return errs.Mark(errs.Combine(ownerErr, thanksErr), ErrNotificationFailed)
}

func (n *notifierImpl) sendRendered(ctx context.Context, kind string, t *template.Template, data templateData, msg Message) error {
	html, err := render(t, data)
	if err != nil {
		metrics.EmailsTotal.WithLabelValues(kind, metrics.ResultError).Inc()
		n.logger.ErrorContext(ctx, "failed to render email", "kind", kind, "error", err)
		return errs.Wrapf(err, "render %s email", kind)
	}
	msg.From = n.from
	msg.FromName = n.fromName
	msg.HTML = html

	if err := n.sender.Send(ctx, msg); err != nil {
		metrics.EmailsTotal.WithLabelValues(kind, metrics.ResultError).Inc()
		n.logger.ErrorContext(ctx, "failed to send email",
			"kind", kind,
			"to", strings.Join(msg.To, ","),
			"error", err)
		return errs.Wrapf(err, "send %s email", kind)
	}
	metrics.EmailsTotal.WithLabelValues(kind, metrics.ResultOK).Inc()
	return nil
}

// Broadcast sends one message addressed to the sender mailbox with every
// recipient in Bcc, and returns the number of recipients.
func (n *notifierImpl) Broadcast(ctx context.Context, in BroadcastInput) (int, error) {
	subject := strings.TrimSpace(in.Subject)
	if subject == "" || strings.TrimSpace(in.HTML) == "" {
		return 0, errs.Mark(errs.New("subject and body are required"), errs.ErrValidationFailed)
	}

	var list []string
	if in.Recipients != nil {
		list = NormalizeRecipients(*in.Recipients)
	}
	if len(list) == 0 {
		emails, err := n.recipients.ListDistinctEmails(ctx)
		if err != nil {
			return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		list = NormalizeRecipients(emails)
	}
	if len(list) == 0 {
		return 0, ErrNoRecipients
	}

	msg := Message{
		From:     n.from,
		FromName: n.fromName,
		To:       []string{n.from},
		Bcc:      list,
		Subject:  subject,
		HTML:     in.HTML,
	}
	if err := n.sender.Send(ctx, msg); err != nil {
		metrics.EmailsTotal.WithLabelValues(kindBroadcast, metrics.ResultError).Inc()
		n.logger.ErrorContext(ctx, "broadcast failed", "recipients", len(list), "error", err)
		return 0, errs.Mark(err, ErrSendFailed)
	}

	metrics.EmailsTotal.WithLabelValues(kindBroadcast, metrics.ResultOK).Inc()
	n.logger.InfoContext(ctx, "broadcast sent", "recipients", len(list))
	return len(list), nil
}
