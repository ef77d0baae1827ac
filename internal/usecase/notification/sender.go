package notification

import (
	"context"
)

// Message is a single outgoing email. Bcc recipients never see each other.
type Message struct {
	From     string
	FromName string
	To       []string
	Bcc      []string
	Subject  string
	HTML     string
}

// Sender is the mail transport. Implementations live in infra/mailer.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type RecipientSource interface {
	ListDistinctEmails(ctx context.Context) ([]string, error)
}
