//go:build unit

package notification_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"baby-registry/internal/pkg/config"
	"baby-registry/internal/pkg/errs"
	"baby-registry/internal/usecase/notification"
	notificationmock "baby-registry/tests/mock/notification"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	fromAddr  = "registry@example.com"
	ownerAddr = "parents@example.com"
)

type NotifierTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	sender     *notificationmock.MockSender
	recipients *notificationmock.MockRecipientSource
	notifier   notification.Notifier
}

func (s *NotifierTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sender = notificationmock.NewMockSender(s.ctrl)
	s.recipients = notificationmock.NewMockRecipientSource(s.ctrl)
	s.notifier = notification.NewNotifier(
		s.sender,
		s.recipients,
		config.MailConfig{From: fromAddr, FromName: "Baby Registry"},
		config.RegistryConfig{
			OwnerEmail:      ownerAddr,
			PublicSiteTitle: "Baby Rossi",
			PayPalLink:      "https://paypal.me/rossi",
			IBAN:            "IT60X0542811101000000123456",
			AccountHolder:   "Rossi",
			TransferReason:  "Baby gift",
		},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func (s *NotifierTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestNotifierSuite(t *testing.T) {
	suite.Run(t, new(NotifierTestSuite))
}

func sampleNotice() notification.ContributionNotice {
	return notification.ContributionNotice{
		ItemID:             uuid.New(),
		ItemName:           "High chair",
		Amount:             decimal.RequireFromString("35"),
		ContributorName:    "Luca",
		ContributorSurname: "Bianchi",
		ContributorEmail:   "luca@example.com",
		Message:            "<b>auguri</b>",
		PaymentMethod:      "paypal",
		NewTotal:           decimal.RequireFromString("80"),
		Price:              decimal.RequireFromString("120"),
	}
}

func (s *NotifierTestSuite) TestNotifyContribution_SendsOwnerAndThankYou() {
	var sent []notification.Message
	s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg notification.Message) error {
			sent = append(sent, msg)
			return nil
		}).Times(2)

	err := s.notifier.NotifyContribution(context.Background(), sampleNotice())

	s.Require().NoError(err)
	s.Require().Len(sent, 2)

	owner, thanks := sent[0], sent[1]
	s.Equal([]string{ownerAddr}, owner.To)
	s.Equal(fromAddr, owner.From)
	s.Contains(owner.Subject, "High chair")
	s.Contains(owner.HTML, "35.00")
	s.Contains(owner.HTML, "80.00")
	s.Contains(owner.HTML, "&lt;b&gt;auguri&lt;/b&gt;")

	s.Equal([]string{"luca@example.com"}, thanks.To)
	s.Contains(thanks.HTML, "https://paypal.me/rossi")
	s.NotContains(thanks.HTML, "IBAN")
	s.Empty(thanks.Bcc)
}

func (s *NotifierTestSuite) TestNotifyContribution_TransferShowsBankDetails() {
	notice := sampleNotice()
	notice.PaymentMethod = "transfer"

	var thanks notification.Message
	s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg notification.Message) error {
			if msg.To[0] == "luca@example.com" {
				thanks = msg
			}
			return nil
		}).Times(2)

	s.Require().NoError(s.notifier.NotifyContribution(context.Background(), notice))
	s.Contains(thanks.HTML, "IT60X0542811101000000123456")
	s.Contains(thanks.HTML, "Baby gift")
}

func (s *NotifierTestSuite) TestNotifyContribution_SendsAreIndependent() {
	testCases := []struct {
		name      string
		failingTo string
	}{
		{"owner notice fails", ownerAddr},
		{"thank-you fails", "luca@example.com"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			attempted := map[string]bool{}
			s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, msg notification.Message) error {
					attempted[msg.To[0]] = true
					if msg.To[0] == tc.failingTo {
						return errors.New("smtp: 451 temporary failure")
					}
					return nil
				}).Times(2)

			err := s.notifier.NotifyContribution(context.Background(), sampleNotice())

			s.True(errs.Is(err, notification.ErrNotificationFailed), "got %v", err)
			s.True(attempted[ownerAddr])
			s.True(attempted["luca@example.com"])
		})
	}
}

func (s *NotifierTestSuite) TestBroadcast_ExplicitRecipientsAreDeduplicated() {
	recipients := []string{"a@x.com", "A@x.com", "", "b@x.com"}

	s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg notification.Message) error {
			s.Equal([]string{fromAddr}, msg.To)
			s.ElementsMatch([]string{"a@x.com", "b@x.com"}, msg.Bcc)
			s.Equal("News", msg.Subject)
			s.Equal("<p>Baby is here</p>", msg.HTML)
			return nil
		})

	count, err := s.notifier.Broadcast(context.Background(), notification.BroadcastInput{
		Subject:    "News",
		HTML:       "<p>Baby is here</p>",
		Recipients: &recipients,
	})

	s.Require().NoError(err)
	s.Equal(2, count)
}

func (s *NotifierTestSuite) TestBroadcast_DefaultsToEveryContributor() {
	s.recipients.EXPECT().ListDistinctEmails(gomock.Any()).
		Return([]string{"anna@example.com", "marco@example.com"}, nil)
	s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg notification.Message) error {
			s.Equal([]string{fromAddr}, msg.To)
			s.Equal([]string{"anna@example.com", "marco@example.com"}, msg.Bcc)
			return nil
		})

	count, err := s.notifier.Broadcast(context.Background(), notification.BroadcastInput{
		Subject: "Thank you all",
		HTML:    "<p>Thanks</p>",
	})

	s.Require().NoError(err)
	s.Equal(2, count)
}

func (s *NotifierTestSuite) TestBroadcast_EmptyExplicitListFallsBackToContributors() {
	testCases := []struct {
		name       string
		recipients []string
	}{
		{"empty list", []string{}},
		{"only blanks", []string{"", "  "}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.recipients.EXPECT().ListDistinctEmails(gomock.Any()).
				Return([]string{"a@x.com", "b@x.com"}, nil)
			s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, msg notification.Message) error {
					s.Equal([]string{fromAddr}, msg.To)
					s.Equal([]string{"a@x.com", "b@x.com"}, msg.Bcc)
					return nil
				})

			count, err := s.notifier.Broadcast(context.Background(), notification.BroadcastInput{
				Subject:    "News",
				HTML:       "<p>x</p>",
				Recipients: &tc.recipients,
			})

			s.Require().NoError(err)
			s.Equal(2, count)
		})
	}
}

func (s *NotifierTestSuite) TestBroadcast_Errors() {
	blank := []string{"", "  "}

	testCases := []struct {
		name      string
		in        notification.BroadcastInput
		setup     func()
		expectErr error
	}{
		{
			name:      "missing subject",
			in:        notification.BroadcastInput{HTML: "<p>x</p>"},
			setup:     func() {},
			expectErr: errs.ErrValidationFailed,
		},
		{
			name: "only blank recipients and no contributors",
			in:   notification.BroadcastInput{Subject: "s", HTML: "<p>x</p>", Recipients: &blank},
			setup: func() {
				s.recipients.EXPECT().ListDistinctEmails(gomock.Any()).Return(nil, nil)
			},
			expectErr: notification.ErrNoRecipients,
		},
		{
			name: "no contributors yet",
			in:   notification.BroadcastInput{Subject: "s", HTML: "<p>x</p>"},
			setup: func() {
				s.recipients.EXPECT().ListDistinctEmails(gomock.Any()).Return([]string{}, nil)
			},
			expectErr: notification.ErrNoRecipients,
		},
		{
			name: "transport failure",
			in:   notification.BroadcastInput{Subject: "s", HTML: "<p>x</p>"},
			setup: func() {
				s.recipients.EXPECT().ListDistinctEmails(gomock.Any()).Return([]string{"a@x.com"}, nil)
				s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("535 auth failed"))
			},
			expectErr: notification.ErrSendFailed,
		},
		{
			name: "recipient lookup failure",
			in:   notification.BroadcastInput{Subject: "s", HTML: "<p>x</p>"},
			setup: func() {
				s.recipients.EXPECT().ListDistinctEmails(gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			expectErr: errs.ErrDatabaseOperationFailed,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setup()

			count, err := s.notifier.Broadcast(context.Background(), tc.in)

			s.Zero(count)
			s.True(errs.Is(err, tc.expectErr), "got %v", err)
		})
	}
}

func TestNormalizeRecipients(t *testing.T) {
	testCases := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, []string{}},
		{"case and whitespace", []string{" A@x.com", "a@X.com ", "b@x.com"}, []string{"a@x.com", "b@x.com"}},
		{"keeps first-seen order", []string{"c@x.com", "a@x.com", "c@x.com"}, []string{"c@x.com", "a@x.com"}},
		{"drops blanks", []string{"", "   "}, []string{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, notification.NormalizeRecipients(tc.in))
		})
	}
}
