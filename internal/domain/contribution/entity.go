package contribution

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Input struct {
	ItemID             uuid.UUID
	Amount             float64
	ContributorName    string
	ContributorSurname string
	ContributorEmail   string
	Message            string
	PaymentMethod      string
}

// Contribution is immutable once created.
type Contribution struct {
	id            uuid.UUID
	itemID        uuid.UUID
	amount        Amount
	contributor   Contributor
	message       string
	paymentMethod PaymentMethod
	createdAt     time.Time
}

func NewContribution(in Input, now time.Time) (*Contribution, error) {
	amount, err := NewAmount(in.Amount)
	if err != nil {
		return nil, err
	}
	contributor, err := NewContributor(in.ContributorName, in.ContributorSurname, in.ContributorEmail)
	if err != nil {
		return nil, err
	}
	message, err := normalizeMessage(in.Message)
	if err != nil {
		return nil, err
	}
	method, err := NewPaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}

	return &Contribution{
		id:            uuid.New(),
		itemID:        in.ItemID,
		amount:        amount,
		contributor:   contributor,
		message:       message,
		paymentMethod: method,
		createdAt:     now,
	}, nil
}

// ReconstructContribution rebuilds a stored contribution without validation.
func ReconstructContribution(id, itemID uuid.UUID, amount decimal.Decimal, name, surname, email, message string, method PaymentMethod, createdAt time.Time) *Contribution {
	return &Contribution{
		id:            id,
		itemID:        itemID,
		amount:        Amount{value: amount},
		contributor:   Contributor{name: name, surname: surname, email: Email{value: email}},
		message:       message,
		paymentMethod: method,
		createdAt:     createdAt,
	}
}

func (c *Contribution) ID() uuid.UUID                { return c.id }
func (c *Contribution) ItemID() uuid.UUID            { return c.itemID }
func (c *Contribution) Amount() decimal.Decimal      { return c.amount.Decimal() }
func (c *Contribution) Contributor() Contributor     { return c.contributor }
func (c *Contribution) Message() string              { return c.message }
func (c *Contribution) PaymentMethod() PaymentMethod { return c.paymentMethod }
func (c *Contribution) CreatedAt() time.Time         { return c.createdAt }
