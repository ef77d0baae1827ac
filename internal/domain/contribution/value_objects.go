package contribution

import (
	"regexp"
	"strings"

	"baby-registry/internal/domain/money"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

const (
	MaxMessageLength = 2000
	MaxEmailLength   = 254
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Amount struct {
	value decimal.Decimal
}

func NewAmount(v float64) (Amount, error) {
	d, err := money.FromFloat(v)
	if err != nil {
		return Amount{}, err
	}
	if !d.IsPositive() {
		return Amount{}, ErrInvalidAmount
	}
	rounded := money.Round2(d)
	if !rounded.IsPositive() {
		return Amount{}, ErrAmountTooSmall
	}
	return Amount{value: rounded}, nil
}

func (a Amount) Decimal() decimal.Decimal { return a.value }

type Email struct {
	value string
}

// NewEmail normalizes to trimmed lower case.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	err := validation.Validate(s,
		validation.Required,
		validation.RuneLength(3, MaxEmailLength),
		validation.Match(emailRegex),
	)
	if err != nil {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) String() string { return e.value }

type Contributor struct {
	name    string
	surname string
	email   Email
}

func NewContributor(name, surname, email string) (Contributor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Contributor{}, ErrEmptyName
	}
	surname = strings.TrimSpace(surname)
	if surname == "" {
		return Contributor{}, ErrEmptySurname
	}
	e, err := NewEmail(email)
	if err != nil {
		return Contributor{}, err
	}
	return Contributor{name: name, surname: surname, email: e}, nil
}

func (c Contributor) Name() string    { return c.name }
func (c Contributor) Surname() string { return c.surname }
func (c Contributor) Email() Email    { return c.email }

func (c Contributor) FullName() string {
	return c.name + " " + c.surname
}

// NewPaymentMethod defaults an empty value to bank transfer.
func NewPaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return PaymentTransfer, nil
	case PaymentPayPal:
		return PaymentPayPal, nil
	case PaymentSatispay:
		return PaymentSatispay, nil
	case PaymentTransfer:
		return PaymentTransfer, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

func normalizeMessage(s string) (string, error) {
	t := strings.TrimSpace(s)
	if len([]rune(t)) > MaxMessageLength {
		return "", ErrMessageTooLong
	}
	return t, nil
}
