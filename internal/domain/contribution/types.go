package contribution

import "errors"

var (
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrAmountTooSmall       = errors.New("amount is below the smallest currency unit")
	ErrEmptyName            = errors.New("contributor name cannot be empty")
	ErrEmptySurname         = errors.New("contributor surname cannot be empty")
	ErrInvalidEmail         = errors.New("invalid email format")
	ErrMessageTooLong       = errors.New("message exceeds maximum length")
	ErrInvalidPaymentMethod = errors.New("payment method must be paypal, satispay or transfer")
)

type PaymentMethod string

const (
	PaymentPayPal   PaymentMethod = "paypal"
	PaymentSatispay PaymentMethod = "satispay"
	PaymentTransfer PaymentMethod = "transfer"
)

func (m PaymentMethod) String() string { return string(m) }
