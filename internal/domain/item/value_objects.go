package item

import (
	"strings"

	"baby-registry/internal/domain/money"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"
)

const MaxNameLength = 200

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Name{}, ErrEmptyName
	}
	if err := validation.Validate(t, validation.RuneLength(1, MaxNameLength)); err != nil {
		return Name{}, ErrNameTooLong
	}
	return Name{value: t}, nil
}

func (n Name) String() string { return n.value }

type Price struct {
	value decimal.Decimal
}

func NewPrice(d decimal.Decimal) (Price, error) {
	rounded := money.Round2(d)
	if !rounded.IsPositive() {
		return Price{}, ErrInvalidPrice
	}
	return Price{value: rounded}, nil
}

func (p Price) Decimal() decimal.Decimal { return p.value }

func validateOptionalURL(s string) error {
	if err := validation.Validate(s, is.URL); err != nil {
		return ErrInvalidURL
	}
	return nil
}
