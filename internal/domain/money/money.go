package money

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// Scale is the number of minor-unit digits (euro cents).
const Scale int32 = 2

var (
	ErrNotFinite = errors.New("amount must be a finite number")

	// Epsilon absorbs float noise when comparing a submitted amount to a price.
	Epsilon = decimal.New(1, -3)
)

func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

func FromFloat(v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, ErrNotFinite
	}
	return decimal.NewFromFloat(v), nil
}

// AtMost reports whether amount <= limit within Epsilon.
func AtMost(amount, limit decimal.Decimal) bool {
	return amount.LessThanOrEqual(limit.Add(Epsilon))
}
