package transfer

import (
	"github.com/shopspring/decimal"

	"github.com/interbanking/backend/internal/domain/shared"
)

// Amount is a strictly positive monetary amount.
// It has no upper bound and keeps sub-unit precision.
type Amount struct {
	value decimal.Decimal
}

// NewAmount validates value and returns it as an Amount.
func NewAmount(value decimal.Decimal) (Amount, error) {
	if !value.IsPositive() {
		return Amount{}, shared.NewValidationError("Amount must be greater than 0")
	}
	return Amount{value: value}, nil
}

// NewAmountFromFloat is a convenience wrapper around NewAmount.
func NewAmountFromFloat(value float64) (Amount, error) {
	return NewAmount(decimal.NewFromFloat(value))
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// IsPositive reports whether the amount is greater than zero.
// The zero Amount is not positive.
func (a Amount) IsPositive() bool {
	return a.value.IsPositive()
}

func (a Amount) String() string {
	return a.value.String()
}
