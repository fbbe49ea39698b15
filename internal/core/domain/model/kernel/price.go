package kernel

import (
	"github.com/shopspring/decimal"

	"tourcatalog/internal/pkg/errs"
)

// Price is a value object for a non-negative decimal amount of money.
// It wraps github.com/shopspring/decimal to avoid binary floating point
// rounding in package prices.
//
// Display formatting (currency symbol, padding) is a presentation concern and
// lives with the consumers; Price itself renders the bare number.
//
// The zero value is a valid price of 0. Negative amounts are rejected by the
// constructors.
type Price struct {
	amount decimal.Decimal
}

// NewPrice creates a Price from a decimal amount.
// Returns an error if the amount is negative.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, errs.NewValueIsInvalidError("price must not be negative")
	}
	return Price{amount: amount}, nil
}

// PriceFromFloat creates a Price from a float64 amount.
func PriceFromFloat(amount float64) (Price, error) {
	return NewPrice(decimal.NewFromFloat(amount))
}

// PriceFromString creates a Price from a decimal string such as "199.90".
func PriceFromString(amount string) (Price, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return NewPrice(d)
}

// Amount returns the underlying decimal value.
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// String returns the bare decimal representation, e.g. "200" or "199.9".
func (p Price) String() string {
	return p.amount.String()
}

// IsEqual compares two prices by numeric value.
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}
