// Package pricing holds the money primitives and the two pricing paths of the
// storefront: cart totals and the single-item direct-checkout quote. All
// arithmetic is exact decimal; values are rounded to two places only at
// storage boundaries.
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrMalformedAmount = errors.New("malformed amount")

// Round2 rounds a money value to two decimal places (banker-free, half up).
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ParseAmount parses a currency field submitted by a client. Malformed or
// negative input is rejected rather than coerced to zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", ErrMalformedAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformedAmount, s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative value %q", ErrMalformedAmount, s)
	}
	return d, nil
}
