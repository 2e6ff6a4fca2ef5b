package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Direct-checkout rates: unconditional 15% discount, 5% GST, and a delivery
// fee that applies only below the free-delivery threshold.
var (
	directDiscountRate    = decimal.NewFromFloat(0.15)
	directTaxRate         = decimal.NewFromFloat(0.05)
	directDeliveryFee     = decimal.RequireFromString("40.00")
	freeDeliveryThreshold = decimal.RequireFromString("500.00")
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Quote is the priced breakdown for a single-item direct checkout. All five
// values are persisted with the order so historical orders stay reproducible
// if rates change.
type Quote struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Discount    decimal.Decimal `json:"discount"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	GST         decimal.Decimal `json:"gst"`
	Total       decimal.Decimal `json:"total"`
}

// NewQuote prices quantity units at basePrice.
func NewQuote(basePrice decimal.Decimal, quantity int) (Quote, error) {
	if quantity < 1 {
		return Quote{}, ErrInvalidQuantity
	}

	subtotal := basePrice.Mul(decimal.NewFromInt(int64(quantity)))
	discount := Round2(subtotal.Mul(directDiscountRate))
	gst := Round2(subtotal.Mul(directTaxRate))

	fee := decimal.Zero
	if subtotal.LessThan(freeDeliveryThreshold) {
		fee = directDeliveryFee
	}

	subtotal = Round2(subtotal)
	return Quote{
		Subtotal:    subtotal,
		Discount:    discount,
		DeliveryFee: fee,
		GST:         gst,
		Total:       subtotal.Sub(discount).Add(fee).Add(gst),
	}, nil
}
