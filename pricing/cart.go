package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/sunitha-d63/cherriBakery/models"
)

// Cart-path rates. Deliberately different from the direct-checkout quote in
// quote.go: the cart charges 18% GST and a flat delivery fee with no discount.
var (
	cartTaxRate        = decimal.NewFromFloat(0.18)
	cartDeliveryCharge = decimal.RequireFromString("50.00")
)

// CartTotals is the derived pricing of a cart. It is always recomputed from
// the current items, never stored.
type CartTotals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	DeliveryCharge decimal.Decimal `json:"delivery_charge"`
	Total          decimal.Decimal `json:"total"`
}

// ComputeCartTotals aggregates the cart's line items. An empty cart has a
// zero subtotal but still carries the flat delivery charge.
func ComputeCartTotals(items []models.CartItem) CartTotals {
	subtotal := decimal.Zero
	for i := range items {
		subtotal = subtotal.Add(items[i].TotalPrice())
	}
	tax := Round2(subtotal.Mul(cartTaxRate))
	subtotal = Round2(subtotal)
	return CartTotals{
		Subtotal:       subtotal,
		TaxAmount:      tax,
		DeliveryCharge: cartDeliveryCharge,
		Total:          subtotal.Add(tax).Add(cartDeliveryCharge),
	}
}
