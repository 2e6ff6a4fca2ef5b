package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

type PaymentMethod string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"

	PaymentMethodUPI    PaymentMethod = "upi"
	PaymentMethodWallet PaymentMethod = "wallet"
	PaymentMethodCredit PaymentMethod = "credit"
	PaymentMethodCOD    PaymentMethod = "cod"
)

type Order struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CustomerName     string `gorm:"not null" json:"customer_name"`
	CustomerMobile   string `gorm:"not null" json:"customer_mobile"`
	DeliveryLocation string `gorm:"not null" json:"delivery_location"`
	DeliveryAddress  string `gorm:"not null" json:"delivery_address"`
	SpecialNotes     string `json:"special_notes,omitempty"`

	OrderDate        time.Time     `gorm:"autoCreateTime" json:"order_date"`
	Status           OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentMethod    PaymentMethod `gorm:"type:VARCHAR(20);not null" json:"payment_method"`
	PaymentCompleted bool          `gorm:"default:false" json:"payment_completed"`

	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Discount    decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"discount"`
	DeliveryFee decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"delivery_fee"`
	TaxAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"tax_amount"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`

	Items   []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Payment *Payment    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"payment,omitempty"`
}

// OrderItem keeps a RESTRICT constraint on the product so a product cannot be
// deleted while an order still references it.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"index;not null" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"product,omitempty"`

	Quantity  int             `gorm:"not null;default:1" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Weight    string          `json:"weight,omitempty"`
}

// TotalPrice is unit price times quantity.
func (oi *OrderItem) TotalPrice() decimal.Decimal {
	return oi.UnitPrice.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}

// CanTransitionTo reports whether the order status may move to next.
// The flow is linear (pending -> processing -> shipped -> delivered) with
// cancellation allowed before shipping.
func (o *Order) CanTransitionTo(next OrderStatus) bool {
	if next == OrderStatusCancelled {
		return o.Status == OrderStatusPending || o.Status == OrderStatusProcessing
	}
	switch o.Status {
	case OrderStatusPending:
		return next == OrderStatusProcessing
	case OrderStatusProcessing:
		return next == OrderStatusShipped
	case OrderStatusShipped:
		return next == OrderStatusDelivered
	default:
		return false
	}
}
