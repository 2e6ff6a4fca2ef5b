package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Payment is one-to-one with Order. Only the fields relevant to the order's
// payment method are populated; the rest stay empty.
type Payment struct {
	ID      uint `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID uint `gorm:"uniqueIndex;not null" json:"order_id"`

	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentDate time.Time       `gorm:"autoCreateTime" json:"payment_date"`
	Status      PaymentStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`

	TransactionID string `json:"transaction_id,omitempty"`

	UPIID      string `json:"upi_id,omitempty"`
	WalletID   string `json:"wallet_id,omitempty"`
	CardLast4  string `gorm:"type:VARCHAR(4)" json:"card_last4,omitempty"`
	CardExpiry string `gorm:"type:VARCHAR(5)" json:"card_expiry,omitempty"`
}
