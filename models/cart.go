package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart belongs either to a registered user (UserID set) or to an anonymous
// guest session (GuestToken set), never both. The partial unique indexes
// enforce one cart per identity.
type Cart struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     *uint      `gorm:"uniqueIndex" json:"user_id,omitempty"`
	GuestToken *string    `gorm:"uniqueIndex" json:"guest_token,omitempty"`
	Items      []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    uint    `gorm:"index;not null" json:"cart_id"`
	ProductID uint    `gorm:"index;not null" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`

	// Weight is the chosen weight label, one of the product's weight options.
	Weight   string `gorm:"not null" json:"weight"`
	Quantity int    `gorm:"not null;default:1" json:"quantity"`

	// Price is the unit price snapshotted when the line was added; it is not
	// recomputed if the product's base price changes later.
	Price   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	AddedAt time.Time       `json:"added_at"`
}

// TotalPrice is the line total, price times quantity.
func (ci *CartItem) TotalPrice() decimal.Decimal {
	return ci.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}
