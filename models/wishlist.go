package models

import "time"

type Wishlist struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint    `gorm:"uniqueIndex:idx_wishlist_user_product;not null" json:"user_id"`
	ProductID uint    `gorm:"uniqueIndex:idx_wishlist_user_product;not null" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	AddedDate time.Time `gorm:"autoCreateTime" json:"added_date"`
}
