package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Slug  string `gorm:"uniqueIndex;not null" json:"slug"`
	Image string `json:"image"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

type Product struct {
	ID          uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string   `gorm:"not null" json:"title"`
	Slug        string   `gorm:"uniqueIndex;not null" json:"slug"`
	CategoryID  uint     `gorm:"index;not null" json:"category_id"`
	Category    Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Description string   `json:"description"`

	// BasePrice is the price per kilogram.
	BasePrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"base_price"`

	// WeightOptions is a comma-separated list of weight labels, e.g. "500G,1KG,2KG".
	WeightOptions string `gorm:"default:'500G,1KG,2KG,3KG,4KG,5KG'" json:"weight_options"`

	NutritionInfo string `json:"nutrition_info,omitempty"`
	Ingredients   string `json:"ingredients,omitempty"`
	AllergyInfo   string `json:"allergy_info,omitempty"`

	Image      string    `json:"image"`
	IsFeatured bool      `gorm:"default:false" json:"is_featured"`
	CreatedAt  time.Time `json:"created_at"`
}

// WeightList splits WeightOptions into its individual labels.
func (p *Product) WeightList() []string {
	parts := strings.Split(p.WeightOptions, ",")
	out := make([]string, 0, len(parts))
	for _, w := range parts {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, w)
		}
	}
	return out
}
