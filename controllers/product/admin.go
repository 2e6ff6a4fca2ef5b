package productController

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sunitha-d63/cherriBakery/models"
	"github.com/sunitha-d63/cherriBakery/pricing"
)

type ProductInput struct {
	Title         string `json:"title" binding:"required"`
	CategoryID    uint   `json:"category_id" binding:"required"`
	Description   string `json:"description"`
	BasePrice     string `json:"base_price" binding:"required"`
	WeightOptions string `json:"weight_options"`
	Image         string `json:"image"`
	IsFeatured    bool   `json:"is_featured"`
}

func slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	return strings.Join(strings.FieldsFunc(slug, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}), "-")
}

// parseProductInput checks the price and weight options before anything is
// written; invalid weight tokens are reported individually.
func parseProductInput(in ProductInput) (decimal.Decimal, string, error) {
	price, err := pricing.ParseAmount(in.BasePrice)
	if err != nil {
		return decimal.Zero, "", err
	}
	if !price.IsPositive() {
		return decimal.Zero, "", errors.New("base price must be greater than zero")
	}

	options := in.WeightOptions
	if options == "" {
		return price, "", nil
	}
	labels, err := pricing.ParseWeightOptions(options)
	if err != nil {
		return decimal.Zero, "", err
	}
	return price, strings.Join(labels, ","), nil
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ProductInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		price, options, err := parseProductInput(in)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		product := models.Product{
			Title:       in.Title,
			Slug:        slugify(in.Title),
			CategoryID:  in.CategoryID,
			Description: in.Description,
			BasePrice:   price,
			Image:       in.Image,
			IsFeatured:  in.IsFeatured,
		}
		if options != "" {
			product.WeightOptions = options
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		var in ProductInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		price, options, err := parseProductInput(in)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		product.Title = in.Title
		product.CategoryID = in.CategoryID
		product.Description = in.Description
		product.BasePrice = price
		product.Image = in.Image
		product.IsFeatured = in.IsFeatured
		if options != "" {
			product.WeightOptions = options
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /admin/products/:id
// Deletion fails while any order item still references the product; the
// RESTRICT foreign key enforces the same rule at the database level.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var referenced int64
		if err := db.Model(&models.OrderItem{}).Where("product_id = ?", id).
			Count(&referenced).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check references"})
			return
		}
		if referenced > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Product is referenced by existing orders"})
			return
		}

		result := db.Delete(&models.Product{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
