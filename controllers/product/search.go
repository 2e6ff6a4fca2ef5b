package productController

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sunitha-d63/cherriBakery/models"
)

// GET /products/search?q=
// Case-insensitive search over title, description and category name.
func SearchProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := strings.TrimSpace(c.Query("q"))
		if query == "" {
			c.JSON(http.StatusOK, gin.H{"query": query, "products": []models.Product{}})
			return
		}

		like := "%" + strings.ToLower(query) + "%"
		var products []models.Product
		if err := db.Preload("Category").
			Joins("JOIN categories ON categories.id = products.category_id").
			Where("LOWER(products.title) LIKE ? OR LOWER(products.description) LIKE ? OR LOWER(categories.name) LIKE ?",
				like, like, like).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"query": query, "products": products})
	}
}
