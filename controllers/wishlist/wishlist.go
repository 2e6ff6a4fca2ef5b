package wishlistControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sunitha-d63/cherriBakery/models"
)

func currentUserID(c *gin.Context) (uint, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userIDVal.(uint), true
}

// POST /user/wishlist/:productID
// Adds the product if absent, removes it if already wished.
func ToggleWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		productID, err := strconv.ParseUint(c.Param("productID"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		var entry models.Wishlist
		err = db.Where("user_id = ? AND product_id = ?", userID, productID).First(&entry).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			entry = models.Wishlist{UserID: userID, ProductID: uint(productID)}
			if err := db.Create(&entry).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to wishlist"})
				return
			}
			c.JSON(http.StatusCreated, gin.H{"wished": true})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check wishlist"})
		default:
			if err := db.Delete(&entry).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from wishlist"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"wished": false})
		}
	}
}

// GET /user/wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		var items []models.Wishlist
		if err := db.Preload("Product").Where("user_id = ?", userID).
			Order("added_date DESC").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// DELETE /user/wishlist/:productID
func RemoveFromWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		productID, err := strconv.ParseUint(c.Param("productID"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		result := db.Where("user_id = ? AND product_id = ?", userID, productID).
			Delete(&models.Wishlist{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist"})
	}
}

// DELETE /user/wishlist
func ClearWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		if err := db.Where("user_id = ?", userID).Delete(&models.Wishlist{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Wishlist cleared"})
	}
}
