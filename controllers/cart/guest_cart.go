package cartControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sunitha-d63/cherriBakery/models"
)

// guestCart resolves the cart for the session token carried in the guest_token
// query parameter, after checking the session exists and has not expired.
func guestCart(c *gin.Context, db *gorm.DB) (*models.Cart, bool) {
	token := c.Query("guest_token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guest_token is required"})
		return nil, false
	}

	var session models.GuestSession
	if err := db.First(&session, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown guest session"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify guest session"})
		return nil, false
	}
	if time.Now().After(session.ExpiresAt) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Guest session expired"})
		return nil, false
	}

	cart, err := GetOrCreateGuestCart(db, token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load guest cart"})
		return nil, false
	}
	return cart, true
}

// POST /guest/cart/items
func AddGuestCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := guestCart(c, db)
		if !ok {
			return
		}
		var in AddItemInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		item, err := AddItem(db, cart, in)
		if err != nil {
			c.JSON(addItemStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /guest/cart/items/:itemID
func UpdateGuestCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := guestCart(c, db)
		if !ok {
			return
		}
		itemID, err := strconv.ParseUint(c.Param("itemID"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
			return
		}
		var in UpdateItemInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		item, err := UpdateItemQuantity(db, cart.ID, uint(itemID), in.Quantity)
		if err != nil {
			if errors.Is(err, ErrItemNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /guest/cart/items/:itemID
func RemoveGuestCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := guestCart(c, db)
		if !ok {
			return
		}
		itemID, err := strconv.ParseUint(c.Param("itemID"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
			return
		}
		if err := RemoveItem(db, cart.ID, uint(itemID)); err != nil {
			if errors.Is(err, ErrItemNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
	}
}

// DELETE /guest/cart
func ClearGuestCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := guestCart(c, db)
		if !ok {
			return
		}
		if err := Clear(db, cart.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /guest/cart
func GetGuestCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := guestCart(c, db)
		if !ok {
			return
		}
		items, totals, err := CartView(db, cart.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items, "totals": totals})
	}
}
