package cartControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sunitha-d63/cherriBakery/models"
	"github.com/sunitha-d63/cherriBakery/pricing"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrItemNotFound     = errors.New("cart item not found")
	ErrWeightNotOffered = errors.New("weight not offered for this product")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
)

type AddItemInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Weight    string `json:"weight" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdateItemInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// -------- Core Logic --------

// GetOrCreateUserCart returns the single cart for a registered user,
// creating it on first use.
func GetOrCreateUserCart(db *gorm.DB, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: &userID}
		if err := db.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetOrCreateGuestCart returns the single cart keyed by a guest session token.
func GetOrCreateGuestCart(db *gorm.DB, token string) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items").Where("guest_token = ?", token).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{GuestToken: &token}
		if err := db.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddItem adds a line to the cart. If a line with the same product and weight
// already exists its quantity is incremented instead of creating a duplicate
// row. The unit price is snapshotted from the product's current base price.
func AddItem(db *gorm.DB, cart *models.Cart, in AddItemInput) (*models.CartItem, error) {
	if in.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	var product models.Product
	if err := db.First(&product, in.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if !pricing.WeightAllowed(in.Weight, product.WeightList()) {
		return nil, ErrWeightNotOffered
	}
	weight := pricing.NormalizeWeight(in.Weight)

	var item models.CartItem
	err := db.Where("cart_id = ? AND product_id = ? AND weight = ?", cart.ID, product.ID, weight).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		item = models.CartItem{
			CartID:    cart.ID,
			ProductID: product.ID,
			Weight:    weight,
			Quantity:  in.Quantity,
			Price:     product.BasePrice,
			AddedAt:   time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			return nil, err
		}
		return &item, nil
	}
	if err != nil {
		return nil, err
	}

	// Atomic increment so two concurrent adds cannot lose each other. The
	// original added_at is kept so merging never reorders the cart listing.
	err = db.Model(&item).
		Update("quantity", gorm.Expr("quantity + ?", in.Quantity)).Error
	if err != nil {
		return nil, err
	}
	if err := db.First(&item, item.ID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItemQuantity sets the quantity of an existing line with a single
// UPDATE, so there is no read-modify-write window to race on.
func UpdateItemQuantity(db *gorm.DB, cartID, itemID uint, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	result := db.Model(&models.CartItem{}).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Update("quantity", quantity)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrItemNotFound
	}

	var item models.CartItem
	if err := db.Where("id = ? AND cart_id = ?", itemID, cartID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveItem deletes one line. Removing a line that does not exist is an
// error, not a no-op.
func RemoveItem(db *gorm.DB, cartID, itemID uint) error {
	result := db.Where("id = ? AND cart_id = ?", itemID, cartID).Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// Clear deletes every line in the cart; clearing an empty cart is a no-op.
func Clear(db *gorm.DB, cartID uint) error {
	return db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}

// CartView loads the cart's current items and recomputes its totals.
func CartView(db *gorm.DB, cartID uint) ([]models.CartItem, pricing.CartTotals, error) {
	var items []models.CartItem
	if err := db.Preload("Product").Where("cart_id = ?", cartID).Order("added_at").Find(&items).Error; err != nil {
		return nil, pricing.CartTotals{}, err
	}
	return items, pricing.ComputeCartTotals(items), nil
}

// -------- Handlers --------

func userCart(c *gin.Context, db *gorm.DB) (*models.Cart, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	cart, err := GetOrCreateUserCart(db, userIDVal.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return nil, false
	}
	return cart, true
}

func addItemStatus(err error) int {
	switch {
	case errors.Is(err, ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrWeightNotOffered), errors.Is(err, ErrInvalidQuantity):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// POST /user/cart/items
func AddUserCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := userCart(c, db)
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

// PUT /user/cart/items/:itemID
func UpdateUserCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := userCart(c, db)
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

// DELETE /user/cart/items/:itemID
func RemoveUserCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := userCart(c, db)
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

// DELETE /user/cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := userCart(c, db)
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

// GET /user/cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := userCart(c, db)
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
