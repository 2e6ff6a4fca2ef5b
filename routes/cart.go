package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/sunitha-d63/cherriBakery/controllers/cart"
	"github.com/sunitha-d63/cherriBakery/middleware"
)

func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	user := r.Group("/user/cart", middleware.ValidateToken)
	{
		user.GET("", cartControllers.GetUserCart(db))
		user.DELETE("", cartControllers.ClearUserCart(db))
		user.POST("/items", cartControllers.AddUserCartItem(db))
		user.PUT("/items/:itemID", cartControllers.UpdateUserCartItem(db))
		user.DELETE("/items/:itemID", cartControllers.RemoveUserCartItem(db))
	}

	guest := r.Group("/guest/cart")
	{
		guest.GET("", cartControllers.GetGuestCart(db))
		guest.DELETE("", cartControllers.ClearGuestCart(db))
		guest.POST("/items", cartControllers.AddGuestCartItem(db))
		guest.PUT("/items/:itemID", cartControllers.UpdateGuestCartItem(db))
		guest.DELETE("/items/:itemID", cartControllers.RemoveGuestCartItem(db))
	}
}
