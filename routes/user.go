package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	contactControllers "github.com/sunitha-d63/cherriBakery/controllers/contact"
	wishlistControllers "github.com/sunitha-d63/cherriBakery/controllers/wishlist"
	"github.com/sunitha-d63/cherriBakery/middleware"
)

func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	wishlist := r.Group("/user/wishlist", middleware.ValidateToken)
	{
		wishlist.GET("", wishlistControllers.GetWishlist(db))
		wishlist.DELETE("", wishlistControllers.ClearWishlist(db))
		wishlist.POST("/:productID", wishlistControllers.ToggleWishlist(db))
		wishlist.DELETE("/:productID", wishlistControllers.RemoveFromWishlist(db))
	}

	r.POST("/contact", contactControllers.SubmitContactMessage(db))
	r.GET("/contact/locations", contactControllers.GetLocations())
}
