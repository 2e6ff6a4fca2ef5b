package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	checkoutControllers "github.com/sunitha-d63/cherriBakery/controllers/checkout"
	orderControllers "github.com/sunitha-d63/cherriBakery/controllers/order"
)

func SetupCheckoutRoutes(r *gin.Engine, db *gorm.DB) {
	checkout := r.Group("/checkout")
	{
		checkout.POST("/quote", checkoutControllers.QuoteHandler(db))
		checkout.POST("", checkoutControllers.ProcessCheckoutHandler(db))
	}

	orders := r.Group("/orders")
	{
		orders.GET("/:orderID", orderControllers.GetOrderHandler(db))
		orders.GET("/:orderID/delivery", orderControllers.DeliveryDetailsHandler(db))
	}
}
