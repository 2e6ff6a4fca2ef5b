package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/sunitha-d63/cherriBakery/controllers/order"
	productController "github.com/sunitha-d63/cherriBakery/controllers/product"
	"github.com/sunitha-d63/cherriBakery/middleware"
)

func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/admin", middleware.ValidateAPIKey)
	{
		admin.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		admin.GET("/orders/export", orderControllers.ExportOrdersToExcel(db))
		admin.GET("/orders/ws", orderControllers.OrderWebSocketHandler)
		admin.PUT("/orders/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
		admin.PUT("/orders/:orderID/payment-status", orderControllers.UpdatePaymentStatusHandler(db))

		admin.POST("/products", productController.CreateProduct(db))
		admin.PUT("/products/:id", productController.UpdateProduct(db))
		admin.DELETE("/products/:id", productController.DeleteProduct(db))
	}
}
