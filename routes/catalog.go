package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productController "github.com/sunitha-d63/cherriBakery/controllers/product"
)

func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productController.GetAllProducts(db))
		products.GET("/featured", productController.GetFeaturedProducts(db))
		products.GET("/search", productController.SearchProducts(db))
		products.GET("/:id", productController.GetProductByID(db))
	}

	r.GET("/categories/:slug/products", productController.GetCategoryProducts(db))
}
