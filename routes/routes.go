package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Catalog browsing (public)
	SetupCatalogRoutes(r, db)

	// Carts: JWT-protected user cart, token-keyed guest cart
	SetupCartRoutes(r, db)

	// Direct checkout and order lookups
	SetupCheckoutRoutes(r, db)

	// Wishlist and contact
	SetupUserRoutes(r, db)

	// Admin (API-key-protected)
	SetupAdminRoutes(r, db)
}
