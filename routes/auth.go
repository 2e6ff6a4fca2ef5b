package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sunitha-d63/cherriBakery/auth"
)

func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	group := r.Group("/auth")
	{
		group.POST("/register", auth.Register(db))
		group.POST("/login", auth.Login(db))
		group.POST("/guest", auth.CreateGuestSession(db))
	}
}
