package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sunitha-d63/cherriBakery/models"
)

// POST /auth/guest
// Issues an anonymous session token. Guest carts are keyed by this token.
func CreateGuestSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := models.GuestSession{
			Token:     "guest_" + generateRandomString(16),
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}

		if err := db.Create(&session).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"guest_token": session.Token,
			"expires_at":  session.ExpiresAt,
		})
	}
}

func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		// crypto/rand failing is effectively unreachable; fall back to a uuid.
		return uuid.NewString()
	}
	return hex.EncodeToString(bytes)
}
