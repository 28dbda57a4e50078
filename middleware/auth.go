package middleware

import (
	"net/http"
	"strings"

	"travel-backend/models"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const userKey = "user"

// Protect requires a bearer token for a user that still exists and stores
// that user in the request context.
func Protect(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") || strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")) == "" {
			utils.AbortWithError(c, http.StatusUnauthorized, "Not authorized, no token")
			return
		}

		claims, err := utils.ParseToken(strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")), secret)
		if err != nil {
			utils.AbortWithError(c, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}

		var user models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			utils.AbortWithError(c, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}

		c.Set(userKey, &user)
		c.Next()
	}
}

// AdminOnly must run after Protect.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin {
			utils.AbortWithError(c, http.StatusUnauthorized, "Not authorized as an admin")
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user resolved by Protect.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}
