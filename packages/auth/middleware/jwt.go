package middleware

import (
	"net/http"
	"strings"

	"auth/models"
	"auth/utils"

	"github.com/gin-gonic/gin"
)

// JWTMiddleware rejects requests without a valid Bearer access token
func JWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromHeader(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_roles", claims.Roles)
		c.Next()
	}
}

// OptionalJWTMiddleware populates the user context when a valid token is
// present but lets anonymous requests through
func OptionalJWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := claimsFromHeader(c); ok {
			c.Set("user_id", claims.UserID)
			c.Set("user_email", claims.Email)
			c.Set("user_roles", claims.Roles)
		}
		c.Next()
	}
}

func claimsFromHeader(c *gin.Context) (*utils.Claims, bool) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}

	claims, err := utils.ParseToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return nil, false
	}

	return claims, true
}

// GetUserID returns the authenticated user ID from the request context
func GetUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

// GetUserEmail returns the authenticated user email from the request context
func GetUserEmail(c *gin.Context) (string, bool) {
	value, exists := c.Get("user_email")
	if !exists {
		return "", false
	}
	email, ok := value.(string)
	return email, ok
}

// GetUserRoles returns the authenticated user's roles from the request context
func GetUserRoles(c *gin.Context) (models.Roles, bool) {
	value, exists := c.Get("user_roles")
	if !exists {
		return nil, false
	}
	roles, ok := value.(models.Roles)
	return roles, ok
}
