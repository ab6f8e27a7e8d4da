package middleware

import (
	"errors"
	"net/http"
	"strings"

	"bendahara-api/internal/model"
	"bendahara-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is the gin context key holding the authenticated *model.User.
const ContextUserKey = "currentUser"

// AuthRequired resolves the bearer token on the request to a stored user and
// aborts with 401 otherwise. Expired tokens get a distinct message so clients
// can prompt for a fresh login instead of showing a generic failure.
func AuthRequired(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		claims, err := authService.DecodeToken(tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		user, err := authService.ResolveUser(claims)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidTokenPayload):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token payload"})
			case errors.Is(err, service.ErrUserNotFound):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by AuthRequired.
func CurrentUser(c *gin.Context) *model.User {
	user, _ := c.MustGet(ContextUserKey).(*model.User)
	return user
}
