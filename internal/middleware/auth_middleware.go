package middleware

import (
	"net/http"
	"strings"

	"github.com/Baaaki/sportclub/internal/models"
	"github.com/Baaaki/sportclub/internal/service"
	"github.com/Baaaki/sportclub/internal/utils"
	"github.com/gin-gonic/gin"
)

const callerKey = "caller"

// AuthMiddleware validates the bearer token and stores the caller identity
// in the request context for the handlers.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header required",
			})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization format. Use: Bearer <token>",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString, jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(callerKey, service.Caller{ID: claims.UserID, Role: claims.Role})
		c.Next()
	}
}

// GetCaller returns the authenticated caller stored by AuthMiddleware.
func GetCaller(c *gin.Context) (service.Caller, bool) {
	v, exists := c.Get(callerKey)
	if !exists {
		return service.Caller{}, false
	}
	caller, ok := v.(service.Caller)
	return caller, ok
}

// RequireRoles rejects callers whose role is not in the allow list.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		caller, ok := GetCaller(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			c.Abort()
			return
		}

		if !allowed[caller.Role] {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient privileges",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
