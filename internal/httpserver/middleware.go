package httpserver

import (
	"net/http"
	"strings"

	"canvas-store/internal/domain"
	"github.com/gin-gonic/gin"
)

const userCtxKey = "authUser"

// authMiddleware resolves the bearer token through the account service and
// stores the user on the request context.
func authMiddleware(accounts AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "authorization token required",
			})
			return
		}

		user, err := accounts.LookupByToken(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "invalid or expired token",
			})
			return
		}

		c.Set(userCtxKey, user)
		c.Next()
	}
}

// currentUser returns the authenticated user set by authMiddleware.
func currentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(userCtxKey)
	if !ok {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}
