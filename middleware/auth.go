// File: middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"suretydesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// StaffAuthMiddleware validates staff JWTs and checks the session is still
// active in the auth cache. Sets "staffID" and "role" on the context.
func StaffAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing authorization token"})
			return
		}

		subject, role, err := utils.ExtractIDFromToken(token)
		if err != nil {
			logger.Warn("Rejected invalid token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if role != utils.RoleAgent && role != utils.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Staff access required"})
			return
		}

		// The session must still exist in the cache; revoked tokens fail here.
		cacheKey := utils.AuthCachePrefix + utils.HashToken(token)
		if err := utils.GetAuthCacheClient().Get(c.Request.Context(), cacheKey).Err(); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or revoked"})
			return
		}

		c.Set("staffID", subject)
		c.Set("role", role)
		c.Next()
	}
}

// AdminOnly requires the admin role. Must run after StaffAuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != utils.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// PortalAuthMiddleware validates short-lived client portal tokens. Sets
// "clientID" on the context.
func PortalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing authorization token"})
			return
		}

		subject, role, err := utils.ExtractIDFromToken(token)
		if err != nil || role != utils.RoleClient {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid portal token"})
			return
		}

		c.Set("clientID", subject)
		c.Next()
	}
}
