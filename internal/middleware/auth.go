package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"clinic-registry-server/internal/config"
	"clinic-registry-server/internal/models"
	"clinic-registry-server/internal/utils"
)

// AuthMiddleware creates a middleware for JWT authentication.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		tokenString := parts[1]
		claims, err := utils.ValidateToken(tokenString, cfg.JWTSecret)
		if err != nil {
			utils.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		// Set user information in context for downstream handlers
		c.Set("userID", claims.UserID)
		c.Set("userRole", models.RoleName(claims.Role))

		c.Next()
	}
}

// RoleAuthMiddleware creates a middleware for role-based authorization.
// It should be used *after* AuthMiddleware.
func RoleAuthMiddleware(allowedRoles ...models.RoleName) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("userRole")
		if !exists {
			utils.InternalServerError(c, "User role not found in context. AuthMiddleware might be missing.")
			c.Abort()
			return
		}

		role, ok := userRole.(models.RoleName)
		if !ok {
			utils.InternalServerError(c, "User role in context is not of expected type.")
			c.Abort()
			return
		}

		isAllowed := false
		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				isAllowed = true
				break
			}
		}

		if !isAllowed {
			utils.Forbidden(c, "You do not have permission to access this resource.")
			c.Abort()
			return
		}

		c.Next()
	}
}

// Helper function to get user ID from context
func GetUserIDFromContext(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := userID.(uint)
	return id, ok
}

// Helper function to get user role from context
func GetUserRoleFromContext(c *gin.Context) (models.RoleName, bool) {
	userRole, exists := c.Get("userRole")
	if !exists {
		return "", false
	}
	role, ok := userRole.(models.RoleName)
	return role, ok
}
