package api

import (
	"errors"
	"net/http"
	"strings"

	"fitsync/fitness-tracker/internal/domain"
	"fitsync/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// Constants for context keys
const (
	ContextUserKey = "currentUser"
)

// AuthMiddleware resolves the bearer token to its user via the auth
// service and stores the viewer in the request context. Any resolution
// failure is a 401; handlers never see an unauthenticated request.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		// Expecting "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortWithError(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}

		user, err := authService.CurrentUser(c.Request.Context(), parts[1])
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		if !user.IsActive {
			abortWithError(c, http.StatusForbidden, "Account is deactivated")
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RoleMiddleware restricts a route to the given roles.
// Must run AFTER AuthMiddleware.
func RoleMiddleware(allowedRoles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer, err := viewerFromContext(c)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, "User not found in context")
			return
		}
		for _, role := range allowedRoles {
			if viewer.Role == role {
				c.Next()
				return
			}
		}
		abortWithError(c, http.StatusForbidden, "Access denied for role '"+string(viewer.Role)+"'")
	}
}

// viewerFromContext returns the authenticated user set by AuthMiddleware.
func viewerFromContext(c *gin.Context) (domain.User, error) {
	raw, exists := c.Get(ContextUserKey)
	if !exists {
		return domain.User{}, errors.New("user not found in context")
	}
	user, ok := raw.(domain.User)
	if !ok {
		return domain.User{}, errors.New("invalid user type in context")
	}
	return user, nil
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}
