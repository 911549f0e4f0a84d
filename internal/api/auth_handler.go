package api

import (
	"net/http"

	"fitsync/fitness-tracker/internal/service"
	"fitsync/fitness-tracker/internal/validation"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

type PasswordStrengthRequest struct {
	Password string `json:"password"`
}

// Register creates a new account. The full validation result (schema,
// password policy, confirm-password) comes back as field-level errors.
func (h *AuthHandler) Register(c *gin.Context) {
	var req validation.Registration
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login authenticates and returns a fresh token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Token: token, User: user})
}

// Logout discards the persisted session. The token itself simply expires.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the authenticated viewer.
func (h *AuthHandler) Me(c *gin.Context) {
	viewer, err := viewerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve current user")
		return
	}
	c.JSON(http.StatusOK, viewer)
}

// PasswordStrength scores a candidate password. Advisory only; it never
// gates registration.
func (h *AuthHandler) PasswordStrength(c *gin.Context) {
	var req PasswordStrengthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	score, feedback := validation.PasswordStrength(req.Password)
	c.JSON(http.StatusOK, gin.H{"score": score, "feedback": feedback})
}
