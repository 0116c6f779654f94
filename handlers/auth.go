// File: handlers/auth.go
package handlers

import (
	"net/http"
	"strings"

	"suretydesk/models"
	"suretydesk/services/staff"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes staff registration and session endpoints.
type AuthHandler struct {
	StaffSvc staff.StaffService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(svc staff.StaffService) *AuthHandler {
	return &AuthHandler{StaffSvc: svc}
}

// RegisterStaffHandler creates a staff account.
func (h *AuthHandler) RegisterStaffHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.Staff
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	member, err := h.StaffSvc.Register(c.Request.Context(), input)
	if err != nil {
		logger.Error("Failed to register staff", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, member)
}

// LoginStaffHandler authenticates a staff member and returns a session token.
func (h *AuthHandler) LoginStaffHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	token, member, err := h.StaffSvc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn("Failed login attempt", zap.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "staff": member})
}

// LogoutStaffHandler revokes the current session token.
func (h *AuthHandler) LogoutStaffHandler(c *gin.Context) {
	logger := getLogger(c)

	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing authorization token"})
		return
	}

	if err := h.StaffSvc.RevokeToken(c.Request.Context(), strings.TrimSpace(parts[1])); err != nil {
		logger.Error("Failed to revoke token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
