// File: handlers/checkin.go
package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	clientRepo "suretydesk/database/repository/client"
	"suretydesk/services/checkin"
	"suretydesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckInHandler exposes the client check-in portal endpoints.
type CheckInHandler struct {
	CheckInSvc checkin.CheckInService
	ClientRepo clientRepo.ClientRepository
}

// NewCheckInHandler creates a new CheckInHandler instance.
func NewCheckInHandler(svc checkin.CheckInService, clients clientRepo.ClientRepository) *CheckInHandler {
	return &CheckInHandler{CheckInSvc: svc, ClientRepo: clients}
}

// PortalLoginHandler issues a short-lived portal token. Clients authenticate
// with their client ID and date of birth.
func (h *CheckInHandler) PortalLoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		ClientID    string `json:"clientId" binding:"required"`
		DateOfBirth string `json:"dateOfBirth" binding:"required"` // YYYY-MM-DD
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Client ID and date of birth are required"})
		return
	}

	client, err := h.ClientRepo.GetByID(c.Request.Context(), req.ClientID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil || !sameDate(dob, client.DateOfBirth) {
		logger.Warn("Failed portal login", zap.String("clientID", req.ClientID))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(client.ID, utils.RoleClient, utils.PortalTokenTTL)
	if err != nil {
		logger.Error("Failed to issue portal token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SubmitCheckInHandler records a check-in with an optional selfie.
func (h *CheckInHandler) SubmitCheckInHandler(c *gin.Context) {
	logger := getLogger(c)

	clientID := c.GetString("clientID")
	if clientID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var photoPath, mimeType string
	if fileHeader, err := c.FormFile("photo"); err == nil {
		photoPath = filepath.Join(os.TempDir(), fileHeader.Filename)
		if err := c.SaveUploadedFile(fileHeader, photoPath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save photo", "detail": err.Error()})
			return
		}
		defer os.Remove(photoPath)
		mimeType = fileHeader.Header.Get("Content-Type")
	}

	ci, err := h.CheckInSvc.SubmitCheckIn(c.Request.Context(), clientID, photoPath, mimeType, getRequestIP(c))
	if err != nil {
		logger.Error("Failed to record check-in", zap.String("clientID", clientID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record check-in"})
		return
	}

	c.JSON(http.StatusCreated, ci)
}

// getRequestIP returns the caller's IP, preferring forwarded headers.
func getRequestIP(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return c.Request.RemoteAddr
}

// CheckInHistoryHandler returns the authenticated client's check-in history.
func (h *CheckInHandler) CheckInHistoryHandler(c *gin.Context) {
	clientID := c.GetString("clientID")
	history, err := h.CheckInSvc.History(c.Request.Context(), clientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}
	c.JSON(http.StatusOK, history)
}

// PortalNoticesHandler returns the authenticated client's portal notices.
func (h *CheckInHandler) PortalNoticesHandler(c *gin.Context) {
	clientID := c.GetString("clientID")
	client, err := h.ClientRepo.GetByID(c.Request.Context(), clientID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, client.Notices)
}

// ClientHistoryHandler lets staff view any client's check-in history.
func (h *CheckInHandler) ClientHistoryHandler(c *gin.Context) {
	history, err := h.CheckInSvc.History(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}
	c.JSON(http.StatusOK, history)
}

// MissedCheckInsHandler lists clients with no check-in during the window.
func (h *CheckInHandler) MissedCheckInsHandler(c *gin.Context) {
	logger := getLogger(c)

	window := 7 * 24 * time.Hour
	if raw := c.Query("window"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid window duration"})
			return
		}
		window = parsed
	}

	missed, err := h.CheckInSvc.MissedCheckIns(c.Request.Context(), window)
	if err != nil {
		logger.Error("Failed to compute missed check-ins", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute missed check-ins"})
		return
	}
	c.JSON(http.StatusOK, missed)
}

// ScheduleRemindersHandler enqueues court-date reminders for the window.
func (h *CheckInHandler) ScheduleRemindersHandler(c *gin.Context) {
	logger := getLogger(c)

	within := 7 * 24 * time.Hour
	if raw := c.Query("within"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid within duration"})
			return
		}
		within = parsed
	}

	count, err := h.CheckInSvc.ScheduleCourtReminders(c.Request.Context(), within)
	if err != nil {
		logger.Error("Failed to schedule reminders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule reminders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"scheduled": count})
}
