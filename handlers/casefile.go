// File: handlers/casefile.go
package handlers

import (
	"net/http"
	"time"

	caseRepo "suretydesk/database/repository/casefile"
	"suretydesk/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CaseHandler exposes court-case management endpoints.
type CaseHandler struct {
	Repo caseRepo.CaseRepository
}

// NewCaseHandler creates a new CaseHandler instance.
func NewCaseHandler(repo caseRepo.CaseRepository) *CaseHandler {
	return &CaseHandler{Repo: repo}
}

// CreateCaseHandler opens a case file for a client.
func (h *CaseHandler) CreateCaseHandler(c *gin.Context) {
	logger := getLogger(c)

	var cf models.CaseFile
	if err := c.ShouldBindJSON(&cf); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if cf.ClientID == "" || cf.CaseNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Client ID and case number are required"})
		return
	}
	if cf.Status == "" {
		cf.Status = models.CaseStatusOpen
	}

	now := time.Now()
	cf.CreatedAt = now
	cf.UpdatedAt = now

	id, err := h.Repo.Create(c.Request.Context(), cf)
	if err != nil {
		logger.Error("Failed to create case", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create case"})
		return
	}
	cf.ID = id

	c.JSON(http.StatusCreated, cf)
}

// GetCaseHandler returns a case file by ID.
func (h *CaseHandler) GetCaseHandler(c *gin.Context) {
	cf, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
		return
	}
	c.JSON(http.StatusOK, cf)
}

// ListCasesHandler returns all case files, or a client's cases when the
// clientId query parameter is present.
func (h *CaseHandler) ListCasesHandler(c *gin.Context) {
	logger := getLogger(c)

	var (
		cases []models.CaseFile
		err   error
	)
	if clientID := c.Query("clientId"); clientID != "" {
		cases, err = h.Repo.GetByClientID(c.Request.Context(), clientID)
	} else {
		cases, err = h.Repo.List(c.Request.Context())
	}
	if err != nil {
		logger.Error("Failed to list cases", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cases"})
		return
	}
	c.JSON(http.StatusOK, cases)
}

// UpdateCaseHandler updates a case file.
func (h *CaseHandler) UpdateCaseHandler(c *gin.Context) {
	logger := getLogger(c)

	var cf models.CaseFile
	if err := c.ShouldBindJSON(&cf); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	cf.ID = c.Param("id")
	cf.UpdatedAt = time.Now()

	if err := h.Repo.Update(c.Request.Context(), cf); err != nil {
		logger.Error("Failed to update case", zap.String("caseID", cf.ID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
		return
	}
	c.JSON(http.StatusOK, cf)
}

// DeleteCaseHandler removes a case file.
func (h *CaseHandler) DeleteCaseHandler(c *gin.Context) {
	if err := h.Repo.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Case deleted"})
}
