// File: handlers/training.go
package handlers

import (
	"net/http"
	"time"

	trainingRepo "suretydesk/database/repository/training"
	"suretydesk/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TrainingHandler exposes the agent onboarding course endpoints.
type TrainingHandler struct {
	Repo trainingRepo.TrainingRepository
}

// NewTrainingHandler creates a new TrainingHandler instance.
func NewTrainingHandler(repo trainingRepo.TrainingRepository) *TrainingHandler {
	return &TrainingHandler{Repo: repo}
}

// CreateModuleHandler adds a training module. Admin only.
func (h *TrainingHandler) CreateModuleHandler(c *gin.Context) {
	logger := getLogger(c)

	var mod models.TrainingModule
	if err := c.ShouldBindJSON(&mod); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if mod.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Module title is required"})
		return
	}
	mod.CreatedAt = time.Now()

	id, err := h.Repo.CreateModule(c.Request.Context(), mod)
	if err != nil {
		logger.Error("Failed to create training module", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create module"})
		return
	}
	mod.ID = id

	c.JSON(http.StatusCreated, mod)
}

// ListModulesHandler returns the course modules in sequence order.
func (h *TrainingHandler) ListModulesHandler(c *gin.Context) {
	mods, err := h.Repo.ListModules(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list modules"})
		return
	}
	c.JSON(http.StatusOK, mods)
}

// GetModuleHandler returns one module by ID.
func (h *TrainingHandler) GetModuleHandler(c *gin.Context) {
	mod, err := h.Repo.GetModule(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Module not found"})
		return
	}
	c.JSON(http.StatusOK, mod)
}

// DeleteModuleHandler removes a module. Admin only.
func (h *TrainingHandler) DeleteModuleHandler(c *gin.Context) {
	if err := h.Repo.DeleteModule(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Module not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Module deleted"})
}

// RecordProgressHandler marks a module complete for the current staff member.
func (h *TrainingHandler) RecordProgressHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		ModuleID string `json:"moduleId" binding:"required"`
		Score    int    `json:"score"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Module ID is required"})
		return
	}

	progress := models.TrainingProgress{
		StaffID:     c.GetString("staffID"),
		ModuleID:    req.ModuleID,
		Score:       req.Score,
		CompletedAt: time.Now(),
	}
	id, err := h.Repo.RecordProgress(c.Request.Context(), progress)
	if err != nil {
		logger.Error("Failed to record training progress", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record progress"})
		return
	}
	progress.ID = id

	c.JSON(http.StatusCreated, progress)
}

// MyProgressHandler returns the current staff member's course progress.
func (h *TrainingHandler) MyProgressHandler(c *gin.Context) {
	progress, err := h.Repo.ProgressForStaff(c.Request.Context(), c.GetString("staffID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load progress"})
		return
	}
	c.JSON(http.StatusOK, progress)
}
