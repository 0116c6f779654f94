// File: handlers/client.go
package handlers

import (
	"net/http"
	"time"

	clientRepo "suretydesk/database/repository/client"
	"suretydesk/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientHandler exposes client intake and management endpoints.
type ClientHandler struct {
	Repo clientRepo.ClientRepository
}

// NewClientHandler creates a new ClientHandler instance.
func NewClientHandler(repo clientRepo.ClientRepository) *ClientHandler {
	return &ClientHandler{Repo: repo}
}

// CreateClientHandler records a new client during intake.
func (h *ClientHandler) CreateClientHandler(c *gin.Context) {
	logger := getLogger(c)

	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		logger.Error("Invalid client payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if client.FirstName == "" || client.LastName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "First and last name are required"})
		return
	}
	if client.Language != "es" {
		client.Language = "en"
	}

	now := time.Now()
	client.CreatedAt = now
	client.UpdatedAt = now

	id, err := h.Repo.Create(c.Request.Context(), client)
	if err != nil {
		logger.Error("Failed to create client", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create client"})
		return
	}
	client.ID = id

	c.JSON(http.StatusCreated, client)
}

// GetClientHandler returns a client by ID.
func (h *ClientHandler) GetClientHandler(c *gin.Context) {
	client, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// ListClientsHandler returns all clients on file.
func (h *ClientHandler) ListClientsHandler(c *gin.Context) {
	logger := getLogger(c)

	clients, err := h.Repo.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list clients", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list clients"})
		return
	}
	c.JSON(http.StatusOK, clients)
}

// UpdateClientHandler updates a client record.
func (h *ClientHandler) UpdateClientHandler(c *gin.Context) {
	logger := getLogger(c)

	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	client.ID = c.Param("id")
	client.UpdatedAt = time.Now()

	if err := h.Repo.Update(c.Request.Context(), client); err != nil {
		logger.Error("Failed to update client", zap.String("clientID", client.ID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClientHandler removes a client record.
func (h *ClientHandler) DeleteClientHandler(c *gin.Context) {
	if err := h.Repo.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}
