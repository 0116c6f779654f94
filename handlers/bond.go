// File: handlers/bond.go
package handlers

import (
	"net/http"
	"time"

	bondRepo "suretydesk/database/repository/bond"
	caseRepo "suretydesk/database/repository/casefile"
	clientRepo "suretydesk/database/repository/client"
	"suretydesk/models"
	"suretydesk/services/contract"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BondHandler exposes bond issuance and management endpoints.
type BondHandler struct {
	BondRepo   bondRepo.BondRepository
	ClientRepo clientRepo.ClientRepository
	CaseRepo   caseRepo.CaseRepository
	Contracts  contract.GeneratorService
}

// NewBondHandler creates a new BondHandler instance.
func NewBondHandler(bonds bondRepo.BondRepository, clients clientRepo.ClientRepository, cases caseRepo.CaseRepository, contracts contract.GeneratorService) *BondHandler {
	return &BondHandler{
		BondRepo:   bonds,
		ClientRepo: clients,
		CaseRepo:   cases,
		Contracts:  contracts,
	}
}

// IssueBondHandler issues a bond against a case, generates the bail contract,
// and links the contract document to the bond.
func (h *BondHandler) IssueBondHandler(c *gin.Context) {
	logger := getLogger(c)

	var bond models.Bond
	if err := c.ShouldBindJSON(&bond); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if bond.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bond amount must be positive"})
		return
	}

	ctx := c.Request.Context()
	client, err := h.ClientRepo.GetByID(ctx, bond.ClientID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	cf, err := h.CaseRepo.GetByID(ctx, bond.CaseID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
		return
	}

	now := time.Now()
	bond.Status = models.BondStatusActive
	if bond.IssuedDate.IsZero() {
		bond.IssuedDate = now
	}
	bond.CreatedAt = now
	bond.UpdatedAt = now

	id, err := h.BondRepo.Create(ctx, bond)
	if err != nil {
		logger.Error("Failed to issue bond", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue bond"})
		return
	}
	bond.ID = id

	// Contract generation failing leaves the bond issued; it can be
	// regenerated from the contract endpoint.
	doc, err := h.Contracts.GenerateContract(ctx, bond, *client, *cf)
	if err != nil {
		logger.Error("Failed to generate contract", zap.String("bondID", bond.ID), zap.Error(err))
		c.JSON(http.StatusCreated, gin.H{"bond": bond, "warning": "Contract generation failed"})
		return
	}

	bond.ContractDocID = doc.ID
	bond.UpdatedAt = time.Now()
	if err := h.BondRepo.Update(ctx, bond); err != nil {
		logger.Error("Failed to link contract to bond", zap.String("bondID", bond.ID), zap.Error(err))
	}

	c.JSON(http.StatusCreated, gin.H{"bond": bond, "contract": doc})
}

// GetBondHandler returns a bond by ID.
func (h *BondHandler) GetBondHandler(c *gin.Context) {
	bond, err := h.BondRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bond not found"})
		return
	}
	c.JSON(http.StatusOK, bond)
}

// ListBondsHandler returns all bonds, or a client's bonds when the clientId
// query parameter is present.
func (h *BondHandler) ListBondsHandler(c *gin.Context) {
	logger := getLogger(c)

	var (
		bonds []models.Bond
		err   error
	)
	if clientID := c.Query("clientId"); clientID != "" {
		bonds, err = h.BondRepo.GetByClientID(c.Request.Context(), clientID)
	} else {
		bonds, err = h.BondRepo.List(c.Request.Context())
	}
	if err != nil {
		logger.Error("Failed to list bonds", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bonds"})
		return
	}
	c.JSON(http.StatusOK, bonds)
}

// UpdateBondStatusHandler transitions a bond's lifecycle status.
func (h *BondHandler) UpdateBondStatusHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}
	switch req.Status {
	case models.BondStatusActive, models.BondStatusExonerated, models.BondStatusForfeited:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown bond status: " + req.Status})
		return
	}

	id := c.Param("id")
	if err := h.BondRepo.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		logger.Error("Failed to update bond status", zap.String("bondID", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Bond not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bond status updated", "status": req.Status})
}
