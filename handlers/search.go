// File: handlers/search.go
package handlers

import (
	"net/http"
	"strings"

	"suretydesk/services/search"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchHandler exposes the intelligent record search endpoint.
type SearchHandler struct {
	SearchSvc search.SearchService
}

// NewSearchHandler creates a new SearchHandler instance.
func NewSearchHandler(svc search.SearchService) *SearchHandler {
	return &SearchHandler{SearchSvc: svc}
}

// SearchRecordsHandler runs a search over the agency's records.
func (h *SearchHandler) SearchRecordsHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Query    string `json:"query" binding:"required"`
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
		return
	}
	if req.Language != "es" {
		req.Language = "en"
	}

	results, err := h.SearchSvc.Search(c.Request.Context(), req.Query, req.Language)
	if err != nil {
		logger.Error("Search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
