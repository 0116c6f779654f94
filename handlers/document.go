// File: handlers/document.go
package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"suretydesk/config"
	documentRepo "suretydesk/database/repository/document"
	"suretydesk/models"
	"suretydesk/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DocumentHandler exposes document upload and retrieval endpoints.
type DocumentHandler struct {
	Repo       documentRepo.DocumentRepository
	StorageSvc storage.StorageService
}

// NewDocumentHandler creates a new DocumentHandler instance.
func NewDocumentHandler(repo documentRepo.DocumentRepository, svc storage.StorageService) *DocumentHandler {
	return &DocumentHandler{Repo: repo, StorageSvc: svc}
}

// allowedCategories defines the permitted document categories.
var allowedCategories = map[string]bool{
	models.DocCategoryContract:     true,
	models.DocCategoryGovernmentID: true,
	models.DocCategoryCourtOrder:   true,
	models.DocCategoryReceipt:      true,
	models.DocCategoryOther:        true,
}

// UploadDocumentHandler stores a file and records its metadata. Government-ID
// uploads are encrypted before leaving the process.
func (h *DocumentHandler) UploadDocumentHandler(c *gin.Context) {
	logger := getLogger(c)

	category := c.PostForm("category")
	if !allowedCategories[category] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown document category"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	ctx := c.Request.Context()
	destFolder := "documents/" + category

	var storageID string
	encrypted := category == models.DocCategoryGovernmentID
	if encrypted {
		storageID, err = h.StorageSvc.UploadEncryptedFile(ctx, tempFilePath, destFolder, config.AppConfig.DocumentEncryptionKey)
	} else {
		storageID, err = h.StorageSvc.UploadFile(ctx, tempFilePath, destFolder)
	}
	if err != nil {
		logger.Error("Failed to upload document", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload document"})
		return
	}

	doc := models.Document{
		ClientID:    c.PostForm("clientId"),
		CaseID:      c.PostForm("caseId"),
		FileName:    fileHeader.Filename,
		Category:    category,
		ContentType: fileHeader.Header.Get("Content-Type"),
		StorageID:   storageID,
		Encrypted:   encrypted,
		UploadedAt:  time.Now(),
	}
	id, err := h.Repo.Create(ctx, doc)
	if err != nil {
		logger.Error("Failed to record document", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record document"})
		return
	}
	doc.ID = id

	c.JSON(http.StatusCreated, doc)
}

// GetDocumentURLHandler returns a short-lived download URL for a document.
// Encrypted documents always get a signed URL.
func (h *DocumentHandler) GetDocumentURLHandler(c *gin.Context) {
	logger := getLogger(c)

	doc, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	var url string
	if doc.Encrypted {
		url, err = h.StorageSvc.GetSecureDownloadURL(c.Request.Context(), "raw", doc.StorageID, 15*time.Minute)
	} else {
		url, err = h.StorageSvc.GetDownloadURL(c.Request.Context(), "raw", doc.StorageID, 0)
	}
	if err != nil {
		logger.Error("Failed to build download URL", zap.String("documentID", doc.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build download URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "fileName": doc.FileName})
}

// ListDocumentsHandler returns all documents, or a client's documents when
// the clientId query parameter is present.
func (h *DocumentHandler) ListDocumentsHandler(c *gin.Context) {
	logger := getLogger(c)

	var (
		docs []models.Document
		err  error
	)
	if clientID := c.Query("clientId"); clientID != "" {
		docs, err = h.Repo.GetByClientID(c.Request.Context(), clientID)
	} else {
		docs, err = h.Repo.List(c.Request.Context())
	}
	if err != nil {
		logger.Error("Failed to list documents", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list documents"})
		return
	}
	c.JSON(http.StatusOK, docs)
}

// DeleteDocumentHandler removes a document and its stored file.
func (h *DocumentHandler) DeleteDocumentHandler(c *gin.Context) {
	logger := getLogger(c)

	ctx := c.Request.Context()
	doc, err := h.Repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	if err := h.StorageSvc.DeleteFile(ctx, doc.StorageID); err != nil {
		logger.Warn("Failed to delete stored file", zap.String("documentID", doc.ID), zap.Error(err))
	}
	if err := h.Repo.DeleteByID(ctx, doc.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}
