// File: handlers/payment.go
package handlers

import (
	"net/http"

	"suretydesk/models"
	"suretydesk/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes premium payment endpoints.
type PaymentHandler struct {
	PaymentSvc payment.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler instance.
func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{PaymentSvc: svc}
}

// RecordPaymentHandler records a cash payment or opens a card payment intent.
func (h *PaymentHandler) RecordPaymentHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	pay, err := h.PaymentSvc.RecordPayment(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to record payment", zap.String("bondID", req.BondID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, pay)
}

// GetPaymentHandler returns a payment by ID.
func (h *PaymentHandler) GetPaymentHandler(c *gin.Context) {
	pay, err := h.PaymentSvc.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}
	c.JSON(http.StatusOK, pay)
}

// ListBondPaymentsHandler lists payments recorded against a bond.
func (h *PaymentHandler) ListBondPaymentsHandler(c *gin.Context) {
	logger := getLogger(c)

	payments, err := h.PaymentSvc.PaymentsForBond(c.Request.Context(), c.Param("bondId"))
	if err != nil {
		logger.Error("Failed to list payments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

// MarkPaymentPaidHandler confirms a pending card payment.
func (h *PaymentHandler) MarkPaymentPaidHandler(c *gin.Context) {
	logger := getLogger(c)

	id := c.Param("id")
	if err := h.PaymentSvc.MarkPaid(c.Request.Context(), id); err != nil {
		logger.Error("Failed to mark payment paid", zap.String("paymentID", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment marked paid"})
}
