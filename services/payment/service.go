// File: services/payment/service.go
package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	bondRepo "suretydesk/database/repository/bond"
	paymentRepo "suretydesk/database/repository/payment"
	"suretydesk/models"
	"suretydesk/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentService records premium payments against bonds.
type PaymentService interface {
	RecordPayment(ctx context.Context, req models.PaymentRequest) (*models.Payment, error)
	GetPayment(ctx context.Context, id string) (*models.Payment, error)
	PaymentsForBond(ctx context.Context, bondID string) ([]models.Payment, error)
	MarkPaid(ctx context.Context, id string) error
}

// DefaultPaymentService is the production implementation of PaymentService.
type DefaultPaymentService struct {
	PaymentRepo paymentRepo.PaymentRepository
	BondRepo    bondRepo.BondRepository
}

// RecordPayment validates the request and records the payment.
// Cash payments are recorded as paid immediately. Card payments create a
// Stripe PaymentIntent and stay pending until confirmation.
func (s *DefaultPaymentService) RecordPayment(ctx context.Context, req models.PaymentRequest) (*models.Payment, error) {
	logger := utils.GetLogger().With(zap.String("bondID", req.BondID))

	if req.Amount <= 0 {
		return nil, errors.New("payment amount must be positive")
	}
	if req.Method != "cash" && req.Method != "card" {
		return nil, fmt.Errorf("unsupported payment method: %s", req.Method)
	}
	if req.Currency == "" {
		req.Currency = "usd"
	}

	bond, err := s.BondRepo.GetByID(ctx, req.BondID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bond: %w", err)
	}

	now := time.Now()
	pay := models.Payment{
		BondID:    bond.ID,
		ClientID:  req.ClientID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Reference: req.Reference,
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch req.Method {
	case "cash":
		pay.Status = "paid"
		pay.PaidAt = now
	case "card":
		intent, err := createCardIntent(req)
		if err != nil {
			logger.Error("Failed to create payment intent", zap.Error(err))
			return nil, fmt.Errorf("failed to create payment intent: %w", err)
		}
		pay.Status = "pending"
		pay.StripeIntentID = intent.ID
	}

	id, err := s.PaymentRepo.Create(ctx, pay)
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	pay.ID = id

	logger.Info("Payment recorded",
		zap.String("paymentID", pay.ID),
		zap.String("method", pay.Method),
		zap.Float64("amount", pay.Amount))
	return &pay, nil
}

// createCardIntent creates a Stripe PaymentIntent for the premium amount.
// Stripe amounts are in the smallest currency unit.
func createCardIntent(req models.PaymentRequest) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(req.Amount * 100)),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("bondId", req.BondID)
	params.AddMetadata("clientId", req.ClientID)
	return paymentintent.New(params)
}

// GetPayment returns a payment by ID.
func (s *DefaultPaymentService) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	return s.PaymentRepo.GetByID(ctx, id)
}

// PaymentsForBond lists payments recorded against a bond.
func (s *DefaultPaymentService) PaymentsForBond(ctx context.Context, bondID string) ([]models.Payment, error) {
	return s.PaymentRepo.GetByBondID(ctx, bondID)
}

// MarkPaid transitions a pending payment to paid.
func (s *DefaultPaymentService) MarkPaid(ctx context.Context, id string) error {
	pay, err := s.PaymentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if pay.Status == "paid" {
		return nil
	}
	return s.PaymentRepo.UpdateStatus(ctx, id, "paid")
}
