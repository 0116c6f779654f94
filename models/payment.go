package models

import "time"

// PaymentRequest is the input for recording a premium payment.
type PaymentRequest struct {
	BondID    string  `json:"bondId"`
	ClientID  string  `json:"clientId"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"` // "cash" or "card"
	Currency  string  `json:"currency"`
	Reference string  `json:"reference,omitempty"`
}

// Payment is a recorded premium payment against a bond.
type Payment struct {
	ID             string    `bson:"id" json:"id"`
	BondID         string    `bson:"bondId" json:"bondId"`
	ClientID       string    `bson:"clientId" json:"clientId"`
	Amount         float64   `bson:"amount" json:"amount"`
	Currency       string    `bson:"currency" json:"currency"`
	Method         string    `bson:"method" json:"method"`
	Status         string    `bson:"status" json:"status"` // "pending" or "paid"
	Reference      string    `bson:"reference" json:"reference,omitempty"`
	StripeIntentID string    `bson:"stripeIntentId" json:"stripeIntentId,omitempty"`
	PaidAt         time.Time `bson:"paidAt" json:"paidAt,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}
