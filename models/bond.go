package models

import "time"

// Bond status values.
const (
	BondStatusActive     = "active"
	BondStatusExonerated = "exonerated"
	BondStatusForfeited  = "forfeited"
)

// Bond is a surety bond issued against a case.
type Bond struct {
	ID            string    `bson:"id" json:"id"`
	CaseID        string    `bson:"caseId" json:"caseId"`
	ClientID      string    `bson:"clientId" json:"clientId"`
	BondNumber    string    `bson:"bondNumber" json:"bondNumber"`
	Amount        float64   `bson:"amount" json:"amount"`   // full bond amount
	Premium       float64   `bson:"premium" json:"premium"` // fee owed to the agency
	Status        string    `bson:"status" json:"status"`
	IssuedDate    time.Time `bson:"issuedDate" json:"issuedDate"`
	Collateral    string    `bson:"collateral" json:"collateral,omitempty"`
	ContractDocID string    `bson:"contractDocId" json:"contractDocId,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}
