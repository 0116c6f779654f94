package models

import "time"

// Case status values.
const (
	CaseStatusOpen    = "open"
	CaseStatusPending = "pending"
	CaseStatusClosed  = "closed"
)

// CaseFile tracks a client's court case.
type CaseFile struct {
	ID         string    `bson:"id" json:"id"`
	ClientID   string    `bson:"clientId" json:"clientId"`
	CaseNumber string    `bson:"caseNumber" json:"caseNumber"`
	CourtName  string    `bson:"courtName" json:"courtName"`
	County     string    `bson:"county" json:"county"`
	Charges    string    `bson:"charges" json:"charges"`
	Status     string    `bson:"status" json:"status"`
	CourtDate  time.Time `bson:"courtDate" json:"courtDate"`
	Notes      string    `bson:"notes" json:"notes,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
