package models

import "time"

// Document categories.
const (
	DocCategoryContract     = "contract"
	DocCategoryGovernmentID = "government-id"
	DocCategoryCourtOrder   = "court-order"
	DocCategoryReceipt      = "receipt"
	DocCategoryOther        = "other"
)

// Document is metadata for a stored file; the bytes live in Cloudinary.
type Document struct {
	ID          string    `bson:"id" json:"id"`
	ClientID    string    `bson:"clientId" json:"clientId,omitempty"`
	CaseID      string    `bson:"caseId" json:"caseId,omitempty"`
	FileName    string    `bson:"fileName" json:"fileName"`
	Category    string    `bson:"category" json:"category"`
	ContentType string    `bson:"contentType" json:"contentType,omitempty"`
	StorageID   string    `bson:"storageId" json:"storageId"`
	Encrypted   bool      `bson:"encrypted" json:"encrypted"`
	UploadedAt  time.Time `bson:"uploadedAt" json:"uploadedAt"`
}
