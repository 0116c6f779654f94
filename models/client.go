package models

import "time"

// Client is a bail-bond client on file with the agency.
type Client struct {
	ID               string    `bson:"id" json:"id"`
	FirstName        string    `bson:"firstName" json:"firstName"`
	LastName         string    `bson:"lastName" json:"lastName"`
	Email            string    `bson:"email" json:"email"`
	Phone            string    `bson:"phone" json:"phone"`
	Address          string    `bson:"address" json:"address"`
	DateOfBirth      time.Time `bson:"dateOfBirth" json:"dateOfBirth"`
	Language         string    `bson:"language" json:"language"` // "en" or "es"
	EmergencyContact string    `bson:"emergencyContact" json:"emergencyContact,omitempty"`
	Notes            string    `bson:"notes" json:"notes,omitempty"`

	// Notices shown in the client check-in portal (court-date reminders etc).
	Notices []PortalNotice `bson:"notices" json:"notices,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PortalNotice is a message surfaced to a client in the check-in portal.
type PortalNotice struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Body      string    `bson:"body" json:"body"`
	Read      bool      `bson:"read" json:"read"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
