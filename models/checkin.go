package models

import "time"

// CheckIn is one client check-in recorded through the portal.
type CheckIn struct {
	ID               string    `bson:"id" json:"id"`
	ClientID         string    `bson:"clientId" json:"clientId"`
	CheckedAt        time.Time `bson:"checkedAt" json:"checkedAt"`
	PhotoStorageID   string    `bson:"photoStorageId" json:"photoStorageId,omitempty"`
	PhotoVerified    bool      `bson:"photoVerified" json:"photoVerified"`
	VerificationNote string    `bson:"verificationNote" json:"verificationNote,omitempty"`
	IP               string    `bson:"ip" json:"-"`
}

// ReminderPayload is the asynq task payload for a scheduled court-date reminder.
type ReminderPayload struct {
	ClientID string `json:"clientId"`
	CaseID   string `json:"caseId"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	FireDate string `json:"fireDate"`
}
