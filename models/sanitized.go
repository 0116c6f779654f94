package models

// Sanitized projections of the five record types, safe to transmit to the
// ranking backend. Identifying fields are coarsened: initials instead of
// names, birth year instead of date of birth, month instead of exact date,
// amounts rounded to a bucket. Nothing here may re-identify a person tighter
// than category-level granularity.

type SanitizedClient struct {
	ID        string `json:"id"`
	Initials  string `json:"initials"`
	BirthYear int    `json:"birthYear,omitempty"`
	Language  string `json:"language,omitempty"`
}

type SanitizedCase struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	County     string `json:"county,omitempty"`
	CourtMonth string `json:"courtMonth,omitempty"`
}

type SanitizedBond struct {
	ID          string  `json:"id"`
	Status      string  `json:"status"`
	Amount      float64 `json:"amount"` // rounded to the nearest 1,000
	IssuedMonth string  `json:"issuedMonth,omitempty"`
}

type SanitizedPayment struct {
	ID     string  `json:"id"`
	Method string  `json:"method"`
	Amount float64 `json:"amount"` // rounded to the nearest 100
	Month  string  `json:"month,omitempty"`
}

type SanitizedDocument struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	FileName    string `json:"fileName"` // extension replaced with a placeholder
	UploadMonth string `json:"uploadMonth,omitempty"`
}

// SanitizedSnapshot is the sanitized candidate set sent to the ranking backend.
type SanitizedSnapshot struct {
	Clients   []SanitizedClient   `json:"clients"`
	Cases     []SanitizedCase     `json:"cases"`
	Bonds     []SanitizedBond     `json:"bonds"`
	Payments  []SanitizedPayment  `json:"payments"`
	Documents []SanitizedDocument `json:"documents"`
}
