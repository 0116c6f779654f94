package models

// Record types used in search results.
const (
	RecordTypeClient   = "client"
	RecordTypeCase     = "case"
	RecordTypeBond     = "bond"
	RecordTypePayment  = "payment"
	RecordTypeDocument = "document"
)

// RecordSnapshot bundles the five searchable record sets for one search call.
// Each call operates on its own snapshot; the pipeline never mutates it.
type RecordSnapshot struct {
	Clients   []Client
	Cases     []CaseFile
	Bonds     []Bond
	Payments  []Payment
	Documents []Document
}

// Total returns the candidate count across all five types.
func (s RecordSnapshot) Total() int {
	return len(s.Clients) + len(s.Cases) + len(s.Bonds) + len(s.Payments) + len(s.Documents)
}

// SearchResult is one ranked hit. Produced fresh per query, never persisted.
type SearchResult struct {
	RecordType     string  `json:"recordType"`
	RecordID       string  `json:"recordId"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	RelevanceScore float64 `json:"relevanceScore"`
}
