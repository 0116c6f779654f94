// File: services/intelligence/interface.go
package ai

import (
	"context"

	"suretydesk/models"
)

// RankRequest carries the raw query and the sanitized, size-gated candidate
// set to a ranking backend. Only sanitized projections ever leave the process.
type RankRequest struct {
	Query      string                   `json:"query"`
	Language   string                   `json:"language"` // "en" or "es"
	Candidates models.SanitizedSnapshot `json:"candidates"`
}

// RankResponse is the backend's ranked result list. An empty list means the
// reply was empty or unusable; the caller decides what to do with that.
type RankResponse struct {
	Results []models.SearchResult `json:"results"`
}

// RankingBackend scores candidates by relevance to a query. Implementations
// make a single attempt per call; retry policy belongs to the caller.
type RankingBackend interface {
	RankCandidates(ctx context.Context, req RankRequest) (RankResponse, error)
}

// PhotoVerdict is the classification of a check-in selfie.
type PhotoVerdict struct {
	Acceptable bool   `json:"acceptable"`
	Label      string `json:"label"`
}

// PhotoVerifier classifies a check-in photo (is it a live selfie of one
// person, not a document scan or an empty frame).
type PhotoVerifier interface {
	VerifyCheckInPhoto(ctx context.Context, imageData []byte, mimeType string) (PhotoVerdict, error)
}
