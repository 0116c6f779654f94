package ai

import (
	"encoding/json"
	"strings"

	"suretydesk/models"
)

var knownRecordTypes = map[string]bool{
	models.RecordTypeClient:   true,
	models.RecordTypeCase:     true,
	models.RecordTypeBond:     true,
	models.RecordTypePayment:  true,
	models.RecordTypeDocument: true,
}

// decodeRankResults defensively parses a model reply. Any shape problem
// (not JSON, missing "results", unknown type, empty id) yields an empty
// result set rather than an error; a backend reply that cannot be decoded is
// treated as zero results. Scores are clamped to [0,1].
func decodeRankResults(raw string) []models.SearchResult {
	raw = stripCodeFences(strings.TrimSpace(raw))
	if raw == "" {
		return nil
	}

	var parsed struct {
		Results []struct {
			Type           string  `json:"type"`
			ID             string  `json:"id"`
			Title          string  `json:"title"`
			Description    string  `json:"description"`
			RelevanceScore float64 `json:"relevanceScore"`
		} `json:"results"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil
	}

	var results []models.SearchResult
	for _, r := range parsed.Results {
		if r.ID == "" || !knownRecordTypes[r.Type] {
			continue
		}
		results = append(results, models.SearchResult{
			RecordType:     r.Type,
			RecordID:       r.ID,
			Title:          r.Title,
			Description:    r.Description,
			RelevanceScore: clampScore(r.RelevanceScore),
		})
	}
	return results
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

// decodePhotoVerdict parses a photo classification reply. Garbage output maps
// to a rejection, not an error.
func decodePhotoVerdict(raw string) PhotoVerdict {
	raw = stripCodeFences(strings.TrimSpace(raw))
	var verdict PhotoVerdict
	if err := json.Unmarshal([]byte(raw), &verdict); err != nil {
		return PhotoVerdict{Acceptable: false, Label: "unreadable classification"}
	}
	return verdict
}

// stripCodeFences removes a surrounding markdown fence if the model added one
// despite the instruction.
func stripCodeFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
