package search

import (
	"fmt"
	"sort"
	"strings"

	"suretydesk/models"
)

const (
	// localRankMinTermLen: the fallback accepts shorter terms than the
	// prefilter on purpose; it is the more permissive of the two passes.
	localRankMinTermLen = 2
	// localRankLimit caps the fallback result list.
	localRankLimit = 10
)

// LocalRank is the deterministic in-process ranker used when the ranking
// backend is unavailable or the candidate set is too large to sanitize
// economically. Each record scores matchedTerms/totalTerms over its
// searchable fields; zero-score records are excluded. Ties keep per-type
// insertion order (clients, cases, bonds, payments, documents). Nothing here
// leaves the process.
func LocalRank(query string, snap models.RecordSnapshot) []models.SearchResult {
	terms := splitTerms(query, localRankMinTermLen)
	if len(terms) == 0 {
		return nil
	}

	score := func(fields []string) float64 {
		matched := 0
		for _, t := range terms {
			for _, f := range fields {
				if strings.Contains(strings.ToLower(f), t) {
					matched++
					break
				}
			}
		}
		return float64(matched) / float64(len(terms))
	}

	var results []models.SearchResult
	for _, c := range snap.Clients {
		if s := score(clientFields(c)); s > 0 {
			results = append(results, models.SearchResult{
				RecordType:     models.RecordTypeClient,
				RecordID:       c.ID,
				Title:          strings.TrimSpace(c.FirstName + " " + c.LastName),
				Description:    "Client file",
				RelevanceScore: s,
			})
		}
	}
	for _, cf := range snap.Cases {
		if s := score(caseFields(cf)); s > 0 {
			results = append(results, models.SearchResult{
				RecordType:     models.RecordTypeCase,
				RecordID:       cf.ID,
				Title:          cf.CaseNumber,
				Description:    strings.TrimSpace(cf.CourtName + " · " + cf.Status),
				RelevanceScore: s,
			})
		}
	}
	for _, b := range snap.Bonds {
		if s := score(bondFields(b)); s > 0 {
			results = append(results, models.SearchResult{
				RecordType:     models.RecordTypeBond,
				RecordID:       b.ID,
				Title:          b.BondNumber,
				Description:    fmt.Sprintf("%s bond · $%.0f", b.Status, b.Amount),
				RelevanceScore: s,
			})
		}
	}
	for _, p := range snap.Payments {
		if s := score(paymentFields(p)); s > 0 {
			results = append(results, models.SearchResult{
				RecordType:     models.RecordTypePayment,
				RecordID:       p.ID,
				Title:          fmt.Sprintf("Payment $%.2f", p.Amount),
				Description:    strings.TrimSpace(p.Method + " · " + p.Status),
				RelevanceScore: s,
			})
		}
	}
	for _, d := range snap.Documents {
		if s := score(documentFields(d)); s > 0 {
			results = append(results, models.SearchResult{
				RecordType:     models.RecordTypeDocument,
				RecordID:       d.ID,
				Title:          d.FileName,
				Description:    d.Category,
				RelevanceScore: s,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})
	if len(results) > localRankLimit {
		results = results[:localRankLimit]
	}
	return results
}
