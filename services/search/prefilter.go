package search

import (
	"strings"

	"suretydesk/models"
)

// Pipeline limits. Fixed by design, not configuration.
const (
	// prefilterMinTermLen: query terms shorter than this are noise and dropped.
	prefilterMinTermLen = 3
	// prefilterTypeCap bounds the surviving set per record type.
	prefilterTypeCap = 20
	// backendCandidateLimit: above this total, the ranking backend is skipped
	// entirely and the local ranker takes over.
	backendCandidateLimit = 50
)

// splitTerms lowercases the query and returns whitespace-delimited terms of at
// least minLen characters.
func splitTerms(query string, minLen int) []string {
	var terms []string
	for _, t := range strings.Fields(strings.ToLower(query)) {
		if len(t) >= minLen {
			terms = append(terms, t)
		}
	}
	return terms
}

// Prefilter cheaply narrows the snapshot before any heavier processing. A
// record survives if at least one term is a case-insensitive substring of one
// of its searchable fields; each type keeps at most prefilterTypeCap records
// in input order. A query with no usable terms yields an empty snapshot for
// every type: extremely short queries are too ambiguous to search.
func Prefilter(query string, snap models.RecordSnapshot) models.RecordSnapshot {
	terms := splitTerms(query, prefilterMinTermLen)
	if len(terms) == 0 {
		return models.RecordSnapshot{}
	}

	var out models.RecordSnapshot
	for _, c := range snap.Clients {
		if len(out.Clients) == prefilterTypeCap {
			break
		}
		if anyTermMatches(terms, clientFields(c)) {
			out.Clients = append(out.Clients, c)
		}
	}
	for _, cf := range snap.Cases {
		if len(out.Cases) == prefilterTypeCap {
			break
		}
		if anyTermMatches(terms, caseFields(cf)) {
			out.Cases = append(out.Cases, cf)
		}
	}
	for _, b := range snap.Bonds {
		if len(out.Bonds) == prefilterTypeCap {
			break
		}
		if anyTermMatches(terms, bondFields(b)) {
			out.Bonds = append(out.Bonds, b)
		}
	}
	for _, p := range snap.Payments {
		if len(out.Payments) == prefilterTypeCap {
			break
		}
		if anyTermMatches(terms, paymentFields(p)) {
			out.Payments = append(out.Payments, p)
		}
	}
	for _, d := range snap.Documents {
		if len(out.Documents) == prefilterTypeCap {
			break
		}
		if anyTermMatches(terms, documentFields(d)) {
			out.Documents = append(out.Documents, d)
		}
	}
	return out
}

func anyTermMatches(terms []string, fields []string) bool {
	for _, f := range fields {
		lower := strings.ToLower(f)
		for _, t := range terms {
			if strings.Contains(lower, t) {
				return true
			}
		}
	}
	return false
}

// Designated searchable fields per record type. Shared by the prefilter and
// the local ranker so both passes see the same text.

func clientFields(c models.Client) []string {
	return []string{c.FirstName, c.LastName, c.Email, c.Phone, c.Notes}
}

func caseFields(cf models.CaseFile) []string {
	return []string{cf.CaseNumber, cf.CourtName, cf.County, cf.Charges, cf.Status}
}

func bondFields(b models.Bond) []string {
	return []string{b.BondNumber, b.Status, b.Collateral}
}

func paymentFields(p models.Payment) []string {
	return []string{p.Method, p.Status, p.Reference}
}

func documentFields(d models.Document) []string {
	return []string{d.FileName, d.Category}
}
