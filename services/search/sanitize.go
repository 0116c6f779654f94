package search

import (
	"math"
	"path/filepath"
	"strings"
	"time"

	"suretydesk/models"
)

// fileNamePlaceholder replaces document file extensions before transmission.
const fileNamePlaceholder = ".file"

// Amount rounding steps.
const (
	bondAmountStep    = 1000
	paymentAmountStep = 100
)

// Sanitize projects the candidate set into coarse-grained records safe to send
// to the ranking backend. It is a pure function over a fixed per-type schema:
// the input is never mutated, no field outside the schema is emitted, and
// absent optional values map to zero values rather than failing.
func Sanitize(snap models.RecordSnapshot) models.SanitizedSnapshot {
	out := models.SanitizedSnapshot{
		Clients:   make([]models.SanitizedClient, 0, len(snap.Clients)),
		Cases:     make([]models.SanitizedCase, 0, len(snap.Cases)),
		Bonds:     make([]models.SanitizedBond, 0, len(snap.Bonds)),
		Payments:  make([]models.SanitizedPayment, 0, len(snap.Payments)),
		Documents: make([]models.SanitizedDocument, 0, len(snap.Documents)),
	}

	for _, c := range snap.Clients {
		out.Clients = append(out.Clients, models.SanitizedClient{
			ID:        c.ID,
			Initials:  initials(c.FirstName, c.LastName),
			BirthYear: yearOf(c.DateOfBirth),
			Language:  c.Language,
		})
	}
	for _, cf := range snap.Cases {
		out.Cases = append(out.Cases, models.SanitizedCase{
			ID:         cf.ID,
			Status:     cf.Status,
			County:     cf.County,
			CourtMonth: monthOf(cf.CourtDate),
		})
	}
	for _, b := range snap.Bonds {
		out.Bonds = append(out.Bonds, models.SanitizedBond{
			ID:          b.ID,
			Status:      b.Status,
			Amount:      roundTo(b.Amount, bondAmountStep),
			IssuedMonth: monthOf(b.IssuedDate),
		})
	}
	for _, p := range snap.Payments {
		out.Payments = append(out.Payments, models.SanitizedPayment{
			ID:     p.ID,
			Method: p.Method,
			Amount: roundTo(p.Amount, paymentAmountStep),
			Month:  monthOf(p.PaidAt),
		})
	}
	for _, d := range snap.Documents {
		out.Documents = append(out.Documents, models.SanitizedDocument{
			ID:          d.ID,
			Category:    d.Category,
			FileName:    maskExtension(d.FileName),
			UploadMonth: monthOf(d.UploadedAt),
		})
	}
	return out
}

// initials reduces a name to "F.L." form; missing parts are skipped.
func initials(first, last string) string {
	var sb strings.Builder
	for _, name := range []string{first, last} {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(name[:1]))
		sb.WriteString(".")
	}
	return sb.String()
}

func yearOf(t time.Time) int {
	if t.IsZero() {
		return 0
	}
	return t.Year()
}

func monthOf(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01")
}

// roundTo rounds amount to the nearest multiple of step.
func roundTo(amount, step float64) float64 {
	return math.Round(amount/step) * step
}

// maskExtension replaces a file name's extension with the placeholder.
func maskExtension(name string) string {
	if name == "" {
		return ""
	}
	return strings.TrimSuffix(name, filepath.Ext(name)) + fileNamePlaceholder
}
