package search

import (
	"testing"
	"time"

	"suretydesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeClient(t *testing.T) {
	snap := models.RecordSnapshot{
		Clients: []models.Client{{
			ID:          "c1",
			FirstName:   "John",
			LastName:    "Maldonado",
			Email:       "john@example.com",
			Phone:       "555-0100",
			DateOfBirth: time.Date(1988, 4, 12, 0, 0, 0, 0, time.UTC),
			Language:    "es",
		}},
	}

	out := Sanitize(snap)

	require.Len(t, out.Clients, 1)
	c := out.Clients[0]
	assert.Equal(t, "c1", c.ID)
	assert.Equal(t, "J.M.", c.Initials)
	assert.Equal(t, 1988, c.BirthYear)
	assert.Equal(t, "es", c.Language)
}

func TestSanitizeClientMissingName(t *testing.T) {
	snap := models.RecordSnapshot{
		Clients: []models.Client{{ID: "c1", FirstName: "Ana"}},
	}

	out := Sanitize(snap)
	assert.Equal(t, "A.", out.Clients[0].Initials)
}

func TestSanitizeBondRoundsAmount(t *testing.T) {
	snap := models.RecordSnapshot{
		Bonds: []models.Bond{{
			ID:         "b1",
			Amount:     12400,
			Status:     models.BondStatusActive,
			IssuedDate: time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
		}},
	}

	out := Sanitize(snap)

	require.Len(t, out.Bonds, 1)
	assert.Equal(t, float64(12000), out.Bonds[0].Amount)
	assert.Equal(t, "2025-11", out.Bonds[0].IssuedMonth)
}

func TestSanitizePaymentRoundsAmount(t *testing.T) {
	snap := models.RecordSnapshot{
		Payments: []models.Payment{{
			ID:     "p1",
			Amount: 1250,
			Method: "card",
		}},
	}

	out := Sanitize(snap)

	require.Len(t, out.Payments, 1)
	// 1250 rounds to the nearest hundred, half away from zero.
	assert.Equal(t, float64(1300), out.Payments[0].Amount)
	// Zero PaidAt maps to an empty month, not a 0001-01 artifact.
	assert.Equal(t, "", out.Payments[0].Month)
}

func TestSanitizeDocumentMasksExtension(t *testing.T) {
	snap := models.RecordSnapshot{
		Documents: []models.Document{{
			ID:       "d1",
			FileName: "drivers-license-front.jpg",
			Category: models.DocCategoryGovernmentID,
		}},
	}

	out := Sanitize(snap)

	require.Len(t, out.Documents, 1)
	assert.Equal(t, "drivers-license-front.file", out.Documents[0].FileName)
}

func TestSanitizeDoesNotMutateInput(t *testing.T) {
	snap := models.RecordSnapshot{
		Clients: []models.Client{{ID: "c1", FirstName: "John", LastName: "Doe"}},
		Bonds:   []models.Bond{{ID: "b1", Amount: 7500}},
	}

	Sanitize(snap)

	assert.Equal(t, "John", snap.Clients[0].FirstName)
	assert.Equal(t, float64(7500), snap.Bonds[0].Amount)
}

func TestSanitizeIsDeterministic(t *testing.T) {
	snap := models.RecordSnapshot{
		Cases: []models.CaseFile{{
			ID:        "k1",
			Status:    models.CaseStatusOpen,
			County:    "Travis",
			CourtDate: time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC),
		}},
	}

	first := Sanitize(snap)
	second := Sanitize(snap)
	assert.Equal(t, first, second)
}
