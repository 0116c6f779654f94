package search

import (
	"fmt"
	"testing"

	"suretydesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefilterMatchesSubstringsCaseInsensitive(t *testing.T) {
	snap := models.RecordSnapshot{
		Clients: []models.Client{
			{ID: "c1", FirstName: "John", LastName: "Maldonado"},
			{ID: "c2", FirstName: "Maria", LastName: "Reyes"},
		},
		Cases: []models.CaseFile{
			{ID: "k1", CaseNumber: "CR-2024-001", CourtName: "Johnson County Court"},
		},
	}

	out := Prefilter("john", snap)

	require.Len(t, out.Clients, 1)
	assert.Equal(t, "c1", out.Clients[0].ID)
	// "john" is a substring of "Johnson County Court".
	require.Len(t, out.Cases, 1)
	assert.Equal(t, "k1", out.Cases[0].ID)
}

func TestPrefilterDropsShortTerms(t *testing.T) {
	snap := models.RecordSnapshot{
		Clients: []models.Client{{ID: "c1", FirstName: "Xy", Notes: "xy"}},
	}

	// Every term is under three characters, so the query is unusable and
	// nothing survives, even records that would match.
	out := Prefilter("xy ab", snap)
	assert.Zero(t, out.Total())
}

func TestPrefilterMixedTermLengths(t *testing.T) {
	snap := models.RecordSnapshot{
		Clients: []models.Client{{ID: "c1", LastName: "Reyes"}},
	}

	// The short term is dropped but the long one still matches.
	out := Prefilter("of reyes", snap)
	require.Len(t, out.Clients, 1)
}

func TestPrefilterCapsPerType(t *testing.T) {
	var snap models.RecordSnapshot
	for i := 0; i < 30; i++ {
		snap.Bonds = append(snap.Bonds, models.Bond{
			ID:         fmt.Sprintf("b%d", i),
			BondNumber: fmt.Sprintf("BND-%03d", i),
		})
	}

	out := Prefilter("bnd", snap)

	require.Len(t, out.Bonds, prefilterTypeCap)
	// Survivors keep input order.
	assert.Equal(t, "b0", out.Bonds[0].ID)
	assert.Equal(t, "b19", out.Bonds[19].ID)
}

func TestPrefilterNoMatches(t *testing.T) {
	snap := models.RecordSnapshot{
		Payments: []models.Payment{{ID: "p1", Method: "cash", Status: "paid"}},
	}

	out := Prefilter("zzzzz", snap)
	assert.Zero(t, out.Total())
}

func TestPrefilterSearchesDesignatedFieldsOnly(t *testing.T) {
	snap := models.RecordSnapshot{
		Clients: []models.Client{
			// Address is not a searchable field.
			{ID: "c1", FirstName: "Ana", Address: "742 Evergreen Terrace"},
		},
	}

	out := Prefilter("evergreen", snap)
	assert.Zero(t, out.Total())
}
