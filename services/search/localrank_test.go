package search

import (
	"fmt"
	"testing"

	"suretydesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalRankScoresByTermFraction(t *testing.T) {
	snap := models.RecordSnapshot{
		Clients: []models.Client{
			{ID: "c1", FirstName: "John", LastName: "Maldonado"},
			{ID: "c2", FirstName: "John", Notes: "missed court"},
		},
	}

	results := LocalRank("john court", snap)

	require.Len(t, results, 2)
	// c2 matches both terms, c1 only one.
	assert.Equal(t, "c2", results[0].RecordID)
	assert.Equal(t, float64(1), results[0].RelevanceScore)
	assert.Equal(t, "c1", results[1].RecordID)
	assert.Equal(t, 0.5, results[1].RelevanceScore)
}

func TestLocalRankAcceptsTwoCharTerms(t *testing.T) {
	snap := models.RecordSnapshot{
		Cases: []models.CaseFile{{ID: "k1", CaseNumber: "CR-2024-001"}},
	}

	results := LocalRank("cr", snap)
	require.Len(t, results, 1)
	assert.Equal(t, "k1", results[0].RecordID)
}

func TestLocalRankDropsSingleCharTerms(t *testing.T) {
	snap := models.RecordSnapshot{
		Cases: []models.CaseFile{{ID: "k1", CaseNumber: "CR-2024-001"}},
	}

	assert.Empty(t, LocalRank("c r 1", snap))
}

func TestLocalRankExcludesZeroScores(t *testing.T) {
	snap := models.RecordSnapshot{
		Clients: []models.Client{
			{ID: "c1", FirstName: "John"},
			{ID: "c2", FirstName: "Maria"},
		},
	}

	results := LocalRank("john", snap)
	require.Len(t, results, 1)
	assert.Equal(t, "c1", results[0].RecordID)
}

func TestLocalRankCapsAtTen(t *testing.T) {
	var snap models.RecordSnapshot
	for i := 0; i < 25; i++ {
		snap.Payments = append(snap.Payments, models.Payment{
			ID:     fmt.Sprintf("p%d", i),
			Method: "cash",
		})
	}

	results := LocalRank("cash", snap)

	require.Len(t, results, localRankLimit)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].RelevanceScore, results[i].RelevanceScore)
	}
}

func TestLocalRankTiesKeepTypeOrder(t *testing.T) {
	snap := models.RecordSnapshot{
		Clients: []models.Client{{ID: "c1", Notes: "premium due"}},
		Bonds:   []models.Bond{{ID: "b1", Collateral: "premium vehicle"}},
		Payments: []models.Payment{
			{ID: "p1", Reference: "premium-jan"},
			{ID: "p2", Reference: "premium-feb"},
		},
	}

	results := LocalRank("premium", snap)

	require.Len(t, results, 4)
	assert.Equal(t, []string{"c1", "b1", "p1", "p2"}, []string{
		results[0].RecordID, results[1].RecordID, results[2].RecordID, results[3].RecordID,
	})
}

func TestLocalRankResultShape(t *testing.T) {
	snap := models.RecordSnapshot{
		Bonds: []models.Bond{{
			ID:         "b1",
			BondNumber: "BND-042",
			Amount:     15000,
			Status:     models.BondStatusActive,
		}},
	}

	results := LocalRank("bnd", snap)

	require.Len(t, results, 1)
	assert.Equal(t, models.RecordTypeBond, results[0].RecordType)
	assert.Equal(t, "BND-042", results[0].Title)
	assert.Equal(t, "active bond · $15000", results[0].Description)
}
