package search

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"suretydesk/models"
	ai "suretydesk/services/intelligence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBackend records calls and plays back a canned response.
type stubBackend struct {
	calls    int
	lastReq  ai.RankRequest
	response ai.RankResponse
	err      error
}

func (s *stubBackend) RankCandidates(ctx context.Context, req ai.RankRequest) (ai.RankResponse, error) {
	s.calls++
	s.lastReq = req
	return s.response, s.err
}

func smallSnapshot() models.RecordSnapshot {
	return models.RecordSnapshot{
		Clients: []models.Client{
			{ID: "c1", FirstName: "John", LastName: "Maldonado"},
		},
		Bonds: []models.Bond{
			{ID: "b1", BondNumber: "BND-JOHN-1", Amount: 10000, Status: models.BondStatusActive},
		},
	}
}

func TestRankSnapshotUsesBackendResults(t *testing.T) {
	backend := &stubBackend{
		response: ai.RankResponse{Results: []models.SearchResult{
			{RecordType: models.RecordTypeBond, RecordID: "b1", RelevanceScore: 0.4},
			{RecordType: models.RecordTypeClient, RecordID: "c1", RelevanceScore: 0.9},
		}},
	}
	svc := &DefaultSearchService{Backend: backend}

	results := svc.RankSnapshot(context.Background(), "john", "en", smallSnapshot())

	require.Len(t, results, 2)
	assert.Equal(t, 1, backend.calls)
	// Backend results come back sorted by score, descending.
	assert.Equal(t, "c1", results[0].RecordID)
	assert.Equal(t, "b1", results[1].RecordID)
}

func TestRankSnapshotSendsSanitizedCandidates(t *testing.T) {
	backend := &stubBackend{
		response: ai.RankResponse{Results: []models.SearchResult{
			{RecordType: models.RecordTypeClient, RecordID: "c1", RelevanceScore: 1},
		}},
	}
	svc := &DefaultSearchService{Backend: backend}

	svc.RankSnapshot(context.Background(), "john", "es", smallSnapshot())

	require.Equal(t, 1, backend.calls)
	assert.Equal(t, "es", backend.lastReq.Language)
	require.Len(t, backend.lastReq.Candidates.Clients, 1)
	// Only the sanitized projection crosses the boundary.
	assert.Equal(t, "J.M.", backend.lastReq.Candidates.Clients[0].Initials)
}

func TestRankSnapshotEmptyPrefilterSkipsBackend(t *testing.T) {
	backend := &stubBackend{}
	svc := &DefaultSearchService{Backend: backend}

	results := svc.RankSnapshot(context.Background(), "zzzzz", "en", smallSnapshot())

	assert.Empty(t, results)
	assert.Zero(t, backend.calls)
}

func TestRankSnapshotShortQuerySkipsBackend(t *testing.T) {
	backend := &stubBackend{}
	svc := &DefaultSearchService{Backend: backend}

	results := svc.RankSnapshot(context.Background(), "xy", "en", smallSnapshot())

	assert.Empty(t, results)
	assert.Zero(t, backend.calls)
}

func TestRankSnapshotSizeGateSkipsBackend(t *testing.T) {
	// Four types at the per-type cap give 80 survivors, well past the gate.
	var snap models.RecordSnapshot
	for i := 0; i < 20; i++ {
		snap.Clients = append(snap.Clients, models.Client{ID: fmt.Sprintf("c%d", i), Notes: "premium"})
		snap.Bonds = append(snap.Bonds, models.Bond{ID: fmt.Sprintf("b%d", i), Collateral: "premium"})
		snap.Payments = append(snap.Payments, models.Payment{ID: fmt.Sprintf("p%d", i), Reference: "premium"})
		snap.Documents = append(snap.Documents, models.Document{ID: fmt.Sprintf("d%d", i), FileName: "premium.pdf"})
	}

	backend := &stubBackend{}
	svc := &DefaultSearchService{Backend: backend}

	results := svc.RankSnapshot(context.Background(), "premium", "en", snap)

	// The backend is never engaged, not even partially.
	assert.Zero(t, backend.calls)
	require.Len(t, results, localRankLimit)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].RelevanceScore, results[i].RelevanceScore)
	}
}

func TestRankSnapshotBackendErrorFallsBack(t *testing.T) {
	backend := &stubBackend{err: errors.New("upstream timeout")}
	svc := &DefaultSearchService{Backend: backend}

	results := svc.RankSnapshot(context.Background(), "john", "en", smallSnapshot())

	assert.Equal(t, 1, backend.calls)
	require.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), localRankLimit)
	for _, r := range results {
		assert.Contains(t, []string{"c1", "b1"}, r.RecordID)
	}
}

func TestRankSnapshotEmptyBackendReplyFallsBack(t *testing.T) {
	// An undecodable reply surfaces as zero results; the local ranker is
	// the safety net either way.
	backend := &stubBackend{response: ai.RankResponse{}}
	svc := &DefaultSearchService{Backend: backend}

	results := svc.RankSnapshot(context.Background(), "john", "en", smallSnapshot())

	assert.Equal(t, 1, backend.calls)
	assert.NotEmpty(t, results)
}

func TestRankSnapshotNilBackendRunsLocal(t *testing.T) {
	svc := &DefaultSearchService{}

	results := svc.RankSnapshot(context.Background(), "john", "en", smallSnapshot())

	require.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), localRankLimit)
}

func TestRankSnapshotIsIdempotent(t *testing.T) {
	svc := &DefaultSearchService{}
	snap := smallSnapshot()

	first := svc.RankSnapshot(context.Background(), "john bnd", "en", snap)
	second := svc.RankSnapshot(context.Background(), "john bnd", "en", snap)

	assert.Equal(t, first, second)
}
