package search

import (
	"context"
	"fmt"
	"sort"

	recordsRepo "suretydesk/database/repository/records"
	"suretydesk/models"
	ai "suretydesk/services/intelligence"
	"suretydesk/utils"

	"go.uber.org/zap"
)

// SearchService runs intelligent search over the agency's records.
type SearchService interface {
	Search(ctx context.Context, query, language string) ([]models.SearchResult, error)
}

// DefaultSearchService wires the pipeline to the record store and an injected
// ranking backend. A nil backend is valid: search then runs local-only.
type DefaultSearchService struct {
	Records recordsRepo.SnapshotRepository
	Backend ai.RankingBackend
}

// Search loads a fresh snapshot and ranks it against the query.
func (s *DefaultSearchService) Search(ctx context.Context, query, language string) ([]models.SearchResult, error) {
	snap, err := s.Records.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	return s.RankSnapshot(ctx, query, language, snap), nil
}

// RankSnapshot runs prefilter, size gate, then sanitize + backend or local rank
// over an in-memory snapshot. It always returns a (possibly empty) list; a
// failed or unusable backend reply degrades to the local ranker and is logged,
// never surfaced to the caller.
func (s *DefaultSearchService) RankSnapshot(ctx context.Context, query, language string, snap models.RecordSnapshot) []models.SearchResult {
	logger := utils.GetLogger()

	candidates := Prefilter(query, snap)
	total := candidates.Total()
	if total == 0 {
		return []models.SearchResult{}
	}

	// Hard cutoff: an oversized candidate set never engages the backend,
	// not even partially.
	if total > backendCandidateLimit || s.Backend == nil {
		return LocalRank(query, candidates)
	}

	resp, err := s.Backend.RankCandidates(ctx, ai.RankRequest{
		Query:      query,
		Language:   language,
		Candidates: Sanitize(candidates),
	})
	if err != nil {
		logger.Warn("Ranking backend unavailable, using local ranker", zap.Error(err))
		return LocalRank(query, candidates)
	}
	if len(resp.Results) == 0 {
		// Empty or undecodable reply; the local ranker is the safety net.
		return LocalRank(query, candidates)
	}

	results := resp.Results
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})
	return results
}
