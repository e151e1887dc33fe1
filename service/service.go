package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/scoutbase/founderrag/core"
	"github.com/scoutbase/founderrag/corpus"
	"github.com/scoutbase/founderrag/explain"
	"github.com/scoutbase/founderrag/index"
	"github.com/scoutbase/founderrag/match"
	"github.com/scoutbase/founderrag/stats"
)

// MaxLimit caps how many results a single search may request.
const MaxLimit = 20

// Service orchestrates retrieval over the founder corpus: vector search,
// field attribution, explanation generation, and statistics. It is the only
// component invoked by external callers and is safe for concurrent use once
// initialization has completed.
type Service struct {
	store     *corpus.Store
	index     *index.Index
	generator *explain.Generator
	logger    *slog.Logger
}

// Option configures a Service.
type Option func(*Service) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// New creates a retrieval service over an already-loaded corpus and index.
func New(store *corpus.Store, idx *index.Index, generator *explain.Generator, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, ErrCorpusRequired
	}
	if idx == nil {
		return nil, ErrIndexRequired
	}
	if generator == nil {
		return nil, ErrGeneratorRequired
	}

	s := &Service{
		store:     store,
		index:     idx,
		generator: generator,
		logger:    slog.Default().With("component", "service"),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// IsReady reports whether both the corpus and the embedding index
// initialized successfully. A service that is not ready stays that way for
// the process lifetime; callers should surface it as unavailable.
func (s *Service) IsReady() bool {
	return s.store.Loaded() && s.index.Built()
}

// Readiness details the initialization state for health reporting.
type Readiness struct {
	DatasetLoaded bool `json:"datasetLoaded"`
	IndexBuilt    bool `json:"indexBuilt"`
	Generative    bool `json:"generative"` // generative explanation path configured
	TotalFounders int  `json:"totalFounders"`
}

// Ready returns the detailed readiness state polled by health checks.
func (s *Service) Ready() Readiness {
	return Readiness{
		DatasetLoaded: s.store.Loaded(),
		IndexBuilt:    s.index.Built(),
		Generative:    s.generator.Generative(),
		TotalFounders: s.store.Size(),
	}
}

// Search finds the founders most similar to the query and assembles scored,
// explained results in index order. The query must be non-empty; the limit
// is clamped to [1, MaxLimit].
//
// Per-query failures (query embedding errors) degrade to an empty result
// set rather than propagating; they are logged.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]*core.SearchResult, error) {
	return s.SearchWithMonitor(ctx, query, limit, nil)
}

// SearchWithMonitor is Search with observation hooks for each pipeline stage.
func (s *Service) SearchWithMonitor(ctx context.Context, query string, limit int, monitor SearchMonitor) ([]*core.SearchResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	if limit < 1 {
		limit = 1
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	monitor.Start(query, limit)

	candidates, err := s.index.Search(ctx, query, limit)
	if err != nil {
		// A failed query embedding degrades to no results; the caller's
		// request still succeeds.
		s.logger.Error("error searching index", "query", query, "err", err)
		return []*core.SearchResult{}, nil
	}
	monitor.AfterVectorSearch(candidates)

	results := make([]*core.SearchResult, 0, len(candidates))
	for _, cand := range candidates {
		rec, ok := s.store.GetByRow(cand.Row)
		if !ok {
			s.logger.Warn("candidate row out of range", "row", cand.Row)
			continue
		}

		result := &core.SearchResult{
			ID:            rec.ID,
			Name:          rec.Name,
			Role:          rec.Role,
			Company:       rec.Company,
			Location:      rec.Location,
			Explanation:   s.generator.Explain(ctx, query, rec, cand.Row),
			Score:         cand.Score,
			MatchedFields: match.Fields(query, rec),
			RowIndex:      cand.Row,
		}
		monitor.ResultAssembled(result)
		results = append(results, result)
	}

	monitor.Finish(results)
	return results, nil
}

// GetFounder returns the full record for an id, or core.ErrNotFound.
// A found record is always complete, never partial.
func (s *Service) GetFounder(id string) (*core.Record, error) {
	rec, ok := s.store.GetByID(id)
	if !ok {
		return nil, core.ErrNotFound
	}
	return rec, nil
}

// Stats computes a fresh statistics snapshot over the corpus, or returns
// ErrDatasetNotLoaded when the corpus never loaded.
func (s *Service) Stats() (*stats.Snapshot, error) {
	if !s.store.Loaded() {
		return nil, ErrDatasetNotLoaded
	}
	return stats.Compute(s.store), nil
}
