package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/GeorgePearse/portfolio/internal/core/domain"
	"github.com/GeorgePearse/portfolio/internal/core/ports/driven"
	"github.com/GeorgePearse/portfolio/internal/core/ports/driving"
	"github.com/GeorgePearse/portfolio/internal/logger"
)

// Ensure PortfolioService implements the interface.
var _ driving.PortfolioService = (*PortfolioService)(nil)

// PortfolioService owns one fetch cycle at a time and the collection
// it produces. All state is guarded by the mutex; results are
// attributed to requests through a generation counter, so a fetch
// superseded by a newer Load can never mutate state.
type PortfolioService struct {
	source driven.RepoSource

	mu    sync.RWMutex
	gen   uint64
	state domain.PortfolioState
}

// NewPortfolioService creates a portfolio service over a repo source.
func NewPortfolioService(source driven.RepoSource) *PortfolioService {
	return &PortfolioService{source: source}
}

// Load runs one fetch cycle for the query.
//
// The request captures the generation counter at start; when it
// resolves, the result is applied only if no newer Load has bumped
// the counter since. Superseded results, successes and failures
// alike, are discarded silently.
func (s *PortfolioService) Load(ctx context.Context, query domain.Query) error {
	if query.Username == "" {
		return domain.ErrUsernameRequired
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.state.Loading = true
	s.state.Err = ""
	s.state.Query = query
	s.mu.Unlock()

	logger.Section("Portfolio Load")
	logger.Debug("Fetching repositories for %q (forks=%v archived=%v)",
		query.Username, query.IncludeForks, query.IncludeArchived)

	raw, err := s.source.ListRepos(ctx, query.Username)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		// A newer Load owns the state now.
		logger.Debug("Discarding stale fetch result for %q", query.Username)
		return nil
	}

	s.state.Loading = false
	if err != nil {
		// Keep the previous collection; a transient failure must not
		// blank an earlier successful render.
		s.state.Err = fmt.Sprintf("fetch repositories for %s: %v", query.Username, err)
		return fmt.Errorf("fetch repositories for %s: %w", query.Username, err)
	}

	s.state.Repos = buildCollection(query, raw)
	logger.Info("Loaded %d repositories (%d before inclusion filters)", len(s.state.Repos), len(raw))
	return nil
}

// Replace swaps in a collection built from raw records without a
// fetch cycle. Used when serving from the offline snapshot artifact.
func (s *PortfolioService) Replace(query domain.Query, raw []domain.RawRepo) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.state.Loading = false
	s.state.Err = ""
	s.state.Query = query
	s.state.Repos = buildCollection(query, raw)
}

// State returns a copy of the current load state.
func (s *PortfolioService) State() domain.PortfolioState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := s.state
	state.Repos = make([]domain.Repo, len(s.state.Repos))
	copy(state.Repos, s.state.Repos)
	return state
}

// Repos returns the visible subset of the collection under the filter.
func (s *PortfolioService) Repos(filter domain.Filter) []domain.Repo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter.Apply(s.state.Repos)
}

// Tags returns the tag frequency table for the current collection.
func (s *PortfolioService) Tags() []domain.TagMeta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.AggregateTags(s.state.Repos)
}

// buildCollection applies inclusion filters, normalises and sorts raw
// records into a collection.
func buildCollection(query domain.Query, raw []domain.RawRepo) []domain.Repo {
	kept := query.ApplyInclusion(raw)
	repos := make([]domain.Repo, 0, len(kept))
	for _, r := range kept {
		repos = append(repos, domain.Normalize(r))
	}
	domain.SortByRecency(repos)
	return repos
}
