package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/GeorgePearse/portfolio/internal/core/domain"
	"github.com/GeorgePearse/portfolio/internal/core/ports/driven"
	"github.com/GeorgePearse/portfolio/internal/core/ports/driving"
)

// Deps carries the services the commands run against. Main assembles
// them once at startup; tests swap in mocks.
type Deps struct {
	// Portfolio owns the repository collection.
	Portfolio driving.PortfolioService

	// Metrics collects and exposes account metrics history.
	Metrics driving.MetricsService

	// Snapshots persists the offline cache artifact.
	Snapshots driven.SnapshotStore

	// Config is the persistent application configuration.
	Config driven.ConfigStore

	// Source lists repositories directly, bypassing the collection.
	Source driven.RepoSource

	// WatchSnapshots blocks watching the snapshot artifact, invoking
	// onChange for every rewrite. Optional; serve degrades without it.
	WatchSnapshots func(ctx context.Context, onChange func(*domain.Snapshot)) error
}

var (
	portfolioService driving.PortfolioService
	metricsService   driving.MetricsService
	snapshotStore    driven.SnapshotStore
	configStore      driven.ConfigStore
	repoSource       driven.RepoSource
	watchSnapshots   func(ctx context.Context, onChange func(*domain.Snapshot)) error
)

// SetDeps installs the services the command tree runs against.
func SetDeps(deps Deps) {
	portfolioService = deps.Portfolio
	metricsService = deps.Metrics
	snapshotStore = deps.Snapshots
	configStore = deps.Config
	repoSource = deps.Source
	watchSnapshots = deps.WatchSnapshots
}

// resolveQuery builds the fetch query from an optional positional
// username, inclusion flags and the stored configuration.
func resolveQuery(args []string, forks, archived bool) (domain.Query, error) {
	username := ""
	if len(args) > 0 {
		username = args[0]
	} else if configStore != nil {
		username = configStore.Username()
	}
	if username == "" {
		return domain.Query{}, errors.New("no username given: pass one as an argument or set it with 'portfolio auth login'")
	}

	query := domain.Query{
		Username:        username,
		IncludeForks:    forks,
		IncludeArchived: archived,
	}
	if configStore != nil {
		query.IncludeForks = query.IncludeForks || configStore.IncludeForks()
		query.IncludeArchived = query.IncludeArchived || configStore.IncludeArchived()
	}
	return query, nil
}

func requirePortfolio() error {
	if portfolioService == nil {
		return errors.New("portfolio service not configured")
	}
	return nil
}

// loadHint turns a failed fetch into actionable guidance.
func loadHint(err error) string {
	return fmt.Sprintf("%v\n\nCheck the username, your network connection, and GITHUB_TOKEN if the rate limit is exhausted.", err)
}
