package main

import (
	"fmt"
	"os"

	"github.com/GeorgePearse/portfolio/internal/adapters/driven/auth"
	cachefile "github.com/GeorgePearse/portfolio/internal/adapters/driven/cache/file"
	configfile "github.com/GeorgePearse/portfolio/internal/adapters/driven/config/file"
	"github.com/GeorgePearse/portfolio/internal/adapters/driven/storage/sqlite"
	"github.com/GeorgePearse/portfolio/internal/adapters/driving/cli"
	"github.com/GeorgePearse/portfolio/internal/connectors/github"
	"github.com/GeorgePearse/portfolio/internal/core/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	snapshots, err := cachefile.NewSnapshotStore("")
	if err != nil {
		return fmt.Errorf("opening snapshot store: %w", err)
	}

	metricsStore, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening metrics store: %w", err)
	}
	defer metricsStore.Close()

	tokens := auth.NewChainTokenProvider(
		auth.NewEnvTokenProvider(),
		auth.NewConfigTokenProvider(configStore),
	)
	source := github.NewClient(tokens)

	cli.SetDeps(cli.Deps{
		Portfolio:      services.NewPortfolioService(source),
		Metrics:        services.NewMetricsService(source, metricsStore),
		Snapshots:      snapshots,
		Config:         configStore,
		Source:         source,
		WatchSnapshots: snapshots.Watch,
	})

	return cli.Execute()
}
