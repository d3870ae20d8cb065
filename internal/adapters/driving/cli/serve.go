package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/GeorgePearse/portfolio/internal/adapters/driving/httpapi"
	"github.com/GeorgePearse/portfolio/internal/core/domain"
	"github.com/GeorgePearse/portfolio/internal/logger"
)

var (
	serveAddr     string
	serveForks    bool
	serveArchived bool
)

var serveCmd = &cobra.Command{
	Use:   "serve [username]",
	Short: "Serve the collection as a JSON API",
	Long: `Loads the user's repositories and serves them over HTTP for the
website frontend.

When the initial fetch fails, the offline snapshot is used instead so
the site stays up while GitHub is unreachable. The snapshot artifact
is watched and hot-reloaded on rewrite.

Endpoints:
  GET /api/repos?tag=&q=&forks=&archived=
  GET /api/tags
  GET /api/status`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8799", "listen address")
	serveCmd.Flags().BoolVar(&serveForks, "forks", false, "include forked repositories")
	serveCmd.Flags().BoolVar(&serveArchived, "archived", false, "include archived repositories")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := requirePortfolio(); err != nil {
		return err
	}

	query, err := resolveQuery(args, serveForks, serveArchived)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := portfolioService.Load(ctx, query); err != nil {
		logger.Warn("initial fetch failed: %v", err)
		if fallbackErr := loadFromSnapshot(query); fallbackErr != nil {
			return errors.Join(err, fallbackErr)
		}
		cmd.Println("Serving from offline snapshot.")
	}

	if watchSnapshots != nil {
		go func() {
			err := watchSnapshots(ctx, func(snap *domain.Snapshot) {
				logger.Info("snapshot rewritten, reloading %d repositories", snap.RepositoryCount)
				portfolioService.Replace(query, snap.Repositories)
			})
			if err != nil && ctx.Err() == nil {
				logger.Warn("snapshot watcher stopped: %v", err)
			}
		}()
	}

	cmd.Printf("Serving portfolio API on %s\n", serveAddr)
	return httpapi.NewServer(portfolioService).Run(ctx, serveAddr)
}

// loadFromSnapshot swaps the snapshot's records in as the collection.
func loadFromSnapshot(query domain.Query) error {
	if snapshotStore == nil {
		return errors.New("no snapshot store configured for fallback")
	}

	snap, err := snapshotStore.Read(context.Background())
	if err != nil {
		return err
	}

	portfolioService.Replace(query, snap.Repositories)
	return nil
}
