package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GeorgePearse/portfolio/internal/core/domain"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the offline snapshot artifact",
	Long: `The snapshot is a JSON artifact holding the raw repository records
from one complete fetch cycle. It makes the collection available to
static site builds and serves as a fallback when the API is down.`,
}

var cachePrimeCmd = &cobra.Command{
	Use:   "prime [username]",
	Short: "Fetch the full listing and write the snapshot",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCachePrime,
}

func init() {
	cacheCmd.AddCommand(cachePrimeCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCachePrime(cmd *cobra.Command, args []string) error {
	if repoSource == nil {
		return errors.New("repo source not configured")
	}
	if snapshotStore == nil {
		return errors.New("snapshot store not configured")
	}

	query, err := resolveQuery(args, false, false)
	if err != nil {
		return err
	}

	raw, err := repoSource.ListRepos(cmd.Context(), query.Username)
	if err != nil {
		return errors.New(loadHint(err))
	}

	snap := domain.NewSnapshot(query.Username, raw)
	if err := snapshotStore.Write(cmd.Context(), snap); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	cmd.Printf("Snapshot of %d repositories written to %s\n",
		snap.RepositoryCount, snapshotStore.Path())
	return nil
}
