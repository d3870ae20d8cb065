package cli

import (
	"github.com/spf13/cobra"

	"github.com/GeorgePearse/portfolio/internal/adapters/driving/tui"
)

var (
	browseForks    bool
	browseArchived bool
)

var browseCmd = &cobra.Command{
	Use:   "browse [username]",
	Short: "Browse the collection in an interactive terminal UI",
	Long: `Opens a terminal browser over the user's repositories with live
search, tag cycling and keyboard navigation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().BoolVar(&browseForks, "forks", false, "include forked repositories")
	browseCmd.Flags().BoolVar(&browseArchived, "archived", false, "include archived repositories")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if err := requirePortfolio(); err != nil {
		return err
	}

	query, err := resolveQuery(args, browseForks, browseArchived)
	if err != nil {
		return err
	}

	ports := &tui.Ports{Portfolio: portfolioService}
	return tui.Run(cmd.Context(), ports, query)
}
