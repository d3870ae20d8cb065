// Package cli wires the cobra command tree for the portfolio binary.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/GeorgePearse/portfolio/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Browse and publish a GitHub project portfolio",
	Long: `portfolio turns a GitHub account's public repositories into a
curated project showcase: fetched, normalised, tagged and filterable.

The collection can be browsed interactively, served as a JSON API for
the website frontend, cached to an offline snapshot for builds, or
exposed to AI assistants over MCP.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
