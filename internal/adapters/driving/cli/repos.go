package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GeorgePearse/portfolio/internal/core/domain"
)

var (
	reposTag      string
	reposSearch   string
	reposForks    bool
	reposArchived bool
	reposJSON     bool
)

var reposCmd = &cobra.Command{
	Use:   "repos [username]",
	Short: "List a user's repositories, newest activity first",
	Long: `Fetches the user's public repositories, normalises them and prints
the collection sorted by last update.

Forks and archived repositories are excluded unless opted in. The
username falls back to the configured default when omitted.

Examples:
  portfolio repos octocat
  portfolio repos octocat --tag ml --search vision
  portfolio repos --forks --archived --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRepos,
}

func init() {
	reposCmd.Flags().StringVarP(&reposTag, "tag", "t", "", "only show repos carrying this tag")
	reposCmd.Flags().StringVarP(&reposSearch, "search", "s", "", "substring match on name, description and tags")
	reposCmd.Flags().BoolVar(&reposForks, "forks", false, "include forked repositories")
	reposCmd.Flags().BoolVar(&reposArchived, "archived", false, "include archived repositories")
	reposCmd.Flags().BoolVar(&reposJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(reposCmd)
}

func runRepos(cmd *cobra.Command, args []string) error {
	if err := requirePortfolio(); err != nil {
		return err
	}

	query, err := resolveQuery(args, reposForks, reposArchived)
	if err != nil {
		return err
	}

	if err := portfolioService.Load(cmd.Context(), query); err != nil {
		return errors.New(loadHint(err))
	}

	repos := portfolioService.Repos(domain.Filter{Tag: reposTag, Query: reposSearch})

	if reposJSON {
		return outputJSON(cmd, repos)
	}
	return outputReposTable(cmd, repos)
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputReposTable(cmd *cobra.Command, repos []domain.Repo) error {
	if len(repos) == 0 {
		cmd.Println("No repositories match.")
		return nil
	}

	for i := range repos {
		r := &repos[i]
		cmd.Printf("%-32s ★ %-6d %-12s %s\n", r.Name, r.Stars,
			orDash(r.Language), r.UpdatedAt.Format("2006-01-02"))
		if r.Description != "" {
			cmd.Printf("    %s\n", r.Description)
		}
		if len(r.AllTags) > 0 {
			cmd.Printf("    #%s\n", strings.Join(r.AllTags, " #"))
		}
	}
	cmd.Printf("\n%d repositories\n", len(repos))
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
