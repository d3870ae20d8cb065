package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	tagsForks    bool
	tagsArchived bool
	tagsJSON     bool
)

var tagsCmd = &cobra.Command{
	Use:   "tags [username]",
	Short: "Show the tag frequency table for a user's repositories",
	Long: `Fetches the user's repositories and prints every topic tag with the
number of repositories carrying it, sorted by label.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTags,
}

func init() {
	tagsCmd.Flags().BoolVar(&tagsForks, "forks", false, "include forked repositories")
	tagsCmd.Flags().BoolVar(&tagsArchived, "archived", false, "include archived repositories")
	tagsCmd.Flags().BoolVar(&tagsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(tagsCmd)
}

func runTags(cmd *cobra.Command, args []string) error {
	if err := requirePortfolio(); err != nil {
		return err
	}

	query, err := resolveQuery(args, tagsForks, tagsArchived)
	if err != nil {
		return err
	}

	if err := portfolioService.Load(cmd.Context(), query); err != nil {
		return errors.New(loadHint(err))
	}

	tags := portfolioService.Tags()

	if tagsJSON {
		return outputJSON(cmd, tags)
	}

	if len(tags) == 0 {
		cmd.Println("No tags found.")
		return nil
	}
	for _, tag := range tags {
		cmd.Printf("%-30s %d\n", tag.Label, tag.Count)
	}
	return nil
}
