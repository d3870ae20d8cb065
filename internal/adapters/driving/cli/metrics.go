package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	metricsJSON   bool
	metricsOutput string
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Track follower and star counts over time",
	Long: `Collects one observation per day of the account's follower count and
the total stars across its public repositories, stores the history
locally and exports it as CSV for plotting.`,
}

var metricsCollectCmd = &cobra.Command{
	Use:   "collect [username]",
	Short: "Take today's observation and store it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMetricsCollect,
}

var metricsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored history",
	RunE:  runMetricsShow,
}

var metricsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the history as CSV",
	RunE:  runMetricsExport,
}

func init() {
	metricsShowCmd.Flags().BoolVar(&metricsJSON, "json", false, "output as JSON")
	metricsExportCmd.Flags().StringVarP(&metricsOutput, "output", "o", "", "write to file instead of stdout")
	metricsCmd.AddCommand(metricsCollectCmd)
	metricsCmd.AddCommand(metricsShowCmd)
	metricsCmd.AddCommand(metricsExportCmd)
	rootCmd.AddCommand(metricsCmd)
}

func requireMetrics() error {
	if metricsService == nil {
		return errors.New("metrics service not configured")
	}
	return nil
}

func runMetricsCollect(cmd *cobra.Command, args []string) error {
	if err := requireMetrics(); err != nil {
		return err
	}

	query, err := resolveQuery(args, false, false)
	if err != nil {
		return err
	}

	rec, err := metricsService.Collect(cmd.Context(), query.Username)
	if err != nil {
		return errors.New(loadHint(err))
	}

	cmd.Printf("%s: %d followers, %d total stars\n",
		rec.Day(), rec.Followers, rec.TotalStars)
	return nil
}

func runMetricsShow(cmd *cobra.Command, _ []string) error {
	if err := requireMetrics(); err != nil {
		return err
	}

	history, err := metricsService.History(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}

	if metricsJSON {
		return outputJSON(cmd, history)
	}

	if len(history) == 0 {
		cmd.Println("No observations yet. Run 'portfolio metrics collect' first.")
		return nil
	}
	for _, rec := range history {
		cmd.Printf("%s  %6d followers  %6d stars\n", rec.Day(), rec.Followers, rec.TotalStars)
	}
	return nil
}

func runMetricsExport(cmd *cobra.Command, _ []string) error {
	if err := requireMetrics(); err != nil {
		return err
	}

	if metricsOutput == "" {
		return metricsService.ExportCSV(cmd.Context(), cmd.OutOrStdout())
	}

	f, err := os.Create(metricsOutput)
	if err != nil {
		return fmt.Errorf("creating %s: %w", metricsOutput, err)
	}
	defer f.Close()

	if err := metricsService.ExportCSV(cmd.Context(), f); err != nil {
		return err
	}
	cmd.Printf("History written to %s\n", metricsOutput)
	return nil
}
