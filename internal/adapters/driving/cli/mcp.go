package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GeorgePearse/portfolio/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve [username]",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can browse
the portfolio collection.

By default the server communicates over stdio using JSON-RPC. Use
--port to start an HTTP server instead.

The collection is loaded once at startup; tools then answer from it.

Examples:
  # Stdio mode (default, for Claude Desktop)
  portfolio mcp serve octocat

  # HTTP mode (for MCP Inspector, remote access)
  portfolio mcp serve octocat --port 8080`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	if err := requirePortfolio(); err != nil {
		return err
	}

	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	query, err := resolveQuery(args, false, false)
	if err != nil {
		return err
	}

	if err := portfolioService.Load(cmd.Context(), query); err != nil {
		// Tools still answer, from an empty collection, and the error
		// stays visible in the load state.
		fmt.Fprintf(cmd.ErrOrStderr(), "initial fetch failed: %v\n", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{Portfolio: portfolioService})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
