package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/GeorgePearse/portfolio/internal/adapters/driven/auth"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the default account and API credential",
	Long: `Store the default GitHub username and a personal access token.

A token raises the API rate limit from 60 to 5000 requests per hour.
It is read from the GITHUB_TOKEN environment variable first, then from
the configuration file.

Examples:
  # Set the default account and store a token (hidden prompt)
  portfolio auth login octocat

  # Check what is configured
  portfolio auth status`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login [username]",
	Short: "Set the default username and store a token",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the configured account and token source",
	RunE:  runAuthStatus,
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	if len(args) > 0 {
		if err := configStore.SetUsername(args[0]); err != nil {
			return fmt.Errorf("storing username: %w", err)
		}
		cmd.Printf("Username set to %s\n", args[0])
	}

	token, err := promptToken(cmd)
	if err != nil {
		return err
	}
	if token == "" {
		cmd.Println("No token entered, skipping.")
		return nil
	}

	if err := configStore.SetToken(token); err != nil {
		return fmt.Errorf("storing token: %w", err)
	}
	cmd.Printf("Token stored in %s\n", configStore.Path())
	return nil
}

// promptToken reads the token without echoing when stdin is a
// terminal, and falls back to a plain line read for scripted use.
func promptToken(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		cmd.Print("Personal access token (empty to skip): ")
		raw, err := term.ReadPassword(fd)
		cmd.Println()
		if err != nil {
			return "", fmt.Errorf("reading token: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", nil
	}
	return strings.TrimSpace(line), nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	username := configStore.Username()
	if username == "" {
		username = "(not set)"
	}
	cmd.Printf("Username: %s\n", username)

	switch {
	case os.Getenv(auth.EnvToken) != "":
		cmd.Printf("Token:    from %s environment variable\n", auth.EnvToken)
	case configStore.Token() != "":
		cmd.Printf("Token:    from %s\n", configStore.Path())
	default:
		cmd.Println("Token:    none (unauthenticated, 60 requests/hour)")
	}
	return nil
}
