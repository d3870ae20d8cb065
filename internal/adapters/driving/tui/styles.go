package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains pre-configured lipgloss styles for the browser.
type Styles struct {
	// Title style for the header line.
	Title lipgloss.Style

	// Muted style for secondary text.
	Muted lipgloss.Style

	// Selected style for the highlighted repository row.
	Selected lipgloss.Style

	// Tag style for topic badges.
	Tag lipgloss.Style

	// Error style for failure messages.
	Error lipgloss.Style

	// Help style for the keybinding footer.
	Help lipgloss.Style
}

// DefaultStyles returns the default styling.
func DefaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#06B6D4")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#CDD6F4")).
			Background(lipgloss.Color("#45475A")),
		Tag: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6E3A1")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F38BA8")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")),
	}
}
