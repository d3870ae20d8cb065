package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the browser.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Up navigates up the repository list.
	Up key.Binding

	// Down navigates down the repository list.
	Down key.Binding

	// NextTag cycles the active tag filter forward.
	NextTag key.Binding

	// Clear resets the search text and tag filter.
	Clear key.Binding

	// Reload re-runs the fetch cycle.
	Reload key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		NextTag: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "cycle tag"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filters"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload"),
		),
	}
}
