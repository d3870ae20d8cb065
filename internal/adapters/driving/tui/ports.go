package tui

import (
	"github.com/GeorgePearse/portfolio/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Portfolio provides the repository collection and its derived views.
	Portfolio driving.PortfolioService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Portfolio == nil {
		return ErrMissingPortfolioService
	}
	return nil
}
