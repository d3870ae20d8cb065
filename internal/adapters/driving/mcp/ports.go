package mcp

import (
	"github.com/GeorgePearse/portfolio/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Portfolio provides the repository collection and its derived views.
	Portfolio driving.PortfolioService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Portfolio == nil {
		return ErrMissingPortfolioService
	}
	return nil
}
