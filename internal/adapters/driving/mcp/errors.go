// Package mcp provides an MCP (Model Context Protocol) server adapter
// for the portfolio. It lets AI assistants browse the repository
// collection and its tag index.
package mcp

import "errors"

// ErrMissingPortfolioService is returned when the portfolio service is not provided.
var ErrMissingPortfolioService = errors.New("mcp: portfolio service is required")
