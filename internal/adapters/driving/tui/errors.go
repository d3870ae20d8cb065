// Package tui provides an interactive terminal browser over the
// portfolio collection, following the Elm architecture.
package tui

import "errors"

// ErrMissingPortfolioService is returned when the portfolio service is not provided.
var ErrMissingPortfolioService = errors.New("tui: portfolio service is required")
