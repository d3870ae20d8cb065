package driving

import (
	"context"

	"github.com/GeorgePearse/portfolio/internal/core/domain"
)

// PortfolioService owns the asynchronous load lifecycle of a user's
// repository collection and the derived views over it.
type PortfolioService interface {
	// Load runs one fetch cycle for the query: transitions to loading,
	// clears any prior error, fetches, filters, normalises and sorts.
	// On failure the previous collection is kept and the error is also
	// stored as a human-readable message in the state.
	//
	// If another Load supersedes this one before it resolves, its
	// result (success or failure) is discarded silently and Load
	// returns nil.
	Load(ctx context.Context, query domain.Query) error

	// State returns a copy of the current load state.
	State() domain.PortfolioState

	// Repos returns the visible subset of the collection under the
	// given filter, preserving recency order.
	Repos(filter domain.Filter) []domain.Repo

	// Tags returns the tag frequency table for the current collection,
	// sorted by label.
	Tags() []domain.TagMeta

	// Replace swaps in a collection built from raw records without a
	// fetch cycle, e.g. from the offline snapshot artifact.
	Replace(query domain.Query, raw []domain.RawRepo)
}
