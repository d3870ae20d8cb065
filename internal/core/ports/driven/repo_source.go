package driven

import (
	"context"

	"github.com/GeorgePearse/portfolio/internal/core/domain"
)

// RepoSource lists a user's repositories from the hosting service.
// Implementations handle pagination transparently: ListRepos returns
// the complete ordered listing or nothing at all.
type RepoSource interface {
	// ListRepos returns every repository of the user as raw records,
	// in the server's recency order. A transport or API failure aborts
	// the whole listing; no partial result is returned.
	ListRepos(ctx context.Context, username string) ([]domain.RawRepo, error)

	// GetUser fetches account metadata for the user.
	GetUser(ctx context.Context, username string) (*domain.User, error)
}
