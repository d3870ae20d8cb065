package driven

import (
	"context"

	"github.com/GeorgePearse/portfolio/internal/core/domain"
)

// SnapshotStore persists the offline cache artifact.
type SnapshotStore interface {
	// Write replaces the stored snapshot.
	Write(ctx context.Context, snap domain.Snapshot) error

	// Read returns the stored snapshot.
	// Returns domain.ErrNoSnapshot when none has been written.
	Read(ctx context.Context) (*domain.Snapshot, error)

	// Path returns the artifact location for display purposes.
	Path() string
}
