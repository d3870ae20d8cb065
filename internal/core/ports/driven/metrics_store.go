package driven

import (
	"context"

	"github.com/GeorgePearse/portfolio/internal/core/domain"
)

// MetricsStore persists the metrics history, one record per day.
type MetricsStore interface {
	// Upsert stores a record, replacing any earlier record for the
	// same day.
	Upsert(ctx context.Context, rec domain.MetricsRecord) error

	// List returns all records ordered by day ascending.
	List(ctx context.Context) ([]domain.MetricsRecord, error)

	// Close releases the underlying storage.
	Close() error
}
