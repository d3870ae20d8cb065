package driving

import (
	"context"
	"io"

	"github.com/GeorgePearse/portfolio/internal/core/domain"
)

// MetricsService collects and exposes account-level metrics history.
type MetricsService interface {
	// Collect takes one observation (followers, total public stars)
	// and stores it, replacing any earlier observation for today.
	Collect(ctx context.Context, username string) (*domain.MetricsRecord, error)

	// History returns all stored observations, oldest first.
	History(ctx context.Context) ([]domain.MetricsRecord, error)

	// ExportCSV writes the history in the CSV export format.
	ExportCSV(ctx context.Context, w io.Writer) error
}
