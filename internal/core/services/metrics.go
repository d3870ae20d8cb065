package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/GeorgePearse/portfolio/internal/core/domain"
	"github.com/GeorgePearse/portfolio/internal/core/ports/driven"
	"github.com/GeorgePearse/portfolio/internal/core/ports/driving"
	"github.com/GeorgePearse/portfolio/internal/logger"
)

// Ensure MetricsService implements the interface.
var _ driving.MetricsService = (*MetricsService)(nil)

// csvHeader is the first row of the history export.
var csvHeader = []string{"date", "followers", "total_stars"}

// MetricsService observes account metrics (followers, total stars
// across public repos) and keeps one record per day.
type MetricsService struct {
	source driven.RepoSource
	store  driven.MetricsStore
	now    func() time.Time
}

// NewMetricsService creates a metrics service.
func NewMetricsService(source driven.RepoSource, store driven.MetricsStore) *MetricsService {
	return &MetricsService{
		source: source,
		store:  store,
		now:    time.Now,
	}
}

// Collect takes one observation and stores it, replacing any earlier
// observation for today.
func (s *MetricsService) Collect(ctx context.Context, username string) (*domain.MetricsRecord, error) {
	if username == "" {
		return nil, domain.ErrUsernameRequired
	}

	logger.Section("Metrics Collection")

	user, err := s.source.GetUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", username, err)
	}

	raw, err := s.source.ListRepos(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("list repositories for %s: %w", username, err)
	}

	rec := domain.MetricsRecord{
		ID:         uuid.NewString(),
		Date:       s.now(),
		Followers:  user.Followers,
		TotalStars: domain.TotalStars(raw),
	}
	logger.Info("Observed %d followers, %d stars across %d repos",
		rec.Followers, rec.TotalStars, len(raw))

	if err := s.store.Upsert(ctx, rec); err != nil {
		return nil, fmt.Errorf("store metrics record: %w", err)
	}
	return &rec, nil
}

// History returns all stored observations, oldest first.
func (s *MetricsService) History(ctx context.Context) ([]domain.MetricsRecord, error) {
	return s.store.List(ctx)
}

// ExportCSV writes the history as `date,followers,total_stars` rows.
func (s *MetricsService) ExportCSV(ctx context.Context, w io.Writer) error {
	records, err := s.store.List(ctx)
	if err != nil {
		return fmt.Errorf("list metrics history: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := range records {
		if err := cw.Write(records[i].CSVRow()); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
