package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/GeorgePearse/portfolio/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/GeorgePearse/portfolio/internal/core/domain"
	"github.com/GeorgePearse/portfolio/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.MetricsStore = (*Store)(nil)

// Store is a SQLite-backed metrics history store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a metrics store at the specified data directory.
// If dataDir is empty, defaults to ~/.portfolio/data/metrics.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".portfolio", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "metrics.db")

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Upsert stores a record, replacing any earlier record for the same day.
func (s *Store) Upsert(ctx context.Context, rec domain.MetricsRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO metrics (id, day, observed_at, followers, total_stars)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET
			id = excluded.id,
			observed_at = excluded.observed_at,
			followers = excluded.followers,
			total_stars = excluded.total_stars
	`, rec.ID, rec.Day(), rec.Date.UTC().Format(time.RFC3339), rec.Followers, rec.TotalStars)
	if err != nil {
		return fmt.Errorf("upserting metrics record: %w", err)
	}
	return nil
}

// List returns all records ordered by day ascending.
func (s *Store) List(ctx context.Context) ([]domain.MetricsRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, observed_at, followers, total_stars
		FROM metrics
		ORDER BY day ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying metrics: %w", err)
	}
	defer rows.Close()

	var records []domain.MetricsRecord
	for rows.Next() {
		var (
			rec        domain.MetricsRecord
			observedAt string
		)
		if err := rows.Scan(&rec.ID, &observedAt, &rec.Followers, &rec.TotalStars); err != nil {
			return nil, fmt.Errorf("scanning metrics row: %w", err)
		}
		rec.Date, err = time.Parse(time.RFC3339, observedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing observed_at: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating metrics rows: %w", err)
	}
	return records, nil
}

// migrate applies embedded migrations in version order.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		ddl, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(ddl)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
