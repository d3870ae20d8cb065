// Package file provides the JSON snapshot artifact store.
//
// The snapshot is the offline cache: one complete raw repository
// listing written to disk, readable at build time or as a fallback
// when the listing API is unreachable.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/GeorgePearse/portfolio/internal/core/domain"
	"github.com/GeorgePearse/portfolio/internal/core/ports/driven"
)

// DefaultSnapshotName is the artifact filename inside the data directory.
const DefaultSnapshotName = "repos.json"

// Ensure SnapshotStore implements the interface.
var _ driven.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore persists the snapshot artifact as pretty-printed JSON
// so the file stays diffable when checked into a site repository.
type SnapshotStore struct {
	mu   sync.Mutex
	path string
}

// NewSnapshotStore creates a snapshot store at the given path.
// If path is empty, defaults to ~/.portfolio/data/repos.json.
func NewSnapshotStore(path string) (*SnapshotStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".portfolio", "data", DefaultSnapshotName)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}

	return &SnapshotStore{path: path}, nil
}

// Write replaces the stored snapshot. The write goes through a
// temporary file and rename so readers never observe a torn artifact.
func (s *SnapshotStore) Write(_ context.Context, snap domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Read returns the stored snapshot, or domain.ErrNoSnapshot when the
// artifact does not exist.
func (s *SnapshotStore) Read(_ context.Context) (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNoSnapshot, s.path)
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &snap, nil
}

// Path returns the artifact location.
func (s *SnapshotStore) Path() string {
	return s.path
}
