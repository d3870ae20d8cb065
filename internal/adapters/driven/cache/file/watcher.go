package file

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/GeorgePearse/portfolio/internal/core/domain"
	"github.com/GeorgePearse/portfolio/internal/logger"
)

// Watch invokes onChange with the freshly parsed snapshot every time
// the artifact is rewritten on disk. It blocks until the context is
// cancelled.
//
// The watch is on the parent directory, not the file: the store
// replaces the artifact by rename, which would drop a file-level
// watch.
func (s *SnapshotStore) Watch(ctx context.Context, onChange func(*domain.Snapshot)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(s.path), err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != s.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			snap, err := s.Read(ctx)
			if err != nil {
				logger.Warn("Snapshot changed but could not be read: %v", err)
				continue
			}
			logger.Info("Snapshot reloaded: %d repositories for %q", snap.RepositoryCount, snap.Username)
			onChange(snap)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Snapshot watcher error: %v", err)
		}
	}
}
