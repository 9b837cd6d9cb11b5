// Package watch re-runs a callback whenever a single file changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors one file and invokes a callback after changes, debounced
// so editor write bursts trigger a single run.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func() error
}

// New creates a watcher for path. onChange runs once per debounced change;
// its error is logged, not fatal, so a broken intermediate save does not
// stop the watch.
func New(path string, onChange func() error) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}
	return &Watcher{
		path:     abs,
		debounce: 500 * time.Millisecond,
		onChange: onChange,
	}, nil
}

// Run watches until the context is cancelled. The containing directory is
// watched rather than the file itself, so atomic-rename saves keep working.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch directory %s: %w", filepath.Dir(w.path), err)
	}

	slog.Info("Watching for changes", "path", w.path)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if event.Op&fsnotify.Remove != 0 {
				slog.Warn("Watched file removed", "file", event.Name)
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				slog.Debug("Change detected", "file", event.Name, "op", event.Op.String())
				if timer != nil {
					timer.Stop()
				}
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			}

		case <-fire:
			fire = nil
			if err := w.onChange(); err != nil {
				slog.Error("Change handler failed", "error", err)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Error("Watcher error", "error", err)
		}
	}
}
