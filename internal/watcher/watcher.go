// Package watcher follows a single journal document and reports when it
// changes on disk.
//
// It is used by `journey --list --follow` to print notes as they are added
// from another terminal.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors one document and invokes a callback after it settles.
type Watcher struct {
	path string
	dir  string

	// Configuration
	debounceDelay time.Duration

	// Internal state
	fsWatcher *fsnotify.Watcher
	pending   time.Time
	mu        sync.Mutex

	onChange func(path string)
}

// Config holds configuration options for the Watcher.
type Config struct {
	Path          string
	DebounceDelay time.Duration // Default: 100ms
	OnChange      func(path string)
}

// New creates a new Watcher with the given configuration.
func New(cfg Config) (*Watcher, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("document path is required")
	}
	if cfg.OnChange == nil {
		return nil, fmt.Errorf("change callback is required")
	}

	debounce := cfg.DebounceDelay
	if debounce == 0 {
		debounce = 100 * time.Millisecond
	}

	path, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, err
	}
	return &Watcher{
		path:          path,
		dir:           filepath.Dir(path),
		debounceDelay: debounce,
		onChange:      cfg.OnChange,
	}, nil
}

// Start begins watching. It blocks until the context is cancelled.
//
// The parent directory is watched rather than the file itself: documents are
// replaced by rename on every write, and the file may not exist yet.
func (w *Watcher) Start(ctx context.Context) error {
	var err error
	w.fsWatcher, err = fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer w.fsWatcher.Close()

	if err := w.fsWatcher.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	slog.Debug("watching document", "path", w.path)

	go w.processDebounced(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			slog.Debug("watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	slog.Debug("document event", "op", event.Op.String(), "path", event.Name)

	w.mu.Lock()
	w.pending = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) processDebounced(ctx context.Context) {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if w.ready(time.Now()) {
				w.onChange(w.path)
			}
		}
	}
}

// ready reports whether a change is pending and has settled, clearing it.
func (w *Watcher) ready(now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending.IsZero() || now.Sub(w.pending) < w.debounceDelay {
		return false
	}
	w.pending = time.Time{}
	return true
}
