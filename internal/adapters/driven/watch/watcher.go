// Package watch reports changes to roster input files using fsnotify.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alao-ohio/roster/internal/core/ports/driven"
	"github.com/alao-ohio/roster/internal/logger"
)

// DefaultSettle is how long the watcher waits for writes to stop before
// reporting a change.
const DefaultSettle = 200 * time.Millisecond

// Ensure Watcher implements the interface.
var _ driven.FileWatcher = (*Watcher)(nil)

// Watcher implements driven.FileWatcher.
// It watches the parent directory so that files replaced by rename
// (as spreadsheet programs do on save) keep being tracked.
type Watcher struct {
	settle time.Duration
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithSettle sets the quiet period that coalesces bursts of writes.
func WithSettle(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.settle = d
		}
	}
}

// New creates a file watcher.
func New(opts ...Option) *Watcher {
	w := &Watcher{settle: DefaultSettle}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Watch sends on the returned channel after the file at path is written or
// re-created. Sends never block; changes made while the consumer is busy
// collapse into a single pending notification.
func (w *Watcher) Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	changes := make(chan struct{}, 1)
	go w.loop(ctx, fw, abs, changes)

	return changes, nil
}

func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher, target string, changes chan<- struct{}) {
	defer close(changes)
	defer fw.Close()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if handleEvent(event, target) {
				timer.Reset(w.settle)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			logger.Warn("watch %s: %v", target, err)

		case <-timer.C:
			select {
			case changes <- struct{}{}:
			default:
			}
		}
	}
}

// handleEvent reports whether event is a write or create of target.
func handleEvent(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	logger.Debug("watch event: %s", event)
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
