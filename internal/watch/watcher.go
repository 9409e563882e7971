// Package watch invalidates the registry cache when component source
// files change, so long-running sessions pick up edits without waiting
// for the TTL.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"uismith/internal/logging"
)

// Invalidator is the cache-eviction capability. Satisfied by *store.Cache.
type Invalidator interface {
	Invalidate(ctx context.Context, projectRoot string) error
}

// Stats tracks watcher activity for debugging.
type Stats struct {
	FilesCreated  int
	FilesModified int
	FilesDeleted  int
	Invalidations int
	Errors        int
	LastEventTime time.Time
	LastEventPath string
}

// ProjectWatcher watches component directories and evicts the project's
// cached registry once edits settle past the debounce window.
type ProjectWatcher struct {
	mu          sync.RWMutex
	watcher     *fsnotify.Watcher
	invalidator Invalidator
	projectRoot string
	dirs        []string
	patterns    []string
	debounceMap map[string]time.Time
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool

	stats Stats
}

// New creates a watcher over the given component directories. patterns
// filter event paths by basename, the same globs discovery scans with.
func New(projectRoot string, dirs, patterns []string, invalidator Invalidator) (*ProjectWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &ProjectWatcher{
		watcher:     watcher,
		invalidator: invalidator,
		projectRoot: projectRoot,
		dirs:        dirs,
		patterns:    patterns,
		debounceMap: make(map[string]time.Time),
		debounceDur: 500 * time.Millisecond,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching. Non-blocking; the event loop runs in a
// goroutine until Stop or context cancellation.
func (w *ProjectWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	for _, dir := range w.dirs {
		if _, err := os.Stat(dir); err != nil {
			logging.WatchDebug("skipping missing dir %s", dir)
			continue
		}
		if err := w.watcher.Add(dir); err != nil {
			logging.Get(logging.CategoryWatch).Warn("cannot watch %s: %v", dir, err)
			continue
		}
		logging.Watch("watching %s", dir)
	}

	go w.run(ctx)
	return nil
}

// Stop halts the event loop and waits for it to drain.
func (w *ProjectWatcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		logging.Get(logging.CategoryWatch).Error("error closing watcher: %v", err)
	}
	logging.Watch("stopped")
}

// IsWatching reports whether the event loop is running.
func (w *ProjectWatcher) IsWatching() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

// GetStats returns a snapshot of the watcher counters.
func (w *ProjectWatcher) GetStats() Stats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stats
}

func (w *ProjectWatcher) run(ctx context.Context) {
	defer close(w.doneCh)

	debounceTicker := time.NewTicker(100 * time.Millisecond)
	defer debounceTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Watch("context cancelled")
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Get(logging.CategoryWatch).Error("watch error: %v", err)
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-debounceTicker.C:
			w.processDebounced(ctx)
		}
	}
}

// handleEvent records a component-file event for debounced processing.
func (w *ProjectWatcher) handleEvent(event fsnotify.Event) {
	if !w.matches(event.Name) {
		return
	}

	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return // chmod etc.
	}
	logging.WatchDebug("component file event: %s %s", event.Op, event.Name)

	w.mu.Lock()
	defer w.mu.Unlock()

	switch {
	case event.Op&fsnotify.Create != 0:
		w.stats.FilesCreated++
	case event.Op&fsnotify.Write != 0:
		w.stats.FilesModified++
	default:
		w.stats.FilesDeleted++
	}
	w.stats.LastEventTime = time.Now()
	w.stats.LastEventPath = event.Name
	w.debounceMap[event.Name] = time.Now()
}

// processDebounced evicts the cache once any recorded event has settled
// past the debounce window. One eviction covers every settled path; the
// cache is keyed by project, not by file.
func (w *ProjectWatcher) processDebounced(ctx context.Context) {
	w.mu.Lock()
	now := time.Now()
	settled := false
	for path, eventTime := range w.debounceMap {
		if now.Sub(eventTime) >= w.debounceDur {
			delete(w.debounceMap, path)
			settled = true
		}
	}
	w.mu.Unlock()

	if !settled {
		return
	}

	logging.Watch("component files changed, invalidating registry cache for %s", w.projectRoot)
	if err := w.invalidator.Invalidate(ctx, w.projectRoot); err != nil {
		logging.Get(logging.CategoryWatch).Error("cache invalidation failed: %v", err)
		w.mu.Lock()
		w.stats.Errors++
		w.mu.Unlock()
		return
	}
	w.mu.Lock()
	w.stats.Invalidations++
	w.mu.Unlock()
}

// matches applies the basename globs to an event path.
func (w *ProjectWatcher) matches(path string) bool {
	base := filepath.Base(path)
	for _, p := range w.patterns {
		if ok, err := filepath.Match(p, base); err == nil && ok {
			return true
		}
	}
	return false
}
