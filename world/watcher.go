package world

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/facetlabs/facet/domain"
	"github.com/facetlabs/facet/logging"
)

// Watcher watches a world document for changes and reloads it. The editor
// holds no lock on the file; an external tool rewriting it is the normal way
// world data changes while a session is open.
type Watcher struct {
	watcher    *fsnotify.Watcher
	path       string
	debounceMs int
	lastChange time.Time
	mu         sync.Mutex
	logger     *logrus.Entry
	onReload   func(*domain.Graph)
}

// NewWatcher creates a Watcher for the given world file. The debounceMs
// parameter controls how long to wait before processing rapid successive
// writes. The onReload callback receives the freshly loaded graph; it is
// invoked from the watcher's goroutine, so the callback must hand the graph
// over to the UI loop rather than mutate shared state directly.
func NewWatcher(path string, debounceMs int, onReload func(*domain.Graph)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory rather than the file: editors that write via
	// rename would otherwise drop the watch on the first save.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	if debounceMs <= 0 {
		debounceMs = 100
	}

	return &Watcher{
		watcher:    watcher,
		path:       path,
		debounceMs: debounceMs,
		logger:     logging.NewLogger("world-watcher"),
		onReload:   onReload,
	}, nil
}

// Start begins watching for world changes. It blocks until the context is
// cancelled.
func (w *Watcher) Start(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				if filepath.Clean(event.Name) == filepath.Clean(w.path) {
					w.handleChange()
				}
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("Watcher error: %v", err)
		case <-ctx.Done():
			w.watcher.Close()
			return
		}
	}
}

// handleChange reloads the world document with debouncing. A document that
// fails to load leaves the previous graph in place.
func (w *Watcher) handleChange() {
	w.mu.Lock()
	defer w.mu.Unlock()

	elapsed := time.Since(w.lastChange)
	if elapsed < time.Duration(w.debounceMs)*time.Millisecond {
		w.logger.Debugf("Debounced: %s (only %v since last change)", filepath.Base(w.path), elapsed)
		return
	}
	w.lastChange = time.Now()

	w.logger.Infof("World changed: %s", filepath.Base(w.path))

	graph, err := Load(w.path)
	if err != nil {
		w.logger.WithError(err).Warn("Reload failed, keeping previous world")
		return
	}

	if w.onReload != nil {
		w.onReload(graph)
	}
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
