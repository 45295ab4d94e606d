package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/johnconnor-sec/autocomplete-go/internal/errors"
	"github.com/johnconnor-sec/autocomplete-go/internal/output"
	"github.com/johnconnor-sec/autocomplete-go/internal/types"
)

// DefaultDebounce coalesces the bursts of events editors produce on save.
const DefaultDebounce = 100 * time.Millisecond

// ItemsWatcher reloads a suggestions file whenever it changes on disk.
// Callbacks run on the watcher's goroutine; hosts with a UI loop should
// post the result to that loop rather than touch widget state directly.
type ItemsWatcher struct {
	mu sync.Mutex

	path     string
	debounce time.Duration
	onChange func([]types.Suggestion, error)
	logger   *output.Logger

	watcher *fsnotify.Watcher
	timer   *time.Timer

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup // process loop and in-flight reloads
}

// WatchOption configures an ItemsWatcher.
type WatchOption func(*ItemsWatcher)

// WithDebounce sets the quiet period before a reload.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *ItemsWatcher) { w.debounce = d }
}

// WithWatchLogger sets the logger used for reload diagnostics.
func WithWatchLogger(l *output.Logger) WatchOption {
	return func(w *ItemsWatcher) { w.logger = l }
}

// WatchItems starts watching path. The directory is watched rather than the
// file so that editors which save by rename keep being followed.
func WatchItems(path string, onChange func([]types.Suggestion, error), opts ...WatchOption) (*ItemsWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ItemsWatch, "Cannot resolve suggestions path")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ItemsWatch, "Cannot start file watcher")
	}

	w := &ItemsWatcher{
		path:     absPath,
		debounce: DefaultDebounce,
		onChange: onChange,
		logger:   output.GetGlobalLogger(),
		watcher:  fsw,
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.WithField("component", "items-watcher")

	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, errors.Wrap(err, errors.ItemsWatch, "Cannot watch suggestions directory").
			WithDetails(filepath.Dir(absPath))
	}

	w.closedWg.Add(1)
	go w.processLoop()

	w.logger.Debug("watching suggestions file", map[string]any{"path": absPath})
	return w, nil
}

// Path returns the absolute path being watched.
func (w *ItemsWatcher) Path() string {
	return w.path
}

// Close stops the watcher, cancels any pending reload and waits for one
// already running, so onChange is never called after Close returns.
func (w *ItemsWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	w.closedWg.Wait()
	return w.watcher.Close()
}

func (w *ItemsWatcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename) || ev.Op.Has(fsnotify.Remove) {
				w.schedule()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.WithError(err).Warn("file watcher error")
			w.deliver(nil, errors.Wrap(err, errors.ItemsWatch, "File watcher error"))
		}
	}
}

// schedule restarts the debounce timer.
func (w *ItemsWatcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *ItemsWatcher) reload() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closedWg.Add(1)
	w.mu.Unlock()
	defer w.closedWg.Done()

	items, err := LoadItems(w.path)
	if err != nil {
		w.logger.WithError(err).Warn("suggestions reload failed")
	} else {
		w.logger.Debug("suggestions reloaded", map[string]any{"count": len(items)})
	}
	w.deliver(items, err)
}

// deliver runs on the process loop or inside a counted reload, both of
// which Close waits for.
func (w *ItemsWatcher) deliver(items []types.Suggestion, err error) {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed || w.onChange == nil {
		return
	}
	w.onChange(items, err)
}
