package watcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/fredcamaral/md2slides/internal/domain/ports"
)

// NotifyWatcher implements file watching with filesystem notifications.
// It watches the file's directory so editors that save by renaming a
// temporary file over the original are still seen.
type NotifyWatcher struct {
	debounce time.Duration
	logger   *slog.Logger
	mu       sync.Mutex
	wg       sync.WaitGroup
	watchers []*fsnotify.Watcher
	stopped  bool
	stopCh   chan struct{}
}

// NewNotifyWatcher creates a watcher backed by fsnotify
func NewNotifyWatcher(debounce time.Duration, opts ...Option) *NotifyWatcher {
	o := newOptions(opts)
	return &NotifyWatcher{
		debounce: debounce,
		logger:   o.logger,
		stopCh:   make(chan struct{}),
	}
}

// Watch starts watching a file. The returned channel is closed once ctx is
// done or the watcher is stopped.
func (w *NotifyWatcher) Watch(ctx context.Context, path string) (<-chan ports.FileChangeEvent, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("initial scan: stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("initial scan: not a regular file: %s", absPath)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return nil, errors.New("watcher is stopped")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating notifier: %w", err)
	}
	if err := fw.Add(filepath.Dir(absPath)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(absPath), err)
	}
	w.watchers = append(w.watchers, fw)

	events := make(chan ports.FileChangeEvent, 10)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer close(events)
		defer w.release(fw)
		w.loop(ctx, fw, absPath, events)
	}()

	return events, nil
}

// release closes a notifier whose loop has ended, unless Stop already did
func (w *NotifyWatcher) release(fw *fsnotify.Watcher) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, other := range w.watchers {
		if other == fw {
			w.watchers = append(w.watchers[:i], w.watchers[i+1:]...)
			if err := fw.Close(); err != nil {
				w.logger.Warn("closing notifier", slog.String("error", err.Error()))
			}
			return
		}
	}
}

// Stop closes every notifier and waits for their channels to close
func (w *NotifyWatcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	close(w.stopCh)
	watchers := w.watchers
	w.watchers = nil
	w.mu.Unlock()

	var errs []error
	for _, fw := range watchers {
		if err := fw.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	w.wg.Wait()
	return errors.Join(errs...)
}

// loop translates notifications for path into change events. Bursts of
// notifications inside the debounce window collapse into the last one.
func (w *NotifyWatcher) loop(ctx context.Context, fw *fsnotify.Watcher, path string, events chan<- ports.FileChangeEvent) {
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	var pending *ports.FileChangeEvent

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			changeType, relevant := classify(event.Op, path)
			if !relevant {
				continue
			}
			pending = &ports.FileChangeEvent{
				Path:      path,
				Type:      changeType,
				Timestamp: time.Now(),
			}
			timer.Reset(w.debounce)
		case <-timer.C:
			if pending == nil {
				continue
			}
			select {
			case events <- *pending:
				pending = nil
			case <-ctx.Done():
				return
			case <-w.stopCh:
				return
			}
		}
	}
}

// classify maps a notification to a change type. A rename or removal is a
// deletion only when the file is gone afterwards.
func classify(op fsnotify.Op, path string) (ports.ChangeType, bool) {
	switch {
	case op.Has(fsnotify.Create):
		return ports.Created, true
	case op.Has(fsnotify.Write):
		return ports.Modified, true
	case op.Has(fsnotify.Remove), op.Has(fsnotify.Rename):
		if _, err := os.Stat(path); err == nil {
			return ports.Modified, true
		}
		return ports.Deleted, true
	default:
		// chmod only
		return ports.Modified, false
	}
}

// Ensure NotifyWatcher implements ports.FileWatcher
var _ ports.FileWatcher = (*NotifyWatcher)(nil)
