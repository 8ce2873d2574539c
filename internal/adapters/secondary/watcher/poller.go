package watcher

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fredcamaral/md2slides/internal/domain/ports"
)

// PollingWatcher implements file watching using polling
type PollingWatcher struct {
	interval  time.Duration
	debounce  time.Duration
	fileInfos map[string]FileInfo
	logger    *slog.Logger
	mu        sync.RWMutex
	wg        sync.WaitGroup
	stopped   bool
	stopCh    chan struct{}
}

// FileInfo stores information about a file
type FileInfo struct {
	Size     int64
	ModTime  time.Time
	Checksum string
}

type options struct {
	logger *slog.Logger
}

// Option configures a watcher
type Option func(*options)

// WithLogger sets the logger used for watch errors
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewPollingWatcher creates a new polling-based file watcher
func NewPollingWatcher(interval, debounce time.Duration, opts ...Option) *PollingWatcher {
	return &PollingWatcher{
		interval:  interval,
		debounce:  debounce,
		fileInfos: make(map[string]FileInfo),
		logger:    newOptions(opts).logger,
		stopCh:    make(chan struct{}),
	}
}

// Watch starts polling a file. The returned channel is closed once ctx is
// done or the watcher is stopped.
func (w *PollingWatcher) Watch(ctx context.Context, path string) (<-chan ports.FileChangeEvent, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	if w.isStopped() {
		return nil, errors.New("watcher is stopped")
	}

	if err := w.scanFile(absPath); err != nil {
		return nil, fmt.Errorf("initial scan: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return nil, errors.New("watcher is stopped")
	}

	events := make(chan ports.FileChangeEvent, 10)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer close(events)
		w.pollLoop(ctx, absPath, events)
	}()

	return events, nil
}

func (w *PollingWatcher) isStopped() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stopped
}

// Stop ends every poll loop and waits for their channels to close
func (w *PollingWatcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	close(w.stopCh)
	w.mu.Unlock()

	w.wg.Wait()
	return nil
}

// scanFile scans a file and stores its info
func (w *PollingWatcher) scanFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("not a regular file: %s", path)
	}

	checksum, err := w.calculateChecksum(path)
	if err != nil {
		return fmt.Errorf("calculate checksum: %w", err)
	}

	w.mu.Lock()
	w.fileInfos[path] = FileInfo{
		Size:     info.Size(),
		ModTime:  info.ModTime(),
		Checksum: checksum,
	}
	w.mu.Unlock()

	return nil
}

// pollLoop continuously polls for file changes. Changes seen inside the
// debounce window are held back and delivered once the window has passed.
func (w *PollingWatcher) pollLoop(ctx context.Context, path string, events chan<- ports.FileChangeEvent) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	var (
		lastEventTime time.Time
		pending       *ports.FileChangeEvent
	)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-ticker.C:
			changeType, changed, err := w.checkForChanges(path)
			if err != nil {
				w.logger.Warn("watch error",
					slog.String("path", path),
					slog.String("error", err.Error()),
				)
				continue
			}

			if changed {
				pending = &ports.FileChangeEvent{
					Path:      path,
					Type:      changeType,
					Timestamp: time.Now(),
				}
			}

			if pending == nil || time.Since(lastEventTime) < w.debounce {
				continue
			}

			select {
			case events <- *pending:
				lastEventTime = time.Now()
				pending = nil
			case <-ctx.Done():
				return
			case <-w.stopCh:
				return
			}
		}
	}
}

// checkForChanges reports whether the file changed since the last poll and how
func (w *PollingWatcher) checkForChanges(path string) (ports.ChangeType, bool, error) {
	w.mu.RLock()
	oldInfo, exists := w.fileInfos[path]
	w.mu.RUnlock()

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			if !exists {
				return ports.Deleted, false, nil
			}
			w.mu.Lock()
			delete(w.fileInfos, path)
			w.mu.Unlock()
			return ports.Deleted, true, nil
		}
		return ports.Modified, false, fmt.Errorf("stat file: %w", err)
	}

	// Skip the checksum when size and mtime are unchanged
	if exists && oldInfo.Size == info.Size() && oldInfo.ModTime.Equal(info.ModTime()) {
		return ports.Modified, false, nil
	}

	checksum, err := w.calculateChecksum(path)
	if err != nil {
		return ports.Modified, false, fmt.Errorf("calculate checksum: %w", err)
	}

	current := FileInfo{
		Size:     info.Size(),
		ModTime:  info.ModTime(),
		Checksum: checksum,
	}

	if !exists {
		w.mu.Lock()
		w.fileInfos[path] = current
		w.mu.Unlock()
		return ports.Created, true, nil
	}

	if oldInfo.Checksum == checksum {
		// Touched without a content change
		w.mu.Lock()
		w.fileInfos[path] = current
		w.mu.Unlock()
		return ports.Modified, false, nil
	}

	w.mu.Lock()
	w.fileInfos[path] = current
	w.mu.Unlock()

	return ports.Modified, true, nil
}

// calculateChecksum calculates SHA256 checksum of a file
func (w *PollingWatcher) calculateChecksum(path string) (string, error) {
	file, err := os.Open(path) // #nosec G304 - path is validated by caller
	if err != nil {
		return "", err
	}
	defer func() { _ = file.Close() }()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}

// Ensure PollingWatcher implements ports.FileWatcher
var _ ports.FileWatcher = (*PollingWatcher)(nil)
