package ports

import (
	"context"
	"time"
)

// FileWatcher reports changes to a single markdown file. Implementations
// debounce bursts of writes into one event and close every channel they
// returned when Stop is called or the watch context ends.
type FileWatcher interface {
	Watch(ctx context.Context, path string) (<-chan FileChangeEvent, error)
	Stop() error
}

// FileChangeEvent describes one debounced change to a watched file
type FileChangeEvent struct {
	Path      string     `json:"path"`
	Type      ChangeType `json:"type"`
	Timestamp time.Time  `json:"timestamp"`
}

// ChangeType is the kind of change observed
type ChangeType string

const (
	Modified ChangeType = "modified"
	Created  ChangeType = "created"
	Deleted  ChangeType = "deleted"
)

// Exists reports whether the file is still present after the change
func (c ChangeType) Exists() bool {
	return c != Deleted
}
