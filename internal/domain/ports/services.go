package ports

import (
	"context"

	"github.com/fredcamaral/md2slides/internal/domain/entities"
)

// PresentationService defines the main service interface for presentations
type PresentationService interface {
	// LoadPresentation reads a markdown file and extracts its slides
	LoadPresentation(ctx context.Context, path string) (*entities.Presentation, error)

	// ExtractPresentation extracts slides from markdown content
	ExtractPresentation(ctx context.Context, content []byte) (*entities.Presentation, error)

	// WatchPresentation re-extracts the file on every change until ctx is done
	WatchPresentation(ctx context.Context, path string) (<-chan PresentationUpdate, error)
}

// PresentationUpdate is emitted by WatchPresentation after each change
type PresentationUpdate struct {
	Event        FileChangeEvent
	Presentation *entities.Presentation
	Err          error
}
