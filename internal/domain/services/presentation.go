package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fredcamaral/md2slides/internal/domain/entities"
	"github.com/fredcamaral/md2slides/internal/domain/ports"
)

// PresentationService implements the business logic for presentations
type PresentationService struct {
	fs        ports.FileSystem
	extractor ports.SlideExtractor
	watcher   ports.FileWatcher
	logger    *slog.Logger
}

// NewPresentationService creates a new presentation service instance.
// watcher may be nil when the caller never watches files.
func NewPresentationService(
	fs ports.FileSystem,
	extractor ports.SlideExtractor,
	watcher ports.FileWatcher,
	logger *slog.Logger,
) *PresentationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PresentationService{
		fs:        fs,
		extractor: extractor,
		watcher:   watcher,
		logger:    logger,
	}
}

// LoadPresentation loads a presentation from a file path
func (s *PresentationService) LoadPresentation(ctx context.Context, path string) (*entities.Presentation, error) {
	if path == "" {
		return nil, errors.New("presentation path cannot be empty")
	}

	info, err := s.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("presentation file not found: %s", path)
		}
		return nil, fmt.Errorf("checking presentation file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("presentation path is a directory: %s", path)
	}

	content, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading presentation file: %w", err)
	}

	presentation, err := s.ExtractPresentation(ctx, content)
	if err != nil {
		return nil, err
	}

	s.logger.Info("presentation loaded",
		slog.String("path", path),
		slog.Int("slides", presentation.SlideCount()),
	)

	return presentation, nil
}

// ExtractPresentation extracts slides from markdown content.
// Empty content is valid and yields a single empty slide.
func (s *PresentationService) ExtractPresentation(ctx context.Context, content []byte) (*entities.Presentation, error) {
	if content == nil {
		content = []byte{}
	}

	presentation, err := s.extractor.Extract(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("extracting slides: %w", err)
	}

	if err := presentation.Validate(); err != nil {
		return nil, fmt.Errorf("invalid presentation: %w", err)
	}

	return presentation, nil
}

// LoadPresentationFromReader loads a presentation from an io.Reader
func (s *PresentationService) LoadPresentationFromReader(ctx context.Context, reader io.Reader) (*entities.Presentation, error) {
	if reader == nil {
		return nil, errors.New("reader cannot be nil")
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading content: %w", err)
	}

	return s.ExtractPresentation(ctx, content)
}

// WatchPresentation re-extracts a presentation file whenever it changes
func (s *PresentationService) WatchPresentation(ctx context.Context, path string) (<-chan ports.PresentationUpdate, error) {
	if path == "" {
		return nil, errors.New("presentation path cannot be empty")
	}
	if s.watcher == nil {
		return nil, errors.New("file watching is not configured")
	}

	events, err := s.watcher.Watch(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("watching presentation: %w", err)
	}

	updates := make(chan ports.PresentationUpdate)
	go func() {
		defer close(updates)
		for event := range events {
			update := ports.PresentationUpdate{Event: event}
			if !event.Type.Exists() {
				update.Err = fmt.Errorf("presentation file deleted: %s", event.Path)
			} else {
				update.Presentation, update.Err = s.LoadPresentation(ctx, event.Path)
			}
			if update.Err != nil {
				s.logger.Warn("presentation update failed",
					slog.String("path", event.Path),
					slog.String("error", update.Err.Error()),
				)
			}

			select {
			case updates <- update:
			case <-ctx.Done():
				return
			}
		}
	}()

	return updates, nil
}

// Ensure PresentationService implements ports.PresentationService
var _ ports.PresentationService = (*PresentationService)(nil)
