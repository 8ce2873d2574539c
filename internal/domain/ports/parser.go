package ports

import (
	"context"

	"github.com/fredcamaral/md2slides/internal/domain/entities"
)

// SlideExtractor defines the interface for turning markdown into slides
type SlideExtractor interface {
	// Extract parses content and returns one slide per thematic-break segment
	Extract(ctx context.Context, content []byte) (*entities.Presentation, error)
}

// CacheStats reports extraction cache effectiveness
type CacheStats struct {
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
	Entries int    `json:"entries"`
}

// ExtractionCache is a SlideExtractor that memoizes its results
type ExtractionCache interface {
	SlideExtractor
	Stats() CacheStats
	// Flush drops every cached entry
	Flush()
}
