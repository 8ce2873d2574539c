// Package cache memoizes slide extraction results keyed by document content.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/fredcamaral/md2slides/internal/domain/entities"
	"github.com/fredcamaral/md2slides/internal/domain/ports"
)

// Extractor wraps a SlideExtractor with an in-memory TTL cache.
// Cached presentations are shared between callers and must be treated as read-only.
type Extractor struct {
	next   ports.SlideExtractor
	cache  *gocache.Cache
	logger *slog.Logger
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewExtractor caches results of next for ttl. Expired entries are purged every 2*ttl.
func NewExtractor(next ports.SlideExtractor, ttl time.Duration, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		next:   next,
		cache:  gocache.New(ttl, 2*ttl),
		logger: logger,
	}
}

// Extract returns the cached presentation for content or extracts and stores it.
// Failures are never cached.
func (e *Extractor) Extract(ctx context.Context, content []byte) (*entities.Presentation, error) {
	if content == nil {
		return e.next.Extract(ctx, content)
	}

	key := contentKey(content)
	if cached, ok := e.cache.Get(key); ok {
		if presentation, ok := cached.(*entities.Presentation); ok {
			e.hits.Add(1)
			e.logger.Debug("extraction cache hit", slog.String("key", key[:12]))
			return presentation, nil
		}
	}
	e.misses.Add(1)

	presentation, err := e.next.Extract(ctx, content)
	if err != nil {
		return nil, err
	}

	e.cache.SetDefault(key, presentation)
	return presentation, nil
}

// Stats returns hit and miss counters and the current entry count
func (e *Extractor) Stats() ports.CacheStats {
	return ports.CacheStats{
		Hits:    e.hits.Load(),
		Misses:  e.misses.Load(),
		Entries: e.cache.ItemCount(),
	}
}

// Flush drops every cached entry
func (e *Extractor) Flush() {
	e.cache.Flush()
}

func contentKey(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// Ensure Extractor implements ports.ExtractionCache
var _ ports.ExtractionCache = (*Extractor)(nil)
