// Package slog provides logging decorators for docdex interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docdex"
)

// Ensure LoggingCache implements docdex.ContentCache.
var _ docdex.ContentCache = (*LoggingCache)(nil)

// LoggingCache wraps a ContentCache with logging of fetch outcomes.
type LoggingCache struct {
	next   docdex.ContentCache
	logger *slog.Logger
}

// NewLoggingCache creates a new LoggingCache.
func NewLoggingCache(next docdex.ContentCache, logger *slog.Logger) *LoggingCache {
	return &LoggingCache{next: next, logger: logger}
}

// Fetch delegates to the wrapped cache and logs the outcome.
func (c *LoggingCache) Fetch(ctx context.Context, url string) *docdex.CacheEntry {
	begin := time.Now()
	entry := c.next.Fetch(ctx, url)
	duration := time.Since(begin)

	if entry.OK {
		c.logger.Debug("fetch",
			"url", url,
			"status", entry.Status,
			"bytes", len(entry.Content),
			"duration", duration,
		)
	} else {
		c.logger.Warn("fetch failed",
			"url", url,
			"status", entry.Status,
			"duration", duration,
		)
	}
	return entry
}

// Get delegates to the wrapped cache.
func (c *LoggingCache) Get(ctx context.Context, url string) (*docdex.CacheEntry, bool) {
	return c.next.Get(ctx, url)
}
