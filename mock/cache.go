// Package mock provides hand-written mock implementations of docdex
// interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/docdex"
)

var _ docdex.ContentCache = (*ContentCache)(nil)

// ContentCache is a mock implementation of docdex.ContentCache.
type ContentCache struct {
	FetchFn func(ctx context.Context, url string) *docdex.CacheEntry
	GetFn   func(ctx context.Context, url string) (*docdex.CacheEntry, bool)
}

func (c *ContentCache) Fetch(ctx context.Context, url string) *docdex.CacheEntry {
	return c.FetchFn(ctx, url)
}

func (c *ContentCache) Get(ctx context.Context, url string) (*docdex.CacheEntry, bool) {
	return c.GetFn(ctx, url)
}

var _ docdex.CacheStore = (*CacheStore)(nil)

// CacheStore is a mock implementation of docdex.CacheStore.
type CacheStore struct {
	PutEntryFn func(ctx context.Context, entry *docdex.CacheEntry) error
	GetEntryFn func(ctx context.Context, url string) (*docdex.CacheEntry, error)
}

func (s *CacheStore) PutEntry(ctx context.Context, entry *docdex.CacheEntry) error {
	return s.PutEntryFn(ctx, entry)
}

func (s *CacheStore) GetEntry(ctx context.Context, url string) (*docdex.CacheEntry, error) {
	return s.GetEntryFn(ctx, url)
}
