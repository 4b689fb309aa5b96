package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docdex"
)

// Compile-time interface verification.
var _ docdex.CacheStore = (*CacheStore)(nil)

// CacheStore implements docdex.CacheStore using SQLite. Entries are keyed by
// a content-independent xxHash digest of the URL string, one row per URL.
type CacheStore struct {
	db *DB
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(db *DB) *CacheStore {
	return &CacheStore{db: db}
}

// digestURL computes the xxHash digest of a URL string as hex.
func digestURL(url string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(url))
}

// PutEntry inserts or replaces the entry for its URL.
func (s *CacheStore) PutEntry(ctx context.Context, entry *docdex.CacheEntry) error {
	if entry.URL == "" {
		return docdex.Errorf(docdex.EINVALID, "cache entry URL required")
	}

	ok := 0
	if entry.OK {
		ok = 1
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO cache_entries
			(url_digest, url, fetched_at, status, ok, content_type, etag, last_modified, content)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, digestURL(entry.URL), entry.URL, entry.FetchedAt.UTC().Format(time.RFC3339), entry.Status,
		ok, entry.ContentType, entry.ETag, entry.LastModified, entry.Content)

	return err
}

// GetEntry retrieves the entry for a URL. Missing and corrupt rows both
// return ENOTFOUND; a damaged record is indistinguishable from a cache miss
// by design of the cache contract.
func (s *CacheStore) GetEntry(ctx context.Context, url string) (*docdex.CacheEntry, error) {
	var entry docdex.CacheEntry
	var fetchedAt string
	var ok int

	err := s.db.QueryRowContext(ctx, `
		SELECT url, fetched_at, status, ok, content_type, etag, last_modified, content
		FROM cache_entries
		WHERE url_digest = ?
	`, digestURL(url)).Scan(&entry.URL, &fetchedAt, &entry.Status, &ok,
		&entry.ContentType, &entry.ETag, &entry.LastModified, &entry.Content)

	if err != nil {
		return nil, docdex.Errorf(docdex.ENOTFOUND, "no cache entry for %q", url)
	}

	entry.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, docdex.Errorf(docdex.ENOTFOUND, "no cache entry for %q", url)
	}
	entry.OK = ok != 0

	return &entry, nil
}
