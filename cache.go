package docdex

import (
	"context"
	"strings"
	"time"
)

// Cache entry status codes for fetch attempts that never produced an HTTP
// response. Real HTTP statuses occupy 100-599, so 0 is free for transport
// faults; timeouts map to 408 so callers can tell the two apart.
const (
	StatusNetworkFault = 0
	StatusTimeout      = 408
)

// CacheEntry is the last known state of one URL. Every fetch attempt,
// successful or not, produces an entry; the entry for a URL is replaced
// wholesale on each write.
type CacheEntry struct {
	URL          string    `json:"url"`
	FetchedAt    time.Time `json:"fetchedAt"`
	Status       int       `json:"status"`
	OK           bool      `json:"ok"`
	ContentType  string    `json:"contentType"`
	ETag         string    `json:"etag"`
	LastModified string    `json:"lastModified"`
	Content      string    `json:"content"`
}

// IsHTML reports whether the entry's content type indicates an HTML body
// that needs normalization to markdown before indexing.
func (e *CacheEntry) IsHTML() bool {
	return containsFold(e.ContentType, "text/html") || containsFold(e.ContentType, "application/xhtml")
}

// ContentCache fetches URLs with conditional revalidation against a persistent
// store of prior entries.
//
// Fetch never returns an error: timeouts, transport faults and HTTP failures
// are all captured as entries with OK=false so that one failing URL never
// aborts an indexing pass.
type ContentCache interface {
	// Fetch performs a conditional GET for url, attaching If-None-Match and
	// If-Modified-Since headers from any prior entry. A 304 response returns
	// the prior entry unchanged, including its content. The returned entry is
	// never nil.
	Fetch(ctx context.Context, url string) *CacheEntry

	// Get returns the last persisted entry for url without touching the
	// network. Missing or corrupt records read as absent.
	Get(ctx context.Context, url string) (*CacheEntry, bool)
}

// CacheStore persists one CacheEntry per URL.
type CacheStore interface {
	// PutEntry inserts or replaces the entry for its URL.
	PutEntry(ctx context.Context, entry *CacheEntry) error

	// GetEntry retrieves the entry for a URL.
	// Returns ENOTFOUND if no valid entry exists.
	GetEntry(ctx context.Context, url string) (*CacheEntry, error)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}

