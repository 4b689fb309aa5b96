// Package http provides the HTTP-backed implementation of
// docdex.ContentCache: conditional GETs revalidated against a persistent
// store of prior entries.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/docdex"
)

// DefaultFetchTimeout is the default per-request timeout.
const DefaultFetchTimeout = 10 * time.Second

// Compile-time interface verification.
var _ docdex.ContentCache = (*Cache)(nil)

// Cache fetches URLs with conditional revalidation. Every fetch attempt,
// successful or not, is captured as a CacheEntry and persisted; faults never
// escape the Fetch boundary.
type Cache struct {
	client  *http.Client
	store   docdex.CacheStore
	timeout time.Duration
}

// Option configures a Cache.
type Option func(*Cache)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Cache) {
		c.timeout = d
	}
}

// WithClient sets the underlying HTTP client. Useful for tests.
func WithClient(client *http.Client) Option {
	return func(c *Cache) {
		c.client = client
	}
}

// NewCache creates a new Cache persisting entries to store.
func NewCache(store docdex.CacheStore, opts ...Option) *Cache {
	c := &Cache{
		store:   store,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = &http.Client{}
	}
	return c
}

// Fetch performs a conditional GET for url. A prior entry supplies
// If-None-Match and If-Modified-Since; a 304 response returns that prior
// entry unchanged, including its content. Any other response replaces the
// stored entry. Timeouts and transport faults yield failure entries
// (OK=false) rather than errors.
func (c *Cache) Fetch(ctx context.Context, url string) *docdex.CacheEntry {
	prior, hasPrior := c.Get(ctx, url)

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return c.persist(ctx, failureEntry(url, docdex.StatusNetworkFault))
	}
	if hasPrior {
		if prior.ETag != "" {
			req.Header.Set("If-None-Match", prior.ETag)
		}
		if prior.LastModified != "" {
			req.Header.Set("If-Modified-Since", prior.LastModified)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		status := docdex.StatusNetworkFault
		if isTimeout(err) {
			status = docdex.StatusTimeout
		}
		return c.persist(ctx, failureEntry(url, status))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified && hasPrior {
		return prior
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.persist(ctx, failureEntry(url, docdex.StatusNetworkFault))
	}

	return c.persist(ctx, &docdex.CacheEntry{
		URL:          url,
		FetchedAt:    time.Now().UTC(),
		Status:       resp.StatusCode,
		OK:           resp.StatusCode >= 200 && resp.StatusCode < 300,
		ContentType:  resp.Header.Get("Content-Type"),
		ETag:         resp.Header.Get("ETag"),
		LastModified: resp.Header.Get("Last-Modified"),
		Content:      string(body),
	})
}

// Get returns the last persisted entry for url without touching the network.
func (c *Cache) Get(ctx context.Context, url string) (*docdex.CacheEntry, bool) {
	entry, err := c.store.GetEntry(ctx, url)
	if err != nil {
		return nil, false
	}
	return entry, true
}

// persist stores the entry, replacing any prior one. Persistence is best
// effort: a storage fault costs revalidation on the next fetch, not the
// current result.
func (c *Cache) persist(ctx context.Context, entry *docdex.CacheEntry) *docdex.CacheEntry {
	_ = c.store.PutEntry(ctx, entry)
	return entry
}

func failureEntry(url string, status int) *docdex.CacheEntry {
	return &docdex.CacheEntry{
		URL:       url,
		FetchedAt: time.Now().UTC(),
		Status:    status,
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
