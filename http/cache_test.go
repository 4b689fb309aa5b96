package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/docdex"
	dochttp "github.com/fwojciec/docdex/http"
	"github.com/fwojciec/docdex/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCache returns a Cache backed by an in-memory store.
func newCache(t *testing.T, opts ...dochttp.Option) *dochttp.Cache {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	return dochttp.NewCache(sqlite.NewCacheStore(db), opts...)
}

func TestCache_Fetch_persists_successful_response(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/markdown")
		w.Header().Set("ETag", `"a1"`)
		_, _ = w.Write([]byte("hello"))
	}))
	defer srv.Close()

	cache := newCache(t)
	entry := cache.Fetch(context.Background(), srv.URL)

	assert.True(t, entry.OK)
	assert.Equal(t, 200, entry.Status)
	assert.Equal(t, "hello", entry.Content)
	assert.Equal(t, `"a1"`, entry.ETag)
	assert.Equal(t, "text/markdown", entry.ContentType)

	got, ok := cache.Get(context.Background(), srv.URL)
	require.True(t, ok)
	assert.Equal(t, "hello", got.Content)
}

func TestCache_Fetch_304_returns_prior_entry_unchanged(t *testing.T) {
	t.Parallel()

	var conditional atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("If-None-Match") == `"a1"` {
			conditional.Store(true)
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", `"a1"`)
		w.Header().Set("Last-Modified", "Mon, 05 Jan 2026 00:00:00 GMT")
		_, _ = w.Write([]byte("hello"))
	}))
	defer srv.Close()

	cache := newCache(t)
	ctx := context.Background()

	first := cache.Fetch(ctx, srv.URL)
	require.True(t, first.OK)

	second := cache.Fetch(ctx, srv.URL)
	assert.True(t, conditional.Load(), "second request should carry If-None-Match")
	assert.Equal(t, "hello", second.Content, "304 must not blank the cached body")
	assert.Equal(t, `"a1"`, second.ETag)
	assert.True(t, second.OK)
}

func TestCache_Fetch_http_failure_is_captured_not_thrown(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cache := newCache(t)
	entry := cache.Fetch(context.Background(), srv.URL)

	assert.False(t, entry.OK)
	assert.Equal(t, 500, entry.Status)

	// The failure replaces any prior entry.
	got, ok := cache.Get(context.Background(), srv.URL)
	require.True(t, ok)
	assert.Equal(t, 500, got.Status)
}

func TestCache_Fetch_timeout_yields_failure_entry(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	cache := newCache(t, dochttp.WithTimeout(20*time.Millisecond))
	entry := cache.Fetch(context.Background(), srv.URL)

	assert.False(t, entry.OK)
	assert.Equal(t, docdex.StatusTimeout, entry.Status)
}

func TestCache_Fetch_network_fault_yields_failure_entry(t *testing.T) {
	t.Parallel()

	// Nothing listens here.
	cache := newCache(t)
	entry := cache.Fetch(context.Background(), "http://127.0.0.1:1/nope.md")

	assert.False(t, entry.OK)
	assert.Equal(t, docdex.StatusNetworkFault, entry.Status)
}

func TestCache_Get_absent_URL(t *testing.T) {
	t.Parallel()

	cache := newCache(t)
	_, ok := cache.Get(context.Background(), "https://example.com/never-fetched.md")
	assert.False(t, ok)
}
