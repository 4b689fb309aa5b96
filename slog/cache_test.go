package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/docdex"
	"github.com/fwojciec/docdex/mock"
	docslog "github.com/fwojciec/docdex/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingCache_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with status, bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.ContentCache{
			FetchFn: func(ctx context.Context, url string) *docdex.CacheEntry {
				return &docdex.CacheEntry{URL: url, Status: 200, OK: true, Content: "hello"}
			},
		}

		cache := docslog.NewLoggingCache(inner, logger)
		entry := cache.Fetch(context.Background(), "https://example.com/llms.txt")

		require.True(t, entry.OK)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://example.com/llms.txt")
		assert.Contains(t, output, "status=200")
		assert.Contains(t, output, "bytes=5")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs warning on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ContentCache{
			FetchFn: func(ctx context.Context, url string) *docdex.CacheEntry {
				return &docdex.CacheEntry{URL: url, Status: docdex.StatusTimeout}
			},
		}

		cache := docslog.NewLoggingCache(inner, logger)
		entry := cache.Fetch(context.Background(), "https://example.com/slow.md")

		require.False(t, entry.OK)
		output := buf.String()
		assert.Contains(t, output, "fetch failed")
		assert.Contains(t, output, "status=408")
	})
}

func TestLoggingCache_Get(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner cache", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ContentCache{
			GetFn: func(ctx context.Context, url string) (*docdex.CacheEntry, bool) {
				return &docdex.CacheEntry{URL: url, Content: "cached"}, true
			},
		}

		cache := docslog.NewLoggingCache(inner, logger)
		entry, ok := cache.Get(context.Background(), "https://example.com/a.md")

		require.True(t, ok)
		assert.Equal(t, "cached", entry.Content)
	})
}
