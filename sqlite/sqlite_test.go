package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/docdex"
	"github.com/fwojciec/docdex/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustOpenDB returns an open in-memory database, closed on test cleanup.
func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	return db
}

func TestCacheStore_PutEntry_replaces_prior_entry(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	store := sqlite.NewCacheStore(db)
	ctx := context.Background()

	entry := &docdex.CacheEntry{
		URL:          "https://example.com/doc.md",
		FetchedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Status:       200,
		OK:           true,
		ContentType:  "text/markdown",
		ETag:         `"v1"`,
		LastModified: "Mon, 05 Jan 2026 00:00:00 GMT",
		Content:      "first version",
	}
	require.NoError(t, store.PutEntry(ctx, entry))

	entry.Content = "second version"
	entry.ETag = `"v2"`
	require.NoError(t, store.PutEntry(ctx, entry))

	got, err := store.GetEntry(ctx, entry.URL)
	require.NoError(t, err)
	assert.Equal(t, "second version", got.Content)
	assert.Equal(t, `"v2"`, got.ETag)
	assert.True(t, got.OK)
	assert.Equal(t, entry.FetchedAt, got.FetchedAt)
}

func TestCacheStore_GetEntry_missing_returns_ENOTFOUND(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	store := sqlite.NewCacheStore(db)

	_, err := store.GetEntry(context.Background(), "https://example.com/absent.md")
	require.Error(t, err)
	assert.Equal(t, docdex.ENOTFOUND, docdex.ErrorCode(err))
}

func TestCacheStore_PutEntry_requires_URL(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	store := sqlite.NewCacheStore(db)

	err := store.PutEntry(context.Background(), &docdex.CacheEntry{})
	assert.Equal(t, docdex.EINVALID, docdex.ErrorCode(err))
}

func TestCacheStore_GetEntry_corrupt_timestamp_reads_as_absent(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	store := sqlite.NewCacheStore(db)
	ctx := context.Background()

	require.NoError(t, store.PutEntry(ctx, &docdex.CacheEntry{
		URL:       "https://example.com/doc.md",
		FetchedAt: time.Now().UTC(),
	}))

	// Mangle the stored timestamp directly.
	_, err := db.ExecContext(ctx, `UPDATE cache_entries SET fetched_at = 'garbage'`)
	require.NoError(t, err)

	_, err = store.GetEntry(ctx, "https://example.com/doc.md")
	assert.Equal(t, docdex.ENOTFOUND, docdex.ErrorCode(err))
}

func TestDocumentStore_roundtrip_preserves_order(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	store := sqlite.NewDocumentStore(db)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.PutDocument(ctx, &docdex.Document{
			ID:      id,
			URL:     "https://example.com/" + id,
			Content: "content " + id,
		}))
	}

	docs, err := store.Documents(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "a", docs[0].ID)
	assert.Equal(t, "c", docs[2].ID)
}

func TestDocumentStore_PutDocument_validates(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	store := sqlite.NewDocumentStore(db)

	err := store.PutDocument(context.Background(), &docdex.Document{URL: "https://example.com/a"})
	assert.Equal(t, docdex.EINVALID, docdex.ErrorCode(err))
}

func TestDocumentStore_DeleteDocuments_empties_store(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	store := sqlite.NewDocumentStore(db)
	ctx := context.Background()

	require.NoError(t, store.PutDocument(ctx, &docdex.Document{
		ID:  "a",
		URL: "https://example.com/a",
	}))
	require.NoError(t, store.DeleteDocuments(ctx))

	docs, err := store.Documents(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)
}
