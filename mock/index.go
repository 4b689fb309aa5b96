package mock

import (
	"context"

	"github.com/fwojciec/docdex"
)

var _ docdex.SearchIndex = (*SearchIndex)(nil)

// SearchIndex is a mock implementation of docdex.SearchIndex.
type SearchIndex struct {
	UpsertFn func(doc *docdex.Document)
	SearchFn func(query string, opts docdex.SearchOptions) []docdex.SearchResult
	ClearFn  func()
	StatsFn  func() docdex.IndexStats
}

func (i *SearchIndex) Upsert(doc *docdex.Document) {
	i.UpsertFn(doc)
}

func (i *SearchIndex) Search(query string, opts docdex.SearchOptions) []docdex.SearchResult {
	return i.SearchFn(query, opts)
}

func (i *SearchIndex) Clear() {
	i.ClearFn()
}

func (i *SearchIndex) Stats() docdex.IndexStats {
	return i.StatsFn()
}

var _ docdex.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is a mock implementation of docdex.DocumentStore.
type DocumentStore struct {
	PutDocumentFn     func(ctx context.Context, doc *docdex.Document) error
	DocumentsFn       func(ctx context.Context) ([]*docdex.Document, error)
	DeleteDocumentsFn func(ctx context.Context) error
}

func (s *DocumentStore) PutDocument(ctx context.Context, doc *docdex.Document) error {
	return s.PutDocumentFn(ctx, doc)
}

func (s *DocumentStore) Documents(ctx context.Context) ([]*docdex.Document, error) {
	return s.DocumentsFn(ctx)
}

func (s *DocumentStore) DeleteDocuments(ctx context.Context) error {
	return s.DeleteDocumentsFn(ctx)
}
