package docdex

import "context"

// Document represents one searchable unit of the corpus: a manifest page, a
// crawled page, or a chunk of the companion document.
type Document struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Title    string `json:"title"`
	Section  string `json:"section"`
	Optional bool   `json:"optional"`
	Content  string `json:"content"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.ID == "" {
		return Errorf(EINVALID, "document ID required")
	}
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	return nil
}

// DocumentStore persists the indexed corpus so a fresh process can rebuild
// the in-memory index without refetching. Each indexing pass replaces the
// stored set wholesale.
type DocumentStore interface {
	// PutDocument inserts or replaces a document by ID.
	PutDocument(ctx context.Context, doc *Document) error

	// Documents returns all stored documents in insertion order.
	Documents(ctx context.Context) ([]*Document, error)

	// DeleteDocuments removes all stored documents.
	DeleteDocuments(ctx context.Context) error
}
