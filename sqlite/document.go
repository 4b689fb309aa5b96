package sqlite

import (
	"context"

	"github.com/fwojciec/docdex"
)

// Compile-time interface verification.
var _ docdex.DocumentStore = (*DocumentStore)(nil)

// DocumentStore implements docdex.DocumentStore using SQLite.
type DocumentStore struct {
	db *DB
}

// NewDocumentStore creates a new DocumentStore.
func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// PutDocument inserts or replaces a document by ID.
func (s *DocumentStore) PutDocument(ctx context.Context, doc *docdex.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	optional := 0
	if doc.Optional {
		optional = 1
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO documents (id, url, title, section, optional, content)
		VALUES (?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.URL, doc.Title, doc.Section, optional, doc.Content)

	return err
}

// Documents returns all stored documents in insertion order.
func (s *DocumentStore) Documents(ctx context.Context) ([]*docdex.Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, url, title, section, optional, content
		FROM documents
		ORDER BY rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*docdex.Document
	for rows.Next() {
		var doc docdex.Document
		var optional int
		if err := rows.Scan(&doc.ID, &doc.URL, &doc.Title, &doc.Section, &optional, &doc.Content); err != nil {
			return nil, err
		}
		doc.Optional = optional != 0
		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// DeleteDocuments removes all stored documents.
func (s *DocumentStore) DeleteDocuments(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM documents`)
	return err
}
