package docdex

// SearchResult represents one ranked search match.
type SearchResult struct {
	Doc     *Document `json:"doc"`
	Score   float64   `json:"score"`
	Snippet string    `json:"snippet"`
}

// SearchOptions configures search behavior.
type SearchOptions struct {
	// Limit caps the number of results. Zero means the default (5).
	Limit int `json:"limit,omitempty"`

	// Section restricts results to documents whose section matches
	// case-insensitively. Empty matches all sections.
	Section string `json:"section,omitempty"`
}

// IndexStats is a snapshot of index accounting, used for status reporting
// and for verifying that repeated upserts leave no residue.
type IndexStats struct {
	Documents    int     `json:"documents"`
	Terms        int     `json:"terms"`
	AvgDocLength float64 `json:"avgDocLength"`
}

// SearchIndex is an incremental BM25 relevance index over a mutable document
// set. Upserting an existing ID replaces the prior version wholesale; the
// index's document-frequency table and average-length accumulator always
// reflect exactly the currently-held set.
type SearchIndex interface {
	// Upsert adds or replaces the document with doc.ID.
	Upsert(doc *Document)

	// Search returns documents ranked by BM25 relevance to query,
	// highest score first. An empty or stop-word-only query returns nil.
	Search(query string, opts SearchOptions) []SearchResult

	// Clear removes all documents.
	Clear()

	// Stats returns a snapshot of index accounting.
	Stats() IndexStats
}
