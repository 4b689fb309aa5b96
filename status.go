package docdex

import "time"

// Status summarizes the most recent indexing pass for outward reporting.
type Status struct {
	// DocumentsIndexed counts all documents upserted by the pass, including
	// crawl-produced ones.
	DocumentsIndexed int `json:"documentsIndexed"`

	// CrawledDocuments counts documents produced by deep-crawl expansion.
	CrawledDocuments int `json:"crawledDocuments"`

	// LastIndexed is when the pass finished.
	LastIndexed time.Time `json:"lastIndexed"`

	// LastError is the pass's terminal error, if any.
	LastError string `json:"lastError,omitempty"`
}
