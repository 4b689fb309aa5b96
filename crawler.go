package docdex

import "context"

// CrawlTask is one pending fetch-and-expand unit of work. Tasks are created
// by seeding or by link discovery and consumed exactly once.
type CrawlTask struct {
	URL       string
	Depth     int
	MaxDepth  int
	ParentURL string
	Section   string
	Title     string
}

// CrawlResult is the outcome of one CrawlTask, produced by an isolated fetch
// unit and consumed only by the coordinator. Err is set when the fetch or
// normalization failed; failed results carry no content or links.
type CrawlResult struct {
	URL        string
	Content    string
	Discovered []string
	Depth      int
	Err        error
}

// CrawledDocument is one successfully crawled page, ready for indexing.
type CrawledDocument struct {
	URL     string
	Content string
	Depth   int
	Section string
	Title   string
}

// CrawlOptions bounds a crawl run.
type CrawlOptions struct {
	// MaxDepth is the deepest level link discovery reaches. Depth-0 tasks
	// come from seeding; discovery is only performed at depth < MaxDepth.
	MaxDepth int

	// MaxWorkers caps concurrently executing fetch units.
	MaxWorkers int

	// MaxDocuments caps successfully produced documents per run.
	MaxDocuments int
}

// Crawler expands a set of seed links breadth-first into crawled documents.
// Only markdown-file seeds are admitted; other links are handled elsewhere as
// ordinary manifest pages.
type Crawler interface {
	Crawl(ctx context.Context, seeds []Link, opts CrawlOptions) ([]*CrawledDocument, error)
}
