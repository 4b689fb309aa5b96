// Package ingest sequences a full indexing pass: manifest ingestion,
// concurrent fetching of direct links, optional companion-document chunking,
// optional deep crawl of markdown links, and index plus store writes.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/docdex"
)

// DefaultConcurrency caps parallel direct-link fetches when Concurrency is
// unset.
const DefaultConcurrency = 5

// Orchestrator runs indexing passes. Passes are single-flight: a Reindex
// while another pass is running fails with EUNAVAILABLE instead of queuing.
type Orchestrator struct {
	Cache     docdex.ContentCache
	Parser    docdex.ManifestParser
	Extractor docdex.Extractor
	Converter docdex.Converter
	Crawler   docdex.Crawler
	Index     docdex.SearchIndex
	Documents docdex.DocumentStore
	Logger    *slog.Logger

	// ManifestURL is the llms.txt seed document.
	ManifestURL string

	// FullDocURL, when set, is chunked by heading and indexed per section.
	FullDocURL string

	// Concurrency caps parallel direct-link fetches.
	Concurrency int

	// CrawlOptions bounds the deep crawl of markdown links. The crawl is
	// skipped entirely when Crawler is nil.
	CrawlOptions docdex.CrawlOptions

	mu       sync.Mutex
	indexing bool
	status   docdex.Status
}

// Status returns a snapshot of the most recent pass.
func (o *Orchestrator) Status() docdex.Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// Reindex runs one complete indexing pass. The prior index survives intact
// when the manifest cannot be fetched or parsed; it is only cleared once a
// valid manifest is in hand. Individual link failures are logged and skipped,
// never fatal.
func (o *Orchestrator) Reindex(ctx context.Context) error {
	o.mu.Lock()
	if o.indexing {
		o.mu.Unlock()
		return docdex.Errorf(docdex.EUNAVAILABLE, "indexing already in progress")
	}
	o.indexing = true
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.indexing = false
		o.mu.Unlock()
	}()

	runID := uuid.NewString()
	logger := o.logger().With("run", runID)
	logger.Info("indexing pass started", "manifest", o.ManifestURL)

	err := o.reindex(ctx, logger)

	o.mu.Lock()
	if err != nil {
		o.status.LastError = err.Error()
	} else {
		o.status.LastError = ""
		o.status.LastIndexed = time.Now()
	}
	o.mu.Unlock()

	if err != nil {
		logger.Error("indexing pass failed", "error", err)
		return err
	}
	logger.Info("indexing pass finished",
		"documents", o.Index.Stats().Documents,
	)
	return nil
}

func (o *Orchestrator) reindex(ctx context.Context, logger *slog.Logger) error {
	entry := o.Cache.Fetch(ctx, o.ManifestURL)
	if !entry.OK {
		return docdex.Errorf(docdex.EUNAVAILABLE, "fetch manifest %s: status %d", o.ManifestURL, entry.Status)
	}

	manifest, err := o.Parser.Parse(entry.Content)
	if err != nil {
		return fmt.Errorf("parse manifest: %w", err)
	}

	// Valid manifest in hand: the pass now owns the index.
	o.Index.Clear()
	if err := o.Documents.DeleteDocuments(ctx); err != nil {
		return fmt.Errorf("clear document store: %w", err)
	}

	var seeds []docdex.Link
	var direct []docdex.Link
	for _, link := range manifest.Links {
		if o.Crawler != nil && docdex.IsMarkdownURL(link.URL) {
			seeds = append(seeds, link)
		} else {
			direct = append(direct, link)
		}
	}

	if err := o.fetchDirect(ctx, logger, direct); err != nil {
		return err
	}

	if o.FullDocURL != "" {
		o.indexFullDoc(ctx, logger)
	}

	crawled := 0
	if o.Crawler != nil && len(seeds) > 0 {
		docs, err := o.Crawler.Crawl(ctx, seeds, o.CrawlOptions)
		if err != nil {
			return fmt.Errorf("crawl: %w", err)
		}
		for _, doc := range docs {
			o.upsert(ctx, logger, &docdex.Document{
				ID:      doc.URL,
				URL:     doc.URL,
				Title:   doc.Title,
				Section: doc.Section,
				Content: doc.Content,
			})
		}
		crawled = len(docs)
	}

	o.mu.Lock()
	o.status.DocumentsIndexed = o.Index.Stats().Documents
	o.status.CrawledDocuments = crawled
	o.mu.Unlock()

	return nil
}

// fetchDirect fetches every non-crawled manifest link with a bounded worker
// group and indexes each as one document. Failures are skipped.
func (o *Orchestrator) fetchDirect(ctx context.Context, logger *slog.Logger, links []docdex.Link) error {
	concurrency := o.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	type fetched struct {
		link    docdex.Link
		content string
		err     error
	}

	resultCh := make(chan fetched, len(links))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, link := range links {
			link := link
			g.Go(func() error {
				content, err := o.fetchContent(gctx, link.URL)
				resultCh <- fetched{link: link, content: content, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	for r := range resultCh {
		if r.err != nil {
			logger.Warn("link fetch failed", "url", r.link.URL, "error", r.err)
			continue
		}
		o.upsert(ctx, logger, &docdex.Document{
			ID:       r.link.URL,
			URL:      r.link.URL,
			Title:    r.link.Title,
			Section:  r.link.Section,
			Optional: r.link.Optional,
			Content:  r.content,
		})
	}

	return ctx.Err()
}

// fetchContent fetches one URL through the cache and normalizes HTML bodies
// to markdown.
func (o *Orchestrator) fetchContent(ctx context.Context, url string) (string, error) {
	entry := o.Cache.Fetch(ctx, url)
	if !entry.OK {
		return "", fmt.Errorf("fetch %s: status %d", url, entry.Status)
	}

	if !entry.IsHTML() {
		return entry.Content, nil
	}

	extracted, err := o.Extractor.Extract(entry.Content)
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", url, err)
	}
	markdown, err := o.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return "", fmt.Errorf("convert %s: %w", url, err)
	}
	return markdown, nil
}

// indexFullDoc fetches the companion document, splits it on headings, and
// indexes each chunk as its own document. A missing companion is not fatal.
func (o *Orchestrator) indexFullDoc(ctx context.Context, logger *slog.Logger) {
	content, err := o.fetchContent(ctx, o.FullDocURL)
	if err != nil {
		logger.Warn("companion document fetch failed", "url", o.FullDocURL, "error", err)
		return
	}

	for i, chunk := range docdex.ChunkDocument(content) {
		o.upsert(ctx, logger, &docdex.Document{
			ID:      fmt.Sprintf("%s#%d", o.FullDocURL, i),
			URL:     o.FullDocURL,
			Title:   chunk.Section,
			Section: chunk.Section,
			Content: chunk.Content,
		})
	}
}

// upsert writes a document to both the index and the persistent store.
// Store failures are logged; the in-memory index stays authoritative for
// the pass.
func (o *Orchestrator) upsert(ctx context.Context, logger *slog.Logger, doc *docdex.Document) {
	o.Index.Upsert(doc)
	if err := o.Documents.PutDocument(ctx, doc); err != nil {
		logger.Warn("document store write failed", "id", doc.ID, "error", err)
	}
}

// Run performs one pass immediately and then re-indexes every interval until
// the context is canceled. Pass failures are logged and the loop continues.
func (o *Orchestrator) Run(ctx context.Context, interval time.Duration) error {
	// Reindex logs its own failures; loop errors never stop the refresh.
	_ = o.Reindex(ctx)
	if interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			_ = o.Reindex(ctx)
		}
	}
}

func (o *Orchestrator) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
