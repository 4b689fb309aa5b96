// Package crawl expands markdown link graphs breadth-first under depth,
// worker, and document budgets. A single coordinating loop owns all shared
// scheduling state (frontier, counters, results); fetch units execute in
// parallel and report back over a channel, each in its own failure domain.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fwojciec/docdex"
)

// Frontier sizing for deduplication.
const (
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01
)

// Defaults applied when CrawlOptions fields are zero.
const (
	DefaultMaxWorkers   = 5
	DefaultMaxDocuments = 50
)

// Compile-time interface verification.
var _ docdex.Crawler = (*Crawler)(nil)

// Crawler implements docdex.Crawler. All I/O goes through the content cache;
// HTML pages are normalized to markdown before link extraction.
type Crawler struct {
	Cache     docdex.ContentCache
	Extractor docdex.Extractor
	Converter docdex.Converter
	Logger    *slog.Logger
}

// taskResult pairs a settled task with its outcome for the coordinator.
type taskResult struct {
	task docdex.CrawlTask
	res  docdex.CrawlResult
}

// Crawl expands seeds breadth-first. Only markdown-file seeds are admitted;
// each URL is fetched at most once per run; link discovery stops at
// opts.MaxDepth and the run stops admitting work once opts.MaxDocuments
// documents have been produced. Individual fetch failures are counted and
// logged but never abort the run.
func (c *Crawler) Crawl(ctx context.Context, seeds []docdex.Link, opts docdex.CrawlOptions) ([]*docdex.CrawledDocument, error) {
	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = DefaultMaxWorkers
	}
	maxDocuments := opts.MaxDocuments
	if maxDocuments <= 0 {
		maxDocuments = DefaultMaxDocuments
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	for _, seed := range seeds {
		if !docdex.IsMarkdownURL(seed.URL) {
			continue
		}
		frontier.Push(docdex.CrawlTask{
			URL:      seed.URL,
			MaxDepth: opts.MaxDepth,
			Section:  seed.Section,
			Title:    seed.Title,
		})
	}

	taskCh := make(chan docdex.CrawlTask)
	resultCh := make(chan taskResult)

	var wg sync.WaitGroup
	for i := 0; i < maxWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskCh {
				r := taskResult{task: task, res: c.processTask(ctx, task)}
				select {
				case resultCh <- r:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	// Coordinator loop: the only mutator of frontier, counters and results.
	var results []*docdex.CrawledDocument
	var failed int
	pending := 0
	var next *docdex.CrawlTask

	if task, ok := frontier.Pop(); ok {
		next = &task
	}

	handle := func(r taskResult) {
		pending--
		if r.res.Err != nil {
			failed++
			if c.Logger != nil {
				c.Logger.Warn("crawl fetch failed",
					"url", r.task.URL,
					"depth", r.task.Depth,
					"error", r.res.Err,
				)
			}
			return
		}

		if len(results) >= maxDocuments {
			return
		}
		results = append(results, &docdex.CrawledDocument{
			URL:     r.res.URL,
			Content: r.res.Content,
			Depth:   r.res.Depth,
			Section: r.task.Section,
			Title:   r.task.Title,
		})

		for _, link := range r.res.Discovered {
			if frontier.Seen(link) {
				continue
			}
			frontier.Push(docdex.CrawlTask{
				URL:       link,
				Depth:     r.task.Depth + 1,
				MaxDepth:  r.task.MaxDepth,
				ParentURL: r.task.URL,
				Section:   r.task.Section,
				Title:     r.task.Title + " (linked)",
			})
		}
	}

coordinatorLoop:
	for {
		// Budget reached: discard queued tasks, stop admitting new work.
		if len(results) >= maxDocuments {
			next = nil
		}

		if next == nil && pending == 0 {
			break coordinatorLoop
		}
		if ctx.Err() != nil {
			break coordinatorLoop
		}

		if next != nil && pending < maxWorkers {
			select {
			case <-ctx.Done():
				break coordinatorLoop
			case taskCh <- *next:
				pending++
				next = nil
			case r := <-resultCh:
				handle(r)
			}
		} else {
			// At capacity or out of work: block until a unit settles.
			select {
			case <-ctx.Done():
				break coordinatorLoop
			case r, ok := <-resultCh:
				if !ok {
					break coordinatorLoop
				}
				handle(r)
			}
		}

		if next == nil && len(results) < maxDocuments {
			if task, ok := frontier.Pop(); ok {
				next = &task
			}
		}
	}

	// Signal workers to stop and await still-outstanding dispatches.
	close(taskCh)
	for r := range resultCh {
		handle(r)
	}

	if c.Logger != nil {
		c.Logger.Info("crawl finished",
			"documents", len(results),
			"failed", failed,
		)
	}

	return results, ctx.Err()
}

// processTask is the fetch unit: fetch through the cache, normalize HTML to
// markdown, and extract child links while below the depth budget. It runs in
// isolation; any fault, including a panic, is converted into a failure
// result and never reaches the coordinator or sibling units.
func (c *Crawler) processTask(ctx context.Context, task docdex.CrawlTask) (res docdex.CrawlResult) {
	res = docdex.CrawlResult{URL: task.URL, Depth: task.Depth}

	defer func() {
		if r := recover(); r != nil {
			res = docdex.CrawlResult{
				URL:   task.URL,
				Depth: task.Depth,
				Err:   fmt.Errorf("worker fault: %v", r),
			}
		}
	}()

	entry := c.Cache.Fetch(ctx, task.URL)
	if !entry.OK {
		res.Err = fmt.Errorf("fetch %s: status %d", task.URL, entry.Status)
		return res
	}

	content := entry.Content
	if entry.IsHTML() {
		extracted, err := c.Extractor.Extract(content)
		if err != nil {
			res.Err = fmt.Errorf("extract %s: %w", task.URL, err)
			return res
		}
		markdown, err := c.Converter.Convert(extracted.ContentHTML)
		if err != nil {
			res.Err = fmt.Errorf("convert %s: %w", task.URL, err)
			return res
		}
		content = markdown
	}

	res.Content = content
	if task.Depth < task.MaxDepth {
		res.Discovered = docdex.ExtractMarkdownLinks(content, task.URL)
	}

	return res
}
