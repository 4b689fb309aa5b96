package crawl

import (
	"strings"
	"sync"

	"github.com/fwojciec/docdex"
	"github.com/fwojciec/docdex/bloom"
)

// Frontier is an in-memory FIFO task queue with Bloom filter URL
// deduplication. Breadth-first order falls out of FIFO consumption: all
// depth-n tasks are enqueued before any depth-n+1 task is discovered.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue []docdex.CrawlTask
}

// NewFrontier creates a new Frontier sized for n expected URLs
// with the given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewFilter(n, fpRate),
	}
}

// Push adds a task to the frontier.
// Returns false if the task's URL has already been seen.
// URL fragments are stripped first - URLs differing only by fragment are
// considered duplicates.
func (f *Frontier) Push(task docdex.CrawlTask) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	url := stripFragment(task.URL)
	if f.seen.Test(url) {
		return false
	}
	f.seen.Add(url)

	task.URL = url
	f.queue = append(f.queue, task)
	return true
}

// Pop returns the next task in enqueue order.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (docdex.CrawlTask, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return docdex.CrawlTask{}, false
	}
	task := f.queue[0]
	f.queue = f.queue[1:]
	return task, true
}

// Len returns the number of queued tasks.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the URL has been queued or processed.
// URL fragments are stripped before checking.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(stripFragment(rawURL))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
