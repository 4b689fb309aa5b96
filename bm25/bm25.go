// Package bm25 provides an incremental, in-memory BM25 relevance index over
// a mutable document set. Upserts replace prior versions wholesale: the
// document-frequency table and average-length accumulator always reflect
// exactly the currently-held set, so repeated updates to the same ID cause no
// length-normalization drift.
package bm25

import (
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/fwojciec/docdex"
)

// BM25 parameters.
const (
	k1  = 1.5
	b   = 0.75
	eps = 0.5 // idf smoothing

	// optionalPenalty is the score multiplier for optional-flagged documents.
	optionalPenalty = 0.7

	// DefaultLimit is the result cap used when SearchOptions.Limit is zero.
	DefaultLimit = 5
)

// Compile-time interface verification.
var _ docdex.SearchIndex = (*Index)(nil)

// entry holds one indexed document and its term statistics.
type entry struct {
	doc    *docdex.Document
	terms  map[string]int
	length int
}

// Index is an incremental BM25 index. It is safe for concurrent use: the
// indexing pass is the single writer, queries read a consistent snapshot
// under the read lock.
type Index struct {
	mu       sync.RWMutex
	docs     map[string]*entry
	df       map[string]int
	totalLen int
	avgLen   float64
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		docs: make(map[string]*entry),
		df:   make(map[string]int),
	}
}

// Upsert adds or replaces the document with doc.ID. Replacing first reverses
// the prior version's contribution to the document-frequency table and the
// total-length accumulator.
func (idx *Index) Upsert(doc *docdex.Document) {
	tokens := Tokenize(doc.Title + " " + doc.Content)
	tf := termFrequencies(tokens)

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if prev, ok := idx.docs[doc.ID]; ok {
		for term := range prev.terms {
			idx.df[term]--
			if idx.df[term] <= 0 {
				delete(idx.df, term)
			}
		}
		idx.totalLen -= prev.length
	}

	idx.docs[doc.ID] = &entry{
		doc:    doc,
		terms:  tf,
		length: len(tokens),
	}
	for term := range tf {
		idx.df[term]++
	}
	idx.totalLen += len(tokens)

	idx.recomputeAvg()
}

// Clear removes all documents and resets all accumulators.
func (idx *Index) Clear() {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.docs = make(map[string]*entry)
	idx.df = make(map[string]int)
	idx.totalLen = 0
	idx.avgLen = 0
}

// Stats returns a snapshot of index accounting.
func (idx *Index) Stats() docdex.IndexStats {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return docdex.IndexStats{
		Documents:    len(idx.docs),
		Terms:        len(idx.df),
		AvgDocLength: idx.avgLen,
	}
}

// Search returns documents ranked by BM25 relevance to query, highest score
// first, truncated to the limit (default 5). Documents with non-positive
// scores are excluded; optional-flagged documents are penalized by 0.7.
func (idx *Index) Search(query string, opts docdex.SearchOptions) []docdex.SearchResult {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	n := len(idx.docs)
	if n < 1 {
		n = 1
	}

	var results []docdex.SearchResult
	for _, e := range idx.docs {
		if opts.Section != "" && !strings.EqualFold(e.doc.Section, opts.Section) {
			continue
		}

		score := idx.score(e, tokens, n)
		if score <= 0 {
			continue
		}

		results = append(results, docdex.SearchResult{
			Doc:     e.doc,
			Score:   score,
			Snippet: snippet(e.doc.Content, tokens),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}

	return results
}

// score computes the BM25 score of one document for the query tokens.
func (idx *Index) score(e *entry, tokens []string, n int) float64 {
	lengthNorm := 1 - b
	if idx.avgLen > 0 {
		lengthNorm = (1 - b) + b*(float64(e.length)/idx.avgLen)
	}

	var total float64
	for _, tok := range tokens {
		tf, ok := e.terms[tok]
		if !ok {
			continue
		}

		df := idx.df[tok]
		if df == 0 {
			df = 1
		}

		idf := math.Log(1 + (float64(n)-float64(df)+eps)/(float64(df)+eps))
		tfScore := float64(tf) * (k1 + 1) / (float64(tf) + k1*lengthNorm)
		total += idf * tfScore
	}

	total *= 100
	if e.doc.Optional {
		total *= optionalPenalty
	}
	return total
}

// recomputeAvg updates the running average length; zero when empty.
// Caller must hold the write lock.
func (idx *Index) recomputeAvg() {
	if len(idx.docs) == 0 {
		idx.avgLen = 0
		return
	}
	idx.avgLen = float64(idx.totalLen) / float64(len(idx.docs))
}
