package main

import (
	"fmt"

	"github.com/fwojciec/docdex"
)

// Run executes the search command. The in-memory index is rebuilt from the
// persisted corpus, so search works in a fresh process without refetching.
func (c *SearchCmd) Run(deps *Dependencies) error {
	docs, err := deps.Documents.Documents(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdex.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents indexed. Use 'docdex index' first.")
		return nil
	}

	for _, doc := range docs {
		deps.Index.Upsert(doc)
	}

	results := deps.Index.Search(c.Query, docdex.SearchOptions{
		Limit:   c.Limit,
		Section: c.Section,
	})
	fmt.Fprintln(deps.Stdout, docdex.FormatResults(results))
	return nil
}
