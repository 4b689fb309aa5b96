package main

import (
	"fmt"

	"github.com/fwojciec/docdex"
)

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	entry, ok := deps.Cache.Get(deps.Ctx, c.URL)
	if !ok {
		fmt.Fprintf(deps.Stderr, "error: no cached entry for %q\n", c.URL)
		return docdex.Errorf(docdex.ENOTFOUND, "no cached entry for %q", c.URL)
	}

	fmt.Fprintf(deps.Stdout, "URL:          %s\n", entry.URL)
	fmt.Fprintf(deps.Stdout, "Fetched:      %s\n", entry.FetchedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(deps.Stdout, "Status:       %d\n", entry.Status)
	if entry.ContentType != "" {
		fmt.Fprintf(deps.Stdout, "Content-Type: %s\n", entry.ContentType)
	}
	if entry.ETag != "" {
		fmt.Fprintf(deps.Stdout, "ETag:         %s\n", entry.ETag)
	}
	if entry.OK {
		fmt.Fprintf(deps.Stdout, "\n%s\n", entry.Content)
	}
	return nil
}
