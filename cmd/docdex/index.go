package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/docdex"
)

// defaultRefreshInterval applies when --watch is set but no refresh interval
// is configured.
const defaultRefreshInterval = 15 * time.Minute

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	o := deps.Orchestrator
	if c.Manifest != "" {
		o.ManifestURL = c.Manifest
	}
	if o.ManifestURL == "" {
		fmt.Fprintln(deps.Stderr, "error: no manifest URL configured")
		return docdex.Errorf(docdex.EINVALID, "manifest URL required: pass one as an argument or set manifest_url in config")
	}

	if c.Watch {
		interval := deps.Config.Index.RefreshInterval
		if interval <= 0 {
			interval = defaultRefreshInterval
		}
		fmt.Fprintf(deps.Stdout, "Indexing %s every %s\n", o.ManifestURL, interval)
		return o.Run(deps.Ctx, interval)
	}

	if err := o.Reindex(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdex.ErrorMessage(err))
		return err
	}

	status := o.Status()
	fmt.Fprintf(deps.Stdout, "Indexed %d documents (%d crawled) from %s\n",
		status.DocumentsIndexed, status.CrawledDocuments, o.ManifestURL)
	return nil
}
