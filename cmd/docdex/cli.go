package main

import (
	"context"
	"io"

	"github.com/fwojciec/docdex"
	"github.com/fwojciec/docdex/config"
	"github.com/fwojciec/docdex/ingest"
	"github.com/fwojciec/docdex/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	Config       *config.Config
	DB           *sqlite.DB
	Cache        docdex.ContentCache
	Index        docdex.SearchIndex
	Documents    docdex.DocumentStore
	Orchestrator *ingest.Orchestrator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `short:"c" type:"path" help:"Path to YAML config file"`

	Index  IndexCmd  `cmd:"" help:"Run an indexing pass over the configured manifest"`
	Search SearchCmd `cmd:"" help:"Search the indexed documentation"`
	Get    GetCmd    `cmd:"" help:"Print the cached entry for a URL"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Manifest string `arg:"" optional:"" help:"Manifest URL (overrides config)"`
	Watch    bool   `short:"w" help:"Keep running and re-index on a timer"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query   string `arg:"" help:"Search query"`
	Limit   int    `short:"n" help:"Maximum number of results"`
	Section string `short:"s" help:"Restrict results to one manifest section"`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	URL string `arg:"" help:"Document URL"`
}
