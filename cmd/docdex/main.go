package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docdex"
	"github.com/fwojciec/docdex/bm25"
	"github.com/fwojciec/docdex/config"
	"github.com/fwojciec/docdex/crawl"
	"github.com/fwojciec/docdex/goquery"
	"github.com/fwojciec/docdex/htmltomarkdown"
	dochttp "github.com/fwojciec/docdex/http"
	"github.com/fwojciec/docdex/ingest"
	"github.com/fwojciec/docdex/manifest"
	docslog "github.com/fwojciec/docdex/slog"
	"github.com/fwojciec/docdex/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config file path. Set before calling Run(); an empty value falls back
	// to the DOCDEX_CONFIG environment variable.
	ConfigPath string

	// SQLite database used by the storage implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: os.Getenv("DOCDEX_CONFIG"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docdex"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docdex --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	configPath := m.ConfigPath
	if cli.Config != "" {
		configPath = cli.Config
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	deps.Config = cfg

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	m.DB = sqlite.NewDB(databasePath(cfg))
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: Set DOCDEX_DATA_DIR to use a writable data directory")
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer m.Close()

	deps.DB = m.DB
	deps.Cache = docslog.NewLoggingCache(
		dochttp.NewCache(sqlite.NewCacheStore(m.DB), dochttp.WithTimeout(cfg.Fetch.Timeout)),
		logger,
	)
	deps.Index = bm25.NewIndex()
	deps.Documents = sqlite.NewDocumentStore(m.DB)

	deps.Orchestrator = &ingest.Orchestrator{
		Cache:     deps.Cache,
		Parser:    manifest.NewParser(),
		Extractor: goquery.NewExtractor(),
		Converter: htmltomarkdown.NewConverter(),
		Crawler: &crawl.Crawler{
			Cache:     deps.Cache,
			Extractor: goquery.NewExtractor(),
			Converter: htmltomarkdown.NewConverter(),
			Logger:    logger,
		},
		Index:       deps.Index,
		Documents:   deps.Documents,
		Logger:      logger,
		ManifestURL: cfg.ManifestURL,
		FullDocURL:  cfg.FullDocURL,
		Concurrency: cfg.Fetch.Concurrency,
		CrawlOptions: docdex.CrawlOptions{
			MaxDepth:     cfg.Crawl.MaxDepth,
			MaxWorkers:   cfg.Crawl.MaxWorkers,
			MaxDocuments: cfg.Crawl.MaxDocuments,
		},
	}

	return kongCtx.Run(deps)
}

// databasePath resolves the SQLite database location. An empty data dir
// means a throwaway in-memory database.
func databasePath(cfg *config.Config) string {
	if cfg.DataDir == "" {
		return defaultDataPath()
	}
	_ = os.MkdirAll(cfg.DataDir, 0755)
	return filepath.Join(cfg.DataDir, "docdex.db")
}

func defaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "docdex.db"
	}
	dir := filepath.Join(home, ".docdex")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docdex.db")
}
