// Package config loads docdex configuration from a YAML file with
// environment variable overrides.
package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fwojciec/docdex"
)

// Config holds all docdex settings. Zero values are filled from defaults;
// values from a config file override defaults, and DOCDEX_* environment
// variables override both.
type Config struct {
	// ManifestURL is the llms.txt seed document to index.
	ManifestURL string `yaml:"manifest_url"`

	// FullDocURL is an optional companion document (llms-full.txt) that is
	// chunked by heading and indexed section by section.
	FullDocURL string `yaml:"full_doc_url"`

	// DataDir holds the SQLite database. Empty means in-memory only.
	DataDir string `yaml:"data_dir"`

	Fetch FetchConfig `yaml:"fetch"`
	Crawl CrawlConfig `yaml:"crawl"`
	Index IndexConfig `yaml:"index"`
}

// FetchConfig tunes HTTP fetching.
type FetchConfig struct {
	// Timeout bounds each individual fetch.
	Timeout time.Duration `yaml:"timeout"`

	// Concurrency caps parallel fetches of manifest links.
	Concurrency int `yaml:"concurrency"`
}

// CrawlConfig bounds markdown link expansion.
type CrawlConfig struct {
	MaxDepth     int `yaml:"max_depth"`
	MaxWorkers   int `yaml:"max_workers"`
	MaxDocuments int `yaml:"max_documents"`
}

// IndexConfig tunes indexing behavior.
type IndexConfig struct {
	// RefreshInterval is how often a watch run re-indexes. Zero disables
	// periodic refresh.
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	return &Config{
		Fetch: FetchConfig{
			Timeout:     10 * time.Second,
			Concurrency: 5,
		},
		Crawl: CrawlConfig{
			MaxDepth:     2,
			MaxWorkers:   5,
			MaxDocuments: 50,
		},
		Index: IndexConfig{
			RefreshInterval: 0,
		},
	}
}

// Load reads a YAML config file, applies environment overrides, and
// validates the result. An empty path skips the file and loads defaults
// plus environment overrides only.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, docdex.Errorf(docdex.EINVALID, "read config file: %v", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, docdex.Errorf(docdex.EINVALID, "parse config file: %v", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies DOCDEX_* environment variables on top of the
// loaded configuration. Unparsable values are ignored.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DOCDEX_MANIFEST_URL"); v != "" {
		c.ManifestURL = v
	}
	if v := os.Getenv("DOCDEX_FULL_DOC_URL"); v != "" {
		c.FullDocURL = v
	}
	if v := os.Getenv("DOCDEX_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("DOCDEX_FETCH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Fetch.Timeout = d
		}
	}
	if v := os.Getenv("DOCDEX_CRAWL_MAX_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Crawl.MaxDepth = n
		}
	}
	if v := os.Getenv("DOCDEX_CRAWL_MAX_DOCUMENTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Crawl.MaxDocuments = n
		}
	}
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.Fetch.Timeout <= 0 {
		return docdex.Errorf(docdex.EINVALID, "fetch timeout must be positive")
	}
	if c.Fetch.Concurrency <= 0 {
		return docdex.Errorf(docdex.EINVALID, "fetch concurrency must be positive")
	}
	if c.Crawl.MaxDepth < 0 {
		return docdex.Errorf(docdex.EINVALID, "crawl max depth must not be negative")
	}
	if c.Crawl.MaxWorkers <= 0 {
		return docdex.Errorf(docdex.EINVALID, "crawl max workers must be positive")
	}
	if c.Crawl.MaxDocuments <= 0 {
		return docdex.Errorf(docdex.EINVALID, "crawl max documents must be positive")
	}
	if c.Index.RefreshInterval < 0 {
		return docdex.Errorf(docdex.EINVALID, "refresh interval must not be negative")
	}
	return nil
}
