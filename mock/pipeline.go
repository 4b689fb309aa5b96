package mock

import (
	"context"

	"github.com/fwojciec/docdex"
)

var _ docdex.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docdex.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docdex.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docdex.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ docdex.Converter = (*Converter)(nil)

// Converter is a mock implementation of docdex.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ docdex.ManifestParser = (*ManifestParser)(nil)

// ManifestParser is a mock implementation of docdex.ManifestParser.
type ManifestParser struct {
	ParseFn func(text string) (*docdex.Manifest, error)
}

func (p *ManifestParser) Parse(text string) (*docdex.Manifest, error) {
	return p.ParseFn(text)
}

var _ docdex.Crawler = (*Crawler)(nil)

// Crawler is a mock implementation of docdex.Crawler.
type Crawler struct {
	CrawlFn func(ctx context.Context, seeds []docdex.Link, opts docdex.CrawlOptions) ([]*docdex.CrawledDocument, error)
}

func (c *Crawler) Crawl(ctx context.Context, seeds []docdex.Link, opts docdex.CrawlOptions) ([]*docdex.CrawledDocument, error) {
	return c.CrawlFn(ctx, seeds, opts)
}
