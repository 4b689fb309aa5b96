// Package goquery provides a CSS-selector based implementation of
// docdex.Extractor that strips boilerplate from HTML pages before markdown
// conversion.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docdex"
)

// Compile-time interface verification.
var _ docdex.Extractor = (*Extractor)(nil)

// contentSelectors are tried in order; the first non-empty match wins.
var contentSelectors = []string{"main", "article", "div[role=main]", "body"}

// boilerplateSelector matches elements removed before extraction.
const boilerplateSelector = "script, style, noscript, nav, header, footer, aside"

// Extractor extracts main content from HTML pages using CSS selectors.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract removes boilerplate and returns the page title plus the main
// content element's HTML. Preference order: <main>, <article>, a main-role
// div, then the whole body.
func (e *Extractor) Extract(html string) (*docdex.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docdex.Errorf(docdex.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	doc.Find(boilerplateSelector).Remove()

	var contentHTML string
	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		inner, err := sel.Html()
		if err != nil {
			continue
		}
		if strings.TrimSpace(inner) == "" {
			continue
		}
		contentHTML = inner
		break
	}

	if contentHTML == "" {
		return nil, docdex.Errorf(docdex.ENOTFOUND, "no content found in HTML")
	}

	return &docdex.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
	}, nil
}
