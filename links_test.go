package docdex_test

import (
	"testing"

	"github.com/fwojciec/docdex"
	"github.com/stretchr/testify/assert"
)

func TestIsMarkdownURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want bool
	}{
		{"https://example.com/docs/intro.md", true},
		{"https://example.com/docs/intro.mdx", true},
		{"https://example.com/docs/INTRO.MD", true},
		{"https://example.com/docs/intro.md#setup", true},
		{"https://example.com/docs/intro.md?ref=nav", true},
		{"https://example.com/docs/intro.html", false},
		{"https://example.com/docs/", false},
		{"https://example.com/markdown-guide", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, docdex.IsMarkdownURL(tt.url))
		})
	}
}

func TestExtractMarkdownLinks_resolves_relative_targets(t *testing.T) {
	t.Parallel()

	text := "See [setup](setup.md) and [api](/reference/api.md) for details."
	links := docdex.ExtractMarkdownLinks(text, "https://example.com/docs/index.md")

	assert.Equal(t, []string{
		"https://example.com/docs/setup.md",
		"https://example.com/reference/api.md",
	}, links)
}

func TestExtractMarkdownLinks_skips_non_markdown_and_fragments(t *testing.T) {
	t.Parallel()

	text := "[a](page.html) [b](#anchor) [c](mailto:x@example.com) [d](notes.md) [e](ftp://example.com/f.md)"
	links := docdex.ExtractMarkdownLinks(text, "https://example.com/docs/index.md")

	assert.Equal(t, []string{"https://example.com/docs/notes.md"}, links)
}

func TestExtractMarkdownLinks_dedupes_preserving_order(t *testing.T) {
	t.Parallel()

	text := "[x](b.md) [y](a.md) [z](b.md#section)"
	links := docdex.ExtractMarkdownLinks(text, "https://example.com/docs/index.md")

	assert.Equal(t, []string{
		"https://example.com/docs/b.md",
		"https://example.com/docs/a.md",
	}, links, "fragment-only variants of a seen URL should collapse")
}

func TestExtractMarkdownLinks_no_links(t *testing.T) {
	t.Parallel()

	assert.Nil(t, docdex.ExtractMarkdownLinks("plain text, no links here", "https://example.com/"))
}
