package docdex

import (
	"net/url"
	"regexp"
	"strings"
)

// markdownLinkRe matches inline markdown links: [text](target).
var markdownLinkRe = regexp.MustCompile(`\[[^\]]*\]\(([^)\s]+)(?:\s+"[^"]*")?\)`)

// markdownExtensions are the path suffixes treated as markdown documents.
var markdownExtensions = []string{".md", ".mdx", ".markdown"}

// IsMarkdownURL reports whether a URL points at a markdown document: its path
// ends with a markdown extension, or carries a markdown extension before an
// anchor fragment.
func IsMarkdownURL(rawURL string) bool {
	target := rawURL
	if idx := strings.Index(target, "#"); idx != -1 {
		target = target[:idx]
	}
	if idx := strings.Index(target, "?"); idx != -1 {
		target = target[:idx]
	}
	lower := strings.ToLower(target)
	for _, ext := range markdownExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// ExtractMarkdownLinks returns the unique absolute markdown-file links found
// in markdown text, in order of first occurrence. Relative targets are
// resolved against baseURL; anchor-only fragments and non-markdown targets
// are discarded.
func ExtractMarkdownLinks(text string, baseURL string) []string {
	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}

	var links []string
	seen := make(map[string]struct{})

	for _, m := range markdownLinkRe.FindAllStringSubmatch(text, -1) {
		target := m[1]
		if target == "" || strings.HasPrefix(target, "#") {
			continue
		}

		ref, err := url.Parse(target)
		if err != nil {
			continue
		}
		if base != nil {
			ref = base.ResolveReference(ref)
		}
		if ref.Scheme != "http" && ref.Scheme != "https" {
			continue
		}

		ref.Fragment = ""
		resolved := ref.String()
		if !IsMarkdownURL(resolved) {
			continue
		}
		if _, ok := seen[resolved]; ok {
			continue
		}
		seen[resolved] = struct{}{}
		links = append(links, resolved)
	}

	return links
}
