package docdex

import (
	"fmt"
	"strings"
)

// FormatResults formats search results for display. Each result shows its
// rank, score, title (falling back to the URL), section, and snippet.
// Results are separated by blank lines.
func FormatResults(results []SearchResult) string {
	if len(results) == 0 {
		return "no results"
	}

	parts := make([]string, 0, len(results))
	for i, r := range results {
		header := r.Doc.Title
		if header == "" {
			header = r.Doc.URL
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d. %s (%.1f)\n", i+1, header, r.Score)
		if r.Doc.Section != "" {
			fmt.Fprintf(&sb, "   section: %s\n", r.Doc.Section)
		}
		fmt.Fprintf(&sb, "   %s\n", r.Doc.URL)
		if r.Snippet != "" {
			fmt.Fprintf(&sb, "   %s", r.Snippet)
		}
		parts = append(parts, sb.String())
	}

	return strings.Join(parts, "\n\n")
}
