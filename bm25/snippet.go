package bm25

import "strings"

// Snippet window geometry, in characters.
const (
	snippetWidth  = 400
	snippetBefore = 140 // 35% of the window precedes the best occurrence
	scanBefore    = 150
	scanAfter     = 250
	fallbackWidth = 240
)

// snippet builds a short excerpt of content around the densest cluster of
// query tokens. Every occurrence of every token is scored by how many
// distinct tokens fall within a fixed window around it; the excerpt centers
// on the winner. Without any occurrence the head of the document is used.
func snippet(content string, tokens []string) string {
	lower := strings.ToLower(content)

	best := -1
	bestCount := 0

	// Collect occurrence positions per token once.
	positions := make(map[string][]int, len(tokens))
	for _, tok := range tokens {
		if _, ok := positions[tok]; ok {
			continue
		}
		var pos []int
		for from := 0; ; {
			i := strings.Index(lower[from:], tok)
			if i < 0 {
				break
			}
			pos = append(pos, from+i)
			from += i + 1
		}
		positions[tok] = pos
	}

	for _, occ := range positions {
		for _, p := range occ {
			count := 0
			for _, others := range positions {
				for _, q := range others {
					if q >= p-scanBefore && q <= p+scanAfter {
						count++
						break
					}
				}
			}
			if count > bestCount {
				bestCount = count
				best = p
			}
		}
	}

	if best < 0 {
		return clip(content, 0, fallbackWidth, false)
	}

	start := best - snippetBefore
	clippedStart := start > 0
	if start < 0 {
		start = 0
	}
	return clip(content, start, snippetWidth, clippedStart)
}

// clip extracts width characters starting at start, collapses whitespace,
// and adds ellipsis markers where the window was cut off.
func clip(content string, start, width int, clippedStart bool) string {
	end := start + width
	clippedEnd := end < len(content)
	if end > len(content) {
		end = len(content)
	}
	if start > len(content) {
		start = len(content)
	}

	text := strings.Join(strings.Fields(content[start:end]), " ")
	if clippedStart {
		text = "..." + text
	}
	if clippedEnd {
		text += "..."
	}
	return text
}
