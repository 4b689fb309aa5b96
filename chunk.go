package docdex

import (
	"regexp"
	"strings"
)

// Chunk represents one section of a long-form document, addressable by its
// heading breadcrumb.
type Chunk struct {
	// Title is the heading text of the section.
	Title string `json:"title"`

	// Section is the breadcrumb of ancestor heading titles joined with " > ",
	// ending with this chunk's own title.
	Section string `json:"section"`

	// Content is the section body, including the heading line itself.
	Content string `json:"content"`

	// Level is the heading level (1-6), or 0 for the preamble.
	Level int `json:"level"`
}

// headingRe matches ATX headings: 1-6 leading # characters followed by text.
var headingRe = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// ChunkDocument splits a markdown document into ordered chunks, one per
// heading. A heading's chunk spans from the heading line (inclusive) up to
// but excluding the next heading at any level. Content before the first
// heading, if any, becomes a single "Preamble" chunk at level 0. Chunks with
// empty trimmed content are discarded. Breadcrumbs reflect the heading
// hierarchy: a new heading pops every stacked heading at its level or deeper.
func ChunkDocument(markdown string) []Chunk {
	if markdown == "" {
		return nil
	}

	type stackEntry struct {
		level int
		title string
	}

	var chunks []Chunk
	var stack []stackEntry
	var content strings.Builder
	var preamble strings.Builder

	current := -1 // index into chunks of the open chunk, -1 before first heading

	flush := func() {
		if current < 0 {
			return
		}
		chunks[current].Content = content.String()
		content.Reset()
	}

	for _, line := range strings.Split(markdown, "\n") {
		m := headingRe.FindStringSubmatch(line)
		if m == nil {
			if current < 0 {
				preamble.WriteString(line)
				preamble.WriteString("\n")
			} else {
				content.WriteString(line)
				content.WriteString("\n")
			}
			continue
		}

		flush()

		level := len(m[1])
		title := strings.TrimSpace(m[2])

		// Pop siblings and deeper headings, then push the new one.
		for len(stack) > 0 && stack[len(stack)-1].level >= level {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, stackEntry{level: level, title: title})

		titles := make([]string, len(stack))
		for i, e := range stack {
			titles[i] = e.title
		}

		chunks = append(chunks, Chunk{
			Title:   title,
			Section: strings.Join(titles, " > "),
			Level:   level,
		})
		current = len(chunks) - 1

		content.WriteString(line)
		content.WriteString("\n")
	}
	flush()

	// Drop chunks whose content trims to nothing.
	out := chunks[:0]
	for _, c := range chunks {
		if strings.TrimSpace(c.Content) == "" {
			continue
		}
		out = append(out, c)
	}
	chunks = out

	if strings.TrimSpace(preamble.String()) != "" {
		pre := Chunk{
			Title:   "Preamble",
			Section: "Preamble",
			Content: preamble.String(),
			Level:   0,
		}
		chunks = append([]Chunk{pre}, chunks...)
	}

	if len(chunks) == 0 {
		return nil
	}
	return chunks
}
