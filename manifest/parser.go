// Package manifest parses llms.txt-style seed documents: a required title
// line, an optional blockquote summary, section headings, and one link per
// list line.
package manifest

import (
	"regexp"
	"strings"

	"github.com/fwojciec/docdex"
)

// Compile-time interface verification.
var _ docdex.ManifestParser = (*Parser)(nil)

// OptionalSection is the section heading whose links are flagged optional.
// Matching is case-insensitive.
const OptionalSection = "Optional"

// linkRe matches list lines of the form "- [Title](url)" with an optional
// ": description" suffix.
var linkRe = regexp.MustCompile(`^[-*]\s+\[([^\]]+)\]\(([^)\s]+)\)(?::\s*(.*))?$`)

// Parser is a line-oriented manifest parser.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses manifest text. The first "# " line becomes the title; a
// missing title is EINVALID and aborts the pass. "> " lines immediately
// following the title form the summary. "## " headings open sections; link
// lines belong to the most recent section (or an unnamed leading section).
func (p *Parser) Parse(text string) (*docdex.Manifest, error) {
	m := &docdex.Manifest{}

	var summary []string
	section := ""
	sectionIdx := map[string]int{}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case strings.HasPrefix(line, "# "):
			if m.Title == "" {
				m.Title = strings.TrimSpace(strings.TrimPrefix(line, "# "))
			}

		case strings.HasPrefix(line, "## "):
			section = strings.TrimSpace(strings.TrimPrefix(line, "## "))

		case strings.HasPrefix(line, ">"):
			if len(m.Links) == 0 && section == "" {
				summary = append(summary, strings.TrimSpace(strings.TrimPrefix(line, ">")))
			}

		default:
			match := linkRe.FindStringSubmatch(line)
			if match == nil {
				continue
			}
			link := docdex.Link{
				Title:       match[1],
				URL:         match[2],
				Description: strings.TrimSpace(match[3]),
				Section:     section,
				Optional:    strings.EqualFold(section, OptionalSection),
			}
			m.Links = append(m.Links, link)

			idx, ok := sectionIdx[section]
			if !ok {
				m.Sections = append(m.Sections, docdex.ManifestSection{Name: section})
				idx = len(m.Sections) - 1
				sectionIdx[section] = idx
			}
			m.Sections[idx].Links = append(m.Sections[idx].Links, link)
		}
	}

	if m.Title == "" {
		return nil, docdex.Errorf(docdex.EINVALID, "manifest title required")
	}
	m.Summary = strings.Join(summary, "\n")

	return m, nil
}
