package docdex

// Link represents one manifest entry: a titled URL within a named section.
type Link struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Section     string `json:"section"`
	Optional    bool   `json:"optional"`
}

// ManifestSection is an ordered group of links under one heading.
type ManifestSection struct {
	Name  string `json:"name"`
	Links []Link `json:"links"`
}

// Manifest is the parsed seed document: a title, an optional summary, and
// links grouped by section in document order.
type Manifest struct {
	Title    string            `json:"title"`
	Summary  string            `json:"summary,omitempty"`
	Sections []ManifestSection `json:"sections"`
	Links    []Link            `json:"links"`
}

// ManifestParser extracts a Manifest from seed document text.
type ManifestParser interface {
	// Parse parses manifest text. Returns EINVALID if the required title
	// line is missing.
	Parse(text string) (*Manifest, error)
}
