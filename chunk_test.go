package docdex_test

import (
	"testing"

	"github.com/fwojciec/docdex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkDocument_builds_breadcrumbs(t *testing.T) {
	t.Parallel()

	chunks := docdex.ChunkDocument("# Title\n\nBody1\n\n## Sub\nBody2")

	require.Len(t, chunks, 2)

	assert.Equal(t, "Title", chunks[0].Title)
	assert.Equal(t, "Title", chunks[0].Section)
	assert.Equal(t, 1, chunks[0].Level)
	assert.Contains(t, chunks[0].Content, "Body1")
	assert.NotContains(t, chunks[0].Content, "Body2")

	assert.Equal(t, "Sub", chunks[1].Title)
	assert.Equal(t, "Title > Sub", chunks[1].Section)
	assert.Equal(t, 2, chunks[1].Level)
	assert.Contains(t, chunks[1].Content, "Body2")
}

func TestChunkDocument_sibling_heading_pops_stack(t *testing.T) {
	t.Parallel()

	md := "# Guide\nintro\n## Setup\nsetup body\n## Usage\nusage body\n### Flags\nflags body\n## FAQ\nfaq body"
	chunks := docdex.ChunkDocument(md)

	require.Len(t, chunks, 5)
	assert.Equal(t, "Guide", chunks[0].Section)
	assert.Equal(t, "Guide > Setup", chunks[1].Section)
	assert.Equal(t, "Guide > Usage", chunks[2].Section)
	assert.Equal(t, "Guide > Usage > Flags", chunks[3].Section)
	assert.Equal(t, "Guide > FAQ", chunks[4].Section, "sibling H2 should pop Usage and Flags")
}

func TestChunkDocument_preamble_before_first_heading(t *testing.T) {
	t.Parallel()

	chunks := docdex.ChunkDocument("Some intro text.\n\n# First\nbody")

	require.Len(t, chunks, 2)
	assert.Equal(t, "Preamble", chunks[0].Title)
	assert.Equal(t, "Preamble", chunks[0].Section)
	assert.Equal(t, 0, chunks[0].Level)
	assert.Contains(t, chunks[0].Content, "Some intro text.")
	assert.Equal(t, "First", chunks[1].Title)
}

func TestChunkDocument_degenerate_inputs(t *testing.T) {
	t.Parallel()

	assert.Nil(t, docdex.ChunkDocument(""))
	assert.Nil(t, docdex.ChunkDocument("\n\n  \n"), "whitespace-only input yields no chunks")
}

func TestChunkDocument_heading_level_seven_is_not_a_heading(t *testing.T) {
	t.Parallel()

	chunks := docdex.ChunkDocument("# Top\n####### not a heading\nbody")

	require.Len(t, chunks, 1)
	assert.Contains(t, chunks[0].Content, "####### not a heading")
}
