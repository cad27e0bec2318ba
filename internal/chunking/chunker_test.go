package chunking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkText_ShortTextSingleChunk(t *testing.T) {
	text := "A short document."

	chunks := ChunkText(text, DefaultChunkSize, DefaultOverlap)

	require.Len(t, chunks, 1)
	assert.Equal(t, text, chunks[0].Text)
}

func TestChunkText_ExactBoundarySingleChunk(t *testing.T) {
	text := strings.Repeat("x", DefaultChunkSize)

	chunks := ChunkText(text, DefaultChunkSize, DefaultOverlap)

	require.Len(t, chunks, 1)
}

func TestChunkText_OverlappingWindows(t *testing.T) {
	text := strings.Repeat("abcdefghij", 120) // 1200 chars

	chunks := ChunkText(text, 500, 100)

	require.Len(t, chunks, 3)
	assert.Equal(t, text[0:500], chunks[0].Text)
	assert.Equal(t, text[400:900], chunks[1].Text)
	assert.Equal(t, text[800:1200], chunks[2].Text)
}

func TestChunkText_CoversWholeDocument(t *testing.T) {
	text := strings.Repeat("0123456789", 173) // 1730 chars, last chunk is short

	chunks := ChunkText(text, 500, 100)

	// Reassembling the non-overlapping strides must reproduce the input.
	stride := 500 - 100
	var rebuilt strings.Builder
	for i, c := range chunks {
		piece := c.Text
		if i < len(chunks)-1 && len(piece) > stride {
			piece = piece[:stride]
		}
		rebuilt.WriteString(piece)
	}
	assert.Equal(t, text, rebuilt.String())
}

func TestChunkText_InvalidOverlapDisablesIt(t *testing.T) {
	text := strings.Repeat("x", 1000)

	chunks := ChunkText(text, 500, 500)

	require.Len(t, chunks, 2)
	assert.Equal(t, text[0:500], chunks[0].Text)
	assert.Equal(t, text[500:1000], chunks[1].Text)
}

func TestChunkText_ZeroChunkSizeUsesDefault(t *testing.T) {
	text := strings.Repeat("x", DefaultChunkSize+1)

	chunks := ChunkText(text, 0, DefaultOverlap)

	assert.Greater(t, len(chunks), 1)
}
