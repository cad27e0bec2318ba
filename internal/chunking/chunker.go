// Package chunking splits document text into overlapping windows and selects
// the windows most relevant to a question, bounding the cost of deep analysis
// on large documents.
package chunking

// Default window geometry. The 100-char overlap guarantees any match spanning
// up to 400 characters is whole in at least one chunk.
const (
	DefaultChunkSize = 500
	DefaultOverlap   = 100
)

// Chunk is a contiguous slice of the source document.
type Chunk struct {
	Text string
}

// ChunkText slides a window of chunkSize characters forward by
// chunkSize-overlap per step. Text no longer than chunkSize is returned as a
// single chunk equal to the input.
func ChunkText(text string, chunkSize, overlap int) []Chunk {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if overlap < 0 || overlap >= chunkSize {
		overlap = 0
	}

	if len(text) <= chunkSize {
		return []Chunk{{Text: text}}
	}

	stride := chunkSize - overlap
	chunks := make([]Chunk, 0, len(text)/stride+1)
	for start := 0; start < len(text); start += stride {
		end := start + chunkSize
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, Chunk{Text: text[start:end]})
	}

	return chunks
}
