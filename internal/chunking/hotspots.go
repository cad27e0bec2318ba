package chunking

import (
	"sort"

	"github.com/jonathan/study-search/internal/textproc"
)

// DefaultTopK caps how many chunks survive hotspot selection regardless of
// document size.
const DefaultTopK = 20

// FindHotspots ranks chunks by keyword-density overlap with the question
// tokens and returns the texts of the top topK. When topK or fewer chunks
// exist, all chunk texts are returned unchanged in their original order.
func FindHotspots(chunks []Chunk, questionTokens map[string]bool, topK int) []string {
	if topK <= 0 {
		topK = DefaultTopK
	}

	if len(chunks) <= topK {
		texts := make([]string, 0, len(chunks))
		for _, c := range chunks {
			texts = append(texts, c.Text)
		}
		return texts
	}

	type scored struct {
		text    string
		density float64
	}

	ranked := make([]scored, 0, len(chunks))
	for _, c := range chunks {
		chunkTokens := textproc.Tokenize(c.Text)
		denom := len(chunkTokens)
		if denom < 1 {
			denom = 1
		}
		density := float64(textproc.Overlap(questionTokens, chunkTokens)) / float64(denom)
		ranked = append(ranked, scored{text: c.Text, density: density})
	}

	// Stable sort keeps original chunk order for equal densities.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].density > ranked[j].density
	})

	texts := make([]string, 0, topK)
	for _, s := range ranked[:topK] {
		texts = append(texts, s.text)
	}
	return texts
}
