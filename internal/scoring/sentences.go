package scoring

import (
	"regexp"
	"strings"
)

// sentenceEnd splits on terminal punctuation followed by whitespace.
var sentenceEnd = regexp.MustCompile(`[.!?]\s+`)

// minSentenceLen drops fragments too short to carry evidence.
const minSentenceLen = 10

// SplitSentences breaks text into sentences, discarding trimmed fragments
// shorter than minSentenceLen characters.
func SplitSentences(text string) []string {
	parts := sentenceEnd.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) < minSentenceLen {
			continue
		}
		sentences = append(sentences, p)
	}
	return sentences
}
