// Package textproc normalizes free text into stemmed, stop-word-filtered token
// sets used for overlap scoring throughout the search pipeline.
package textproc

import (
	"strings"
	"unicode"
)

// minTokenLen is the shortest stem kept in the output set.
const minTokenLen = 3

// Tokenize normalizes text into a set of lowercase, punctuation-stripped,
// stop-word-filtered, stemmed tokens. Deterministic and side-effect free.
func Tokenize(text string) map[string]bool {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsSpace(r):
			return unicode.ToLower(r)
		case r == '-':
			return r
		default:
			return -1 // drop punctuation entirely
		}
	}, text)

	tokens := make(map[string]bool)
	for _, word := range strings.Fields(cleaned) {
		if stopWords[word] {
			continue
		}
		stem := Stem(word)
		if len(stem) < minTokenLen {
			continue
		}
		tokens[stem] = true
	}

	return tokens
}

// Overlap counts tokens present in both sets.
func Overlap(a, b map[string]bool) int {
	// Iterate the smaller set.
	if len(b) < len(a) {
		a, b = b, a
	}
	count := 0
	for token := range a {
		if b[token] {
			count++
		}
	}
	return count
}

// Normalize lowercases text and strips punctuation, keeping word boundaries.
// Used for literal substring matching against sentences.
func Normalize(text string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsSpace(r):
			return unicode.ToLower(r)
		case r == '-':
			return r
		default:
			return -1
		}
	}, text)
	return strings.Join(strings.Fields(cleaned), " ")
}
