// Package parsing detects multiple-choice questions in free-form text and
// extracts their answer options.
package parsing

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/study-search/internal/types"
)

var (
	// negativePattern matches question phrasings that invert the answer.
	negativePattern = regexp.MustCompile(`(?i)\b(?:NOT|EXCEPT|FALSE|INCORRECT|LEAST\s+LIKELY|UNTRUE|WRONG)\b`)

	// gluedMarkerPattern finds option markers stuck to the preceding text with
	// no whitespace, e.g. "cell?A) The Nucleus".
	gluedMarkerPattern = regexp.MustCompile(`(\S)([A-E][.)\]]|\([A-E]\)|\[[A-E]\])`)

	// plainMarkerPattern matches "A." / "a)" style option markers.
	plainMarkerPattern = regexp.MustCompile(`(?:^|\s)([A-Ea-e])[.)]\s*`)

	// bracketMarkerPattern matches "(A)" / "[a]" style option markers.
	bracketMarkerPattern = regexp.MustCompile(`[(\[]([A-Ea-e])[)\]]\s*`)
)

// DetectQuizQuestion parses input into a ParsedQuestion. IsQuiz is true iff at
// least two distinct options were found; the result is deterministic for a
// given input and never an error.
func DetectQuizQuestion(input string) types.ParsedQuestion {
	normalized := normalizeMarkers(input)

	plain := extractOptions(normalized, plainMarkerPattern)
	bracketed := extractOptions(normalized, bracketMarkerPattern)

	// Merge the two strategies; the first occurrence of a letter wins, with
	// the plain-marker strategy taking precedence. This order is load-bearing
	// for ambiguous inputs.
	seen := make(map[string]bool)
	options := make([]types.Option, 0, len(plain)+len(bracketed))
	for _, opt := range append(plain, bracketed...) {
		if seen[opt.Letter] {
			continue
		}
		seen[opt.Letter] = true
		options = append(options, opt)
	}

	sort.Slice(options, func(i, j int) bool {
		return options[i].Letter < options[j].Letter
	})

	questionText := normalized
	if start := firstMarkerIndex(normalized); start >= 0 {
		questionText = normalized[:start]
	}
	questionText = collapseWhitespace(questionText)

	return types.ParsedQuestion{
		IsQuiz:       len(options) >= 2,
		IsNegative:   negativePattern.MatchString(questionText),
		QuestionText: questionText,
		Options:      options,
	}
}

// normalizeMarkers inserts a newline before option markers glued to preceding
// text so the marker patterns can anchor on whitespace.
func normalizeMarkers(input string) string {
	return gluedMarkerPattern.ReplaceAllString(input, "$1\n$2")
}

// extractOptions returns one option per marker match, with the text running up
// to the next marker of the same strategy or the end of the string.
func extractOptions(text string, marker *regexp.Regexp) []types.Option {
	matches := marker.FindAllStringSubmatchIndex(text, -1)
	options := make([]types.Option, 0, len(matches))

	for i, m := range matches {
		letter := strings.ToUpper(text[m[2]:m[3]])
		start := m[1]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		optText := collapseWhitespace(text[start:end])
		if optText == "" {
			// Malformed option, nothing after the marker.
			continue
		}

		options = append(options, types.Option{Letter: letter, Text: optText})
	}

	return options
}

// firstMarkerIndex locates where the options begin, or -1 if no marker exists.
func firstMarkerIndex(text string) int {
	first := -1
	for _, marker := range []*regexp.Regexp{plainMarkerPattern, bracketMarkerPattern} {
		if loc := marker.FindStringIndex(text); loc != nil {
			if first < 0 || loc[0] < first {
				first = loc[0]
			}
		}
	}
	return first
}

// collapseWhitespace trims text and squeezes whitespace runs to single spaces.
func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
