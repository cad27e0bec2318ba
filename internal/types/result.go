// Package types provides type definitions for structured data used throughout the study-search system.
package types

import "encoding/json"

// Method values for SearchResult.
const (
	MethodQuiz   = "quiz"
	MethodDirect = "direct"
)

// ContrastSentinel is the score reported for definitive contrast matches.
// External consumers see -1; internal logic checks ContrastMatch instead.
const ContrastSentinel = -1

// OptionScore holds the evidence score computed for one answer option.
type OptionScore struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
	// Score is the accumulated window score. Meaningless when ContrastMatch is set.
	Score float64 `json:"-"`
	// ContrastMatch marks definitive negative-question contrast evidence.
	// It overrides any numeric score during decision making.
	ContrastMatch bool     `json:"contrast_match,omitempty"`
	Evidence      string   `json:"evidence"` // best supporting sentence, empty if none
	Breakdown     []string `json:"breakdown,omitempty"`
}

// TotalScore returns the externally visible score: the sentinel value for
// contrast matches, the accumulated score otherwise.
func (s OptionScore) TotalScore() float64 {
	if s.ContrastMatch {
		return ContrastSentinel
	}
	return s.Score
}

// MarshalJSON emits the externally visible score shape, where a contrast
// match is reported as total_score -1.
func (s OptionScore) MarshalJSON() ([]byte, error) {
	type alias OptionScore
	return json.Marshal(struct {
		alias
		TotalScore float64 `json:"total_score"`
	}{alias(s), s.TotalScore()})
}

// SearchResult is the sole externally visible output of the search engine.
type SearchResult struct {
	Answer      string  `json:"answer"` // single letter, empty for non-quiz input
	Confidence  float64 `json:"confidence"`
	Evidence    string  `json:"evidence"`
	Explanation string  `json:"explanation"`
	Method      string  `json:"method"` // "quiz" or "direct"
}
