// Package types provides type definitions for structured data used throughout the study-search system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Option represents a single answer option of a multiple-choice question.
type Option struct {
	Letter string `json:"letter"` // "A".."E", always uppercase
	Text   string `json:"text"`
}

// ParsedQuestion is the structured form of a free-form question string.
// IsQuiz is true iff at least 2 options were parsed.
type ParsedQuestion struct {
	IsQuiz       bool     `json:"is_quiz"`
	IsNegative   bool     `json:"is_negative"`
	QuestionText string   `json:"question_text"`
	Options      []Option `json:"options"` // sorted by letter ascending, letters unique
}

// OptionLetters returns the letters of all parsed options in order.
func (q *ParsedQuestion) OptionLetters() []string {
	letters := make([]string, 0, len(q.Options))
	for _, opt := range q.Options {
		letters = append(letters, opt.Letter)
	}
	return letters
}
