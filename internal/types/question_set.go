// Package types provides type definitions for structured data used throughout the study-search system.
package types

// QuestionSet is a batch of questions to solve against one document.
type QuestionSet struct {
	Title     string   `json:"title,omitempty"`
	Questions []string `json:"questions"`
}

// BatchItem pairs one input question with its result in a batch report.
type BatchItem struct {
	Index    int          `json:"index"`
	Question string       `json:"question"`
	Result   SearchResult `json:"result"`
}

// BatchReport is the output of a batch run.
type BatchReport struct {
	Title   string      `json:"title,omitempty"`
	Total   int         `json:"total"`
	Quiz    int         `json:"quiz"`   // questions answered via the quiz pipeline
	Direct  int         `json:"direct"` // non-quiz questions that fell through
	Results []BatchItem `json:"results"`
}
