// Package search orchestrates the quiz-answering pipeline:
// parse -> chunk -> select hotspots -> score options -> decide.
package search

import (
	"strings"

	"github.com/jonathan/study-search/internal/chunking"
	"github.com/jonathan/study-search/internal/decision"
	"github.com/jonathan/study-search/internal/parsing"
	"github.com/jonathan/study-search/internal/scoring"
	"github.com/jonathan/study-search/internal/textproc"
	"github.com/jonathan/study-search/internal/types"
)

// Engine runs the heuristic search pipeline. It holds only tunables, never
// per-call state, so one Engine is safe for concurrent use.
type Engine struct {
	ChunkSize int
	Overlap   int
	TopK      int
}

// NewEngine returns an Engine with the default window geometry.
func NewEngine() *Engine {
	return &Engine{
		ChunkSize: chunking.DefaultChunkSize,
		Overlap:   chunking.DefaultOverlap,
		TopK:      chunking.DefaultTopK,
	}
}

// Trace captures intermediate pipeline artifacts for verbose output.
type Trace struct {
	ChunkCount   int
	HotspotCount int
	Sentences    int
	Scores       []types.OptionScore
}

// Search answers a free-form question against documentText. Non-quiz input
// falls through to a zero-confidence direct result; the caller decides
// whether to escalate to a heavier fallback.
func (e *Engine) Search(question, documentText string) types.SearchResult {
	parsed := parsing.DetectQuizQuestion(question)
	if !parsed.IsQuiz {
		return types.SearchResult{
			Answer:      "",
			Confidence:  0,
			Evidence:    "",
			Explanation: "Input is not a multiple-choice question.",
			Method:      types.MethodDirect,
		}
	}
	return e.SolveQuiz(parsed, documentText)
}

// SolveQuiz answers an already-parsed quiz question against documentText.
func (e *Engine) SolveQuiz(parsed types.ParsedQuestion, documentText string) types.SearchResult {
	result, _ := e.SolveQuizTraced(parsed, documentText)
	return result
}

// SolveQuizTraced is SolveQuiz plus the intermediate artifacts of the run.
func (e *Engine) SolveQuizTraced(parsed types.ParsedQuestion, documentText string) (types.SearchResult, *Trace) {
	questionTokens := textproc.Tokenize(parsed.QuestionText)

	chunks := chunking.ChunkText(documentText, e.ChunkSize, e.Overlap)
	hotspots := chunking.FindHotspots(chunks, questionTokens, e.TopK)
	sentences := scoring.SplitSentences(strings.Join(hotspots, " "))

	var contrastTerms []string
	if parsed.IsNegative {
		contrastTerms = scoring.ContrastTerms(parsed.QuestionText)
	}

	scores := make([]types.OptionScore, 0, len(parsed.Options))
	for _, opt := range parsed.Options {
		scores = append(scores, scoring.ScoreOption(opt, sentences, questionTokens, contrastTerms))
	}

	trace := &Trace{
		ChunkCount:   len(chunks),
		HotspotCount: len(hotspots),
		Sentences:    len(sentences),
		Scores:       scores,
	}
	return decision.Decide(scores, parsed.IsNegative), trace
}

// Detect parses a question string without solving it.
func (e *Engine) Detect(question string) types.ParsedQuestion {
	return parsing.DetectQuizQuestion(question)
}
