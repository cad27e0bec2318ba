// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/study-search/internal/search"
	"github.com/jonathan/study-search/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintParsedQuestion outputs a human-readable summary of the parsed question.
func (p *Printer) PrintParsedQuestion(parsed *types.ParsedQuestion) {
	if parsed == nil {
		return
	}

	var sb strings.Builder

	question := parsed.QuestionText
	if len(question) > 50 {
		question = question[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("Question: %s\n", question))
	sb.WriteString(fmt.Sprintf("Quiz:     %v\n", parsed.IsQuiz))
	sb.WriteString(fmt.Sprintf("Negative: %v\n", parsed.IsNegative))

	if len(parsed.Options) > 0 {
		sb.WriteString("\nOptions:\n")
		count := min(len(parsed.Options), maxItemsToShow)
		for i := 0; i < count; i++ {
			opt := parsed.Options[i]
			text := opt.Text
			if len(text) > 40 {
				text = text[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %s) %s\n", opt.Letter, text))
		}
		if len(parsed.Options) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(parsed.Options)-maxItemsToShow))
		}
	}

	p.printBox("PARSED QUESTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTrace outputs the pipeline stage counts and per-option scores.
func (p *Printer) PrintTrace(trace *search.Trace) {
	if trace == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Chunks:    %d\n", trace.ChunkCount))
	sb.WriteString(fmt.Sprintf("Hotspots:  %d\n", trace.HotspotCount))
	sb.WriteString(fmt.Sprintf("Sentences: %d\n", trace.Sentences))

	if len(trace.Scores) > 0 {
		sb.WriteString("\nOption scores:\n")
		for _, score := range trace.Scores {
			if score.ContrastMatch {
				sb.WriteString(fmt.Sprintf("  %s: contrast match\n", score.Letter))
				continue
			}
			sb.WriteString(fmt.Sprintf("  %s: %.0f\n", score.Letter, score.Score))
			if len(score.Breakdown) > 0 {
				detail := strings.Join(score.Breakdown, "; ")
				if len(detail) > 45 {
					detail = detail[:42] + "..."
				}
				sb.WriteString(fmt.Sprintf("     %s\n", detail))
			}
		}
	}

	p.printBox("PIPELINE TRACE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResult outputs the final answer with confidence and evidence.
func (p *Printer) PrintResult(result *types.SearchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	answer := result.Answer
	if answer == "" {
		answer = "(none)"
	}
	sb.WriteString(fmt.Sprintf("Answer:     %s\n", answer))
	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n", result.Confidence))
	sb.WriteString(fmt.Sprintf("Method:     %s\n", result.Method))

	if result.Evidence != "" {
		evidence := result.Evidence
		if len(evidence) > 50 {
			evidence = evidence[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nEvidence: %s\n", evidence))
	}
	if result.Explanation != "" {
		explanation := result.Explanation
		if len(explanation) > 50 {
			explanation = explanation[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("Note: %s\n", explanation))
	}

	p.printBox("SEARCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}
