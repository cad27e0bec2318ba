// Package scoring evaluates how well each answer option is supported by the
// retained hotspot text, using a sliding three-sentence window.
package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/study-search/internal/textproc"
	"github.com/jonathan/study-search/internal/types"
)

// Per-window score weights.
const (
	questionStemWeight = 10
	optionStemWeight   = 15
	coOccurrenceBonus  = 50
	literalMatchBonus  = 100
	highCoverageBonus  = 30
	fullCoverageBonus  = 50

	highCoverageThreshold = 0.8
)

// ScoreOption evaluates one option against the hotspot sentences. For
// negative questions, contrastTerms carries the antonyms collected from the
// question body; a contrast match is definitive and overrides the numeric
// score.
func ScoreOption(opt types.Option, sentences []string, questionTokens map[string]bool, contrastTerms []string) types.OptionScore {
	optionTokens := textproc.Tokenize(opt.Text)
	optionNormalized := textproc.Normalize(opt.Text)
	optionLower := strings.ToLower(opt.Text)

	score := types.OptionScore{Letter: opt.Letter, Text: opt.Text}

	bestScore := 0.0
	bestSentence := ""
	var bestBreakdown []string
	contrastSentence := ""

	for i, current := range sentences {
		prev, next := "", ""
		if i > 0 {
			prev = sentences[i-1]
		}
		if i+1 < len(sentences) {
			next = sentences[i+1]
		}
		window := prev + " " + current + " " + next

		windowTokens := textproc.Tokenize(window)
		currentTokens := textproc.Tokenize(current)

		questionHits := textproc.Overlap(questionTokens, windowTokens)
		optionHits := textproc.Overlap(optionTokens, windowTokens)

		// Definitive contrast evidence: the option is named and then
		// contradicted within the same sentence. First match wins.
		if len(contrastTerms) > 0 && contrastSentence == "" {
			if s := contrastMatch(current, optionLower, contrastTerms); s != "" {
				contrastSentence = s
			}
		}

		if questionHits == 0 && optionHits == 0 {
			continue
		}

		windowScore := float64(questionHits*questionStemWeight + optionHits*optionStemWeight)
		var breakdown []string
		if questionHits > 0 {
			breakdown = append(breakdown, fmt.Sprintf("%d question term(s) nearby", questionHits))
		}
		if optionHits > 0 {
			breakdown = append(breakdown, fmt.Sprintf("%d option term(s) nearby", optionHits))
		}

		if textproc.Overlap(questionTokens, currentTokens) > 0 && textproc.Overlap(optionTokens, currentTokens) > 0 {
			windowScore += coOccurrenceBonus
			breakdown = append(breakdown, "question and option co-occur in one sentence")
		}

		if optionNormalized != "" && strings.Contains(textproc.Normalize(current), optionNormalized) {
			windowScore += literalMatchBonus
			breakdown = append(breakdown, "option text appears verbatim")
		}

		if len(optionTokens) > 0 {
			coverage := float64(optionHits) / float64(len(optionTokens))
			if coverage > highCoverageThreshold {
				windowScore += highCoverageBonus
				breakdown = append(breakdown, "most option terms covered")
			}
			if coverage == 1.0 {
				windowScore += fullCoverageBonus
				breakdown = append(breakdown, "all option terms covered")
			}
		}

		if windowScore > bestScore {
			bestScore = windowScore
			bestSentence = current
			bestBreakdown = breakdown
		}
	}

	if contrastSentence != "" {
		score.ContrastMatch = true
		score.Evidence = contrastSentence
		score.Breakdown = []string{"option contradicted by contrast term in the same sentence"}
		return score
	}

	score.Score = bestScore
	score.Evidence = bestSentence
	score.Breakdown = bestBreakdown
	return score
}

// contrastMatch reports the sentence when the option's literal text appears
// in it and a contrast term follows later in the same sentence.
func contrastMatch(sentence, optionLower string, contrastTerms []string) string {
	lower := strings.ToLower(sentence)
	optIdx := strings.Index(lower, optionLower)
	if optIdx < 0 {
		return ""
	}

	after := lower[optIdx+len(optionLower):]
	for _, term := range contrastTerms {
		if strings.Contains(after, term) {
			return sentence
		}
	}
	return ""
}
