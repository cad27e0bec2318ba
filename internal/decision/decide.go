// Package decision combines per-option evidence scores into a final answer
// with a calibrated confidence estimate.
package decision

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/study-search/internal/types"
)

// noEvidencePlaceholder is reported when the winning option has no supporting
// sentence at all.
const noEvidencePlaceholder = "no direct textual evidence found"

// Confidence bands. These thresholds reflect calibration of the heuristic
// against real quiz material; do not tune them casually.
const (
	contrastConfidence    = 0.98
	strongInversionConf   = 0.95
	moderateInversionConf = 0.75
	weakInversionConf     = 0.60
	clearWinnerConf       = 0.95
	strongWinnerConf      = 0.85
	moderateWinnerConf    = 0.70
	marginalWinnerConf    = 0.55
	noEvidenceConf        = 0.50
	highScoreThreshold    = 30.0
	unsupportedThreshold  = 15.0
	inversionGapRatio     = 0.3
	clearWinnerRatio      = 2.0
	strongWinnerRatio     = 1.5
	moderateWinnerRatio   = 1.1
)

// Decide picks the answer from the scored options. Negative questions invert
// the selection: the least supported option is the exception being asked for.
func Decide(scores []types.OptionScore, isNegative bool) types.SearchResult {
	if len(scores) == 0 {
		return types.SearchResult{
			Confidence:  0,
			Evidence:    noEvidencePlaceholder,
			Explanation: "No options were available to score.",
			Method:      types.MethodQuiz,
		}
	}

	if isNegative {
		return decideNegative(scores)
	}
	return decideStandard(scores)
}

func decideNegative(scores []types.OptionScore) types.SearchResult {
	// A contrast match is definitive: the document names the option and then
	// contradicts it.
	for _, s := range scores {
		if s.ContrastMatch {
			return result(s, contrastConfidence, fmt.Sprintf(
				"Option %s is directly contrasted in the text: %q", s.Letter, s.Evidence))
		}
	}

	sorted := sortByScore(scores)
	best := sorted[0]
	worst := sorted[len(sorted)-1]

	highScoreCount := 0
	for _, s := range sorted {
		if s.Score > highScoreThreshold {
			highScoreCount++
		}
	}

	switch {
	case highScoreCount >= 2 && worst.Score < unsupportedThreshold:
		return result(worst, strongInversionConf, fmt.Sprintf(
			"Several options are well supported by the text while option %s is not; for a negative question the unsupported option is the answer.", worst.Letter))
	case worst.Score < best.Score*inversionGapRatio:
		return result(worst, moderateInversionConf, fmt.Sprintf(
			"Option %s has clearly weaker textual support than the rest, which suggests it is the exception.", worst.Letter))
	default:
		return result(worst, weakInversionConf, fmt.Sprintf(
			"Weak signal: all options have comparable support. Option %s scored lowest and is the best guess for a negative question.", worst.Letter))
	}
}

func decideStandard(scores []types.OptionScore) types.SearchResult {
	sorted := sortByScore(scores)
	winner := sorted[0]

	if winner.Score <= 0 {
		return result(winner, noEvidenceConf, fmt.Sprintf(
			"No strong evidence was found for any option; option %s is returned as the best guess.", winner.Letter))
	}

	confidence := clearWinnerConf
	note := "is clearly the best supported option"
	if len(sorted) > 1 && sorted[1].Score > 0 {
		ratio := winner.Score / sorted[1].Score
		switch {
		case ratio > clearWinnerRatio:
			confidence, note = clearWinnerConf, "is clearly the best supported option"
		case ratio > strongWinnerRatio:
			confidence, note = strongWinnerConf, "is well supported by the text"
		case ratio > moderateWinnerRatio:
			confidence, note = moderateWinnerConf, "is somewhat better supported than the runner-up"
		default:
			confidence, note = marginalWinnerConf, "is marginally ahead; the evidence is weak"
		}
	}

	explanation := fmt.Sprintf("Option %s %s.", winner.Letter, note)
	if len(winner.Breakdown) > 0 {
		explanation += " " + strings.Join(winner.Breakdown, "; ") + "."
	}
	return result(winner, confidence, explanation)
}

// sortByScore returns a copy sorted by score descending. The sort is stable
// so tied options keep their letter order.
func sortByScore(scores []types.OptionScore) []types.OptionScore {
	sorted := make([]types.OptionScore, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	return sorted
}

func result(winner types.OptionScore, confidence float64, explanation string) types.SearchResult {
	evidence := winner.Evidence
	if evidence == "" {
		evidence = noEvidencePlaceholder
	}
	return types.SearchResult{
		Answer:      winner.Letter,
		Confidence:  confidence,
		Evidence:    evidence,
		Explanation: explanation,
		Method:      types.MethodQuiz,
	}
}
