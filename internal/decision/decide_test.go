package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/study-search/internal/types"
)

func score(letter string, value float64) types.OptionScore {
	return types.OptionScore{Letter: letter, Score: value, Evidence: "evidence for " + letter}
}

func TestDecide_NoOptions(t *testing.T) {
	result := Decide(nil, false)

	assert.Empty(t, result.Answer)
	assert.Zero(t, result.Confidence)
	assert.Equal(t, types.MethodQuiz, result.Method)
}

func TestDecide_ClearWinner(t *testing.T) {
	scores := []types.OptionScore{score("A", 20), score("B", 100)}

	result := Decide(scores, false)

	assert.Equal(t, "B", result.Answer)
	assert.InDelta(t, 0.95, result.Confidence, 0.001)
	assert.Equal(t, "evidence for B", result.Evidence)
	assert.Equal(t, types.MethodQuiz, result.Method)
}

func TestDecide_StrongWinner(t *testing.T) {
	scores := []types.OptionScore{score("A", 100), score("B", 60)}

	result := Decide(scores, false)

	assert.Equal(t, "A", result.Answer)
	assert.InDelta(t, 0.85, result.Confidence, 0.001)
}

func TestDecide_ModerateWinner(t *testing.T) {
	scores := []types.OptionScore{score("A", 100), score("B", 80)}

	result := Decide(scores, false)

	assert.Equal(t, "A", result.Answer)
	assert.InDelta(t, 0.70, result.Confidence, 0.001)
}

func TestDecide_MarginalWinner(t *testing.T) {
	scores := []types.OptionScore{score("A", 100), score("B", 95)}

	result := Decide(scores, false)

	assert.Equal(t, "A", result.Answer)
	assert.InDelta(t, 0.55, result.Confidence, 0.001)
}

func TestDecide_SoleSupportedOption(t *testing.T) {
	scores := []types.OptionScore{score("A", 50), score("B", 0)}

	result := Decide(scores, false)

	// With no supported runner-up there is nothing to compare against.
	assert.Equal(t, "A", result.Answer)
	assert.InDelta(t, 0.95, result.Confidence, 0.001)
}

func TestDecide_NoEvidenceAnywhere(t *testing.T) {
	scores := []types.OptionScore{
		{Letter: "A"}, {Letter: "B"}, {Letter: "C"},
	}

	result := Decide(scores, false)

	assert.Equal(t, "A", result.Answer)
	assert.InDelta(t, 0.50, result.Confidence, 0.001)
	assert.Equal(t, "no direct textual evidence found", result.Evidence)
}

func TestDecide_TieKeepsLetterOrder(t *testing.T) {
	scores := []types.OptionScore{score("A", 50), score("B", 50)}

	result := Decide(scores, false)

	assert.Equal(t, "A", result.Answer)
	assert.InDelta(t, 0.55, result.Confidence, 0.001)
}

func TestDecide_NegativeContrastMatch(t *testing.T) {
	scores := []types.OptionScore{
		score("A", 120),
		score("B", 90),
		{Letter: "C", ContrastMatch: true, Evidence: "Green is a secondary color."},
		score("D", 100),
	}

	result := Decide(scores, true)

	assert.Equal(t, "C", result.Answer)
	assert.InDelta(t, 0.98, result.Confidence, 0.001)
	assert.Equal(t, "Green is a secondary color.", result.Evidence)
	assert.Contains(t, result.Explanation, "contrasted")
}

func TestDecide_NegativeStrongInversion(t *testing.T) {
	scores := []types.OptionScore{score("A", 100), score("B", 90), score("C", 5)}

	result := Decide(scores, true)

	assert.Equal(t, "C", result.Answer)
	assert.InDelta(t, 0.95, result.Confidence, 0.001)
}

func TestDecide_NegativeModerateInversion(t *testing.T) {
	scores := []types.OptionScore{score("A", 100), score("B", 40), score("C", 20)}

	result := Decide(scores, true)

	assert.Equal(t, "C", result.Answer)
	assert.InDelta(t, 0.75, result.Confidence, 0.001)
}

func TestDecide_NegativeWeakSignal(t *testing.T) {
	scores := []types.OptionScore{score("A", 50), score("B", 45), score("C", 40)}

	result := Decide(scores, true)

	assert.Equal(t, "C", result.Answer)
	assert.InDelta(t, 0.60, result.Confidence, 0.001)
}

func TestDecide_DoesNotMutateInput(t *testing.T) {
	scores := []types.OptionScore{score("A", 10), score("B", 90), score("C", 50)}

	Decide(scores, false)

	assert.Equal(t, "A", scores[0].Letter)
	assert.Equal(t, "B", scores[1].Letter)
	assert.Equal(t, "C", scores[2].Letter)
}

func TestDecide_ConfidenceWithinBounds(t *testing.T) {
	cases := [][]types.OptionScore{
		{score("A", 100), score("B", 20)},
		{score("A", 1), score("B", 1)},
		{{Letter: "A"}, {Letter: "B"}},
		{score("A", 100), score("B", 90), score("C", 5)},
	}

	for _, scores := range cases {
		for _, negative := range []bool{false, true} {
			result := Decide(scores, negative)
			require.NotEmpty(t, result.Answer)
			assert.Greater(t, result.Confidence, 0.0)
			assert.LessOrEqual(t, result.Confidence, 1.0)
		}
	}
}
