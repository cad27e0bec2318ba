package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionScore_TotalScore(t *testing.T) {
	plain := OptionScore{Letter: "A", Score: 120}
	assert.Equal(t, 120.0, plain.TotalScore())

	contrast := OptionScore{Letter: "C", Score: 80, ContrastMatch: true}
	assert.Equal(t, float64(ContrastSentinel), contrast.TotalScore())
}

func TestOptionScore_MarshalJSON(t *testing.T) {
	score := OptionScore{
		Letter:   "B",
		Text:     "The Mitochondria",
		Score:    265,
		Evidence: "The mitochondria is the powerhouse of the cell.",
	}

	data, err := json.Marshal(score)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, 265.0, decoded["total_score"])
	assert.Equal(t, "B", decoded["letter"])
	assert.NotContains(t, decoded, "Score")
}

func TestOptionScore_MarshalJSONContrastSentinel(t *testing.T) {
	score := OptionScore{Letter: "C", Text: "Green", Score: 40, ContrastMatch: true}

	data, err := json.Marshal(score)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Contrast matches surface as the sentinel score externally.
	assert.Equal(t, -1.0, decoded["total_score"])
	assert.Equal(t, true, decoded["contrast_match"])
}

func TestParsedQuestion_OptionLetters(t *testing.T) {
	q := ParsedQuestion{Options: []Option{
		{Letter: "A", Text: "one"},
		{Letter: "B", Text: "two"},
	}}

	assert.Equal(t, []string{"A", "B"}, q.OptionLetters())
}

func TestSearchRequest_Validate(t *testing.T) {
	valid := SearchRequest{Question: "Which one? A) x B) y", Document: "some document"}
	assert.NoError(t, valid.Validate())

	missingDocument := SearchRequest{Question: "Which one?"}
	assert.Error(t, missingDocument.Validate())

	missingQuestion := SearchRequest{Document: "some document"}
	assert.Error(t, missingQuestion.Validate())
}

func TestDetectRequest_Validate(t *testing.T) {
	valid := DetectRequest{Question: "Which one? A) x B) y"}
	assert.NoError(t, valid.Validate())

	empty := DetectRequest{}
	assert.Error(t, empty.Validate())
}
