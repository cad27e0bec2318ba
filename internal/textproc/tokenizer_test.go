package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_DropsStopWordsAndStems(t *testing.T) {
	tokens := Tokenize("The mitochondria is the powerhouse of the cell")

	assert.True(t, tokens["mitochondria"])
	assert.True(t, tokens["powerhouse"])
	assert.True(t, tokens["cell"])

	assert.False(t, tokens["the"])
	assert.False(t, tokens["is"])
	assert.False(t, tokens["of"])
}

func TestTokenize_DropsQuizMetaWords(t *testing.T) {
	tokens := Tokenize("Which of the following best describes the correct answer?")

	// Every word is either a function word or quiz boilerplate.
	assert.Empty(t, tokens)
}

func TestTokenize_StripsPunctuation(t *testing.T) {
	tokens := Tokenize("the cell's supply of ATP.")

	// Apostrophe is deleted, so "cell's" collapses to "cells" and stems to
	// "cell". The trailing period disappears.
	assert.True(t, tokens["cell"])
	assert.True(t, tokens["atp"])
	assert.False(t, tokens["atp."])
}

func TestTokenize_KeepsHyphenatedWords(t *testing.T) {
	tokens := Tokenize("a well-known example")

	assert.True(t, tokens["well-known"])
	assert.True(t, tokens["example"])
}

func TestTokenize_DropsShortStems(t *testing.T) {
	tokens := Tokenize("an ox ran to it")

	assert.False(t, tokens["ox"])
	assert.True(t, tokens["ran"])
}

func TestTokenize_Deterministic(t *testing.T) {
	input := "Plants absorb carbon dioxide, generating oxygen during photosynthesis."

	first := Tokenize(input)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Tokenize(input))
	}
}

func TestStem_SuffixRules(t *testing.T) {
	cases := map[string]string{
		"cells":        "cell",
		"classes":      "class",
		"studies":      "study",
		"generating":   "generat",
		"quickly":      "quick",
		"organization": "organize",
		"movement":     "move",
		"darkness":     "dark",
		"operation":    "operate",
	}

	for word, want := range cases {
		assert.Equal(t, want, Stem(word), "stem of %q", word)
	}
}

func TestStem_ShortWordsUntouched(t *testing.T) {
	assert.Equal(t, "cat", Stem("cat"))
	assert.Equal(t, "be", Stem("be"))
}

func TestStem_SkipsRuleWhenStemTooShort(t *testing.T) {
	// "ies" would leave "ty"; the stemmer falls through to the bare "s"
	// rule instead.
	assert.Equal(t, "tie", Stem("ties"))
}

func TestStem_NoMatchingSuffix(t *testing.T) {
	assert.Equal(t, "oxygen", Stem("oxygen"))
}

func TestOverlap_CountsSharedTokens(t *testing.T) {
	a := map[string]bool{"cell": true, "energy": true, "atp": true}
	b := map[string]bool{"cell": true, "atp": true, "nucleus": true, "membrane": true}

	assert.Equal(t, 2, Overlap(a, b))
	assert.Equal(t, 2, Overlap(b, a))
}

func TestOverlap_Empty(t *testing.T) {
	a := map[string]bool{"cell": true}

	assert.Equal(t, 0, Overlap(a, nil))
	assert.Equal(t, 0, Overlap(nil, a))
}

func TestNormalize_LowercasesAndStripsPunctuation(t *testing.T) {
	assert.Equal(t, "the mitochondria", Normalize("The  Mitochondria!"))
	assert.Equal(t, "well-known fact", Normalize("Well-Known, fact."))
}
