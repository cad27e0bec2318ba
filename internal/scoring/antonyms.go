package scoring

import (
	"sort"
	"strings"
)

// antonyms maps cue words that may appear in a negative question body to the
// contrast terms that would mark an option as the odd one out. Static data,
// never mutated.
var antonyms = map[string][]string{
	"primary":   {"secondary", "tertiary"},
	"true":      {"false", "untrue", "incorrect"},
	"correct":   {"incorrect", "wrong", "false"},
	"first":     {"second", "third", "last"},
	"always":    {"never", "sometimes", "rarely"},
	"all":       {"none", "some", "few"},
	"major":     {"minor"},
	"positive":  {"negative"},
	"increase":  {"decrease", "reduce"},
	"advantage": {"disadvantage"},
	"benefit":   {"drawback", "harm"},
	"include":   {"exclude"},
	"maximum":   {"minimum"},
	"best":      {"worst"},
	"most":      {"least"},
}

// ContrastTerms collects the antonym terms whose cue word appears in the
// question body. Only meaningful for negatively phrased questions.
func ContrastTerms(questionBody string) []string {
	body := strings.ToLower(questionBody)

	cues := make([]string, 0, len(antonyms))
	for cue := range antonyms {
		cues = append(cues, cue)
	}
	sort.Strings(cues)

	var terms []string
	for _, cue := range cues {
		if strings.Contains(body, cue) {
			terms = append(terms, antonyms[cue]...)
		}
	}
	return terms
}
