package textproc

// suffixRule is a single suffix-stripping rewrite.
type suffixRule struct {
	suffix  string
	replace string
}

// suffixRules is ordered most specific first. Only the first matching rule is
// applied, and only when the resulting stem keeps at least minStemLen runes.
var suffixRules = []suffixRule{
	{"ization", "ize"},
	{"ational", "ate"},
	{"fulness", "ful"},
	{"ousness", "ous"},
	{"iveness", "ive"},
	{"tional", "tion"},
	{"biliti", "ble"},
	{"ation", "ate"},
	{"izer", "ize"},
	{"alli", "al"},
	{"enci", "ence"},
	{"anci", "ance"},
	{"abli", "able"},
	{"ment", ""},
	{"ness", ""},
	{"sses", "ss"},
	{"ies", "y"},
	{"ing", ""},
	{"ed", ""},
	{"ly", ""},
	{"es", ""},
	{"s", ""},
}

const (
	// minStemLen is the shortest stem a rule may produce.
	minStemLen = 3
	// minStemInput is the shortest word the stemmer will touch.
	minStemInput = 4
)

// Stem strips at most one suffix from word using the ordered rule table.
// Words shorter than minStemInput are returned unchanged.
func Stem(word string) string {
	if len(word) < minStemInput {
		return word
	}

	for _, rule := range suffixRules {
		if !hasSuffix(word, rule.suffix) {
			continue
		}
		stem := word[:len(word)-len(rule.suffix)] + rule.replace
		if len(stem) >= minStemLen {
			return stem
		}
		// Stem would be too short; keep looking for a shorter suffix.
	}

	return word
}

func hasSuffix(word, suffix string) bool {
	return len(word) > len(suffix) && word[len(word)-len(suffix):] == suffix
}
