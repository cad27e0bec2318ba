package textproc

// stopWords is the closed set of tokens discarded before stemming: common
// English function words, quiz-meta words, and modal/auxiliary verbs.
var stopWords = map[string]bool{
	// articles, conjunctions, prepositions
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "has": true, "he": true,
	"in": true, "is": true, "it": true, "its": true, "of": true, "on": true,
	"that": true, "the": true, "to": true, "was": true, "were": true,
	"with": true, "this": true, "but": true, "they": true, "have": true,
	"had": true, "what": true, "when": true, "where": true, "who": true,
	"whom": true, "why": true, "how": true, "all": true, "any": true,
	"both": true, "each": true, "few": true, "more": true, "most": true,
	"other": true, "some": true, "such": true, "no": true, "nor": true,
	"not": true, "only": true, "own": true, "same": true, "so": true,
	"than": true, "too": true, "very": true, "into": true, "through": true,
	"during": true, "before": true, "after": true, "above": true, "below": true,
	"between": true, "about": true, "again": true, "then": true, "there": true,
	"here": true, "out": true, "off": true, "over": true, "under": true,
	"or": true, "if": true, "because": true, "while": true, "until": true,
	"she": true, "her": true, "his": true, "him": true, "we": true, "you": true,
	"your": true, "their": true, "them": true, "these": true, "those": true,
	"i": true, "me": true, "my": true, "our": true, "us": true, "am": true,
	"been": true, "being": true,
	// modal / auxiliary verbs
	"can": true, "cannot": true, "could": true, "should": true, "would": true,
	"will": true, "shall": true, "may": true, "might": true, "must": true,
	"do": true, "does": true, "did": true, "doing": true, "done": true,
	// quiz-meta words
	"question": true, "answer": true, "following": true, "which": true,
	"one": true, "option": true, "choose": true, "select": true, "correct": true,
	"best": true, "describes": true,
}
