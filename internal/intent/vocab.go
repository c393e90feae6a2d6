package intent

import "strings"

// actionVerbs is the corpus of imperative verbs the extractor recognizes
// as prompt actions. Lookup is lowercase whole-word.
var actionVerbs = map[string]bool{
	"write": true, "create": true, "make": true, "draft": true,
	"compose": true, "generate": true, "produce": true, "prepare": true,
	"explain": true, "describe": true, "summarize": true, "outline": true,
	"analyze": true, "review": true, "compare": true, "evaluate": true,
	"list": true, "design": true, "develop": true, "plan": true,
	"build": true, "translate": true, "rewrite": true, "edit": true,
	"improve": true, "fix": true, "research": true, "teach": true,
	"define": true, "calculate": true, "solve": true, "implement": true,
	"code": true, "brainstorm": true, "suggest": true, "recommend": true,
	"present": true, "document": true, "report": true, "assess": true,
}

// fillerVerbs appear in "I want/need you to X" framings and must never be
// extracted as the action themselves.
var fillerVerbs = map[string]bool{
	"want": true, "need": true, "like": true, "wish": true, "require": true,
}

// interrogatives start question-form input.
var interrogatives = map[string]bool{
	"who": true, "what": true, "when": true, "where": true, "why": true,
	"how": true, "which": true, "whose": true, "whom": true,
}

// auxiliaries start question-form input and must never be extracted as the
// action verb of a question.
var auxiliaries = map[string]bool{
	"do": true, "does": true, "did": true, "can": true, "could": true,
	"should": true, "would": true, "will": true, "shall": true, "may": true,
	"might": true, "is": true, "are": true, "am": true, "was": true, "were": true,
}

// stopwords are excluded from fallback noun-phrase topic recovery and key
// term collection.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"for": true, "to": true, "of": true, "in": true, "on": true, "at": true,
	"with": true, "by": true, "from": true, "about": true, "as": true,
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "it": true, "its": true, "this": true, "that": true,
	"these": true, "those": true, "i": true, "you": true, "we": true,
	"they": true, "he": true, "she": true, "me": true, "my": true,
	"your": true, "our": true, "their": true, "please": true, "some": true,
	"any": true, "very": true, "really": true, "just": true, "also": true,
	"stuff": true, "things": true, "something": true, "good": true,
	"nice": true, "great": true,
}

// formatKeywords maps trigger words to the canonical format value.
// Multi-word triggers are checked as substrings of the lowercase text.
var formatKeywords = []struct{ trigger, format string }{
	{"blog post", "blog post"},
	{"bullet points", "bullet-point list"},
	{"blog", "blog post"},
	{"report", "report"},
	{"article", "article"},
	{"email", "email"},
	{"essay", "essay"},
	{"summary", "summary"},
	{"outline", "outline"},
	{"presentation", "presentation"},
	{"slide", "presentation"},
	{"letter", "letter"},
	{"script", "script"},
	{"story", "story"},
	{"poem", "poem"},
	{"tweet", "social media post"},
	{"newsletter", "newsletter"},
	{"proposal", "proposal"},
	{"checklist", "checklist"},
	{"guide", "guide"},
	{"tutorial", "tutorial"},
	{"faq", "FAQ"},
}

// audienceKeywords maps trigger words to the canonical audience value.
var audienceKeywords = []struct{ trigger, audience string }{
	{"beginners", "beginners"},
	{"beginner", "beginners"},
	{"novice", "beginners"},
	{"newbies", "beginners"},
	{"experts", "experts"},
	{"expert audience", "experts"},
	{"advanced users", "experts"},
	{"professional", "professional audience"},
	{"business", "professional audience"},
	{"executives", "executives"},
	{"stakeholders", "stakeholders"},
	{"children", "children"},
	{"kids", "children"},
	{"students", "students"},
	{"customers", "customers"},
	{"clients", "customers"},
	{"developers", "developers"},
	{"engineers", "engineers"},
	{"general audience", "general audience"},
	{"everyone", "general audience"},
	{"laypeople", "general audience"},
	{"non-technical", "non-technical readers"},
}

// toneKeywords maps trigger words to the canonical tone value.
var toneKeywords = []struct{ trigger, tone string }{
	{"professional", "professional"},
	{"formal", "formal"},
	{"casual", "casual"},
	{"informal", "casual"},
	{"friendly", "friendly"},
	{"funny", "humorous"},
	{"humorous", "humorous"},
	{"witty", "humorous"},
	{"serious", "serious"},
	{"persuasive", "persuasive"},
	{"academic", "academic"},
	{"conversational", "conversational"},
	{"enthusiastic", "enthusiastic"},
	{"empathetic", "empathetic"},
	{"authoritative", "authoritative"},
	{"simple", "simple and clear"},
	{"technical", "technical"},
}

func isActionVerb(word string) bool {
	return actionVerbs[strings.ToLower(word)]
}

func isStopword(word string) bool {
	return stopwords[strings.ToLower(word)]
}
