package intent

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	aboutClauseRe = regexp.MustCompile(`(?i)\b(?:about|regarding)\s+(.+)$`)
	onClauseRe    = regexp.MustCompile(`(?i)^on\s+(.+)$`)

	wordCountRe = regexp.MustCompile(`(?i)\b(\d+)\s*words?\b`)
	scopeRe     = regexp.MustCompile(`(?i)\bfocus(?:ing|ed)?\s+on\s+([^.,\n]+)`)

	roleYouAreRe = regexp.MustCompile(`(?i)\byou\s+are\s+(?:an?\s+)?([^.,\n]+)`)
	roleActAsRe  = regexp.MustCompile(`(?i)\bact(?:ing)?\s+as\s+(?:an?\s+)?([^.,\n]+)`)
	roleAsLeadRe = regexp.MustCompile(`(?i)^as\s+an?\s+([^.,\n]+?),`)
)

// stopBoundaries end the object of an action verb. Checked in order of
// appearance; the earliest one in the topic wins.
var stopBoundaries = []string{
	",", " for ", " to ", " so that ", " because ",
}

// trailingFillers add nothing to a topic and are stripped until stable.
var trailingFillers = []string{
	"and stuff", "or something", "and so on", "and more", "etc",
	"make it good", "make it great", "make it interesting",
	"not boring", "help me with that", "help me", "please", "thanks",
	"and", "or", "with",
}

// leadingFillers are articles and weak determiners stripped from the front.
var leadingFillers = []string{"a ", "an ", "the ", "some ", "my ", "me "}

// cleanTopic reduces a raw topic capture to its core phrase: prefers an
// explicit about/regarding clause, cuts at the first stop boundary, then
// strips filler from both ends.
func cleanTopic(raw string) string {
	topic := strings.TrimSpace(raw)
	if topic == "" {
		return ""
	}

	if m := aboutClauseRe.FindStringSubmatch(topic); m != nil {
		topic = m[1]
	} else if m := onClauseRe.FindStringSubmatch(topic); m != nil {
		topic = m[1]
	}

	lower := strings.ToLower(topic)
	cut := len(topic)
	for _, b := range stopBoundaries {
		if i := strings.Index(lower, b); i >= 0 && i < cut {
			cut = i
		}
	}
	topic = strings.TrimSpace(topic[:cut])

	for changed := true; changed; {
		changed = false
		topic = strings.TrimRightFunc(topic, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSpace(r)
		})
		lower = strings.ToLower(topic)
		for _, f := range trailingFillers {
			if lower == f {
				return ""
			}
			if strings.HasSuffix(lower, " "+f) {
				topic = strings.TrimSpace(topic[:len(topic)-len(f)-1])
				lower = strings.ToLower(topic)
				changed = true
			}
		}
	}

	for changed := true; changed; {
		changed = false
		lower = strings.ToLower(topic)
		for _, f := range leadingFillers {
			if strings.HasPrefix(lower, f) {
				topic = strings.TrimSpace(topic[len(f):])
				changed = true
				break
			}
		}
	}

	return strings.TrimSpace(topic)
}

// fallbackTopic recovers a topic from significant tokens when no clause
// matched: non-stopword, non-verb tokens in original order.
func fallbackTopic(text, action string) string {
	var kept []string
	for _, w := range strings.Fields(text) {
		tok := strings.ToLower(strings.Trim(w, "?,.!:;\"'"))
		if tok == "" || len(tok) < 3 {
			continue
		}
		if isStopword(tok) || isActionVerb(tok) || auxiliaries[tok] ||
			interrogatives[tok] || fillerVerbs[tok] || tok == action {
			continue
		}
		kept = append(kept, tok)
		if len(kept) == 6 {
			break
		}
	}
	return strings.Join(kept, " ")
}

// -----------------------------------------------------------------------
// Keyword-membership field detection
// -----------------------------------------------------------------------

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		set[strings.Trim(w, "?,.!:;\"'()")] = true
	}
	return set
}

func matchKeyword(text string, table []struct{ trigger, canonical string }) string {
	lower := strings.ToLower(text)
	tokens := tokenSet(text)
	for _, e := range table {
		if strings.Contains(e.trigger, " ") {
			if strings.Contains(lower, e.trigger) {
				return e.canonical
			}
		} else if tokens[e.trigger] {
			return e.canonical
		}
	}
	return ""
}

func detectFormat(text string) string {
	table := make([]struct{ trigger, canonical string }, len(formatKeywords))
	for i, e := range formatKeywords {
		table[i] = struct{ trigger, canonical string }{e.trigger, e.format}
	}
	return matchKeyword(text, table)
}

func detectAudience(text string) string {
	table := make([]struct{ trigger, canonical string }, len(audienceKeywords))
	for i, e := range audienceKeywords {
		table[i] = struct{ trigger, canonical string }{e.trigger, e.audience}
	}
	return matchKeyword(text, table)
}

func detectTone(text string) string {
	table := make([]struct{ trigger, canonical string }, len(toneKeywords))
	for i, e := range toneKeywords {
		table[i] = struct{ trigger, canonical string }{e.trigger, e.tone}
	}
	return matchKeyword(text, table)
}

func detectRole(text string) string {
	for _, re := range []*regexp.Regexp{roleYouAreRe, roleActAsRe, roleAsLeadRe} {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// parseConstraints extracts explicit word counts and qualitative length
// hints. Qualitative hints map to fixed canonical phrases with approximate
// targets (short ~600 words, long ~1500 words).
func parseConstraints(text string) Constraints {
	var c Constraints

	if m := wordCountRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			c.WordCount = n
			c.Style = "around " + m[1] + " words"
		}
	}

	if c.WordCount == 0 {
		tokens := tokenSet(text)
		switch {
		case tokens["short"] || tokens["brief"] || tokens["concise"]:
			c.WordCount = 600
			c.Style = "concise (around 600 words)"
		case tokens["long"] || tokens["detailed"] || tokens["comprehensive"] || tokens["in-depth"]:
			c.WordCount = 1500
			c.Style = "comprehensive (around 1500 words)"
		}
	}

	if m := scopeRe.FindStringSubmatch(text); m != nil {
		c.Scope = strings.TrimSpace(m[1])
	}

	return c
}

// keyTerms collects salient tokens, in order, for loss-prevention during
// rendering.
func keyTerms(words []string) []string {
	seen := make(map[string]bool)
	var terms []string
	for _, w := range words {
		tok := strings.ToLower(strings.Trim(w, "?,.!:;\"'()"))
		if len(tok) < 4 || seen[tok] {
			continue
		}
		if isStopword(tok) || isActionVerb(tok) || auxiliaries[tok] || interrogatives[tok] {
			continue
		}
		seen[tok] = true
		terms = append(terms, tok)
		if len(terms) == 8 {
			break
		}
	}
	return terms
}

// capitalize upper-cases the first rune.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
