package intent

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/VisheshJha/PromptPrune-sub000/internal/logging"
)

// Input beyond maxInputWords is truncated to truncateToWords before
// extraction. The truncation is silent; callers always get a result.
const (
	maxInputWords   = 10000
	truncateToWords = 5000

	// Action-verb search in statements is confined to the leading
	// prefix so verbs in later clauses cannot hijack the action.
	leadingVerbWindow = 100
)

// extractRule is one step of an extraction cascade. Rules run in order;
// the first rule whose predicate holds and whose extractor succeeds wins.
type extractRule struct {
	name    string
	applies func(text string) bool
	extract func(text string) (action, topic string, ok bool)
}

// runCascade evaluates rules first-match-wins.
func runCascade(rules []extractRule, text string) (action, topic, matched string) {
	for _, r := range rules {
		if r.applies != nil && !r.applies(text) {
			continue
		}
		if a, tp, ok := r.extract(text); ok {
			return a, tp, r.name
		}
	}
	return "", "", ""
}

// Extract derives a ParsedIntent from free text. It is pure, deterministic
// and total: any input, including empty or garbage text, yields a result.
func Extract(text string) ParsedIntent {
	log := logging.Get(logging.CategoryIntent)

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ParsedIntent{Action: DefaultAction, Topic: ""}
	}

	words := strings.Fields(trimmed)
	if len(words) > maxInputWords {
		words = words[:truncateToWords]
		trimmed = strings.Join(words, " ")
		log.Debug("input truncated", zap.Int("kept_words", truncateToWords))
	}

	p := ParsedIntent{Action: DefaultAction}

	switch len(words) {
	case 1:
		if isActionVerb(words[0]) {
			p.Action = strings.ToLower(words[0])
		} else {
			p.Topic = cleanTopic(words[0])
		}
	case 2:
		if isActionVerb(words[0]) {
			p.Action = strings.ToLower(words[0])
			p.Topic = cleanTopic(words[1])
		} else {
			p.Topic = cleanTopic(strings.Join(words, " "))
		}
	default:
		var matched string
		var action, topic string
		if isQuestion(words[0]) {
			action, topic, matched = runCascade(questionRules, trimmed)
		} else {
			action, topic, matched = runCascade(statementRules, trimmed)
		}
		if action != "" {
			p.Action = strings.ToLower(action)
		}
		p.Topic = cleanTopic(topic)
		if p.Topic == "" {
			p.Topic = fallbackTopic(trimmed, p.Action)
		}
		log.Debug("cascade result",
			zap.String("rule", matched),
			zap.String("action", p.Action),
			zap.String("topic", p.Topic))
	}

	p.Format = detectFormat(trimmed)
	p.Audience = detectAudience(trimmed)
	p.Tone = detectTone(trimmed)
	p.Role = detectRole(trimmed)
	p.Constraints = parseConstraints(trimmed)
	p.KeyTerms = keyTerms(words)

	return p
}

// isQuestion reports whether the first word marks question-form input.
func isQuestion(first string) bool {
	w := strings.ToLower(strings.TrimRight(first, "?,.!"))
	return interrogatives[w] || auxiliaries[w]
}

// -----------------------------------------------------------------------
// Question cascade
// -----------------------------------------------------------------------

var (
	qEmbeddedRe  = regexp.MustCompile(`(?i)^(?:who|what|when|where|why|how|which)\s+(?:do|does|did|should|can|could|would|will|shall)\s+(?:i|we|you|one|someone)\s+([a-z']+)\b\s*(.*)$`)
	qHowToRe     = regexp.MustCompile(`(?i)^how\s+(?:do\s+(?:i|you)\s+|to\s+)([a-z']+)\b\s*(.*)$`)
	qPoliteRe    = regexp.MustCompile(`(?i)^(?:can|could|would|will)\s+you\s+(?:please\s+)?([a-z']+)\b\s*(.*)$`)
	qDefinitionRe = regexp.MustCompile(`(?i)^(?:what|who)\s+(?:is|are|was|were)\s+(.+?)\??$`)
)

var questionRules = []extractRule{
	{
		// "how should I structure my resume" -> structure, not "should"
		name: "question-embedded-verb",
		extract: func(s string) (string, string, bool) {
			m := qEmbeddedRe.FindStringSubmatch(s)
			if m == nil || !isActionVerb(m[1]) {
				return "", "", false
			}
			return m[1], strings.TrimRight(m[2], "?"), true
		},
	},
	{
		name: "question-how-to",
		extract: func(s string) (string, string, bool) {
			m := qHowToRe.FindStringSubmatch(s)
			if m == nil || !isActionVerb(m[1]) {
				return "", "", false
			}
			return m[1], strings.TrimRight(m[2], "?"), true
		},
	},
	{
		name: "question-polite-request",
		extract: func(s string) (string, string, bool) {
			m := qPoliteRe.FindStringSubmatch(s)
			if m == nil || !isActionVerb(m[1]) {
				return "", "", false
			}
			return m[1], strings.TrimRight(m[2], "?"), true
		},
	},
	{
		// "what is quantum computing" -> explain it
		name: "question-definition",
		extract: func(s string) (string, string, bool) {
			m := qDefinitionRe.FindStringSubmatch(s)
			if m == nil {
				return "", "", false
			}
			return "explain", m[1], true
		},
	},
	{
		name:    "question-first-verb-anywhere",
		extract: firstVerbAnywhere,
	},
}

// -----------------------------------------------------------------------
// Statement cascade
// -----------------------------------------------------------------------

var (
	sResponsibilityRe = regexp.MustCompile(`(?i)\bit'?s\s+my\s+responsibility\s+to\s+([a-z']+)\b\s*(.*)$`)
	sWantNeedRe       = regexp.MustCompile(`(?i)\bi\s+(?:want|need|would\s+like)\s+(?:you\s+)?to\s+([a-z']+)\b\s*(.*)$`)
)

var statementRules = []extractRule{
	{
		name: "statement-responsibility",
		extract: func(s string) (string, string, bool) {
			m := sResponsibilityRe.FindStringSubmatch(s)
			if m == nil || !isActionVerb(m[1]) {
				return "", "", false
			}
			return m[1], m[2], true
		},
	},
	{
		name: "statement-leading-imperative",
		extract: func(s string) (string, string, bool) {
			rest := strings.TrimSpace(s)
			// "please write ..." is still imperative
			low := strings.ToLower(rest)
			for _, prefix := range []string{"please ", "kindly ", "hey "} {
				if strings.HasPrefix(low, prefix) {
					rest = strings.TrimSpace(rest[len(prefix):])
					low = strings.ToLower(rest)
				}
			}
			fields := strings.Fields(rest)
			if len(fields) == 0 || !isActionVerb(fields[0]) {
				return "", "", false
			}
			return fields[0], strings.Join(fields[1:], " "), true
		},
	},
	{
		// "I want you to draft a proposal" -> draft, never "want"
		name: "statement-want-need",
		extract: func(s string) (string, string, bool) {
			m := sWantNeedRe.FindStringSubmatch(s)
			if m == nil || fillerVerbs[strings.ToLower(m[1])] || !isActionVerb(m[1]) {
				return "", "", false
			}
			return m[1], m[2], true
		},
	},
	{
		name: "statement-early-verb",
		extract: func(s string) (string, string, bool) {
			window := s
			if len(window) > leadingVerbWindow {
				window = window[:leadingVerbWindow]
			}
			action, topic, ok := firstVerbAnywhere(window)
			if !ok {
				return "", "", false
			}
			// Topic may continue past the window; recover it from the
			// full text after the verb occurrence.
			if idx := verbIndex(s, action); idx >= 0 {
				topic = s[idx+len(action):]
			}
			return action, topic, true
		},
	},
}

// firstVerbAnywhere returns the first corpus action verb in the text and
// everything after it as the raw topic.
func firstVerbAnywhere(s string) (string, string, bool) {
	for _, w := range strings.Fields(s) {
		clean := strings.ToLower(strings.Trim(w, "?,.!:;"))
		if isActionVerb(clean) && !auxiliaries[clean] {
			idx := verbIndex(s, clean)
			if idx < 0 {
				return "", "", false
			}
			return clean, s[idx+len(clean):], true
		}
	}
	return "", "", false
}

// verbIndex finds the byte offset of a whole-word, case-insensitive
// occurrence of verb in s.
func verbIndex(s, verb string) int {
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(verb) + `\b`)
	loc := re.FindStringIndex(s)
	if loc == nil {
		return -1
	}
	return loc[0]
}
