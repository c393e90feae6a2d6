package framework

import (
	"strings"
	"unicode"

	"github.com/VisheshJha/PromptPrune-sub000/internal/intent"
)

// taskPhrase renders "{action} {topic}" with the anti-duplication rules:
// a doubled leading verb ("write write ...") and a repeated "about X
// about X" fragment collapse to a single occurrence.
func taskPhrase(p intent.ParsedIntent) string {
	action := strings.ToLower(strings.TrimSpace(p.Action))
	if action == "" {
		action = intent.DefaultAction
	}
	topic := strings.TrimSpace(p.TopicOrSentinel())

	phrase := action + " " + topic
	if strings.HasPrefix(strings.ToLower(topic), action+" ") {
		phrase = topic
	}

	words := strings.Fields(phrase)
	words = dropAdjacentRepeats(words)
	words = collapseAboutRepeat(words)
	return strings.Join(words, " ")
}

// dropAdjacentRepeats removes immediately repeated words ("write write").
func dropAdjacentRepeats(words []string) []string {
	out := make([]string, 0, len(words))
	for i, w := range words {
		if i > 0 && strings.EqualFold(w, words[i-1]) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// collapseAboutRepeat removes a duplicated "about X" segment: the words
// between two "about" markers must match the words after the second one.
func collapseAboutRepeat(words []string) []string {
	for i := 0; i < len(words); i++ {
		if !strings.EqualFold(words[i], "about") {
			continue
		}
		for j := i + 1; j < len(words); j++ {
			if !strings.EqualFold(words[j], "about") {
				continue
			}
			seg := j - i
			if j+seg <= len(words) && equalFoldWords(words[i:j], words[j:j+seg]) {
				words = append(words[:j], words[j+seg:]...)
				j--
			}
		}
	}
	return words
}

func equalFoldWords(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !strings.EqualFold(a[i], b[i]) {
			return false
		}
	}
	return true
}

// rolePrefix emits exactly one "You are {role}" regardless of whether the
// caller already included the prefix in the role value.
func rolePrefix(role string) string {
	r := strings.TrimSpace(role)
	for {
		low := strings.ToLower(r)
		if strings.HasPrefix(low, "you are ") {
			r = strings.TrimSpace(r[len("you are "):])
			continue
		}
		break
	}
	return "You are " + r
}

// contentVerbs mark content-authoring tasks; everything else is treated
// as problem solving for ToT approach selection and example synthesis.
var contentVerbs = map[string]bool{
	"write": true, "create": true, "draft": true, "compose": true,
	"generate": true, "produce": true, "rewrite": true, "edit": true,
}

func isContentTask(p intent.ParsedIntent) bool {
	if contentVerbs[strings.ToLower(p.Action)] {
		return true
	}
	switch p.Format {
	case "article", "blog post", "story", "poem", "newsletter", "social media post":
		return true
	}
	return false
}

// exampleFor synthesizes an example line from the task when the intent
// carries none. Frameworks with a mandatory example section never emit it
// empty.
func exampleFor(p intent.ParsedIntent) string {
	if len(p.Examples) > 0 {
		return p.Examples[0]
	}

	topic := p.TopicOrSentinel()
	key := strings.ToLower(p.Action + " " + p.Format)
	switch {
	case containsAny(key, "article", "blog", "story", "post", "content", "compose"):
		return "An engaging piece on " + topic + " that opens with a hook and ends with a clear takeaway."
	case containsAny(key, "report", "analysis", "analyze", "review", "assess", "evaluate"):
		return "A structured report on " + topic + " with an executive summary, key findings, and recommendations."
	case containsAny(key, "code", "implement", "build", "script", "develop"):
		return "A working code sample for " + topic + " with comments explaining each step."
	case containsAny(key, "email", "letter"):
		return "A concise email about " + topic + " with a clear subject line and a single call to action."
	case containsAny(key, "summary", "summarize", "outline"):
		return "A one-paragraph summary of " + topic + " capturing the three most important points."
	default:
		return "A clear, well-organized response covering " + topic + "."
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// constraintsLine formats the constraints section body, or "" when there
// is nothing to say. Callers omit the section entirely on "".
func constraintsLine(c intent.Constraints) string {
	var parts []string
	if c.Style != "" {
		parts = append(parts, c.Style)
	} else if c.WordCount > 0 {
		parts = append(parts, "around "+itoa(c.WordCount)+" words")
	}
	if c.Scope != "" {
		parts = append(parts, "focus on "+c.Scope)
	}
	return strings.Join(parts, "; ")
}

// itoa avoids pulling strconv into every renderer call site.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var b [12]byte
	i := len(b)
	for n > 0 {
		i--
		b[i] = byte('0' + n%10)
		n /= 10
	}
	return string(b[i:])
}

// sentenceCase upper-cases the first rune of a phrase.
func sentenceCase(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// section renders one labeled block.
func section(label, body string) string {
	return label + ": " + body
}

// join assembles sections, skipping empties.
func join(sections ...string) string {
	var kept []string
	for _, s := range sections {
		if strings.TrimSpace(s) != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, "\n")
}
