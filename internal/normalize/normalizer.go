// Package normalize performs fixed-dictionary typo and text-speak
// correction plus whitespace cleanup on raw prompt text. Correction is
// whole-word, case-insensitive, and case-preserving on replacement.
// Normalize is idempotent: running it on its own output is a no-op.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/VisheshJha/PromptPrune-sub000/internal/logging"
)

// Correction records a single dictionary replacement.
type Correction struct {
	Original  string
	Corrected string
	// Position is the byte offset of the corrected token in the
	// whitespace-collapsed text.
	Position int
}

// Result is the outcome of a Normalize call.
type Result struct {
	Corrected   string
	Corrections []Correction
}

// Normalizer applies a correction dictionary to input text.
type Normalizer struct {
	dict *Dictionary
}

// New returns a normalizer over the given dictionary. A nil dictionary
// gets the built-in table.
func New(dict *Dictionary) *Normalizer {
	if dict == nil {
		dict = NewDictionary()
	}
	return &Normalizer{dict: dict}
}

var (
	wordRe    = regexp.MustCompile(`[A-Za-z0-9']+`)
	spaceRe   = regexp.MustCompile(`[ \t]+`)
	newlineRe = regexp.MustCompile(`[ \t]*\n[ \t\n]*`)
)

// Normalize corrects the text and reports every replacement made.
// Whitespace collapse happens first; it commutes with dictionary
// replacement because replacements never introduce or consume whitespace.
func (n *Normalizer) Normalize(text string) Result {
	collapsed := collapseWhitespace(text)

	var corrections []Correction
	var b strings.Builder
	b.Grow(len(collapsed))
	last := 0
	for _, loc := range wordRe.FindAllStringIndex(collapsed, -1) {
		tok := collapsed[loc[0]:loc[1]]
		repl, ok := n.dict.Lookup(strings.ToLower(tok))
		if ok {
			repl = matchCase(tok, repl)
		}
		if !ok || repl == tok {
			continue
		}
		b.WriteString(collapsed[last:loc[0]])
		b.WriteString(repl)
		last = loc[1]
		corrections = append(corrections, Correction{
			Original:  tok,
			Corrected: repl,
			Position:  loc[0],
		})
	}
	b.WriteString(collapsed[last:])
	corrected := b.String()

	if len(corrections) > 0 {
		logging.Get(logging.CategoryNormalize).Debug("applied corrections",
			zap.Int("count", len(corrections)))
	}

	return Result{Corrected: corrected, Corrections: corrections}
}

// collapseWhitespace squeezes runs of spaces/tabs to one space and runs of
// newlines (with surrounding indentation) to one newline, trimming the ends.
func collapseWhitespace(text string) string {
	text = newlineRe.ReplaceAllString(text, "\n")
	text = spaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// matchCase capitalizes the replacement when the original token was
// capitalized. All-lowercase and mid-word casing pass through unchanged.
func matchCase(original, repl string) string {
	if original == "" || repl == "" {
		return repl
	}
	first := []rune(original)[0]
	if unicode.IsUpper(first) {
		r := []rune(repl)
		r[0] = unicode.ToUpper(r[0])
		return string(r)
	}
	return repl
}
