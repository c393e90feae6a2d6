// Package intent extracts a structured description of what a free-text
// prompt is asking for. Input may be a question, an imperative sentence, a
// "Field: value" structured block, or a typo-laden fragment; extraction is
// total and deterministic, falling back to sentinels instead of failing.
package intent

// Sentinel values used when nothing better can be extracted. Absence of an
// optional field is the empty string; Action and Topic always resolve.
const (
	DefaultAction = "write"
	TopicSentinel = "the specified topic"
)

// Constraints captures length/style limits extracted from a prompt.
type Constraints struct {
	WordCount int
	Style     string
	Scope     string
}

// Empty reports whether no constraint was detected.
func (c Constraints) Empty() bool {
	return c.WordCount == 0 && c.Style == "" && c.Scope == ""
}

// ParsedIntent is the normalized representation of a request.
// Action is never empty; Topic falls back to TopicSentinel at render time
// when extraction found nothing.
type ParsedIntent struct {
	Action      string
	Topic       string
	Format      string
	Audience    string
	Tone        string
	Role        string
	Context     string
	Constraints Constraints
	Examples    []string
	KeyTerms    []string
}

// TopicOrSentinel returns the topic, or the sentinel when unresolved.
func (p ParsedIntent) TopicOrSentinel() string {
	if p.Topic == "" {
		return TopicSentinel
	}
	return p.Topic
}

// StructuredPrompt is the result of scanning input for "Label: value" lines.
type StructuredPrompt struct {
	Role        string
	Action      string
	Topic       string
	Audience    string
	Format      string
	Tone        string
	Length      string
	Constraints string
	Context     string

	// IsStructured is true when at least two distinct recognized labels
	// carried values.
	IsStructured bool

	// IsTemplateOnly is true when the input was nothing but empty label
	// scaffolding ("Role:\nAction:\n..."); the pipeline short-circuits
	// with a needs-more-detail sentinel instead of rendering.
	IsTemplateOnly bool
}

// FieldCount returns the number of populated structured fields.
func (sp StructuredPrompt) FieldCount() int {
	n := 0
	for _, v := range []string{
		sp.Role, sp.Action, sp.Topic, sp.Audience, sp.Format,
		sp.Tone, sp.Length, sp.Constraints, sp.Context,
	} {
		if v != "" {
			n++
		}
	}
	return n
}
