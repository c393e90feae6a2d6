package intent

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/VisheshJha/PromptPrune-sub000/internal/logging"
)

var fieldLineRe = regexp.MustCompile(`^(\w+):\s*(.*)$`)

// recognizedLabels maps accepted field labels to their canonical name.
var recognizedLabels = map[string]string{
	"role":       "role",
	"action":     "action",
	"task":       "action",
	"topic":      "topic",
	"audience":   "audience",
	"format":     "format",
	"tone":       "tone",
	"length":     "length",
	"constraints": "constraints",
	"constraint": "constraints",
	"context":    "context",
}

// ParseStructured scans the text for line-anchored "Label: value" fields.
// Two or more distinct recognized labels with values mark the prompt as
// structured; a scaffold of labels with no values at all is flagged as
// template-only so the caller can ask for detail instead of rendering.
// Repeated labels resolve last-seen-wins.
func ParseStructured(text string) StructuredPrompt {
	var sp StructuredPrompt

	filled := map[string]bool{}
	labelLines := 0
	emptyLabelLines := 0
	contentLines := 0

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := fieldLineRe.FindStringSubmatch(line)
		if m == nil {
			contentLines++
			continue
		}
		canonical, ok := recognizedLabels[strings.ToLower(m[1])]
		if !ok {
			contentLines++
			continue
		}
		labelLines++
		value := strings.TrimSpace(m[2])
		if value == "" {
			emptyLabelLines++
			continue
		}
		filled[canonical] = true
		sp.set(canonical, value)
	}

	if labelLines > 0 && emptyLabelLines == labelLines && contentLines == 0 {
		sp.IsTemplateOnly = true
		logging.Get(logging.CategoryIntent).Debug("template-only structured prompt detected",
			zap.Int("labels", labelLines))
		return sp
	}

	sp.IsStructured = len(filled) >= 2
	if sp.IsStructured {
		logging.Get(logging.CategoryIntent).Debug("structured prompt detected",
			zap.Int("fields", len(filled)))
	}
	return sp
}

func (sp *StructuredPrompt) set(label, value string) {
	switch label {
	case "role":
		sp.Role = value
	case "action":
		sp.Action = value
	case "topic":
		sp.Topic = value
	case "audience":
		sp.Audience = value
	case "format":
		sp.Format = value
	case "tone":
		sp.Tone = value
	case "length":
		sp.Length = value
	case "constraints":
		sp.Constraints = value
	case "context":
		sp.Context = value
	}
}

// ConvertToNatural rebuilds a deterministic natural-language sentence from
// structured fields so rule-based extraction can run over it. Absent
// fields drop their clause entirely.
func ConvertToNatural(sp StructuredPrompt) string {
	var parts []string

	if sp.Role != "" {
		parts = append(parts, "You are "+sp.Role+".")
	}

	action := sp.Action
	if action == "" {
		action = DefaultAction
	}
	core := capitalize(strings.ToLower(action))
	if sp.Topic != "" {
		core += " " + sp.Topic
	}
	if sp.Audience != "" {
		core += " for " + sp.Audience
	}
	if sp.Format != "" {
		core += " in the format of " + sp.Format
	}
	parts = append(parts, core+".")

	if sp.Tone != "" {
		parts = append(parts, "Use a "+sp.Tone+" tone.")
	}
	if sp.Length != "" {
		parts = append(parts, "Keep it "+sp.Length+".")
	}
	if sp.Constraints != "" {
		parts = append(parts, strings.TrimSuffix(sp.Constraints, ".")+".")
	}
	if sp.Context != "" {
		parts = append(parts, "Context: "+sp.Context+".")
	}

	return strings.Join(parts, " ")
}

// Intent converts structured fields directly into a ParsedIntent,
// bypassing free-text extraction. Length wording feeds the constraint
// parser so "800 words" and "short" behave as in free text.
func (sp StructuredPrompt) Intent() ParsedIntent {
	p := ParsedIntent{
		Action:   strings.ToLower(sp.Action),
		Topic:    sp.Topic,
		Format:   sp.Format,
		Audience: sp.Audience,
		Tone:     sp.Tone,
		Role:     sp.Role,
		Context:  sp.Context,
	}
	if p.Action == "" {
		p.Action = DefaultAction
	}
	if sp.Length != "" {
		p.Constraints = parseConstraints(sp.Length)
	}
	if sp.Constraints != "" && p.Constraints.Scope == "" {
		p.Constraints.Scope = sp.Constraints
	}
	return p
}
