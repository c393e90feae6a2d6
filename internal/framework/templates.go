package framework

import (
	"fmt"
	"strings"

	"github.com/VisheshJha/PromptPrune-sub000/internal/intent"
)

// Output is one rendered prompt together with its framework metadata.
type Output struct {
	Framework   ID
	Name        string
	Description string
	UseCase     string
	Optimized   string
}

// Render produces the prompt for one framework from a parsed intent.
// Rendering is deterministic and side-effect free.
func Render(id ID, p intent.ParsedIntent) (Output, error) {
	def, ok := Lookup(id)
	if !ok {
		return Output{}, fmt.Errorf("unknown framework %q", id)
	}

	var text string
	switch id {
	case CoT:
		text = renderCoT(p)
	case ToT:
		text = renderToT(p)
	case APE:
		text = renderAPE(p)
	case RACE:
		text = renderRACE(p)
	case ROSES:
		text = renderROSES(p)
	case GUIDE:
		text = renderGUIDE(p)
	case SMART:
		text = renderSMART(p)
	case CREATE:
		text = renderCREATE(p)
	}
	return Output{
		Framework:   id,
		Name:        def.Name,
		Description: def.Description,
		UseCase:     def.UseCase,
		Optimized:   text,
	}, nil
}

// RenderAll renders every registered framework in declaration order.
func RenderAll(p intent.ParsedIntent) []Output {
	outs := make([]Output, 0, len(registry))
	for _, d := range registry {
		out, _ := Render(d.ID, p)
		outs = append(outs, out)
	}
	return outs
}

// roleOrExpert falls back to a topic-derived expert persona when the
// intent has no explicit role.
func roleOrExpert(p intent.ParsedIntent) string {
	if p.Role != "" {
		return rolePrefix(p.Role)
	}
	return rolePrefix("an expert on " + p.TopicOrSentinel())
}

func audienceClause(p intent.ParsedIntent) string {
	if p.Audience == "" {
		return ""
	}
	return "The audience is " + p.Audience + "."
}

func toneClause(p intent.ParsedIntent) string {
	if p.Tone == "" {
		return ""
	}
	return "Use a " + p.Tone + " tone."
}

func formatClause(p intent.ParsedIntent) string {
	if p.Format == "" {
		return ""
	}
	return "Deliver the result as a " + p.Format + "."
}

func contextClause(p intent.ParsedIntent) string {
	if p.Context == "" {
		return ""
	}
	return p.Context
}

func renderCoT(p intent.ParsedIntent) string {
	task := taskPhrase(p)
	return join(
		section("Task", sentenceCase(task)+"."),
		contextClause(p),
		"Think through this step by step:",
		"1. Restate the problem in your own words and identify what is being asked.",
		"2. List the facts, assumptions, and constraints that apply.",
		"3. Break the work into smaller sub-problems and solve each in order.",
		"4. Combine the intermediate results, checking each step against the previous one.",
		"5. State the final answer and briefly verify it satisfies the original request.",
		maybeSection("Constraints", constraintsLine(p.Constraints)),
		audienceClause(p),
		toneClause(p),
		formatClause(p),
	)
}

func renderToT(p intent.ParsedIntent) string {
	task := taskPhrase(p)

	var approaches []string
	if isContentTask(p) {
		approaches = []string{
			"1. Narrative approach: lead with a story or scenario that draws the reader in.",
			"2. Structured approach: organize around clear headings and a logical progression.",
			"3. Data-driven approach: anchor every claim in concrete facts, numbers, or examples.",
		}
	} else {
		approaches = []string{
			"1. Analytical approach: decompose the problem and reason from first principles.",
			"2. Creative approach: look for unconventional angles and reframe the problem.",
			"3. Systematic approach: apply a known method or checklist end to end.",
		}
	}

	lines := []string{
		section("Task", sentenceCase(task)+"."),
		contextClause(p),
		"Explore three different approaches before committing to one:",
	}
	lines = append(lines, approaches...)
	lines = append(lines,
		"Evaluate the strengths and weaknesses of each approach, pick the most promising one, and carry it through to a complete result.",
		maybeSection("Constraints", constraintsLine(p.Constraints)),
		audienceClause(p),
		toneClause(p),
		formatClause(p),
	)
	return join(lines...)
}

func renderAPE(p intent.ParsedIntent) string {
	task := taskPhrase(p)
	purpose := "The goal is a result that is accurate, useful, and ready to use as-is."
	if p.Audience != "" {
		purpose = "The goal is a result that serves " + p.Audience + " directly."
	}

	expectation := "Produce a complete, well-organized response."
	if p.Format != "" {
		expectation = "Produce a complete " + p.Format + "."
	}
	if c := constraintsLine(p.Constraints); c != "" {
		expectation += " Keep it " + c + "."
	}

	return join(
		section("Action", sentenceCase(task)+"."),
		section("Purpose", purpose),
		section("Expectation", expectation),
		contextClause(p),
		toneClause(p),
	)
}

func renderRACE(p intent.ParsedIntent) string {
	task := taskPhrase(p)

	ctx := p.Context
	if ctx == "" {
		ctx = "This is for " + audienceOrGeneral(p) + "."
	}

	expectation := "A polished, professional result"
	if p.Format != "" {
		expectation = "A polished " + p.Format
	}
	if c := constraintsLine(p.Constraints); c != "" {
		expectation += ", " + c
	}
	expectation += "."

	return join(
		section("Role", roleOrExpert(p)+"."),
		section("Action", sentenceCase(task)+"."),
		section("Context", ctx),
		section("Expectation", expectation),
		toneClause(p),
	)
}

func renderROSES(p intent.ParsedIntent) string {
	task := taskPhrase(p)

	scenario := p.Context
	if scenario == "" {
		scenario = "You have been asked to " + task + " for " + audienceOrGeneral(p) + "."
	}

	solution := "A complete, well-structured response"
	if p.Format != "" {
		solution = "A complete " + p.Format
	}
	if c := constraintsLine(p.Constraints); c != "" {
		solution += ", " + c
	}
	solution += "."

	return join(
		section("Role", roleOrExpert(p)+"."),
		section("Objective", sentenceCase(task)+"."),
		section("Scenario", scenario),
		section("Expected Solution", solution),
		"Steps:",
		"1. Clarify the requirements and the audience's needs.",
		"2. Outline the structure before writing.",
		"3. Produce the full deliverable.",
		"4. Review it against the objective and refine.",
		toneClause(p),
	)
}

func renderGUIDE(p intent.ParsedIntent) string {
	task := taskPhrase(p)

	understanding := "Assume the reader is encountering this topic with " + audienceOrGeneral(p) + " in mind."
	if p.Audience != "" {
		understanding = "The material is for " + p.Audience + "; match their level of background knowledge."
	}

	instructions := "Work through the material in a logical order, defining terms before using them."
	if c := constraintsLine(p.Constraints); c != "" {
		instructions += " Keep it " + c + "."
	}

	details := join(toneClause(p), formatClause(p), contextClause(p))
	if details == "" {
		details = "Favor concrete, specific detail over generalities."
	}

	return join(
		section("Goal", sentenceCase(task)+"."),
		section("Understanding", understanding),
		section("Instructions", instructions),
		section("Details", strings.ReplaceAll(details, "\n", " ")),
		section("Examples", exampleFor(p)),
	)
}

func renderSMART(p intent.ParsedIntent) string {
	task := taskPhrase(p)
	topic := p.TopicOrSentinel()

	measurable := "Success means the result fully addresses " + topic + " with nothing essential missing."
	if p.Constraints.WordCount > 0 {
		measurable = "Success means the result fully addresses " + topic + " in around " + itoa(p.Constraints.WordCount) + " words."
	}

	relevant := "Every part of the response should serve the stated task; cut anything that does not."
	if p.Audience != "" {
		relevant = "Every part of the response should be relevant to " + p.Audience + "; cut anything that is not."
	}

	return join(
		section("Specific", sentenceCase(task)+"."),
		section("Measurable", measurable),
		section("Achievable", "Scope the response to what can be covered well in a single deliverable."),
		section("Relevant", relevant),
		section("Time-bound", "Treat this as a single-pass deliverable: complete and self-contained, with no follow-up required."),
		contextClause(p),
		toneClause(p),
		formatClause(p),
	)
}

func renderCREATE(p intent.ParsedIntent) string {
	task := taskPhrase(p)

	adjustments := join(toneClause(p), audienceClause(p))
	if c := constraintsLine(p.Constraints); c != "" {
		adjustments = join(adjustments, sentenceCase(c)+".")
	}
	if adjustments == "" {
		adjustments = "Aim for clarity and precision throughout."
	}

	typ := "A complete, well-organized response."
	if p.Format != "" {
		typ = "A " + p.Format + "."
	}

	extras := contextClause(p)
	if extras == "" && len(p.KeyTerms) > 0 {
		extras = "Make sure to cover: " + strings.Join(p.KeyTerms, ", ") + "."
	}

	return join(
		section("Character", roleOrExpert(p)+"."),
		section("Request", sentenceCase(task)+"."),
		section("Examples", exampleFor(p)),
		section("Adjustments", strings.ReplaceAll(adjustments, "\n", " ")),
		section("Type", typ),
		maybeSection("Extras", extras),
	)
}

func audienceOrGeneral(p intent.ParsedIntent) string {
	if p.Audience != "" {
		return p.Audience
	}
	return "a general audience"
}

// maybeSection renders a labeled section only when the body is non-empty.
func maybeSection(label, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return section(label, body)
}
