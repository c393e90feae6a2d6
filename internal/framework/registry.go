// Package framework holds the eight prompt-structuring frameworks and
// their renderers. Rendering is a pure function of the parsed intent: no
// randomness, no clock, no I/O.
package framework

// ID identifies one of the eight registered frameworks.
type ID string

const (
	CoT    ID = "cot"
	ToT    ID = "tot"
	APE    ID = "ape"
	RACE   ID = "race"
	ROSES  ID = "roses"
	GUIDE  ID = "guide"
	SMART  ID = "smart"
	CREATE ID = "create"
)

// Definition is a static registry entry. Immutable for the process
// lifetime.
type Definition struct {
	ID          ID
	Name        string
	Description string
	UseCase     string
}

// registry declaration order is the tie-break order for ranking.
var registry = []Definition{
	{
		ID:          CoT,
		Name:        "Chain of Thought",
		Description: "Breaks the task into explicit sequential reasoning steps so each conclusion builds on the previous one",
		UseCase:     "Complex reasoning, mathematical problems, logical analysis, debugging",
	},
	{
		ID:          ToT,
		Name:        "Tree of Thoughts",
		Description: "Explores several candidate approaches in parallel and evaluates them before committing to one",
		UseCase:     "Open-ended problems with multiple viable strategies, creative exploration",
	},
	{
		ID:          APE,
		Name:        "Action Purpose Expectation",
		Description: "A concise directive stating the action to take, why it matters, and what the result should look like",
		UseCase:     "Quick task delegation, simple well-bounded requests",
	},
	{
		ID:          RACE,
		Name:        "Role Action Context Expectation",
		Description: "Assigns an expert role, a clear action, supporting context, and explicit expectations",
		UseCase:     "Professional deliverables, business writing, reports for stakeholders",
	},
	{
		ID:          ROSES,
		Name:        "Role Objective Scenario Expected Solution Steps",
		Description: "A scenario-driven structure that stages the work through an objective, a setting, and ordered steps",
		UseCase:     "Multi-part deliverables with a defined role, format, and staging",
	},
	{
		ID:          GUIDE,
		Name:        "Goal Understanding Instructions Details Examples",
		Description: "Instructional framing that pairs the goal with background, directions, and a worked example",
		UseCase:     "Teaching material, how-to content, tutorials, onboarding documents",
	},
	{
		ID:          SMART,
		Name:        "Specific Measurable Achievable Relevant Time-bound",
		Description: "Defines the task against the five SMART criteria so success is unambiguous",
		UseCase:     "Goal setting, project planning, deliverables with measurable outcomes",
	},
	{
		ID:          CREATE,
		Name:        "Character Request Examples Adjustments Type Extras",
		Description: "A comprehensive template covering persona, request, examples, refinements, and output shape",
		UseCase:     "Detailed creative briefs, comprehensive prompts, general-purpose optimization",
	},
}

// Registry returns the framework definitions in declaration order. The
// returned slice is a copy; the registry itself never changes.
func Registry() []Definition {
	out := make([]Definition, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the definition for an ID.
func Lookup(id ID) (Definition, bool) {
	for _, d := range registry {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}

// IDs returns all framework IDs in declaration order.
func IDs() []ID {
	out := make([]ID, len(registry))
	for i, d := range registry {
		out[i] = d.ID
	}
	return out
}
