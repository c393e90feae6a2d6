package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStructuredBasic(t *testing.T) {
	sp := ParseStructured("Role: Marketing Manager\nAction: Write\nTopic: Social media strategy for Q4")

	assert.True(t, sp.IsStructured)
	assert.False(t, sp.IsTemplateOnly)
	assert.Equal(t, "Marketing Manager", sp.Role)
	assert.Equal(t, "Write", sp.Action)
	assert.Equal(t, "Social media strategy for Q4", sp.Topic)
	assert.Equal(t, 3, sp.FieldCount())
}

func TestParseStructuredTaskAlias(t *testing.T) {
	sp := ParseStructured("Task: Summarize\nTopic: Meeting notes")
	assert.True(t, sp.IsStructured)
	assert.Equal(t, "Summarize", sp.Action)
}

func TestParseStructuredSingleFieldIsNotStructured(t *testing.T) {
	sp := ParseStructured("Topic: Gardening tips")
	assert.False(t, sp.IsStructured)
	assert.Equal(t, "Gardening tips", sp.Topic)
}

func TestParseStructuredUnrecognizedLabelsIgnored(t *testing.T) {
	sp := ParseStructured("Color: blue\nMood: happy")
	assert.False(t, sp.IsStructured)
	assert.False(t, sp.IsTemplateOnly)
}

func TestParseStructuredLastSeenWins(t *testing.T) {
	sp := ParseStructured("Topic: First\nTone: casual\nTopic: Second")
	assert.True(t, sp.IsStructured)
	assert.Equal(t, "Second", sp.Topic)
}

func TestParseStructuredTemplateOnly(t *testing.T) {
	sp := ParseStructured("Role:\nAction:\nTopic:")
	assert.True(t, sp.IsTemplateOnly)
	assert.False(t, sp.IsStructured)
}

func TestParseStructuredTemplateOnlyWithWhitespaceValues(t *testing.T) {
	sp := ParseStructured("Role:   \nAction: \nTopic:\t")
	assert.True(t, sp.IsTemplateOnly)
}

func TestParseStructuredMixedEmptyAndFilled(t *testing.T) {
	// Some labels filled, some empty: a normal structured prompt, not a
	// template scaffold.
	sp := ParseStructured("Role: Editor\nAction:\nTopic: Style guide")
	assert.False(t, sp.IsTemplateOnly)
	assert.True(t, sp.IsStructured)
	assert.Equal(t, "Editor", sp.Role)
	assert.Empty(t, sp.Action)
}

func TestParseStructuredFreeTextIsNotStructured(t *testing.T) {
	sp := ParseStructured("write a blog post about remote work")
	assert.False(t, sp.IsStructured)
	assert.False(t, sp.IsTemplateOnly)
}

func TestConvertToNaturalAllFields(t *testing.T) {
	sp := StructuredPrompt{
		Role:        "Data Analyst",
		Action:      "summarize",
		Topic:       "quarterly churn",
		Audience:    "executives",
		Format:      "report",
		Tone:        "formal",
		Length:      "short",
		Constraints: "no jargon",
		Context:     "board meeting next week",
	}
	got := ConvertToNatural(sp)
	want := "You are Data Analyst. Summarize quarterly churn for executives in the format of report. " +
		"Use a formal tone. Keep it short. no jargon. Context: board meeting next week."
	assert.Equal(t, want, got)
}

func TestConvertToNaturalOmitsAbsentClauses(t *testing.T) {
	sp := StructuredPrompt{Action: "write", Topic: "a haiku"}
	assert.Equal(t, "Write a haiku.", ConvertToNatural(sp))
}

func TestConvertToNaturalIsDeterministic(t *testing.T) {
	sp := StructuredPrompt{Role: "Coach", Action: "plan", Topic: "training"}
	assert.Equal(t, ConvertToNatural(sp), ConvertToNatural(sp))
}

func TestStructuredIntent(t *testing.T) {
	sp := ParseStructured("Role: Recruiter\nAction: Draft\nTopic: Job description\nLength: 300 words")
	p := sp.Intent()

	assert.Equal(t, "draft", p.Action)
	assert.Equal(t, "Job description", p.Topic)
	assert.Equal(t, "Recruiter", p.Role)
	assert.Equal(t, 300, p.Constraints.WordCount)
}

func TestStructuredIntentDefaultsAction(t *testing.T) {
	sp := ParseStructured("Topic: Onboarding\nTone: friendly")
	p := sp.Intent()
	assert.Equal(t, "write", p.Action)
}
