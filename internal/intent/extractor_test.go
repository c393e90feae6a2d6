package intent

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestExtractEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t  \n"} {
		p := Extract(in)
		assert.Equal(t, "write", p.Action, "input %q", in)
		assert.Equal(t, "", p.Topic, "input %q", in)
	}
}

func TestExtractSingleWord(t *testing.T) {
	p := Extract("summarize")
	assert.Equal(t, "summarize", p.Action)
	assert.Equal(t, "", p.Topic)

	p = Extract("blockchain")
	assert.Equal(t, "write", p.Action)
	assert.Equal(t, "blockchain", p.Topic)
}

func TestExtractTwoWords(t *testing.T) {
	p := Extract("write article")
	if diff := cmp.Diff("write", p.Action); diff != "" {
		t.Errorf("action mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "article", p.Topic)

	p = Extract("quantum computing")
	assert.Equal(t, "write", p.Action)
	assert.Equal(t, "quantum computing", p.Topic)
}

func TestExtractLeadingImperative(t *testing.T) {
	p := Extract("Write a blog post about remote work for beginners")
	assert.Equal(t, "write", p.Action)
	assert.Equal(t, "remote work", p.Topic)
	assert.Equal(t, "blog post", p.Format)
	assert.Equal(t, "beginners", p.Audience)
}

func TestExtractPleasePrefix(t *testing.T) {
	p := Extract("Please draft a proposal for the new client")
	assert.Equal(t, "draft", p.Action)
	assert.Equal(t, "proposal", p.Topic)
}

func TestExtractWantNeedEmbeddedVerb(t *testing.T) {
	p := Extract("I want you to summarize the quarterly report findings")
	assert.Equal(t, "summarize", p.Action)
	assert.NotEqual(t, "want", p.Action)
	assert.Contains(t, p.Topic, "quarterly report")

	p = Extract("I need you to analyze our churn numbers")
	assert.Equal(t, "analyze", p.Action)
}

func TestExtractResponsibilityPattern(t *testing.T) {
	p := Extract("It's my responsibility to prepare the annual budget review")
	assert.Equal(t, "prepare", p.Action)
	assert.Contains(t, p.Topic, "annual budget review")
}

func TestExtractQuestionEmbeddedVerb(t *testing.T) {
	p := Extract("How should I write a cover letter for a design job")
	assert.Equal(t, "write", p.Action)
	assert.NotEqual(t, "should", p.Action)
	assert.NotEqual(t, "do", p.Action)
	assert.Contains(t, p.Topic, "cover letter")
}

func TestExtractQuestionHowTo(t *testing.T) {
	p := Extract("How to improve team communication quickly")
	assert.Equal(t, "improve", p.Action)
	assert.Contains(t, p.Topic, "team communication")
}

func TestExtractQuestionPoliteRequest(t *testing.T) {
	p := Extract("Can you explain machine learning to me?")
	assert.Equal(t, "explain", p.Action)
	assert.Contains(t, p.Topic, "machine learning")
}

func TestExtractQuestionDefinition(t *testing.T) {
	p := Extract("What is quantum computing?")
	assert.Equal(t, "explain", p.Action)
	assert.Equal(t, "quantum computing", p.Topic)
}

func TestExtractQuestionNeverAuxiliary(t *testing.T) {
	p := Extract("What does the team review during a sprint retrospective?")
	assert.NotEqual(t, "does", p.Action)
	assert.NotEqual(t, "do", p.Action)
}

func TestExtractTypoLadenFragment(t *testing.T) {
	// The pipeline normalizes before extracting; this is the corrected form.
	p := Extract("please write about tech future ai robots and stuff make it good not boring")
	assert.Equal(t, "write", p.Action)
	assert.Contains(t, p.Topic, "tech")
	assert.Contains(t, p.Topic, "future")
	assert.NotContains(t, p.Topic, "stuff")
	assert.NotContains(t, p.Topic, "boring")
}

func TestExtractTopicStripsArticles(t *testing.T) {
	p := Extract("write me a poem please")
	assert.Equal(t, "poem", p.Topic)
}

func TestExtractLateVerbIgnored(t *testing.T) {
	// The action verb search is confined to the leading window; a verb
	// appearing only deep in the text cannot become the action.
	late := strings.Repeat("lorem ipsum dolor sit amet ", 8) + "analyze everything"
	p := Extract(late)
	assert.Equal(t, "write", p.Action)
}

func TestExtractVeryLongInputTruncates(t *testing.T) {
	long := "write about resilience " + strings.Repeat("word ", 11000)
	p := Extract(long)
	assert.Equal(t, "write", p.Action)
	assert.Contains(t, p.Topic, "resilience")
}

func TestExtractConstraints(t *testing.T) {
	p := Extract("write a 800 words article about solar power")
	assert.Equal(t, 800, p.Constraints.WordCount)

	p = Extract("write a short post about solar power")
	assert.Equal(t, 600, p.Constraints.WordCount)
	assert.Equal(t, "concise (around 600 words)", p.Constraints.Style)

	p = Extract("write a detailed analysis of solar power")
	assert.Equal(t, 1500, p.Constraints.WordCount)
}

func TestExtractToneAudienceFormatIndependent(t *testing.T) {
	p := Extract("write a funny email to customers about the outage")
	assert.Equal(t, "email", p.Format)
	assert.Equal(t, "humorous", p.Tone)
	assert.Equal(t, "customers", p.Audience)
}

func TestExtractRole(t *testing.T) {
	p := Extract("You are a marketing strategist. Create a launch plan for our app")
	assert.Equal(t, "marketing strategist", p.Role)

	p = Extract("As a teacher, explain photosynthesis to students")
	assert.Equal(t, "teacher", p.Role)
}

func TestExtractKeyTerms(t *testing.T) {
	p := Extract("write about kubernetes autoscaling strategies")
	assert.Contains(t, p.KeyTerms, "kubernetes")
	assert.Contains(t, p.KeyTerms, "autoscaling")
}

func TestExtractIsDeterministic(t *testing.T) {
	in := "Can you draft a formal letter to stakeholders about budget cuts?"
	a := Extract(in)
	b := Extract(in)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("extraction not deterministic (-first +second):\n%s", diff)
	}
}

func TestExtractGarbageNeverPanics(t *testing.T) {
	for _, in := range []string{
		"????", "!!!", "a", ": : :", "\x00\x01", "的中文テキスト",
		strings.Repeat("?", 5000),
	} {
		p := Extract(in)
		assert.NotEmpty(t, p.Action, "input %q", in)
	}
}

func TestCleanTopic(t *testing.T) {
	cases := map[string]string{
		"about the future of work":       "future of work",
		"a report on sales, with charts": "report on sales",
		"the economy and stuff":          "economy",
		"  AI safety  ":                  "AI safety",
		"":                               "",
		"and stuff":                      "",
	}
	for in, want := range cases {
		assert.Equal(t, want, cleanTopic(in), "input %q", in)
	}
}
