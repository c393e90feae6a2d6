package ranking

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/VisheshJha/PromptPrune-sub000/internal/framework"
	"github.com/VisheshJha/PromptPrune-sub000/internal/intent"
	"github.com/VisheshJha/PromptPrune-sub000/internal/semantic"
)

func TestMain(m *testing.M) {
	// go.opencensus.io starts a background stats worker in its package init
	// (pulled in transitively via google.golang.org/genai); it is not a leak
	// from the code under test.
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

// stubService is a semantic.Service with scripted embedding behavior.
type stubService struct {
	ready   bool
	delay   time.Duration
	vectors map[string][]float32 // keyed by substring of the text
	def     []float32
}

func (s *stubService) Init(ctx context.Context) error { s.ready = true; return nil }
func (s *stubService) Ready() bool                    { return s.ready }
func (s *stubService) Close() error                   { return nil }

func (s *stubService) Classify(ctx context.Context, text string, labels []string) (semantic.Classification, error) {
	return semantic.Classification{}, nil
}

func (s *stubService) Embed(ctx context.Context, text string) (semantic.Embedding, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return semantic.Embedding{}, ctx.Err()
		}
	}
	for key, vec := range s.vectors {
		if strings.Contains(strings.ToLower(text), key) {
			return semantic.Embedding{Vector: vec}, nil
		}
	}
	return semantic.Embedding{Vector: s.def}, nil
}

func newRanker(svc semantic.Service) *Ranker {
	return New(svc, time.Second, 8*time.Second)
}

func assertWellFormed(t *testing.T, entries []Entry) {
	t.Helper()
	require.Len(t, entries, 8)
	assert.True(t, sort.SliceIsSorted(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	}))

	seen := map[framework.ID]bool{}
	for _, e := range entries {
		assert.False(t, seen[e.Framework], "duplicate framework %s", e.Framework)
		seen[e.Framework] = true
	}
}

func TestRankReturnsEightSortedWithoutService(t *testing.T) {
	r := newRanker(nil)
	entries := r.Rank(context.Background(), Request{
		Prompt: "write a blog article about travel",
		Intent: intent.ParsedIntent{Action: "write", Topic: "travel"},
	})

	assertWellFormed(t, entries)
	assert.Equal(t, framework.CREATE, entries[0].Framework)
	for _, e := range entries {
		assert.NotEmpty(t, e.Output.Optimized)
	}
}

func TestRankTiesKeepRegistryOrder(t *testing.T) {
	r := newRanker(nil)
	// No keyword class fires, so everything ties except CREATE's flat bonus.
	entries := r.Rank(context.Background(), Request{
		Prompt: "hello there",
		Intent: intent.ParsedIntent{Action: "write"},
	})

	require.Len(t, entries, 8)
	assert.Equal(t, framework.CREATE, entries[0].Framework)
	rest := []framework.ID{
		framework.CoT, framework.ToT, framework.APE, framework.RACE,
		framework.ROSES, framework.GUIDE, framework.SMART,
	}
	for i, id := range rest {
		assert.Equal(t, id, entries[i+1].Framework)
	}
}

func TestRankTimingOutServiceStaysNeutral(t *testing.T) {
	svc := &stubService{ready: true, delay: 10 * time.Second}
	r := New(svc, 30*time.Millisecond, 8*time.Second)

	start := time.Now()
	entries := r.Rank(context.Background(), Request{
		Prompt: "explain quantum computing in simple terms for beginners",
		Intent: intent.ParsedIntent{Action: "explain", Topic: "quantum computing"},
	})

	assertWellFormed(t, entries)
	assert.Less(t, time.Since(start), 3*time.Second)

	scores := map[framework.ID]float64{}
	for _, e := range entries {
		scores[e.Framework] = e.Score
	}
	assert.Greater(t, scores[framework.CoT], scores[framework.ROSES])
	assert.Greater(t, scores[framework.GUIDE], scores[framework.ROSES])
}

func TestRankSemanticSignalLiftsMatchingFramework(t *testing.T) {
	svc := &stubService{
		ready: true,
		vectors: map[string][]float32{
			"sequential reasoning": {1, 0, 0}, // CoT's canonical description
			"login flow":           {1, 0, 0},
		},
		def: []float32{0, 1, 0},
	}
	r := newRanker(svc)

	entries := r.Rank(context.Background(), Request{
		Prompt: "debug the failing login flow",
		Intent: intent.ParsedIntent{Action: "debug", Topic: "the failing login flow"},
	})

	assertWellFormed(t, entries)
	assert.Equal(t, framework.CoT, entries[0].Framework)
}

func TestRankOverallDeadlineFallsBackToKeywordOnly(t *testing.T) {
	svc := &stubService{ready: true, delay: 5 * time.Second}
	r := New(svc, time.Second, 10*time.Millisecond)

	prompt := "analyze the quarterly business report"
	entries := r.Rank(context.Background(), Request{
		Prompt: prompt,
		Intent: intent.ParsedIntent{Action: "analyze", Topic: "the quarterly business report"},
	})

	assertWellFormed(t, entries)
	for _, e := range entries {
		assert.Equal(t, prompt, e.Output.Optimized)
	}
	// RACE leads on professional + report keywords in the degraded pass.
	assert.Equal(t, framework.RACE, entries[0].Framework)
}

func TestDetectClasses(t *testing.T) {
	c := detectClasses("analyze the quarterly business report")
	assert.True(t, c.report)
	assert.True(t, c.professional)
	assert.False(t, c.content)
	assert.False(t, c.reasoning)
	assert.False(t, c.math)
	assert.False(t, c.instructional)
}

func TestKeywordScoreCoTPenalizesPureContent(t *testing.T) {
	content := detectClasses("write a blog post about cats")
	assert.Negative(t, keywordScore(framework.CoT, content))

	reasoning := detectClasses("explain why the algorithm fails")
	assert.Equal(t, 35.0, keywordScore(framework.CoT, reasoning))
}

func TestStructuredBoostCombinations(t *testing.T) {
	roleOnly := &intent.StructuredPrompt{Role: "PM", Action: "write", IsStructured: true}
	assert.Equal(t, 25.0, structuredBoost(framework.RACE, roleOnly))
	assert.Equal(t, 25.0, structuredBoost(framework.ROSES, roleOnly))
	assert.Equal(t, 25.0, structuredBoost(framework.CREATE, roleOnly))
	assert.Equal(t, 0.0, structuredBoost(framework.CoT, roleOnly))

	full := &intent.StructuredPrompt{
		Role: "PM", Action: "write", Topic: "roadmap", Format: "report",
		IsStructured: true,
	}
	assert.Equal(t, 25.0, structuredBoost(framework.RACE, full))
	assert.Equal(t, 60.0, structuredBoost(framework.ROSES, full))
	assert.Equal(t, 50.0, structuredBoost(framework.CREATE, full))

	assert.Equal(t, 0.0, structuredBoost(framework.ROSES, nil))
	notStructured := &intent.StructuredPrompt{Role: "PM"}
	assert.Equal(t, 0.0, structuredBoost(framework.ROSES, notStructured))
}

func TestRankStructuredPromptPrefersRoleFrameworks(t *testing.T) {
	r := newRanker(nil)
	sp := &intent.StructuredPrompt{
		Role: "Marketing Manager", Action: "Write", Topic: "Q4 strategy",
		Format: "report", IsStructured: true,
	}
	entries := r.Rank(context.Background(), Request{
		Prompt:     "role: marketing manager action: write topic: q4 strategy format: report",
		Intent:     intent.ParsedIntent{Action: "write", Topic: "Q4 strategy", Role: "Marketing Manager", Format: "report"},
		Structured: sp,
	})

	assertWellFormed(t, entries)
	assert.Equal(t, framework.ROSES, entries[0].Framework)
	top3 := []framework.ID{entries[0].Framework, entries[1].Framework, entries[2].Framework}
	assert.Contains(t, top3, framework.RACE)
	assert.Contains(t, top3, framework.CREATE)
}
