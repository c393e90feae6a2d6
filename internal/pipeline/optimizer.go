// Package pipeline wires normalization, intent extraction, semantic
// enhancement, rendering, and ranking into the two top-level operations:
// apply one framework, or rank all eight. Every call returns a
// well-formed value; degradation shows up in the Confidence field, never
// as an error or panic.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/VisheshJha/PromptPrune-sub000/internal/config"
	"github.com/VisheshJha/PromptPrune-sub000/internal/framework"
	"github.com/VisheshJha/PromptPrune-sub000/internal/intent"
	"github.com/VisheshJha/PromptPrune-sub000/internal/logging"
	"github.com/VisheshJha/PromptPrune-sub000/internal/normalize"
	"github.com/VisheshJha/PromptPrune-sub000/internal/ranking"
	"github.com/VisheshJha/PromptPrune-sub000/internal/semantic"
)

// Sentinel messages for inputs that never reach rendering.
const (
	EmptyInputMessage   = "Please provide a prompt to optimize."
	TemplateOnlyMessage = "Please provide more details. The prompt contains only field labels with no values filled in."
)

// Analysis is the shared result of running a prompt through
// normalization, structured parsing, extraction, and enhancement.
type Analysis struct {
	RequestID   string
	Normalized  string
	Corrections []normalize.Correction
	Intent      intent.ParsedIntent
	Structured  *intent.StructuredPrompt
	Confidence  float64

	// Sentinel is non-empty when the input short-circuited before
	// extraction (empty input, template-only scaffold).
	Sentinel string
}

// Response is the result of applying one framework to a prompt.
type Response struct {
	RequestID   string
	Output      framework.Output
	Corrections []normalize.Correction
	Confidence  float64
}

// RankResult is the result of ranking all frameworks against a prompt.
type RankResult struct {
	RequestID   string
	Entries     []ranking.Entry
	Corrections []normalize.Correction
	Confidence  float64
}

// Optimizer owns the per-process collaborators: the correction
// dictionary, the optional semantic service, and the ranker. Each call
// builds its intermediate state fresh; nothing is cached across calls.
type Optimizer struct {
	cfg        *config.Config
	dict       *normalize.Dictionary
	normalizer *normalize.Normalizer
	enhancer   *semantic.Enhancer
	ranker     *ranking.Ranker
}

// New assembles an Optimizer from config. svc may be nil (semantic
// scoring disabled); a user dictionary that fails to load is logged and
// skipped, never fatal.
func New(cfg *config.Config, svc semantic.Service) *Optimizer {
	dict := normalize.NewDictionary()
	if cfg.DictionaryPath != "" {
		if err := dict.LoadUserFile(cfg.DictionaryPath); err != nil {
			logging.Get(logging.CategoryPipeline).Warn("user dictionary not loaded",
				zap.String("path", cfg.DictionaryPath), zap.Error(err))
		}
	}

	return &Optimizer{
		cfg:        cfg,
		dict:       dict,
		normalizer: normalize.New(dict),
		enhancer: semantic.NewEnhancer(svc,
			cfg.Semantic.InitTimeoutDuration(),
			cfg.Semantic.QueryTimeoutDuration()),
		ranker: ranking.New(svc,
			cfg.Ranking.FrameworkBudgetDuration(),
			cfg.Ranking.OverallBudgetDuration()),
	}
}

// ReloadDictionary re-merges the configured user dictionary, typically
// from a file-watch callback. Built-in entries are never displaced.
func (o *Optimizer) ReloadDictionary() {
	if o.cfg.DictionaryPath == "" {
		return
	}
	if err := o.dict.LoadUserFile(o.cfg.DictionaryPath); err != nil {
		logging.Get(logging.CategoryPipeline).Warn("dictionary reload failed",
			zap.String("path", o.cfg.DictionaryPath), zap.Error(err))
	}
}

// Analyze runs the front half of the pipeline and returns the parsed
// intent plus bookkeeping. It never fails.
func (o *Optimizer) Analyze(ctx context.Context, text string) Analysis {
	a := Analysis{RequestID: uuid.NewString()}
	log := logging.Get(logging.CategoryPipeline).With(zap.String("request_id", a.RequestID))

	if strings.TrimSpace(text) == "" {
		a.Sentinel = EmptyInputMessage
		log.Debug("empty input short-circuit")
		return a
	}

	res := o.normalizer.Normalize(text)
	a.Normalized = res.Corrected
	a.Corrections = res.Corrections

	sp := intent.ParseStructured(res.Corrected)
	if sp.IsTemplateOnly {
		a.Sentinel = TemplateOnlyMessage
		log.Debug("template-only short-circuit")
		return a
	}

	if sp.IsStructured {
		a.Structured = &sp
		// Extraction over the rebuilt sentence fills gaps (key terms,
		// constraint parsing); explicit structured fields always win.
		base := intent.Extract(intent.ConvertToNatural(sp))
		a.Intent = overlayStructured(base, sp.Intent())
	} else {
		base := intent.Extract(res.Corrected)
		a.Intent = o.enhancer.Enhance(ctx, res.Corrected, base)
	}

	a.Confidence = confidence(a)
	log.Debug("analysis complete",
		zap.String("action", a.Intent.Action),
		zap.String("topic", a.Intent.Topic),
		zap.Bool("structured", a.Structured != nil),
		zap.Float64("confidence", a.Confidence))
	return a
}

// Apply runs the pipeline and renders a single framework. The only
// possible error is an unknown framework ID.
func (o *Optimizer) Apply(ctx context.Context, text string, id framework.ID) (Response, error) {
	def, ok := framework.Lookup(id)
	if !ok {
		return Response{}, fmt.Errorf("unknown framework %q", id)
	}

	a := o.Analyze(ctx, text)
	if a.Sentinel != "" {
		return Response{
			RequestID: a.RequestID,
			Output: framework.Output{
				Framework:   id,
				Name:        def.Name,
				Description: def.Description,
				UseCase:     def.UseCase,
				Optimized:   a.Sentinel,
			},
		}, nil
	}

	out, err := framework.Render(id, a.Intent)
	if err != nil {
		return Response{}, err
	}
	return Response{
		RequestID:   a.RequestID,
		Output:      out,
		Corrections: a.Corrections,
		Confidence:  a.Confidence,
	}, nil
}

// RankAll runs the pipeline and ranks all eight frameworks. Sentinel
// inputs still yield eight entries, carrying the sentinel message in
// place of rendered text with a zero score.
func (o *Optimizer) RankAll(ctx context.Context, text string) RankResult {
	a := o.Analyze(ctx, text)
	if a.Sentinel != "" {
		return RankResult{
			RequestID: a.RequestID,
			Entries:   sentinelEntries(a.Sentinel),
		}
	}

	entries := o.ranker.Rank(ctx, ranking.Request{
		Prompt:     a.Normalized,
		Intent:     a.Intent,
		Structured: a.Structured,
	})
	return RankResult{
		RequestID:   a.RequestID,
		Entries:     entries,
		Corrections: a.Corrections,
		Confidence:  a.Confidence,
	}
}

// overlayStructured lays explicit structured fields over the extracted
// base so labeled values always beat inference.
func overlayStructured(base, structured intent.ParsedIntent) intent.ParsedIntent {
	out := base
	if structured.Action != "" && structured.Action != intent.DefaultAction {
		out.Action = structured.Action
	}
	if structured.Topic != "" {
		out.Topic = structured.Topic
	}
	if structured.Format != "" {
		out.Format = structured.Format
	}
	if structured.Audience != "" {
		out.Audience = structured.Audience
	}
	if structured.Tone != "" {
		out.Tone = structured.Tone
	}
	if structured.Role != "" {
		out.Role = structured.Role
	}
	if structured.Context != "" {
		out.Context = structured.Context
	}
	if !structured.Constraints.Empty() {
		out.Constraints = structured.Constraints
	}
	return out
}

// confidence grades how much signal the pipeline actually extracted.
// Purely informational; callers branch on it, the pipeline does not.
func confidence(a Analysis) float64 {
	c := 0.5
	if a.Structured != nil {
		c += 0.2
	}
	if a.Intent.Topic != "" {
		c += 0.1
	}
	if a.Intent.Format != "" || a.Intent.Tone != "" {
		c += 0.1
	}
	if a.Intent.Role != "" {
		c += 0.1
	}
	if c > 1 {
		c = 1
	}
	return c
}

// sentinelEntries builds the fixed eight-entry result for short-circuited
// input. No rendering happens.
func sentinelEntries(msg string) []ranking.Entry {
	defs := framework.Registry()
	entries := make([]ranking.Entry, len(defs))
	for i, def := range defs {
		entries[i] = ranking.Entry{
			Framework: def.ID,
			Output: framework.Output{
				Framework:   def.ID,
				Name:        def.Name,
				Description: def.Description,
				UseCase:     def.UseCase,
				Optimized:   msg,
			},
		}
	}
	return entries
}
