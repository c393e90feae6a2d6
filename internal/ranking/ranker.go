// Package ranking scores the eight frameworks against a prompt and
// returns them in descending score order. The result always has exactly
// eight entries: semantic scoring degrades to a neutral default, and a
// blown overall deadline degrades to a keyword-only pass. Callers never
// see an error.
package ranking

import (
	"context"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/VisheshJha/PromptPrune-sub000/internal/framework"
	"github.com/VisheshJha/PromptPrune-sub000/internal/intent"
	"github.com/VisheshJha/PromptPrune-sub000/internal/logging"
	"github.com/VisheshJha/PromptPrune-sub000/internal/semantic"
)

const (
	semanticWeight  = 0.4
	keywordWeight   = 0.6
	neutralSemantic = 50.0
	structuredBonus = 25.0
	rosesComboBonus = 10.0
	createFlatBonus = 5.0
)

// Entry is one framework's ranked result.
type Entry struct {
	Framework framework.ID
	Score     float64
	Output    framework.Output
}

// Request carries everything the ranker needs. Structured is nil for
// free-text input.
type Request struct {
	Prompt     string
	Intent     intent.ParsedIntent
	Structured *intent.StructuredPrompt
}

// Ranker scores frameworks using keyword tables plus, when the semantic
// service is ready, embedding similarity against each framework's
// description text.
type Ranker struct {
	svc             semantic.Service
	frameworkBudget time.Duration
	overallBudget   time.Duration
}

// New builds a Ranker. svc may be nil; every semantic score then
// defaults to neutral.
func New(svc semantic.Service, frameworkBudget, overallBudget time.Duration) *Ranker {
	return &Ranker{
		svc:             svc,
		frameworkBudget: frameworkBudget,
		overallBudget:   overallBudget,
	}
}

// Rank returns exactly one entry per registered framework, sorted by
// score descending; ties keep registry declaration order.
func (r *Ranker) Rank(ctx context.Context, req Request) []Entry {
	log := logging.Get(logging.CategoryRanking)

	entries := semantic.WithDeadline(ctx, r.overallBudget, nil, func(ctx context.Context) ([]Entry, error) {
		return r.rankFull(ctx, req)
	})
	if entries == nil {
		log.Warn("ranking deadline exceeded, using keyword-only fallback")
		entries = r.keywordOnly(req)
	}

	sortEntries(entries)
	return entries
}

// rankFull renders and scores all frameworks concurrently.
func (r *Ranker) rankFull(ctx context.Context, req Request) ([]Entry, error) {
	c := detectClasses(strings.ToLower(req.Prompt))
	promptVec := r.embedPrompt(ctx, req.Prompt)

	defs := framework.Registry()
	entries := make([]Entry, len(defs))

	g, gctx := errgroup.WithContext(ctx)
	for i, def := range defs {
		g.Go(func() error {
			out, err := framework.Render(def.ID, req.Intent)
			if err != nil {
				return err
			}
			sem := r.semanticScore(gctx, promptVec, def)
			kw := keywordScore(def.ID, c)
			score := semanticWeight*sem + keywordWeight*kw + structuredBoost(def.ID, req.Structured)
			if def.ID == framework.CREATE {
				score += createFlatBonus
			}
			entries[i] = Entry{Framework: def.ID, Score: score, Output: out}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

// embedPrompt fetches the prompt embedding once for all frameworks, or
// nil when the service cannot serve it in time.
func (r *Ranker) embedPrompt(ctx context.Context, prompt string) []float32 {
	if r.svc == nil || !r.svc.Ready() {
		return nil
	}
	emb := semantic.WithDeadline(ctx, r.frameworkBudget, semantic.Embedding{}, func(ctx context.Context) (semantic.Embedding, error) {
		return r.svc.Embed(ctx, prompt)
	})
	return emb.Vector
}

// semanticScore is the scaled similarity between the prompt and the
// framework's canonical description, neutral on any failure.
func (r *Ranker) semanticScore(ctx context.Context, promptVec []float32, def framework.Definition) float64 {
	if promptVec == nil {
		return neutralSemantic
	}

	canonical := def.Description + " " + def.UseCase
	return semantic.WithDeadline(ctx, r.frameworkBudget, neutralSemantic, func(ctx context.Context) (float64, error) {
		emb, err := r.svc.Embed(ctx, canonical)
		if err != nil {
			return 0, err
		}
		sim, err := semantic.CosineSimilarity(promptVec, emb.Vector)
		if err != nil {
			return 0, err
		}
		return (sim + 1) / 2 * 100, nil
	})
}

// structuredBoost rewards frameworks that fit the structured field
// combination the caller supplied.
func structuredBoost(id framework.ID, sp *intent.StructuredPrompt) float64 {
	if sp == nil || !sp.IsStructured {
		return 0
	}

	var boost float64
	if sp.Role != "" {
		switch id {
		case framework.RACE, framework.ROSES, framework.CREATE:
			boost += structuredBonus
		}
		if (sp.Format != "" || sp.Tone != "") && id == framework.ROSES {
			boost += rosesComboBonus
		}
	}
	if sp.FieldCount() >= 4 {
		switch id {
		case framework.CREATE, framework.ROSES:
			boost += structuredBonus
		}
	}
	return boost
}

// keywordOnly is the degraded pass: no rendering, no semantic calls, the
// original prompt text standing in for the optimized output.
func (r *Ranker) keywordOnly(req Request) []Entry {
	c := detectClasses(strings.ToLower(req.Prompt))

	defs := framework.Registry()
	entries := make([]Entry, len(defs))
	for i, def := range defs {
		score := keywordWeight*keywordScore(def.ID, c) + structuredBoost(def.ID, req.Structured)
		if def.ID == framework.CREATE {
			score += createFlatBonus
		}
		entries[i] = Entry{
			Framework: def.ID,
			Score:     score,
			Output: framework.Output{
				Framework:   def.ID,
				Name:        def.Name,
				Description: def.Description,
				UseCase:     def.UseCase,
				Optimized:   req.Prompt,
			},
		}
	}
	return entries
}

// sortEntries orders by score descending; SliceStable preserves registry
// order on ties.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
}
