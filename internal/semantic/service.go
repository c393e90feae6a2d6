// Package semantic wraps the optional embedding/classification
// collaborator. Every call into it is bounded by an explicit deadline and
// fails open: callers receive their fallback value instead of an error
// when the service is missing, slow, or unsure.
package semantic

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Classification is a typed classification result. Score is the service's
// confidence in Label, in [0,1].
type Classification struct {
	Label string
	Score float64
}

// Embedding is a typed embedding result.
type Embedding struct {
	Vector []float32
}

// ErrNotReady is returned by service calls before a successful Init.
var ErrNotReady = errors.New("semantic service not initialized")

// Service is the collaborator interface the core depends on. Both
// operations are stateless and idempotent from the caller's point of view
// and must be safe to call under a caller-enforced timeout.
type Service interface {
	// Init prepares the backend (dials, health-checks). Idempotent.
	Init(ctx context.Context) error

	// Ready reports whether Init has succeeded.
	Ready() bool

	// Classify returns the best-matching label for the text.
	Classify(ctx context.Context, text string, labels []string) (Classification, error)

	// Embed returns a vector embedding of the text.
	Embed(ctx context.Context, text string) (Embedding, error)

	// Close releases backend resources.
	Close() error
}

// Engine is a raw embedding backend (Ollama, GenAI). The service layers
// classification on top of it.
type Engine interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Dimensions() int
	Name() string
}

// healthChecker is implemented by engines that can verify reachability.
type healthChecker interface {
	HealthCheck(ctx context.Context) error
}

// embeddingService implements Service over an embedding Engine,
// performing classification as nearest-label-by-cosine.
type embeddingService struct {
	engine Engine

	mu    sync.Mutex
	ready bool
}

// NewService wraps an embedding engine as a full Service.
func NewService(engine Engine) Service {
	return &embeddingService{engine: engine}
}

func (s *embeddingService) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		return nil
	}
	if hc, ok := s.engine.(healthChecker); ok {
		if err := hc.HealthCheck(ctx); err != nil {
			return fmt.Errorf("semantic backend unavailable: %w", err)
		}
	}
	s.ready = true
	return nil
}

func (s *embeddingService) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

func (s *embeddingService) Embed(ctx context.Context, text string) (Embedding, error) {
	if !s.Ready() {
		return Embedding{}, ErrNotReady
	}
	vec, err := s.engine.Embed(ctx, text)
	if err != nil {
		return Embedding{}, err
	}
	return Embedding{Vector: vec}, nil
}

// Classify embeds the text and every label concurrently, then picks the
// label with the highest cosine similarity. The score is the similarity
// mapped from [-1,1] into [0,1].
func (s *embeddingService) Classify(ctx context.Context, text string, labels []string) (Classification, error) {
	if !s.Ready() {
		return Classification{}, ErrNotReady
	}
	if len(labels) == 0 {
		return Classification{}, errors.New("no labels given")
	}

	g, gctx := errgroup.WithContext(ctx)

	var textVec []float32
	g.Go(func() error {
		var err error
		textVec, err = s.engine.Embed(gctx, text)
		return err
	})

	labelVecs := make([][]float32, len(labels))
	for i, label := range labels {
		g.Go(func() error {
			var err error
			labelVecs[i], err = s.engine.Embed(gctx, label)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return Classification{}, err
	}

	type scored struct {
		label string
		score float64
	}
	results := make([]scored, 0, len(labels))
	for i, vec := range labelVecs {
		sim, err := CosineSimilarity(textVec, vec)
		if err != nil {
			continue
		}
		results = append(results, scored{labels[i], (sim + 1) / 2})
	}
	if len(results) == 0 {
		return Classification{}, errors.New("no comparable label embeddings")
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].score > results[j].score })
	return Classification{Label: results[0].label, Score: results[0].score}, nil
}

func (s *embeddingService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = false
	if c, ok := s.engine.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// CosineSimilarity computes the cosine similarity of two vectors.
// Returns an error on dimension mismatch and 0 for zero-magnitude input.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector dimension mismatch: %d != %d", len(a), len(b))
	}
	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}
	if magA == 0 || magB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB)), nil
}
