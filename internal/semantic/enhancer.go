package semantic

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/VisheshJha/PromptPrune-sub000/internal/intent"
	"github.com/VisheshJha/PromptPrune-sub000/internal/logging"
)

// minConfidence is the score a classification must exceed before it may
// override a rule-based field.
const minConfidence = 0.6

// Label sets the enhancer classifies against. Labels double as the
// override values.
var (
	actionLabels = []string{"write", "explain", "summarize", "analyze", "create", "plan"}
	formatLabels = []string{"article", "report", "email", "summary", "presentation", "code"}
	toneLabels   = []string{"professional", "casual", "humorous", "academic", "persuasive"}
)

// Enhancer refines a rule-based ParsedIntent using the semantic service.
// It is strictly best-effort: on a nil service, init failure, timeout, or
// low confidence it returns the rule-based result unmodified.
type Enhancer struct {
	svc          Service
	initTimeout  time.Duration
	queryTimeout time.Duration

	initMu   sync.Mutex
	initTried bool
}

// NewEnhancer wraps a service (which may be nil) with the configured
// deadlines.
func NewEnhancer(svc Service, initTimeout, queryTimeout time.Duration) *Enhancer {
	return &Enhancer{
		svc:          svc,
		initTimeout:  initTimeout,
		queryTimeout: queryTimeout,
	}
}

// ensureInit attempts service initialization once, under the init deadline.
func (e *Enhancer) ensureInit(ctx context.Context) bool {
	if e.svc == nil {
		return false
	}
	if e.svc.Ready() {
		return true
	}

	e.initMu.Lock()
	defer e.initMu.Unlock()
	if e.initTried {
		return e.svc.Ready()
	}
	e.initTried = true

	ok := WithDeadline(ctx, e.initTimeout, false, func(ctx context.Context) (bool, error) {
		if err := e.svc.Init(ctx); err != nil {
			return false, err
		}
		return true, nil
	})
	if !ok {
		logging.Get(logging.CategorySemantic).Debug("semantic init failed or timed out, staying rule-based")
	}
	return ok
}

// Enhance returns base refined by semantic classification where the
// service is confident. The role field is never touched: an explicitly
// structured role always wins over anything the service might suggest.
func (e *Enhancer) Enhance(ctx context.Context, text string, base intent.ParsedIntent) intent.ParsedIntent {
	if !e.ensureInit(ctx) {
		return base
	}

	log := logging.Get(logging.CategorySemantic)
	enhanced := base

	if c := e.classify(ctx, text, actionLabels); c.Score > minConfidence {
		enhanced.Action = c.Label
		log.Debug("action refined", zap.String("action", c.Label), zap.Float64("score", c.Score))
	}
	if c := e.classify(ctx, text, formatLabels); c.Score > minConfidence {
		enhanced.Format = c.Label
	}
	if c := e.classify(ctx, text, toneLabels); c.Score > minConfidence {
		enhanced.Tone = c.Label
	}

	enhanced.Role = base.Role

	return enhanced
}

// classify runs one bounded classification; the zero Classification is
// the fallback and never clears the confidence bar.
func (e *Enhancer) classify(ctx context.Context, text string, labels []string) Classification {
	return WithDeadline(ctx, e.queryTimeout, Classification{}, func(ctx context.Context) (Classification, error) {
		return e.svc.Classify(ctx, text, labels)
	})
}
