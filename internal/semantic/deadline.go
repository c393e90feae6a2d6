package semantic

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/VisheshJha/PromptPrune-sub000/internal/logging"
)

// WithDeadline runs fn under the given deadline and returns its result, or
// fallback if fn errors, overruns the deadline, or the parent context is
// already done. The operation receives a context cancelled at the
// deadline; a slow operation that ignores cancellation simply has its
// result discarded — collaborator calls have no side effects the core
// cares about.
func WithDeadline[T any](ctx context.Context, d time.Duration, fallback T, fn func(ctx context.Context) (T, error)) T {
	if ctx.Err() != nil {
		return fallback
	}

	callCtx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	type outcome struct {
		val T
		err error
	}
	// Buffered so an overrunning fn can complete and exit after we stop
	// waiting.
	ch := make(chan outcome, 1)

	go func() {
		val, err := fn(callCtx)
		ch <- outcome{val, err}
	}()

	select {
	case out := <-ch:
		if out.err != nil {
			logging.Get(logging.CategorySemantic).Debug("deadline call failed, using fallback",
				zap.Error(out.err))
			return fallback
		}
		return out.val
	case <-callCtx.Done():
		logging.Get(logging.CategorySemantic).Debug("deadline exceeded, using fallback",
			zap.Duration("deadline", d))
		return fallback
	}
}
