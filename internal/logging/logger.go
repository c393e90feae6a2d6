// Package logging provides categorized structured logging for PromptPrune.
// Each subsystem logs under its own category so a single noisy stage can be
// silenced without losing the rest. Until Initialize is called the root
// logger is a no-op and the pipeline runs silently.
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category identifies a logging subsystem.
type Category string

const (
	CategoryBoot      Category = "boot"      // startup and configuration
	CategoryNormalize Category = "normalize" // dictionary correction
	CategoryIntent    Category = "intent"    // structured parsing and extraction
	CategorySemantic  Category = "semantic"  // embedding/classification calls
	CategoryFramework Category = "framework" // template rendering
	CategoryRanking   Category = "ranking"   // scoring orchestration
	CategoryPipeline  Category = "pipeline"  // top-level optimizer
)

var (
	mu      sync.RWMutex
	root    = zap.NewNop()
	loggers = make(map[Category]*zap.Logger)
)

// Initialize installs the process-wide logger. Pass debug=true for
// development-level verbosity; production config logs warnings and up.
func Initialize(debug bool) error {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	SetLogger(logger)
	return nil
}

// SetLogger replaces the root logger. Tests use this to inject observers.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	root = l
	loggers = make(map[Category]*zap.Logger)
}

// Get returns the named logger for a category.
func Get(cat Category) *zap.Logger {
	mu.RLock()
	if l, ok := loggers[cat]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[cat]; ok {
		return l
	}
	l := root.Named(string(cat))
	loggers[cat] = l
	return l
}

// Sync flushes buffered log entries. Safe to call on a no-op logger.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = root.Sync()
}
