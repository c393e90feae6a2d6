package semantic

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/VisheshJha/PromptPrune-sub000/internal/config"
	"github.com/VisheshJha/PromptPrune-sub000/internal/logging"
)

// NewServiceFromConfig builds a Service from configuration. A disabled
// semantic section returns (nil, nil): a nil Service is a valid "no
// collaborator" state and every consumer degrades to rule-based behavior.
func NewServiceFromConfig(cfg config.SemanticConfig) (Service, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	log := logging.Get(logging.CategorySemantic)

	var engine Engine
	var err error
	switch cfg.Provider {
	case "ollama":
		engine, err = NewOllamaEngine(cfg.OllamaEndpoint, cfg.OllamaModel)
	case "genai":
		engine, err = NewGenAIEngine(cfg.GenAIAPIKey, cfg.GenAIModel)
	default:
		return nil, fmt.Errorf("unsupported semantic provider: %s (use 'ollama' or 'genai')", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s engine: %w", cfg.Provider, err)
	}

	log.Info("semantic engine created",
		zap.String("engine", engine.Name()),
		zap.Int("dimensions", engine.Dimensions()))

	return NewService(engine), nil
}
