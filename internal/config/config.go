// Package config holds PromptPrune configuration, loaded from YAML with
// environment-variable overrides. Timeouts are stored as strings in the
// file ("2s", "500ms") and exposed as time.Duration through accessors.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all PromptPrune configuration.
type Config struct {
	// Debug enables development-level logging.
	Debug bool `yaml:"debug"`

	// Semantic configures the optional semantic service collaborator.
	Semantic SemanticConfig `yaml:"semantic"`

	// Ranking configures scoring deadlines.
	Ranking RankingConfig `yaml:"ranking"`

	// DictionaryPath points to an optional user correction dictionary
	// (YAML map of misspelling -> canonical word). Hot-reloaded.
	DictionaryPath string `yaml:"dictionary_path"`
}

// SemanticConfig configures the embedding/classification backend.
type SemanticConfig struct {
	// Enabled toggles semantic enhancement entirely. When false the
	// pipeline is rule-based and keyword-only.
	Enabled bool `yaml:"enabled"`

	// Provider: "ollama" or "genai".
	Provider string `yaml:"provider"`

	OllamaEndpoint string `yaml:"ollama_endpoint"`
	OllamaModel    string `yaml:"ollama_model"`

	GenAIAPIKey string `yaml:"genai_api_key"`
	GenAIModel  string `yaml:"genai_model"`

	// InitTimeout bounds service initialization (default 2s).
	InitTimeout string `yaml:"init_timeout"`

	// QueryTimeout bounds each classify/embed call (default 1s).
	QueryTimeout string `yaml:"query_timeout"`
}

// RankingConfig configures the ranking orchestrator.
type RankingConfig struct {
	// FrameworkBudget bounds per-framework semantic scoring (default 1s).
	FrameworkBudget string `yaml:"framework_budget"`

	// OverallBudget bounds the whole ranking operation (default 8s).
	OverallBudget string `yaml:"overall_budget"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Debug: false,
		Semantic: SemanticConfig{
			Enabled:        false,
			Provider:       "ollama",
			OllamaEndpoint: "http://localhost:11434",
			OllamaModel:    "embeddinggemma",
			GenAIModel:     "gemini-embedding-001",
			InitTimeout:    "2s",
			QueryTimeout:   "1s",
		},
		Ranking: RankingConfig{
			FrameworkBudget: "1s",
			OverallBudget:   "8s",
		},
	}
}

// Load reads the config file at path, applying defaults for absent fields
// and environment overrides last. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overlays PROMPTPRUNE_* environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("PROMPTPRUNE_DEBUG"); v == "1" || v == "true" {
		c.Debug = true
	}
	if v := os.Getenv("PROMPTPRUNE_SEMANTIC_PROVIDER"); v != "" {
		c.Semantic.Provider = v
		c.Semantic.Enabled = true
	}
	if v := os.Getenv("PROMPTPRUNE_OLLAMA_ENDPOINT"); v != "" {
		c.Semantic.OllamaEndpoint = v
	}
	if v := os.Getenv("PROMPTPRUNE_GENAI_API_KEY"); v != "" {
		c.Semantic.GenAIAPIKey = v
	}
	if v := os.Getenv("PROMPTPRUNE_DICTIONARY"); v != "" {
		c.DictionaryPath = v
	}
}

// parseDuration returns the parsed duration or fallback on any error.
func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// InitTimeout returns the semantic service init deadline.
func (c *SemanticConfig) InitTimeoutDuration() time.Duration {
	return parseDuration(c.InitTimeout, 2*time.Second)
}

// QueryTimeoutDuration returns the per-query deadline.
func (c *SemanticConfig) QueryTimeoutDuration() time.Duration {
	return parseDuration(c.QueryTimeout, time.Second)
}

// FrameworkBudgetDuration returns the per-framework scoring deadline.
func (c *RankingConfig) FrameworkBudgetDuration() time.Duration {
	return parseDuration(c.FrameworkBudget, time.Second)
}

// OverallBudgetDuration returns the whole-ranking deadline.
func (c *RankingConfig) OverallBudgetDuration() time.Duration {
	return parseDuration(c.OverallBudget, 8*time.Second)
}
