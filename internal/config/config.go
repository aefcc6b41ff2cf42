// Package config provides configuration loading and validation for the
// recommendation service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags or environment variables.
type Config struct {
	DatabaseURL    string `json:"database_url,omitempty"`    // PostgreSQL connection URL
	GeminiAPIKey   string `json:"gemini_api_key,omitempty"`  // Gemini API key for embeddings
	EmbeddingModel string `json:"embedding_model,omitempty"` // Embedding model name
	VectorDim      int    `json:"vector_dim,omitempty"`      // Embedding dimension enforced on indexing
	Port           int    `json:"port,omitempty"`            // HTTP listen port
	Verbose        bool   `json:"verbose,omitempty"`         // Print detailed score breakdowns
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.VectorDim < 0 {
		return fmt.Errorf("config error: 'vector_dim' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}

	// Int fields: use default if zero
	if result.VectorDim == 0 {
		result.VectorDim = defaults.VectorDim
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// RecommenderConfig holds the scoring tunables for the recommendation engine.
type RecommenderConfig struct {
	SkillWeight     float64 // share of the content score taken by skill overlap (0.0-1.0)
	MinThreshold    float64 // minimum combined similarity to include a job (0.0-1.0)
	OverfetchFactor int     // index candidates fetched per requested result
	ContentWeight   float64 // hybrid blend weight for the content signal (0.0-1.0)
	CFWeight        float64 // hybrid blend weight for the collaborative signal
}

// NewRecommenderConfig builds a RecommenderConfig from RECOMMENDER_*
// environment variables, falling back to the standard tuning.
func NewRecommenderConfig() (*RecommenderConfig, error) {
	cfg := &RecommenderConfig{
		SkillWeight:     0.3,
		MinThreshold:    0.15,
		OverfetchFactor: 5,
		ContentWeight:   0.8,
	}

	var err error
	if cfg.SkillWeight, err = envFloat("RECOMMENDER_SKILL_WEIGHT", cfg.SkillWeight); err != nil {
		return nil, err
	}
	if cfg.MinThreshold, err = envFloat("RECOMMENDER_MIN_THRESHOLD", cfg.MinThreshold); err != nil {
		return nil, err
	}
	if cfg.ContentWeight, err = envFloat("RECOMMENDER_CONTENT_WEIGHT", cfg.ContentWeight); err != nil {
		return nil, err
	}
	if raw := os.Getenv("RECOMMENDER_OVERFETCH"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid RECOMMENDER_OVERFETCH: %v", err)
		}
		cfg.OverfetchFactor = n
	}
	cfg.CFWeight = 1 - cfg.ContentWeight

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *RecommenderConfig) normalize() error {
	if c.SkillWeight < 0 || c.SkillWeight > 1 {
		return fmt.Errorf("skill weight out of range: %g (must be 0-1)", c.SkillWeight)
	}
	if c.MinThreshold < 0 || c.MinThreshold > 1 {
		return fmt.Errorf("min threshold out of range: %g (must be 0-1)", c.MinThreshold)
	}
	if c.OverfetchFactor < 1 {
		return fmt.Errorf("overfetch factor must be at least 1, got: %d", c.OverfetchFactor)
	}
	if c.ContentWeight < 0 || c.ContentWeight > 1 {
		return fmt.Errorf("content weight out of range: %g (must be 0-1)", c.ContentWeight)
	}
	return nil
}

func envFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return v, nil
}
