// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-matcher/internal/ai"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Config represents the matcher configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// AI
	APIKey          string `json:"api_key,omitempty"`          // Gemini API key
	GenerativeModel string `json:"generative_model,omitempty"` // Qualitative assessment model
	EmbeddingModel  string `json:"embedding_model,omitempty"`  // Semantic similarity model

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed score diagnostics

	// Matching overrides. Zero values are treated as unset and fall back
	// to the default criteria, mirroring the flag behavior.
	KeywordWeight    float64 `json:"keyword_weight,omitempty"`
	SemanticWeight   float64 `json:"semantic_weight,omitempty"`
	SkillWeight      float64 `json:"skill_weight,omitempty"`
	ExperienceWeight float64 `json:"experience_weight,omitempty"`
	MinimumScore     float64 `json:"minimum_score,omitempty"`
	MediumScore      float64 `json:"medium_score,omitempty"`
	HighScore        float64 `json:"high_score,omitempty"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Port: 8080,
	}
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
// Cross-field criteria checks (weight sum, threshold ordering) happen in
// Criteria, after overrides are applied on top of the defaults.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	weights := map[string]float64{
		"keyword_weight":    c.KeywordWeight,
		"semantic_weight":   c.SemanticWeight,
		"skill_weight":      c.SkillWeight,
		"experience_weight": c.ExperienceWeight,
	}
	for name, w := range weights {
		if w < 0 || w > 1 {
			return fmt.Errorf("config error: '%s' must be between 0.0 and 1.0", name)
		}
	}

	thresholds := map[string]float64{
		"minimum_score": c.MinimumScore,
		"medium_score":  c.MediumScore,
		"high_score":    c.HighScore,
	}
	for name, t := range thresholds {
		if t < 0 || t > 100 {
			return fmt.Errorf("config error: '%s' must be between 0 and 100", name)
		}
	}

	return nil
}

// Criteria returns the matching criteria: the defaults overlaid with any
// configured overrides, validated as a whole.
func (c *Config) Criteria() (types.MatchingCriteria, error) {
	criteria := types.DefaultCriteria()

	if c.KeywordWeight > 0 {
		criteria.KeywordWeight = c.KeywordWeight
	}
	if c.SemanticWeight > 0 {
		criteria.SemanticWeight = c.SemanticWeight
	}
	if c.SkillWeight > 0 {
		criteria.SkillWeight = c.SkillWeight
	}
	if c.ExperienceWeight > 0 {
		criteria.ExperienceWeight = c.ExperienceWeight
	}
	if c.MinimumScore > 0 {
		criteria.MinimumScore = c.MinimumScore
	}
	if c.MediumScore > 0 {
		criteria.MediumScore = c.MediumScore
	}
	if c.HighScore > 0 {
		criteria.HighScore = c.HighScore
	}

	return types.NewMatchingCriteria(criteria)
}

// AIConfig returns the model selection, or nil when no override is set so
// the client falls back to its defaults.
func (c *Config) AIConfig() *ai.Config {
	if c.GenerativeModel == "" && c.EmbeddingModel == "" {
		return nil
	}
	models := ai.DefaultConfig()
	if c.GenerativeModel != "" {
		models.GenerativeModel = c.GenerativeModel
	}
	if c.EmbeddingModel != "" {
		models.EmbeddingModel = c.EmbeddingModel
	}
	return models
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.GenerativeModel == "" {
		result.GenerativeModel = defaults.GenerativeModel
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Float fields: use default if zero
	if result.KeywordWeight == 0 {
		result.KeywordWeight = defaults.KeywordWeight
	}
	if result.SemanticWeight == 0 {
		result.SemanticWeight = defaults.SemanticWeight
	}
	if result.SkillWeight == 0 {
		result.SkillWeight = defaults.SkillWeight
	}
	if result.ExperienceWeight == 0 {
		result.ExperienceWeight = defaults.ExperienceWeight
	}
	if result.MinimumScore == 0 {
		result.MinimumScore = defaults.MinimumScore
	}
	if result.MediumScore == 0 {
		result.MediumScore = defaults.MediumScore
	}
	if result.HighScore == 0 {
		result.HighScore = defaults.HighScore
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
