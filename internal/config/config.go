// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Tunable defaults, applied when neither flag nor config file sets a value.
const (
	DefaultMinScore          = 0.35
	DefaultMaxExperiences    = 4
	DefaultSkillPoolCap      = 24
	DefaultSemanticThreshold = 0.58
	DefaultPartialThreshold  = 0.45
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Profile  string `json:"profile,omitempty"`  // Path to canonical profile JSON
	Job      string `json:"job,omitempty"`      // Path to parsed job description JSON
	Signals  string `json:"signals,omitempty"`  // Path to job selection signals JSON
	Keywords string `json:"keywords,omitempty"` // Path to JD keyword list JSON
	Resume   string `json:"resume,omitempty"`   // Path to resume text or HTML

	// Selection tunables
	MinScore       float64 `json:"min_score,omitempty"`       // Alignment score floor (0.0-1.0)
	MaxExperiences int     `json:"max_experiences,omitempty"` // Experience cap for selection
	SkillPoolCap   int     `json:"skill_pool_cap,omitempty"`  // Prioritized skill list cap

	// ATS tunables
	SemanticThreshold float64 `json:"semantic_threshold,omitempty"` // Semantic upgrade floor (0.0-1.0)
	PartialThreshold  float64 `json:"partial_threshold,omitempty"`  // Partial upgrade floor (0.0-1.0)

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed diagnostics
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
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
	if c.MinScore < 0 || c.MinScore > 1 {
		return fmt.Errorf("config error: 'min_score' must be between 0 and 1")
	}
	if c.SemanticThreshold < 0 || c.SemanticThreshold > 1 {
		return fmt.Errorf("config error: 'semantic_threshold' must be between 0 and 1")
	}
	if c.PartialThreshold < 0 || c.PartialThreshold > 1 {
		return fmt.Errorf("config error: 'partial_threshold' must be between 0 and 1")
	}
	if c.MaxExperiences < 0 {
		return fmt.Errorf("config error: 'max_experiences' must be non-negative")
	}
	if c.SkillPoolCap < 0 {
		return fmt.Errorf("config error: 'skill_pool_cap' must be non-negative")
	}

	// Validate file paths exist (if specified)
	for _, p := range []struct{ name, path string }{
		{"profile", c.Profile},
		{"job", c.Job},
		{"signals", c.Signals},
		{"keywords", c.Keywords},
		{"resume", c.Resume},
	} {
		if p.path == "" {
			continue
		}
		if _, err := os.Stat(p.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", p.name, p.path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults, then from the built-in defaults. Flag values take precedence
// over the config file, the file over built-ins.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Signals == "" {
		result.Signals = defaults.Signals
	}
	if result.Keywords == "" {
		result.Keywords = defaults.Keywords
	}
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	result.Verbose = result.Verbose || defaults.Verbose

	result.MinScore = fallbackFloat(result.MinScore, defaults.MinScore, DefaultMinScore)
	result.SemanticThreshold = fallbackFloat(result.SemanticThreshold, defaults.SemanticThreshold, DefaultSemanticThreshold)
	result.PartialThreshold = fallbackFloat(result.PartialThreshold, defaults.PartialThreshold, DefaultPartialThreshold)
	result.MaxExperiences = fallbackInt(result.MaxExperiences, defaults.MaxExperiences, DefaultMaxExperiences)
	result.SkillPoolCap = fallbackInt(result.SkillPoolCap, defaults.SkillPoolCap, DefaultSkillPoolCap)

	return result
}

func fallbackFloat(value, fromFile, builtin float64) float64 {
	if value != 0 {
		return value
	}
	if fromFile != 0 {
		return fromFile
	}
	return builtin
}

func fallbackInt(value, fromFile, builtin int) int {
	if value != 0 {
		return value
	}
	if fromFile != 0 {
		return fromFile
	}
	return builtin
}
