// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Catalog paths
	Courses         string `json:"courses,omitempty"`         // Path to the course catalog (.csv or .json)
	Specializations string `json:"specializations,omitempty"` // Path to the specialization catalog (.csv or .json)

	// Analysis limits
	MaxLearningHours   float64 `json:"max_learning_hours,omitempty"`  // Ceiling for course duration (default 20)
	MaxTerms           int     `json:"max_terms,omitempty"`           // Candidate terms kept per document
	TopCourses         int     `json:"top_courses,omitempty"`         // Course results per analysis
	TopSpecializations int     `json:"top_specializations,omitempty"` // Specialization results per analysis
	MaxExternal        int     `json:"max_external,omitempty"`        // External results per analysis
	MinScore           float64 `json:"min_score,omitempty"`           // Similarity floor for catalog matches

	// Behavior
	APIKey          string `json:"api_key,omitempty"`          // Gemini API key for optional document summaries
	EnrichPlatforms bool   `json:"enrich_platforms,omitempty"` // Fetch live titles for platform search links
	UseBrowser      bool   `json:"use_browser,omitempty"`      // Use headless browser for script-rendered pages
	Verbose         bool   `json:"verbose,omitempty"`          // Print detailed debug information
	DatabaseURL     string `json:"database_url,omitempty"`     // PostgreSQL connection URL for run persistence
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
	if c.MaxLearningHours < 0 {
		return fmt.Errorf("config error: 'max_learning_hours' must be non-negative")
	}
	if c.MaxTerms < 0 {
		return fmt.Errorf("config error: 'max_terms' must be non-negative")
	}
	if c.TopCourses < 0 {
		return fmt.Errorf("config error: 'top_courses' must be non-negative")
	}
	if c.TopSpecializations < 0 {
		return fmt.Errorf("config error: 'top_specializations' must be non-negative")
	}
	if c.MaxExternal < 0 {
		return fmt.Errorf("config error: 'max_external' must be non-negative")
	}
	if c.MinScore < 0 || c.MinScore > 1 {
		return fmt.Errorf("config error: 'min_score' must be between 0 and 1")
	}

	// Validate file paths exist (if specified)
	if c.Courses != "" {
		if _, err := os.Stat(c.Courses); os.IsNotExist(err) {
			return fmt.Errorf("config error: course catalog not found: %s", c.Courses)
		}
	}
	if c.Specializations != "" {
		if _, err := os.Stat(c.Specializations); os.IsNotExist(err) {
			return fmt.Errorf("config error: specialization catalog not found: %s", c.Specializations)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Courses == "" {
		result.Courses = defaults.Courses
	}
	if result.Specializations == "" {
		result.Specializations = defaults.Specializations
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Numeric fields: use default if zero
	if result.MaxLearningHours == 0 {
		result.MaxLearningHours = defaults.MaxLearningHours
	}
	if result.MaxTerms == 0 {
		result.MaxTerms = defaults.MaxTerms
	}
	if result.TopCourses == 0 {
		result.TopCourses = defaults.TopCourses
	}
	if result.TopSpecializations == 0 {
		result.TopSpecializations = defaults.TopSpecializations
	}
	if result.MaxExternal == 0 {
		result.MaxExternal = defaults.MaxExternal
	}
	if result.MinScore == 0 {
		result.MinScore = defaults.MinScore
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
