package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"courses": "catalogo_cursos.csv",
		"max_learning_hours": 15,
		"top_courses": 8,
		"min_score": 0.1,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "catalogo_cursos.csv", cfg.Courses)
	assert.Equal(t, 15.0, cfg.MaxLearningHours)
	assert.Equal(t, 8, cfg.TopCourses)
	assert.Equal(t, 0.1, cfg.MinScore)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{
		TopCourses: -1,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "top_courses")
}

func TestValidate_MinScoreOutOfRange(t *testing.T) {
	cfg := &Config{
		MinScore: 1.5,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "min_score")
}

func TestValidate_MissingCatalog(t *testing.T) {
	cfg := &Config{
		Courses: "/nonexistent/catalog.csv",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "course catalog not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		MaxLearningHours: 20,
		TopCourses:       10,
		MinScore:         0.08,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Courses:            "default_courses.csv",
		Specializations:    "default_specs.csv",
		TopCourses:         10,
		TopSpecializations: 5,
		MinScore:           0.08,
	}

	partial := Config{
		Courses:    "custom_courses.csv",
		TopCourses: 3,
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom_courses.csv", merged.Courses)
	assert.Equal(t, 3, merged.TopCourses)

	// Default values should fill in empty fields
	assert.Equal(t, "default_specs.csv", merged.Specializations)
	assert.Equal(t, 5, merged.TopSpecializations)
	assert.Equal(t, 0.08, merged.MinScore)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Courses:  "cursos.json",
		MinScore: 0.12,
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "cursos.json", merged.Courses)
	assert.Equal(t, 0.12, merged.MinScore)
}
