package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/ibero-edu/microcred-recommender/internal/catalog"
	"github.com/ibero-edu/microcred-recommender/internal/config"
	"github.com/ibero-edu/microcred-recommender/internal/db"
	"github.com/ibero-edu/microcred-recommender/internal/observability"
	"github.com/ibero-edu/microcred-recommender/internal/types"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a document and recommend microcredentials",
	Long: `Extracts the key competencies from a teaching document and recommends matching
catalog courses, specializations and external certifications.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath  string
	analyzeDoc         string
	analyzeOutput      string
	analyzeCourses     string
	analyzeSpecs       string
	analyzeMaxHours    float64
	analyzeMaxTerms    int
	analyzeTopCourses  int
	analyzeTopSpecs    int
	analyzeMaxExternal int
	analyzeMinScore    float64
	analyzeAPIKey      string
	analyzeEnrich      bool
	analyzeUseBrowser  bool
	analyzeVerbose     bool
	analyzeDatabaseURL string
)

func init() {
	// Config file flag (processed first)
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCmd.Flags().StringVarP(&analyzeDoc, "doc", "d", "", "Path to the document text file to analyze (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeCourses, "courses", "", "Path to the course catalog (.csv or .json)")
	analyzeCmd.Flags().StringVar(&analyzeSpecs, "specializations", "", "Path to the specialization catalog (.csv or .json)")
	analyzeCmd.Flags().Float64Var(&analyzeMaxHours, "max-hours", 0, "Learning-hours ceiling for catalog courses")
	analyzeCmd.Flags().IntVar(&analyzeMaxTerms, "max-terms", 0, "Candidate terms kept per document")
	analyzeCmd.Flags().IntVar(&analyzeTopCourses, "top-courses", 0, "Course results to return")
	analyzeCmd.Flags().IntVar(&analyzeTopSpecs, "top-specializations", 0, "Specialization results to return")
	analyzeCmd.Flags().IntVar(&analyzeMaxExternal, "max-external", 0, "External certification results to return")
	analyzeCmd.Flags().Float64Var(&analyzeMinScore, "min-score", 0, "Similarity floor for catalog matches")
	analyzeCmd.Flags().BoolVar(&analyzeEnrich, "enrich", false, "Fetch live program titles for platform search links")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for script-rendered pages (requires Chrome)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key for the optional document summary (defaults to GEMINI_API_KEY env var)")

	// Database URL for run persistence
	analyzeCmd.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := mergedAnalyzeConfig(cmd)
	if err != nil {
		return err
	}

	if analyzeDoc == "" {
		return fmt.Errorf("--doc is required")
	}
	docBytes, err := os.ReadFile(analyzeDoc)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}
	docText := string(docBytes)

	engine, stats, closer, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}
	if closer != nil {
		defer func() { _ = closer() }()
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintCatalogStats(stats)
	}

	rec, err := engine.Analyze(ctx, docText, analysisOptions(cfg))
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if cfg.Verbose {
		printer.PrintTerms(rec.Terms)
		printer.PrintCourseMatches(rec.Courses)
		printer.PrintSpecializationMatches(rec.Specializations)
		printer.PrintExternal(rec.External)
		printer.PrintSummary(rec.Summary)
	}

	// Persist the run when a database is configured
	if cfg.DatabaseURL != "" {
		if err := persistAnalysis(ctx, cfg.DatabaseURL, analyzeDoc, docText, rec); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to persist analysis run: %v\n", err)
		}
	}

	jsonBytes, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	if analyzeOutput == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(analyzeOutput, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Recommendations written to %s\n", analyzeOutput)
	return nil
}

// mergedAnalyzeConfig layers the config file, explicit flags and defaults,
// in that priority order.
func mergedAnalyzeConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loadedCfg
		if analyzeVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("courses") {
		cfg.Courses = analyzeCourses
	}
	if cmd.Flags().Changed("specializations") {
		cfg.Specializations = analyzeSpecs
	}
	if cmd.Flags().Changed("max-hours") {
		cfg.MaxLearningHours = analyzeMaxHours
	}
	if cmd.Flags().Changed("max-terms") {
		cfg.MaxTerms = analyzeMaxTerms
	}
	if cmd.Flags().Changed("top-courses") {
		cfg.TopCourses = analyzeTopCourses
	}
	if cmd.Flags().Changed("top-specializations") {
		cfg.TopSpecializations = analyzeTopSpecs
	}
	if cmd.Flags().Changed("max-external") {
		cfg.MaxExternal = analyzeMaxExternal
	}
	if cmd.Flags().Changed("min-score") {
		cfg.MinScore = analyzeMinScore
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("enrich") {
		cfg.EnrichPlatforms = analyzeEnrich
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = analyzeUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = analyzeDatabaseURL
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Courses:          "data/courses.csv",
		Specializations:  "data/specializations.csv",
		MaxLearningHours: catalog.DefaultMaxHours,
	})

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// persistAnalysis records a completed CLI run in the database so it
// shows up alongside API runs.
func persistAnalysis(ctx context.Context, databaseURL, docPath, docText string, rec *types.Recommendations) error {
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	runID, err := database.CreateAnalysis(ctx, filepath.Base(docPath), utf8.RuneCountInString(docText))
	if err != nil {
		return err
	}
	if err := database.SaveRecommendations(ctx, runID, rec); err != nil {
		_ = database.CompleteAnalysis(ctx, runID, db.StatusFailed)
		return err
	}
	return database.CompleteAnalysis(ctx, runID, db.StatusCompleted)
}
