package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ibero-edu/microcred-recommender/internal/catalog"
	"github.com/ibero-edu/microcred-recommender/internal/config"
	"github.com/ibero-edu/microcred-recommender/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort       int
	serveConfigPath string
	serveCourses    string
	serveSpecs      string
	serveMaxHours   float64
	serveEnrich     bool
	serveUseBrowser bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for running document analyses against the loaded catalogs.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().StringVar(&serveCourses, "courses", "", "Path to the course catalog (.csv or .json)")
	serveCmd.Flags().StringVar(&serveSpecs, "specializations", "", "Path to the specialization catalog (.csv or .json)")
	serveCmd.Flags().Float64Var(&serveMaxHours, "max-hours", 0, "Learning-hours ceiling for catalog courses")
	serveCmd.Flags().BoolVar(&serveEnrich, "enrich", false, "Fetch live program titles for platform search links")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Use headless browser for script-rendered pages (requires Chrome)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if serveConfigPath != "" {
		loadedCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	if cmd.Flags().Changed("courses") {
		cfg.Courses = serveCourses
	}
	if cmd.Flags().Changed("specializations") {
		cfg.Specializations = serveSpecs
	}
	if cmd.Flags().Changed("max-hours") {
		cfg.MaxLearningHours = serveMaxHours
	}
	if cmd.Flags().Changed("enrich") {
		cfg.EnrichPlatforms = serveEnrich
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = serveUseBrowser
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Courses:          "data/courses.csv",
		Specializations:  "data/specializations.csv",
		MaxLearningHours: catalog.DefaultMaxHours,
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Get database URL from environment
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	// The summary model is optional for the API too
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	engine, stats, closer, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}
	if closer != nil {
		defer func() { _ = closer() }()
	}

	srv, err := server.New(server.Config{
		Port:        servePort,
		DatabaseURL: databaseURL,
		Engine:      engine,
		Options:     analysisOptions(cfg),
		Stats:       stats,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
