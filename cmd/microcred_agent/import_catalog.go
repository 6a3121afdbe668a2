package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ibero-edu/microcred-recommender/internal/catalog"
	"github.com/ibero-edu/microcred-recommender/internal/db"
	"github.com/spf13/cobra"
)

var importCatalogCmd = &cobra.Command{
	Use:   "import-catalog",
	Short: "Import catalog files into the database",
	Long:  "Loads the course and specialization catalog files and replaces the database snapshot the API serves from. The replacement is atomic per catalog.",
	RunE:  runImportCatalog,
}

var (
	importCourses     string
	importSpecs       string
	importMaxHours    float64
	importDatabaseURL string
)

func init() {
	importCatalogCmd.Flags().StringVar(&importCourses, "courses", "", "Path to the course catalog (.csv or .json)")
	importCatalogCmd.Flags().StringVar(&importSpecs, "specializations", "", "Path to the specialization catalog (.csv or .json)")
	importCatalogCmd.Flags().Float64Var(&importMaxHours, "max-hours", 0, "Learning-hours ceiling for catalog courses")
	importCatalogCmd.Flags().StringVar(&importDatabaseURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(importCatalogCmd)
}

func runImportCatalog(_ *cobra.Command, _ []string) error {
	if importCourses == "" && importSpecs == "" {
		return fmt.Errorf("provide --courses, --specializations or both")
	}

	databaseURL := importDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if importCourses != "" {
		courses, err := catalog.LoadCourses(importCourses, importMaxHours)
		if err != nil {
			return fmt.Errorf("failed to load course catalog: %w", err)
		}
		if err := database.ReplaceCourses(ctx, courses); err != nil {
			return fmt.Errorf("failed to import courses: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Imported %d courses\n", len(courses))
	}

	if importSpecs != "" {
		specs, err := catalog.LoadSpecializations(importSpecs)
		if err != nil {
			return fmt.Errorf("failed to load specialization catalog: %w", err)
		}
		if err := database.ReplaceSpecializations(ctx, specs); err != nil {
			return fmt.Errorf("failed to import specializations: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Imported %d specializations\n", len(specs))
	}

	return nil
}
