package main

import (
	"context"
	"fmt"

	"github.com/ibero-edu/microcred-recommender/internal/catalog"
	"github.com/ibero-edu/microcred-recommender/internal/config"
	"github.com/ibero-edu/microcred-recommender/internal/fetch"
	"github.com/ibero-edu/microcred-recommender/internal/index"
	"github.com/ibero-edu/microcred-recommender/internal/llm"
	"github.com/ibero-edu/microcred-recommender/internal/pipeline"
	"github.com/ibero-edu/microcred-recommender/internal/types"
)

// buildEngine loads both catalogs, fits the indices and wires the
// optional summarizer and page enricher. The returned closer releases
// the language model client and may be nil.
func buildEngine(ctx context.Context, cfg config.Config) (*pipeline.Engine, types.CatalogStats, func() error, error) {
	courses, err := catalog.LoadCourses(cfg.Courses, cfg.MaxLearningHours)
	if err != nil {
		return nil, types.CatalogStats{}, nil, fmt.Errorf("failed to load course catalog: %w", err)
	}
	if len(courses) == 0 {
		return nil, types.CatalogStats{}, nil, fmt.Errorf("course catalog %s has no usable entries", cfg.Courses)
	}

	specs, err := catalog.LoadSpecializations(cfg.Specializations)
	if err != nil {
		return nil, types.CatalogStats{}, nil, fmt.Errorf("failed to load specialization catalog: %w", err)
	}

	courseIndex := index.NewCourseIndex()
	courseIndex.Fit(courses)
	specIndex := index.NewSpecializationIndex()
	specIndex.Fit(specs)

	engine := &pipeline.Engine{
		Courses:         courseIndex,
		Specializations: specIndex,
	}

	var closer func() error
	if cfg.APIKey != "" {
		summarizer, err := llm.NewDocumentSummarizer(ctx, cfg.APIKey)
		if err != nil {
			return nil, types.CatalogStats{}, nil, fmt.Errorf("failed to create summarizer: %w", err)
		}
		engine.Summarizer = summarizer
		closer = summarizer.Close
	}
	if cfg.EnrichPlatforms {
		engine.Enricher = fetch.NewPageEnricher(cfg.UseBrowser, cfg.Verbose)
	}

	return engine, catalog.Stats(courses), closer, nil
}

// analysisOptions maps the merged configuration onto per-run options.
func analysisOptions(cfg config.Config) pipeline.Options {
	return pipeline.Options{
		MaxTerms:           cfg.MaxTerms,
		TopCourses:         cfg.TopCourses,
		TopSpecializations: cfg.TopSpecializations,
		MaxExternal:        cfg.MaxExternal,
		MinScore:           cfg.MinScore,
	}
}
