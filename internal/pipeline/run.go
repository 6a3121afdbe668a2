// Package pipeline orchestrates one analysis run: term extraction,
// catalog and specialization ranking, external knowledge-base matching
// and final assembly.
package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ibero-edu/microcred-recommender/internal/assembly"
	"github.com/ibero-edu/microcred-recommender/internal/extraction"
	"github.com/ibero-edu/microcred-recommender/internal/index"
	"github.com/ibero-edu/microcred-recommender/internal/kb"
	"github.com/ibero-edu/microcred-recommender/internal/types"
)

// Summarizer produces an optional display summary of the analyzed
// document. Summaries never participate in ranking.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Enricher optionally upgrades platform search entries with live data,
// such as real program titles read from the search page. Enrichment is
// best effort; on failure the synthetic entry stands unchanged.
type Enricher interface {
	Enrich(ctx context.Context, entries []types.ExternalCertification) []types.ExternalCertification
}

// Options tunes one analysis run. Zero values select the defaults.
type Options struct {
	MaxTerms           int
	TopCourses         int
	TopSpecializations int
	MaxExternal        int
	MinScore           float64
}

func (o Options) withDefaults() Options {
	if o.MaxTerms <= 0 {
		o.MaxTerms = extraction.DefaultMaxTerms
	}
	if o.TopCourses <= 0 {
		o.TopCourses = index.DefaultTopCourses
	}
	if o.TopSpecializations <= 0 {
		o.TopSpecializations = index.DefaultTopSpecializations
	}
	if o.MaxExternal <= 0 {
		o.MaxExternal = assembly.DefaultMaxResults
	}
	if o.MinScore <= 0 {
		o.MinScore = index.DefaultMinScore
	}
	return o
}

// Engine bundles the fitted indices with the optional collaborators.
// Both indices must be fitted before Analyze is called. The engine holds
// no per-request state and is safe for concurrent use.
type Engine struct {
	Courses         *index.CourseIndex
	Specializations *index.SpecializationIndex
	Summarizer      Summarizer
	Enricher        Enricher
}

// Analyze runs the full recommendation pipeline over one document.
//
// Catalog ranking scores against the entire document text while external
// matching works from the reduced term list; the asymmetry is deliberate
// (recall for the catalog, precision for outbound links). A trivial
// document yields empty result sets, not an error.
func (e *Engine) Analyze(ctx context.Context, docText string, opts Options) (*types.Recommendations, error) {
	opts = opts.withDefaults()

	rec := &types.Recommendations{
		Terms: extraction.Extract(docText, opts.MaxTerms),
	}

	// The indices are read-only after Fit, so both rankings run
	// concurrently.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		matches, err := e.Courses.Rank(docText, opts.TopCourses, opts.MinScore)
		if err != nil {
			return fmt.Errorf("course ranking failed: %w", err)
		}
		rec.Courses = matches
		return nil
	})
	g.Go(func() error {
		matches, err := e.Specializations.Rank(docText, opts.TopSpecializations, opts.MinScore)
		if err != nil {
			return fmt.Errorf("specialization ranking failed: %w", err)
		}
		rec.Specializations = matches
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(rec.Terms) > 0 {
		query := extraction.SearchQuery(rec.Terms, kb.MaxQueryTerms)

		// Industry matching sees the same term window as the combined
		// query; weaker terms never reach the rule matcher.
		window := rec.Terms[:min(len(rec.Terms), kb.MaxQueryTerms)]
		termStrings := make([]string, len(window))
		for i, t := range window {
			termStrings[i] = t.Term
		}

		industry := kb.MatchIndustry(termStrings, query)
		platform := kb.PlatformSearches(query)
		if e.Enricher != nil {
			platform = e.Enricher.Enrich(ctx, platform)
		}
		rec.External = assembly.Assemble(industry, platform, opts.MaxExternal)
	}

	// A configured summarizer (language model) overrides the extractive
	// fallback; its failure falls back too.
	rec.Summary = extraction.Summarize(docText)
	if e.Summarizer != nil {
		if summary, err := e.Summarizer.Summarize(ctx, docText); err == nil && summary != "" {
			rec.Summary = summary
		}
	}

	return rec, nil
}
