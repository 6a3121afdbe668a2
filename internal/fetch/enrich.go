// Package fetch - enrich.go upgrades synthetic platform search entries
// with live program titles read from the search page.
package fetch

import (
	"context"
	"log"
	"strings"

	"github.com/ibero-edu/microcred-recommender/internal/types"
)

// MaxEnrichTitles caps how many program titles get appended to one entry.
const MaxEnrichTitles = 3

// PageEnricher fetches each platform search URL and appends the top
// program titles to the entry description. Every failure is swallowed;
// the synthetic entry is always a valid fallback.
type PageEnricher struct {
	Cache      *CachedFetcher
	UseBrowser bool
	Verbose    bool
}

// NewPageEnricher returns an enricher with default fetch options and a
// shared page cache.
func NewPageEnricher(useBrowser, verbose bool) *PageEnricher {
	return &PageEnricher{
		Cache:      NewCachedFetcher(DefaultOptions(), DefaultCacheTTL),
		UseBrowser: useBrowser,
		Verbose:    verbose,
	}
}

// Enrich processes platform entries in place order and returns the same
// slice. Industry entries pass through untouched.
func (e *PageEnricher) Enrich(ctx context.Context, entries []types.ExternalCertification) []types.ExternalCertification {
	for i := range entries {
		if entries[i].Kind != types.KindPlatform {
			continue
		}
		if ctx.Err() != nil {
			break
		}
		e.enrichOne(ctx, &entries[i])
	}
	return entries
}

func (e *PageEnricher) enrichOne(ctx context.Context, entry *types.ExternalCertification) {
	result, err := e.Cache.Fetch(ctx, entry.URL)
	if err != nil || result == nil {
		if e.Verbose {
			log.Printf("[enrich] skipping %s: %v", entry.Platform, err)
		}
		return
	}

	html := result.HTML
	selectors := ResultTitleSelectors(entry.Platform)

	titles, err := ExtractTitles(html, selectors, MaxEnrichTitles)
	if err != nil {
		return
	}

	// Script-rendered pages often serve an empty shell over plain HTTP.
	if len(titles) == 0 && e.UseBrowser && e.looksScriptRendered(html) {
		rendered, err := RenderPage(ctx, entry.URL, DefaultRenderTimeout, e.Verbose)
		if err != nil {
			if e.Verbose {
				log.Printf("[enrich] browser fallback failed for %s: %v", entry.Platform, err)
			}
			return
		}
		titles, err = ExtractTitles(rendered, selectors, MaxEnrichTitles)
		if err != nil {
			return
		}
	}

	if len(titles) == 0 {
		return
	}

	entry.Description = strings.TrimSpace(entry.Description) +
		" Programas destacados: " + strings.Join(titles, "; ") + "."
}

// looksScriptRendered reports whether the plain HTTP response carries so
// little text that the page is probably rendered client side.
func (e *PageEnricher) looksScriptRendered(html string) bool {
	text, err := ExtractMainText(html, DefaultTextSelectors())
	if err != nil {
		return false
	}
	return needsBrowserRender(text)
}
