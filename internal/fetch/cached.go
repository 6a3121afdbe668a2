// Package fetch - cached.go provides in-memory TTL caching around URL
// fetches. Platform search pages repeat across analyses, so the server
// reuses recent responses instead of re-fetching each time.
package fetch

import (
	"context"
	"sync"
	"time"
)

// DefaultCacheTTL is how long a fetched page stays fresh.
const DefaultCacheTTL = 1 * time.Hour

// CachedFetcher wraps URL fetching with an in-memory cache.
type CachedFetcher struct {
	options  *Options
	cacheTTL time.Duration

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	result    *Result
	fetchedAt time.Time
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool
}

// NewCachedFetcher creates a cached fetcher. Zero ttl selects the
// default.
func NewCachedFetcher(opts *Options, ttl time.Duration) *CachedFetcher {
	if opts == nil {
		opts = DefaultOptions()
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedFetcher{
		options:  opts,
		cacheTTL: ttl,
		entries:  make(map[string]cacheEntry),
	}
}

// Fetch retrieves a URL, returning the cached copy while it is fresh.
// Failed fetches are never cached.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	f.mu.RLock()
	entry, ok := f.entries[urlStr]
	f.mu.RUnlock()
	if ok && time.Since(entry.fetchedAt) < f.cacheTTL {
		return &CachedResult{Result: entry.result, FromCache: true}, nil
	}

	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	text, _ := ExtractMainText(result.HTML, DefaultTextSelectors())
	result.Text = text

	f.mu.Lock()
	f.entries[urlStr] = cacheEntry{result: result, fetchedAt: time.Now()}
	f.mu.Unlock()

	return &CachedResult{Result: result, FromCache: false}, nil
}

// Invalidate drops the cached copy of a URL, forcing a re-fetch.
func (f *CachedFetcher) Invalidate(urlStr string) {
	f.mu.Lock()
	delete(f.entries, urlStr)
	f.mu.Unlock()
}
