// Package assembly merges external-certification candidates into the
// final deduplicated result list.
package assembly

import (
	"strings"

	"github.com/ibero-edu/microcred-recommender/internal/types"
)

// DefaultMaxResults bounds the assembled external result list.
const DefaultMaxResults = 10

// Assemble concatenates industry results before platform results,
// deduplicates by case-insensitive trimmed name (first occurrence wins)
// and truncates to maxResults. The inputs are never mutated.
func Assemble(industry, platform []types.ExternalCertification, maxResults int) []types.ExternalCertification {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	seen := make(map[string]struct{}, len(industry)+len(platform))
	out := make([]types.ExternalCertification, 0, maxResults)

	for _, list := range [][]types.ExternalCertification{industry, platform} {
		for _, entry := range list {
			key := strings.ToLower(strings.TrimSpace(entry.Name))
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, entry)
			if len(out) >= maxResults {
				return out
			}
		}
	}
	return out
}
