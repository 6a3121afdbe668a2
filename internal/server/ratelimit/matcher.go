package ratelimit

import (
	"strings"
)

// MatchEndpoint resolves the rate limit configuration for a request.
// Exact path matches win over prefix patterns; a pattern with a trailing
// slash matches any path below it (so "/analyses/" covers
// "/analyses/{id}"). Returns nil when only the global default applies.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	// Health probes are never metered.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		if configs[i].Method == method && configs[i].Path == path {
			return &configs[i]
		}
	}

	for i := range configs {
		if configs[i].Method != method || !strings.HasSuffix(configs[i].Path, "/") {
			continue
		}
		if strings.HasPrefix(path, configs[i].Path) {
			return &configs[i]
		}
	}

	return nil
}
