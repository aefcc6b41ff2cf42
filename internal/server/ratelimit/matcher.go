package ratelimit

import (
	"net/http"
	"strings"
)

// MatchEndpoint resolves a request path and method to its rate limit
// tier. Exact path matches win; otherwise tiers whose path ends in "/"
// match by prefix, longest prefix first, so "/jobs/" covers "/jobs/42"
// without touching the "/jobs" collection tier. The health check is
// always unmetered.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == http.MethodGet {
		return &EndpointConfig{}
	}

	var prefix *EndpointConfig
	for i := range configs {
		tier := &configs[i]
		if tier.Method != method {
			continue
		}
		if tier.Path == path {
			return tier
		}
		if strings.HasSuffix(tier.Path, "/") && strings.HasPrefix(path, tier.Path) {
			if prefix == nil || len(tier.Path) > len(prefix.Path) {
				prefix = tier
			}
		}
	}
	return prefix
}
