package cache

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Key generates a deterministic cache key for an upstream endpoint and its
// query parameters.
// Format: spacex:endpoint:query1=val1:query2=val2
//
// Example:
//
//	spacex:launches
//	spacex:launches:limit=10:sort=date_utc
//
// Query parameters are appended in sorted order so semantically identical
// requests always map to the same key.
func Key(endpoint string, query url.Values) string {
	parts := []string{"spacex"}

	endpoint = strings.Trim(endpoint, "/")
	if endpoint != "" {
		parts = append(parts, endpoint)
	}

	if len(query) > 0 {
		keys := make([]string, 0, len(query))
		for k := range query {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", k, query.Get(k)))
		}
	}

	return strings.Join(parts, ":")
}
