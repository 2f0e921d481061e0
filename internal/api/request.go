package api

import (
	"sort"
	"strings"
)

// MergeDefaults returns a new map holding params plus every default whose
// key params does not set. Neither argument is modified.
func MergeDefaults(defaults, params map[string]string) map[string]string {
	merged := make(map[string]string, len(defaults)+len(params))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range params {
		merged[k] = v
	}
	return merged
}

// BuildURL composes {base}/{endpoint}/?k1=v1&k2=v2. Keys are sorted so the
// result is deterministic. Values are joined as given; they must already
// be transport safe.
func BuildURL(base, endpoint string, params map[string]string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "/"))
	b.WriteByte('/')
	b.WriteString(strings.Trim(endpoint, "/"))
	b.WriteString("/")

	if len(params) == 0 {
		return b.String()
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteByte('?')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	return b.String()
}
