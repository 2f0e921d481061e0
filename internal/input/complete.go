package input

import "strings"

// Complete resolves s against candidates: an exact match first, then a
// case-insensitive match, then a unique case-insensitive prefix.
func Complete(s string, candidates []string) (string, bool) {
	for _, c := range candidates {
		if c == s {
			return c, true
		}
	}
	for _, c := range candidates {
		if strings.EqualFold(c, s) {
			return c, true
		}
	}

	if s == "" {
		return "", false
	}
	prefix := strings.ToLower(s)
	match, found := "", false
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), prefix) {
			if found {
				return "", false
			}
			match, found = c, true
		}
	}
	return match, found
}

// Matches returns the candidates containing s, case-insensitively, in order.
// Prefix matches come first.
func Matches(s string, candidates []string) []string {
	if s == "" {
		return candidates
	}
	needle := strings.ToLower(s)
	var prefix, inner []string
	for _, c := range candidates {
		lc := strings.ToLower(c)
		switch {
		case strings.HasPrefix(lc, needle):
			prefix = append(prefix, c)
		case strings.Contains(lc, needle):
			inner = append(inner, c)
		}
	}
	return append(prefix, inner...)
}
