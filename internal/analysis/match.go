package analysis

import "strings"

// matchKeywords returns every keyword contained in text, in table order.
// text must already be lower-cased.
func matchKeywords(text string, keywords []string) []string {
	var matched []string
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// anyContainsAny reports whether any lower-cased item contains any keyword.
func anyContainsAny(items []string, keywords []string) bool {
	for _, item := range items {
		if containsAny(strings.ToLower(item), keywords) {
			return true
		}
	}
	return false
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
