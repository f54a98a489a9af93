package store

import "strings"

// matchesQuery implements the portal's bilingual substring policy: English
// fields match case-insensitively, Bengali fields match literally. An empty
// or whitespace query matches everything.
func matchesQuery(query string, english, bengali []string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}

	folded := strings.ToLower(q)
	for _, f := range english {
		if strings.Contains(strings.ToLower(f), folded) {
			return true
		}
	}
	for _, f := range bengali {
		if strings.Contains(f, q) {
			return true
		}
	}
	return false
}
