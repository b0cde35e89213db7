package discovery

import (
	"path/filepath"
	"strings"
)

// Filter narrows discovered test files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters test file names by pattern. Patterns support * and ?
// wildcards ("TC0*", "*login*"); a pattern without wildcards is a substring
// match. An empty pattern keeps everything.
func (f *Filter) FilterByName(tests []string, pattern string) []string {
	if pattern == "" {
		return tests
	}

	var filtered []string
	for _, name := range tests {
		if f.matches(name, pattern) {
			filtered = append(filtered, name)
		}
	}
	return filtered
}

func (f *Filter) matches(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// Fall back to a piecewise substring match so "*login*timeout*" style
	// patterns behave the way users expect
	parts := strings.Split(pattern, "*")
	hasNonEmpty := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		hasNonEmpty = true
		if !strings.Contains(name, part) {
			return false
		}
	}
	return hasNonEmpty
}
