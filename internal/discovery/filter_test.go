package discovery

import (
	"testing"
)

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		tests    []string
		pattern  string
		expected int // expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			tests:    []string{"TC001_login.py", "TC002_logout.py", "TC003_payment.py"},
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard pattern matches prefix",
			tests:    []string{"TC001_login.py", "TC002_logout.py", "TC010_payment.py"},
			pattern:  "TC00*",
			expected: 2,
		},
		{
			name:     "wildcard pattern matches substring",
			tests:    []string{"TC001_login.py", "TC002_logout.py", "TC003_payment.py"},
			pattern:  "*log*",
			expected: 2,
		},
		{
			name:     "simple contains match",
			tests:    []string{"TC001_login.py", "TC002_logout.py", "TC003_payment.py"},
			pattern:  "payment",
			expected: 1,
		},
		{
			name:     "no matches",
			tests:    []string{"TC001_login.py", "TC002_logout.py"},
			pattern:  "*nonexistent*",
			expected: 0,
		},
		{
			name:     "multiple wildcards",
			tests:    []string{"TC001_login_timeout.py", "TC002_login_retry.py", "TC003_payment.py"},
			pattern:  "*login*timeout*",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(tt.tests, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d (%v)", tt.expected, len(result), result)
			}
		})
	}
}

func TestFilter_FilterByName_EmptyList(t *testing.T) {
	filter := NewFilter()

	result := filter.FilterByName([]string{}, "TC*")
	if len(result) != 0 {
		t.Errorf("expected empty result, got %d items", len(result))
	}
}
