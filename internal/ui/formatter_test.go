package ui

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		n        int
		expected string
	}{
		{
			name:     "short text unchanged",
			input:    "OK",
			n:        100,
			expected: "OK",
		},
		{
			name:     "surrounding whitespace trimmed before truncation",
			input:    "  padded  \n",
			n:        100,
			expected: "padded",
		},
		{
			name:     "long text capped",
			input:    strings.Repeat("x", 150),
			n:        100,
			expected: strings.Repeat("x", 100),
		},
		{
			name:     "multi-byte runes are not split",
			input:    strings.Repeat("ü", 150),
			n:        100,
			expected: strings.Repeat("ü", 100),
		},
		{
			name:     "empty input",
			input:    "",
			n:        100,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.n); got != tt.expected {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	if got := percent(8, 10); got != 80.0 {
		t.Errorf("expected 80.0, got %f", got)
	}
	if got := percent(1, 3); got < 33.3 || got > 33.4 {
		t.Errorf("expected ~33.3, got %f", got)
	}

	// Zero-test runs must not divide by zero
	if got := percent(0, 0); got != 0 {
		t.Errorf("expected 0 for empty run, got %f", got)
	}
}
