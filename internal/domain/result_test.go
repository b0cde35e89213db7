package domain

import (
	"testing"
)

func TestTestID(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		expected string
	}{
		{
			name:     "id is the token before the first underscore",
			fileName: "TC001_login_works.py",
			expected: "TC001",
		},
		{
			name:     "no underscore keeps the whole stripped name",
			fileName: "TC002.py",
			expected: "TC002",
		},
		{
			name:     "only the first underscore truncates",
			fileName: "TC003_a_b_c.py",
			expected: "TC003",
		},
		{
			name:     "extension is stripped before truncation",
			fileName: "TC004.py",
			expected: "TC004",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TestID(tt.fileName); got != tt.expected {
				t.Errorf("TestID(%q) = %q, want %q", tt.fileName, got, tt.expected)
			}
		})
	}
}

func TestTestName(t *testing.T) {
	if got := TestName("TC001_login_works.py"); got != "TC001_login_works" {
		t.Errorf("expected extension stripped, got %q", got)
	}
}

func TestNewSummary(t *testing.T) {
	results := []TestResult{
		{Status: StatusPassed},
		{Status: StatusPassed},
		{Status: StatusFailed},
		{Status: StatusError},
		{Status: StatusTimeout},
	}

	s := NewSummary(results)

	if s.Total != 5 {
		t.Errorf("expected total 5, got %d", s.Total)
	}
	if s.Passed != 2 || s.Failed != 1 || s.Errors != 1 || s.Timeouts != 1 {
		t.Errorf("unexpected counts: %+v", s)
	}
	if s.Total != s.Passed+s.Failed+s.Errors+s.Timeouts {
		t.Errorf("counts do not add up to total: %+v", s)
	}
	if s.Failing() != 3 {
		t.Errorf("expected 3 failing, got %d", s.Failing())
	}
}

func TestNewSummary_Empty(t *testing.T) {
	s := NewSummary(nil)
	if s.Total != 0 || s.Failing() != 0 {
		t.Errorf("expected zeroed summary, got %+v", s)
	}
}
