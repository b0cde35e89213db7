package domain

import (
	"path/filepath"
	"strings"
)

// Status is the terminal classification of a single test execution.
type Status string

const (
	// StatusUnknown is the pre-execution default; it never appears in a finished report.
	StatusUnknown Status = "UNKNOWN"
	// StatusPassed means the test process exited with code 0.
	StatusPassed Status = "PASSED"
	// StatusFailed means the test process exited with a non-zero code.
	StatusFailed Status = "FAILED"
	// StatusError means the harness itself could not supervise the test.
	StatusError Status = "ERROR"
	// StatusTimeout means the test was killed for exceeding the time bound.
	StatusTimeout Status = "TIMEOUT"
)

// TestResult represents the result of executing one test file
type TestResult struct {
	TestID   string  `json:"test_id"`
	TestName string  `json:"test_name"`
	Status   Status  `json:"status"`
	Output   string  `json:"output"`
	Error    string  `json:"error"`
	Duration float64 `json:"duration"` // wall-clock seconds; 0 when the child never ran
	Reviewed bool    `json:"reviewed,omitempty"`
}

// Passed reports whether the test completed cleanly.
func (r TestResult) Passed() bool {
	return r.Status == StatusPassed
}

// Summary contains the per-status counts of a test run
type Summary struct {
	Total    int `json:"total"`
	Passed   int `json:"passed"`
	Failed   int `json:"failed"`
	Errors   int `json:"errors"`
	Timeouts int `json:"timeouts"`
}

// Failing returns the number of tests that did not pass.
func (s Summary) Failing() int {
	return s.Failed + s.Errors + s.Timeouts
}

// NewSummary derives the counts from a result sequence. Total always equals
// passed + failed + errors + timeouts.
func NewSummary(results []TestResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case StatusPassed:
			s.Passed++
		case StatusFailed:
			s.Failed++
		case StatusError:
			s.Errors++
		case StatusTimeout:
			s.Timeouts++
		}
	}
	return s
}

// RunReport is the complete output structure for one run, persisted as JSON.
// Results keep discovery order (lexicographic by filename).
type RunReport struct {
	Timestamp string       `json:"timestamp"`
	Summary   Summary      `json:"summary"`
	Results   []TestResult `json:"results"`
}

// TestName strips the extension from a test filename.
func TestName(fileName string) string {
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}

// TestID derives the identifier from a test filename: the extension is
// stripped and the name truncated at the first underscore. A name without an
// underscore is its own ID.
func TestID(fileName string) string {
	id, _, _ := strings.Cut(TestName(fileName), "_")
	return id
}
