package execution

import (
	"context"
	"time"

	"tcrun/internal/config"
	"tcrun/internal/discovery"
	"tcrun/internal/domain"
)

// Observer is notified after each test completes, with the 1-based index of
// the test and the total count. Used for incremental console output.
type Observer func(index, total int, result domain.TestResult)

// Harness drives a full run: discovery, strictly sequential execution and
// report assembly. It keeps no state between runs.
type Harness struct {
	config  *config.Config
	scanner *discovery.Scanner
	filter  *discovery.Filter
	runner  *Runner
}

// NewHarness creates a new Harness
func NewHarness(cfg *config.Config, scanner *discovery.Scanner, filter *discovery.Filter, runner *Runner) *Harness {
	return &Harness{
		config:  cfg,
		scanner: scanner,
		filter:  filter,
		runner:  runner,
	}
}

// Discover returns the resolved test directory and the ordered test file
// names, after applying the configured name filter. Zero tests is a valid
// outcome, not an error.
func (h *Harness) Discover() (string, []string, error) {
	dir := h.config.GetTestDir()
	tests, err := h.scanner.Scan(dir)
	if err != nil {
		return "", nil, err
	}
	tests = h.filter.FilterByName(tests, h.config.Flags.Filter)
	return dir, tests, nil
}

// Execute runs the given tests one at a time in order and assembles the
// report. One test's failure never affects the scheduling of the next; every
// run produces a complete report.
func (h *Harness) Execute(ctx context.Context, dir string, tests []string, observer Observer) domain.RunReport {
	results := make([]domain.TestResult, 0, len(tests))
	for i, name := range tests {
		result := h.runner.Run(ctx, dir, name)
		results = append(results, result)
		if observer != nil {
			observer(i+1, len(tests), result)
		}
	}

	return domain.RunReport{
		Timestamp: time.Now().Format(time.RFC3339),
		Summary:   domain.NewSummary(results),
		Results:   results,
	}
}

// Run discovers and executes in one step, for callers that do not need the
// discovery count up front.
func (h *Harness) Run(ctx context.Context, observer Observer) (domain.RunReport, error) {
	dir, tests, err := h.Discover()
	if err != nil {
		return domain.RunReport{}, err
	}
	return h.Execute(ctx, dir, tests, observer), nil
}
