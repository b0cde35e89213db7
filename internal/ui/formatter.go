package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tcrun/internal/domain"
)

const (
	separatorWidth = 80
	// snippetLen bounds how much captured output/error is echoed per test
	snippetLen = 100
)

// Formatter renders the console trace of a run: the discovery header, one
// progress line per completed test, and the final summary block.
type Formatter struct{}

// NewFormatter creates a new Formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// PrintHeader announces how many tests were discovered.
func (f *Formatter) PrintHeader(count int) {
	fmt.Printf("Found %d test files to execute\n", count)
	fmt.Println(strings.Repeat("=", separatorWidth))
}

// PrintResult prints the incremental trace line for one completed test,
// followed by the first characters of any captured output and error.
func (f *Formatter) PrintResult(index, total int, fileName string, result domain.TestResult) {
	fmt.Printf("\nRunning test %d/%d: %s\n", index, total, fileName)

	line := fmt.Sprintf("%s: %s (%.2fs)", result.TestID, result.Status, result.Duration)
	if result.Passed() {
		color.Green("✅ %s", line)
	} else {
		color.Red("❌ %s", line)
	}

	if result.Output != "" {
		fmt.Printf("   Output: %s...\n", truncate(result.Output, snippetLen))
	}
	if result.Error != "" {
		fmt.Printf("   Error: %s...\n", truncate(result.Error, snippetLen))
	}
}

// PrintSummary prints the final block after all tests have run. Percentages
// are guarded against a zero-test run.
func (f *Formatter) PrintSummary(summary domain.Summary) {
	fmt.Println("\n" + strings.Repeat("=", separatorWidth))
	fmt.Println("TEST EXECUTION SUMMARY")
	fmt.Println(strings.Repeat("=", separatorWidth))

	fmt.Printf("Total Tests: %d\n", summary.Total)
	color.Green("Passed: %d (%.1f%%)", summary.Passed, percent(summary.Passed, summary.Total))
	color.Red("Failed: %d (%.1f%%)", summary.Failed, percent(summary.Failed, summary.Total))
	color.Red("Errors: %d", summary.Errors)
	color.Yellow("Timeouts: %d", summary.Timeouts)
}

// PrintReportSaved points the user at the persisted report.
func (f *Formatter) PrintReportSaved(path string) {
	fmt.Printf("\nDetailed results saved to: %s\n", path)
}

// PrintTestList prints discovered test files without running them.
func (f *Formatter) PrintTestList(tests []string) {
	color.Green("Found %d test file(s):\n", len(tests))
	for i, name := range tests {
		if i == len(tests)-1 {
			color.Cyan("└── %s", name)
		} else {
			color.Cyan("├── %s", name)
		}
	}
}

// truncate trims surrounding whitespace and caps the text at n characters,
// never splitting a multi-byte rune.
func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// percent guards the zero-test run against division by zero.
func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
