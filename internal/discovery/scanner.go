package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scanner discovers test files in a single directory level.
type Scanner struct {
	prefix    string
	extension string
}

// NewScanner creates a Scanner matching the given filename prefix and extension
func NewScanner(prefix, extension string) *Scanner {
	return &Scanner{prefix: prefix, extension: extension}
}

// Scan returns the names of all test files directly inside dir, sorted in
// ascending lexicographic order. Subdirectories are not descended into. An
// empty result is valid and not an error.
func (s *Scanner) Scan(dir string) ([]string, error) {
	dir = filepath.Clean(dir)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("test path does not exist: %s", dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test path is not a directory: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read test directory: %w", err)
	}

	var tests []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, s.prefix) && strings.HasSuffix(name, s.extension) {
			tests = append(tests, name)
		}
	}

	// ReadDir already sorts by filename; keep the guarantee explicit
	sort.Strings(tests)

	return tests, nil
}
