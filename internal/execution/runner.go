package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime/debug"
	"time"

	"tcrun/internal/config"
	"tcrun/internal/domain"
)

// supervisionGrace bounds how long Wait keeps reading output after the child
// exited or was killed.
const supervisionGrace = time.Second

// Runner executes a single test file as an isolated child process.
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// Run executes one test file and classifies the outcome. The child runs with
// its working directory set to dir so relative paths inside tests resolve
// consistently, and is killed once the configured timeout elapses.
func (r *Runner) Run(ctx context.Context, dir, fileName string) domain.TestResult {
	result := domain.TestResult{
		TestID:   domain.TestID(fileName),
		TestName: domain.TestName(fileName),
		Status:   domain.StatusUnknown,
	}

	runCtx, cancel := context.WithTimeout(ctx, r.config.Timeout())
	defer cancel()

	testPath := filepath.Join(dir, fileName)
	var cmd *exec.Cmd
	if r.config.Interpreter != "" {
		cmd = exec.CommandContext(runCtx, r.config.Interpreter, testPath)
	} else {
		cmd = exec.CommandContext(runCtx, testPath)
	}
	cmd.Dir = dir
	// A killed test may leave grandchildren holding the output pipes; don't
	// let them stall the run past the timeout bound
	cmd.WaitDelay = supervisionGrace

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start).Seconds()

	switch {
	case runCtx.Err() == context.DeadlineExceeded:
		result.Status = domain.StatusTimeout
		result.Output = stdout.String()
		result.Error = r.config.TimeoutError()
		result.Duration = elapsed

	case err == nil, errors.Is(err, exec.ErrWaitDelay):
		// ErrWaitDelay means the child exited 0 but a descendant kept the
		// output pipes open past the grace period
		result.Status = domain.StatusPassed
		result.Output = stdout.String()
		result.Error = stderr.String()
		result.Duration = elapsed

	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.Status = domain.StatusFailed
			result.Output = stdout.String()
			result.Error = stderr.String()
			result.Duration = elapsed
		} else {
			// The harness failed to supervise the child (missing file,
			// permission denied, ...). Record our own stack trace so harness
			// breakage is distinguishable from test failures.
			result.Status = domain.StatusError
			result.Error = fmt.Sprintf("Exception during test execution: %v\n%s", err, debug.Stack())
		}
	}

	return result
}
