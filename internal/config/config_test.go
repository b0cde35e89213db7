package config

import (
	"path/filepath"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	if cfg.TestDir != "." {
		t.Errorf("expected default test dir '.', got %q", cfg.TestDir)
	}
	if cfg.Prefix != "TC" || cfg.Extension != ".py" {
		t.Errorf("unexpected discovery defaults: prefix=%q ext=%q", cfg.Prefix, cfg.Extension)
	}
	if cfg.TimeoutSeconds != 60 {
		t.Errorf("expected 60s default timeout, got %d", cfg.TimeoutSeconds)
	}
	if cfg.Interpreter != "python3" {
		t.Errorf("expected python3 default interpreter, got %q", cfg.Interpreter)
	}
	if cfg.OutputJSONFile != "local_test_results.json" {
		t.Errorf("unexpected report file name %q", cfg.OutputJSONFile)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvTestDir, "/some/tests")
	t.Setenv(EnvInterpreter, "python3.12")
	t.Setenv(EnvTimeout, "90")

	cfg := Load()

	if cfg.TestDir != "/some/tests" {
		t.Errorf("expected env test dir, got %q", cfg.TestDir)
	}
	if cfg.Interpreter != "python3.12" {
		t.Errorf("expected env interpreter, got %q", cfg.Interpreter)
	}
	if cfg.TimeoutSeconds != 90 {
		t.Errorf("expected env timeout 90, got %d", cfg.TimeoutSeconds)
	}
}

func TestLoad_IgnoresInvalidTimeout(t *testing.T) {
	t.Setenv(EnvTimeout, "soon")

	cfg := Load()

	if cfg.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("expected default timeout kept, got %d", cfg.TimeoutSeconds)
	}
}

func TestApplyFlags_WinOverEnv(t *testing.T) {
	t.Setenv(EnvTimeout, "90")

	cfg := Load()
	cfg.ApplyFlags(Flags{Dir: "/flag/tests", TimeoutSeconds: 5})

	if cfg.TestDir != "/flag/tests" {
		t.Errorf("expected flag test dir, got %q", cfg.TestDir)
	}
	if cfg.TimeoutSeconds != 5 {
		t.Errorf("expected flag timeout 5, got %d", cfg.TimeoutSeconds)
	}
	// Unset flags must not clobber existing values
	if cfg.Interpreter != DefaultInterpreter {
		t.Errorf("expected interpreter untouched, got %q", cfg.Interpreter)
	}
}

func TestGetOutputPath(t *testing.T) {
	cfg := New()
	cfg.TestDir = "/tests"

	expected := filepath.Join("/tests", DefaultOutputJSONFile)
	if got := cfg.GetOutputPath(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestGetTestDir_Absolute(t *testing.T) {
	cfg := New()

	if !filepath.IsAbs(cfg.GetTestDir()) {
		t.Errorf("expected absolute path, got %q", cfg.GetTestDir())
	}
}

func TestTimeoutError(t *testing.T) {
	cfg := New()

	expected := "Test execution timed out after 60 seconds"
	if got := cfg.TimeoutError(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}
