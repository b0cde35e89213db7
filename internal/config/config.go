package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Discovery settings
	TestDir   string
	Prefix    string
	Extension string

	// Execution settings
	Interpreter    string
	TimeoutSeconds int

	// Output settings
	OutputJSONFile string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Dir            string
	Filter         string
	Interpreter    string
	TimeoutSeconds int
	NoProgress     bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		TestDir:        DefaultTestDir,
		Prefix:         DefaultPrefix,
		Extension:      DefaultExtension,
		Interpreter:    DefaultInterpreter,
		TimeoutSeconds: DefaultTimeoutSeconds,
		OutputJSONFile: DefaultOutputJSONFile,
	}
}

// Load creates a config with defaults and .env/environment overrides applied.
// Flag overrides come later, once cobra has parsed them (ApplyFlags); flags win
// over environment, environment wins over defaults.
func Load() *Config {
	cfg := New()
	cfg.applyEnv()
	return cfg
}

// applyEnv loads .env (if present) and applies TCRUN_* overrides.
func (c *Config) applyEnv() {
	// Missing .env is not an error; the environment may carry the values
	_ = godotenv.Load()

	if dir := os.Getenv(EnvTestDir); dir != "" {
		c.TestDir = dir
	}
	if interp, ok := os.LookupEnv(EnvInterpreter); ok {
		c.Interpreter = interp
	}
	if raw := os.Getenv(EnvTimeout); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			c.TimeoutSeconds = secs
		}
	}
}

// ApplyFlags applies command-line flag overrides onto the config.
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.Dir != "" {
		c.TestDir = flags.Dir
	}
	if flags.Interpreter != "" {
		c.Interpreter = flags.Interpreter
	}
	if flags.TimeoutSeconds > 0 {
		c.TimeoutSeconds = flags.TimeoutSeconds
	}
}

// GetTestDir returns the test directory as an absolute path so discovery,
// execution and the report all resolve the same location regardless of cwd.
func (c *Config) GetTestDir() string {
	if abs, err := filepath.Abs(c.TestDir); err == nil {
		return abs
	}
	return c.TestDir
}

// GetOutputPath returns the full path of the JSON report, written in the same
// directory the tests are discovered in.
func (c *Config) GetOutputPath() string {
	return filepath.Join(c.GetTestDir(), c.OutputJSONFile)
}

// Timeout returns the per-test wall-clock bound.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// TimeoutError returns the synthetic error message recorded for timed-out tests.
func (c *Config) TimeoutError() string {
	return fmt.Sprintf("Test execution timed out after %d seconds", c.TimeoutSeconds)
}
