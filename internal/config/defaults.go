package config

const (
	// DefaultTestDir is the default directory to discover tests in
	DefaultTestDir = "."
	// DefaultPrefix is the filename prefix that marks a file as a test
	DefaultPrefix = "TC"
	// DefaultExtension is the extension test files must carry
	DefaultExtension = ".py"
	// DefaultInterpreter runs the test files; empty means exec the file directly
	DefaultInterpreter = "python3"
	// DefaultTimeoutSeconds is the per-test wall-clock bound
	DefaultTimeoutSeconds = 60
	// DefaultOutputJSONFile is the report file written next to the tests
	DefaultOutputJSONFile = "local_test_results.json"
)

// Environment variable overrides, loaded from the process environment and an
// optional .env file in the working directory.
const (
	EnvTestDir     = "TCRUN_DIR"
	EnvInterpreter = "TCRUN_INTERPRETER"
	EnvTimeout     = "TCRUN_TIMEOUT"
)
