package cli

import "tcrun/internal/config"

// Flags holds command-line flags
type Flags struct {
	Dir         string
	Filter      string
	Interpreter string
	Timeout     int
	NoProgress  bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Dir:            f.Dir,
		Filter:         f.Filter,
		Interpreter:    f.Interpreter,
		TimeoutSeconds: f.Timeout,
		NoProgress:     f.NoProgress,
	}
}
