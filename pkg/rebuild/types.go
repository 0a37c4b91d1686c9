// Package rebuild walks a vendor tree and installs every leaf package it finds
// with an external build executable.
package rebuild

import "time"

const (
	// DefaultSourceSuffix marks a directory as a leaf package when it directly
	// contains at least one file with this suffix.
	DefaultSourceSuffix = ".go"

	// DefaultRoot is the vendor directory, relative to the working directory.
	DefaultRoot = "vendor"
)

// DefaultExcludes are the path substrings that cause a directory to be skipped.
// Matching is case-sensitive and applies anywhere in the full path, so
// "latest-utils" is skipped as well.
var DefaultExcludes = []string{"example", "test"}

// Env is the restricted environment handed to every build invocation.
type Env struct {
	GOPATH string // Package root, required
	PATH   string // Search path, may be empty
}

// List renders the environment in os/exec form. Nothing from the ambient
// process environment is included.
func (e Env) List() []string {
	return []string{
		"GOPATH=" + e.GOPATH,
		"PATH=" + e.PATH,
	}
}

// Options configures a Rebuilder.
type Options struct {
	// BuildExecutable is the tool invoked as "<exe> install <dir>". Not validated.
	BuildExecutable string

	// Env is the only environment the build executable sees.
	Env Env

	// Excludes defaults to DefaultExcludes when nil.
	Excludes []string

	// SourceSuffix defaults to DefaultSourceSuffix when empty.
	SourceSuffix string
}

// Result is the outcome of one build invocation. It is recorded for the run
// report; traversal never depends on it.
type Result struct {
	Dir      string        `yaml:"dir"`
	ExitCode int           `yaml:"exit_code"`
	Error    string        `yaml:"error,omitempty"`
	Duration time.Duration `yaml:"duration"`
}

// Failed reports whether the invocation could not start or exited non-zero.
func (r Result) Failed() bool {
	return r.Error != "" || r.ExitCode != 0
}
