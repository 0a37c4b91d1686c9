package rebuild

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Report records a single rebuild run.
type Report struct {
	RunID      string    `yaml:"run_id"`
	Root       string    `yaml:"root"`
	StartedAt  time.Time `yaml:"started_at"`
	FinishedAt time.Time `yaml:"finished_at"`
	Installed  []Result  `yaml:"installed"`
	Skipped    []string  `yaml:"skipped,omitempty"`
}

// Failed returns the invocations that could not start or exited non-zero.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Installed {
		if res.Failed() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Duration returns the wall time of the run.
func (r *Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// WriteYAML writes the report to path, creating parent directories as needed.
func (r *Report) WriteYAML(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
