package rebuild

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestReport_Failed(t *testing.T) {
	report := &Report{
		Installed: []Result{
			{Dir: "vendor/a"},
			{Dir: "vendor/b", ExitCode: 1},
			{Dir: "vendor/c", ExitCode: -1, Error: "exec: \"go\": executable file not found in $PATH"},
		},
	}

	failed := report.Failed()
	require.Len(t, failed, 2)
	assert.Equal(t, "vendor/b", failed[0].Dir)
	assert.Equal(t, "vendor/c", failed[1].Dir)
}

func TestReport_Duration(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	report := &Report{StartedAt: start, FinishedAt: start.Add(90 * time.Second)}

	assert.Equal(t, 90*time.Second, report.Duration())
}

func TestReport_WriteYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "run.yaml")
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	report := &Report{
		RunID:      "0b7f6f2e-8f8e-4a57-9f0c-3b1f8c6a1d2e",
		Root:       "vendor",
		StartedAt:  start,
		FinishedAt: start.Add(time.Second),
		Installed:  []Result{{Dir: "vendor/a", ExitCode: 1}},
		Skipped:    []string{"vendor/c_test"},
	}
	require.NoError(t, report.WriteYAML(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &raw))
	assert.Equal(t, report.RunID, raw["run_id"])
	assert.Equal(t, "vendor", raw["root"])
	assert.Equal(t, []interface{}{"vendor/c_test"}, raw["skipped"])

	installed, ok := raw["installed"].([]interface{})
	require.True(t, ok)
	require.Len(t, installed, 1)
	entry := installed[0].(map[string]interface{})
	assert.Equal(t, "vendor/a", entry["dir"])
	assert.Equal(t, 1, entry["exit_code"])
}

func TestResult_Failed(t *testing.T) {
	assert.False(t, Result{Dir: "a"}.Failed())
	assert.True(t, Result{Dir: "a", ExitCode: 3}.Failed())
	assert.True(t, Result{Dir: "a", Error: "boom"}.Failed())
}
