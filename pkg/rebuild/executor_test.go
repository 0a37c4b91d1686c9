package rebuild

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript creates an executable shell script standing in for the build tool.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	path := filepath.Join(t.TempDir(), "fakego")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755))
	return path
}

func TestRealExecutor_ArgumentsAndEnvironment(t *testing.T) {
	script := writeScript(t, `echo "$1 $2"; env | sort`)
	t.Setenv("AMBIENT_ONLY", "leaked")

	var stdout bytes.Buffer
	e := &RealExecutor{Stdout: &stdout}

	env := Env{GOPATH: "/home/dev/go", PATH: "/usr/bin:/bin"}.List()
	result := e.Install(context.Background(), script, "vendor/a", env)

	assert.False(t, result.Failed())
	assert.Equal(t, "vendor/a", result.Dir)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "install vendor/a", lines[0])
	assert.Contains(t, lines, "GOPATH=/home/dev/go")
	assert.Contains(t, lines, "PATH=/usr/bin:/bin")
	assert.NotContains(t, stdout.String(), "AMBIENT_ONLY")
}

func TestRealExecutor_NonZeroExit(t *testing.T) {
	script := writeScript(t, "exit 3\n")

	e := &RealExecutor{}
	result := e.Install(context.Background(), script, "vendor/a", Env{GOPATH: "/go"}.List())

	assert.True(t, result.Failed())
	assert.Equal(t, 3, result.ExitCode)
	assert.Empty(t, result.Error)
}

func TestRealExecutor_MissingExecutable(t *testing.T) {
	e := &RealExecutor{}
	result := e.Install(context.Background(), filepath.Join(t.TempDir(), "nope"), "vendor/a", Env{GOPATH: "/go"}.List())

	assert.True(t, result.Failed())
	assert.Equal(t, -1, result.ExitCode)
	assert.NotEmpty(t, result.Error)
}
