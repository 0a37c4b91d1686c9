package rebuild

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"time"
)

// Executor runs the build executable for a single leaf package.
type Executor interface {
	Install(ctx context.Context, exe, dir string, env []string) Result
}

// RealExecutor spawns the build executable as a child process and waits for it.
type RealExecutor struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Install runs "<exe> install <dir>" with exactly env as its environment.
func (e *RealExecutor) Install(ctx context.Context, exe, dir string, env []string) Result {
	start := time.Now()
	result := Result{Dir: dir}

	cmd := exec.CommandContext(ctx, exe, "install", dir)
	// Replaces the ambient environment entirely.
	cmd.Env = env
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	err := cmd.Run()
	result.Duration = time.Since(start)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
			result.Error = err.Error()
		}
	}

	return result
}
