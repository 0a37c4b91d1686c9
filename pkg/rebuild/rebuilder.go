package rebuild

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Rebuilder walks a vendor tree depth-first and installs each leaf package.
// It is not safe for concurrent use; every invocation blocks the walk.
type Rebuilder struct {
	opts     Options
	executor Executor
	logger   *log.Logger
}

// New creates a Rebuilder that spawns real processes.
func New(opts Options) *Rebuilder {
	return NewWithExecutor(opts, &RealExecutor{Stdout: os.Stdout, Stderr: os.Stderr})
}

// NewWithExecutor creates a Rebuilder with a custom executor (for testing).
func NewWithExecutor(opts Options, executor Executor) *Rebuilder {
	if opts.Excludes == nil {
		opts.Excludes = DefaultExcludes
	}
	if opts.SourceSuffix == "" {
		opts.SourceSuffix = DefaultSourceSuffix
	}

	return &Rebuilder{
		opts:     opts,
		executor: executor,
		logger:   log.New(io.Discard),
	}
}

// SetLogger sets the logger used for progress output.
func (r *Rebuilder) SetLogger(logger *log.Logger) {
	if logger != nil {
		r.logger = logger
	}
}

// Options returns the effective options after defaults were applied.
func (r *Rebuilder) Options() Options {
	return r.opts
}

// Rebuild installs every non-excluded leaf package under root. Build failures
// are recorded in the report but never stop the walk; a directory that cannot
// be listed aborts it.
func (r *Rebuilder) Rebuild(ctx context.Context, root string) (*Report, error) {
	report := &Report{
		RunID:     uuid.New().String(),
		Root:      root,
		StartedAt: time.Now(),
	}

	err := r.walk(root, func(dir string) {
		r.logger.Info("Install golang package", "dir", dir)
		result := r.executor.Install(ctx, r.opts.BuildExecutable, dir, r.opts.Env.List())
		if result.Failed() {
			r.logger.Debug("install failed", "dir", dir, "exit", result.ExitCode, "err", result.Error)
		}
		report.Installed = append(report.Installed, result)
	}, func(dir string) {
		report.Skipped = append(report.Skipped, dir)
	})

	report.FinishedAt = time.Now()
	return report, err
}

// Discover returns the leaf packages Rebuild would install, in visit order,
// without invoking anything.
func (r *Rebuilder) Discover(root string) ([]string, error) {
	var leaves []string
	err := r.walk(root, func(dir string) {
		leaves = append(leaves, dir)
	}, nil)
	if err != nil {
		return nil, err
	}
	return leaves, nil
}

// walk visits the direct subdirectories of dir in listing order. Leaves are
// handed to onLeaf, excluded directories to onSkip, and everything else is
// descended into.
func (r *Rebuilder) walk(dir string, onLeaf, onSkip func(string)) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if !isDir(dir, entry) {
			continue
		}

		full := filepath.Join(dir, entry.Name())
		if IsExcluded(full, r.opts.Excludes) {
			r.logger.Debug("skipping excluded directory", "dir", full)
			if onSkip != nil {
				onSkip(full)
			}
			continue
		}

		leaf, err := IsLeaf(full, r.opts.SourceSuffix)
		if err != nil {
			return err
		}
		if leaf {
			onLeaf(full)
			continue
		}

		if err := r.walk(full, onLeaf, onSkip); err != nil {
			return err
		}
	}

	return nil
}

// isDir follows symlinks the way a stat-based directory check does.
func isDir(parent string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(parent, entry.Name()))
	return err == nil && info.IsDir()
}

// IsExcluded reports whether path contains any of the markers.
func IsExcluded(path string, markers []string) bool {
	for _, marker := range markers {
		if marker != "" && strings.Contains(path, marker) {
			return true
		}
	}
	return false
}

// IsLeaf reports whether dir directly contains at least one entry ending in
// suffix. Hidden entries are ignored, as a shell glob would.
func IsLeaf(dir, suffix string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("failed to list sources in %s: %w", dir, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if strings.HasSuffix(name, suffix) {
			return true, nil
		}
	}
	return false, nil
}
