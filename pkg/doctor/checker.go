package doctor

import (
	"github.com/jaspreet-dot-casa/rebuild-vendor/pkg/config"
	"github.com/jaspreet-dot-casa/rebuild-vendor/pkg/rebuild"
)

// Checker runs all prerequisite checks for a rebuild.
type Checker struct {
	executor CommandExecutor
	env      config.EnvGetter
}

// NewChecker creates a new Checker against the real system.
func NewChecker() *Checker {
	return &Checker{
		executor: &RealExecutor{},
		env:      &config.RealEnvGetter{},
	}
}

// NewCheckerWithExecutor creates a new Checker with a custom executor and
// environment (for testing).
func NewCheckerWithExecutor(exec CommandExecutor, env config.EnvGetter) *Checker {
	return &Checker{
		executor: exec,
		env:      env,
	}
}

// CheckAll runs every check in a fixed order.
func (c *Checker) CheckAll(exe, root string, opts rebuild.Options) []Check {
	return []Check{
		CheckBuildExecutable(c.executor, exe),
		CheckGOPATH(c.env),
		CheckVendorRoot(c.executor, root, opts),
	}
}

// Summary represents an overall health summary.
type Summary struct {
	Total    int
	OK       int
	Missing  int
	Warnings int
	Errors   int
}

// GetSummary returns a summary of check results.
func GetSummary(checks []Check) Summary {
	var summary Summary

	for _, check := range checks {
		summary.Total++
		switch check.Status {
		case StatusOK:
			summary.OK++
		case StatusMissing:
			summary.Missing++
		case StatusWarning:
			summary.Warnings++
		case StatusError:
			summary.Errors++
		}
	}

	return summary
}

// HasIssues returns true if any check is missing or errored.
func HasIssues(checks []Check) bool {
	summary := GetSummary(checks)
	return summary.Missing > 0 || summary.Errors > 0
}
