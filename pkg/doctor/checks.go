package doctor

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"

	"github.com/jaspreet-dot-casa/rebuild-vendor/pkg/config"
	"github.com/jaspreet-dot-casa/rebuild-vendor/pkg/project"
	"github.com/jaspreet-dot-casa/rebuild-vendor/pkg/rebuild"
)

// goVersionRe matches "go version go1.22.3 linux/amd64".
var goVersionRe = regexp.MustCompile(`go(\d+\.\d+(?:\.\d+)?)`)

// defaultVersionRe matches common version patterns.
var defaultVersionRe = regexp.MustCompile(`v?(\d+\.\d+(?:\.\d+)?(?:-[a-zA-Z0-9]+)?)`)

// CommandExecutor is an interface for executing commands, allowing for testing.
type CommandExecutor interface {
	LookPath(file string) (string, error)
	Run(name string, args ...string) (string, error)
	Stat(path string) (os.FileInfo, error)
}

// RealExecutor is the default command executor that uses the real system.
type RealExecutor struct{}

// LookPath finds the path to an executable.
func (e *RealExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run executes a command and returns its output.
func (e *RealExecutor) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err != nil {
		if stderr.Len() > 0 {
			return stderr.String(), err
		}
		return stdout.String(), err
	}
	// Some tools print their version to stderr
	output := stdout.String()
	if output == "" {
		output = stderr.String()
	}
	return output, nil
}

// Stat returns file info for path.
func (e *RealExecutor) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// CheckBuildExecutable checks that the build executable resolves and reports a version.
func CheckBuildExecutable(exec CommandExecutor, exe string) Check {
	check := Check{
		ID:          IDBuildExecutable,
		Name:        "Build executable",
		Description: fmt.Sprintf("Tool invoked as '%s install <dir>'", exe),
	}

	if exe == "" {
		check.Status = StatusMissing
		check.Message = "not specified"
		check.Hint = "pass the build executable path as the first argument"
		return check
	}

	path, err := exec.LookPath(exe)
	if err != nil {
		check.Status = StatusMissing
		check.Message = "not found"
		check.Hint = "install Go or pass the full path to the go binary"
		return check
	}

	output, err := exec.Run(path, "version")
	if err != nil {
		// Resolves but version check failed, still usable
		check.Status = StatusWarning
		check.Message = fmt.Sprintf("%s (version unknown)", path)
		return check
	}

	if version := extractVersion(output, goVersionRe); version != "" {
		check.Status = StatusOK
		check.Message = version
		return check
	}

	check.Status = StatusOK
	check.Message = path
	return check
}

// CheckGOPATH checks that the package root variable is set.
func CheckGOPATH(env config.EnvGetter) Check {
	check := Check{
		ID:          IDGOPATH,
		Name:        "GOPATH",
		Description: "Package root passed to every install",
	}

	resolved, err := config.Environment(env)
	if err != nil {
		check.Status = StatusMissing
		check.Message = "not set"
		check.Hint = "export GOPATH=$(go env GOPATH)"
		return check
	}

	check.Status = StatusOK
	check.Message = resolved.GOPATH
	if resolved.PATH == "" {
		check.Status = StatusWarning
		check.Message = resolved.GOPATH + " (PATH is empty)"
	}
	return check
}

// CheckVendorRoot checks that the vendor tree exists and contains leaf packages.
func CheckVendorRoot(exec CommandExecutor, root string, opts rebuild.Options) Check {
	check := Check{
		ID:          IDVendorRoot,
		Name:        "Vendor tree",
		Description: fmt.Sprintf("Directory scanned for packages (%s)", root),
	}

	info, err := exec.Stat(root)
	if err != nil {
		check.Status = StatusMissing
		check.Message = "not found"
		check.Hint = "run from the project root or pass --root"
		if !filepath.IsAbs(root) {
			if dir, err := project.FindRoot(".", root); err == nil {
				check.Hint = fmt.Sprintf("found %s in %s, run from there", root, dir)
			}
		}
		return check
	}
	if !info.IsDir() {
		check.Status = StatusError
		check.Message = "not a directory"
		return check
	}

	leaves, err := rebuild.NewWithExecutor(opts, nil).Discover(root)
	if err != nil {
		check.Status = StatusError
		check.Message = err.Error()
		return check
	}

	if len(leaves) == 0 {
		check.Status = StatusWarning
		check.Message = "no packages found"
		return check
	}

	check.Status = StatusOK
	check.Message = fmt.Sprintf("%d packages", len(leaves))
	return check
}

// extractVersion extracts a version string from command output.
func extractVersion(output string, regex *regexp.Regexp) string {
	if regex == nil {
		regex = defaultVersionRe
	}
	matches := regex.FindStringSubmatch(output)
	if len(matches) >= 2 {
		return matches[1]
	}
	return ""
}
