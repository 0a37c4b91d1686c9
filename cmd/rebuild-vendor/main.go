// Package main provides the rebuild-vendor CLI, which installs every package
// in a vendor tree with a given go executable.
package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// version is set via -ldflags during build
var version = "dev"

// Messages printed on the clean early-exit paths.
const (
	msgNoBuildExecutable = "No go path is specified"
	msgGOPATHNotSet      = "GOPATH is not set"
)

func main() {
	rootCmd := newRootCmd()

	// Cobra handles error printing
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// rootFlags holds flags shared by the root command and its subcommands.
type rootFlags struct {
	configPath string
	root       string
	report     string
	dryRun     bool
	verbose    bool
}

// newRootCmd creates the root command for rebuild-vendor
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "rebuild-vendor <build-executable>",
		Short: "Install every package in the vendor tree",
		Long: `rebuild-vendor walks the vendor directory and runs
'<build-executable> install <dir>' for every directory that directly contains
Go source files. Directories whose path contains "example" or "test" are
skipped together with everything beneath them.

Each install runs with only GOPATH and PATH in its environment. Failed
installs are reported but never stop the walk.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRebuild(cmd, args, flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (default ./.rebuild-vendor.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&flags.root, "root", "", "Vendor directory to scan (default \"vendor\")")
	rootCmd.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&flags.report, "report", "", "Write a YAML run report to this path")
	rootCmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "List packages without installing them")

	rootCmd.AddCommand(
		newListCmd(flags),
		newDoctorCmd(flags),
	)

	return rootCmd
}

// newLogger creates the progress logger writing to w.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "rebuild-vendor",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
