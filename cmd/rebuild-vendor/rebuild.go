package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jaspreet-dot-casa/rebuild-vendor/pkg/config"
	"github.com/jaspreet-dot-casa/rebuild-vendor/pkg/rebuild"
	"github.com/jaspreet-dot-casa/rebuild-vendor/pkg/ui"
)

// runRebuild installs every leaf package under the vendor root.
func runRebuild(cmd *cobra.Command, args []string, flags *rootFlags) error {
	out := cmd.OutOrStdout()

	// Both prerequisites are checked before anything touches the filesystem.
	if len(args) < 1 {
		fmt.Fprintln(out, msgNoBuildExecutable)
		return nil
	}
	exe := args[0]

	env, err := config.Environment(&config.RealEnvGetter{})
	if err != nil {
		fmt.Fprintln(out, msgGOPATHNotSet)
		return nil
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	if flags.dryRun {
		return printPackages(cmd, cfg)
	}

	logger := newLogger(cmd.ErrOrStderr(), flags.verbose || cfg.Verbose)

	rebuilder := rebuild.NewWithExecutor(cfg.Options(exe, env), &rebuild.RealExecutor{
		Stdout: out,
		Stderr: cmd.ErrOrStderr(),
	})
	rebuilder.SetLogger(logger)

	report, err := rebuilder.Rebuild(cmd.Context(), cfg.Root)
	if err != nil {
		return fmt.Errorf("rebuild failed: %w", err)
	}

	printReport(cmd, report)

	reportPath := flags.report
	if reportPath == "" {
		reportPath = cfg.Report
	}
	if reportPath != "" {
		if err := report.WriteYAML(reportPath); err != nil {
			return err
		}
		logger.Info("wrote report", "path", reportPath)
	}

	return nil
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.root != "" {
		cfg.Root = flags.root
	}
	return cfg, nil
}

// printReport prints the run summary.
func printReport(cmd *cobra.Command, report *rebuild.Report) {
	out := cmd.OutOrStdout()
	failed := report.Failed()

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s %d installed, %d skipped in %s\n",
		ui.TitleStyle.Render("Done:"),
		len(report.Installed)-len(failed),
		len(report.Skipped),
		report.Duration().Round(time.Millisecond),
	)

	if len(failed) == 0 {
		return
	}

	fmt.Fprintln(out, ui.WarningStyle.Render(fmt.Sprintf("%d package(s) failed to install:", len(failed))))
	for _, res := range failed {
		reason := fmt.Sprintf("exit status %d", res.ExitCode)
		if res.Error != "" {
			reason = res.Error
		}
		fmt.Fprintf(out, "  - %s: %s\n", res.Dir, reason)
	}
}
