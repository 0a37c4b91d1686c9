package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaspreet-dot-casa/rebuild-vendor/pkg/config"
	"github.com/jaspreet-dot-casa/rebuild-vendor/pkg/doctor"
	"github.com/jaspreet-dot-casa/rebuild-vendor/pkg/rebuild"
	"github.com/jaspreet-dot-casa/rebuild-vendor/pkg/ui"
)

// newListCmd creates the list subcommand
func newListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List packages that would be installed",
		Long:  `Walk the vendor tree with the same rules as a rebuild and print every package directory, one per line.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			return printPackages(cmd, cfg)
		},
	}
}

// newDoctorCmd creates the doctor subcommand
func newDoctorCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor [build-executable]",
		Short: "Check the build executable, GOPATH and vendor tree",
		Long: `Check that the build executable resolves, GOPATH is set and the vendor
tree contains packages. The build executable defaults to "go".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exe := "go"
			if len(args) == 1 {
				exe = args[0]
			}

			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			checks := doctor.NewChecker().CheckAll(exe, cfg.Root, cfg.Options(exe, rebuild.Env{}))
			return printChecks(cmd, checks)
		},
	}
}

// printPackages prints every leaf package under the configured root.
func printPackages(cmd *cobra.Command, cfg *config.Config) error {
	leaves, err := rebuild.NewWithExecutor(cfg.Options("", rebuild.Env{}), nil).Discover(cfg.Root)
	if err != nil {
		return fmt.Errorf("failed to list packages: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, dir := range leaves {
		fmt.Fprintln(out, dir)
	}
	return nil
}

// printChecks prints doctor results and fails when a check is missing or errored.
func printChecks(cmd *cobra.Command, checks []doctor.Check) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, ui.TitleStyle.Render("rebuild-vendor doctor"))
	fmt.Fprintln(out)
	for _, check := range checks {
		fmt.Fprintln(out, ui.CheckLine(check))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.SummaryLine(doctor.GetSummary(checks)))

	if doctor.HasIssues(checks) {
		return fmt.Errorf("doctor found issues")
	}
	return nil
}
