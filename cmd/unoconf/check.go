package main

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/yacobolo/unoconf/internal/report"
)

var errChecksFailed = errors.New("configuration checks failed")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the configuration is usable",
	Long: `Build the configuration and verify that the reset stylesheet parses as CSS,
the scan patterns match at least one template, and the output directory exists.
Exits 1 when any check fails (CI mode).`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func runCheck(_ *cobra.Command, _ []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	checks := report.RunChecks(cfg, buildOptions().Root)

	if !isQuiet() {
		reporter := report.NewReporter(stdout, report.ShouldUseColors(boolOr("color", false)))
		reporter.PrintChecks(checks)
	}

	if report.Failed(checks) {
		return errChecksFailed
	}
	return nil
}
