package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/unoconf/internal/report"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List the templates the scan patterns match",
	Long: `Expand the scan patterns under the project root and list the matching
templates. Generated *_templ.go files and gitignored files are skipped.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runFiles,
}

func runFiles(_ *cobra.Command, _ []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	root := buildOptions().Root
	result, err := cfg.Scan().Resolve(root)
	if err != nil {
		return fmt.Errorf("resolve scan patterns: %w", err)
	}
	verbosef("Discovered %d files under %s\n", result.Stats.FilesDiscovered, root)

	if !isQuiet() {
		reporter := report.NewReporter(stdout, report.ShouldUseColors(boolOr("color", false)))
		reporter.PrintScan(result)
	}
	return nil
}
