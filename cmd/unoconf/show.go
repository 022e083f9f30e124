package main

import (
	"github.com/spf13/cobra"
	"github.com/yacobolo/unoconf/internal/report"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the assembled configuration",
	Long: `Build the configuration (reading the reset stylesheet) and print its
presets, preflights and scan declaration.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runShow,
}

func runShow(_ *cobra.Command, _ []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if isQuiet() {
		return nil
	}

	reporter := report.NewReporter(stdout, report.ShouldUseColors(boolOr("color", false)))
	reporter.PrintConfig(cfg)
	return nil
}
