package main

import (
	"github.com/spf13/cobra"
	"github.com/yacobolo/unoconf"
)

var rootCmd = &cobra.Command{
	Use:   "unoconf",
	Short: "UnoCSS configuration builder for Go/templ projects",
	Long: `Assemble the UnoCSS configuration for a templ project:
presets wind3 and attributify, the reset stylesheet injected as a preflight,
and the template globs and output file for the UnoCSS CLI.`,
	// Default behavior: show the assembled config when no subcommand is given.
	// We must call loadConfig here because PreRunE of showCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runShow(showCmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	f := rootCmd.PersistentFlags()
	f.BoolP("verbose", "v", false, "Enable verbose logging")
	f.Bool("quiet", false, "Suppress all output (exit code only)")
	f.Bool("color", false, "Force color output")
	f.String("config", defaultConfigFile, "Config file path")
	f.String("root", ".", "Project root that relative paths resolve against")
	f.String("reset", unoconf.DefaultResetPath, "Reset stylesheet injected as a preflight")
	f.StringSlice("patterns", []string{unoconf.DefaultPattern}, "Template glob patterns to scan")
	f.String("out-file", unoconf.DefaultOutFile, "CSS file the generator writes")
	f.String("dark", unoconf.DarkClass, "wind3 dark mode: class|media")
	f.String("prefix", unoconf.DefaultAttributifyPrefix, "attributify attribute prefix")
	f.Bool("prefixed-only", false, "attributify: only match prefixed attributes")
	f.Bool("strict", false, "attributify: only generate CSS for attributes that match utilities")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(filesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)

	registerFlagCompletions()
}
