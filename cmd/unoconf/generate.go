package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yacobolo/unoconf"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Write the configuration for the UnoCSS CLI",
	Long: `Build the configuration and render it as a uno.config.ts module (default)
or as JSON. The reset stylesheet is inlined, so the rendered file does not
depend on node_modules at load time.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("format", string(unoconf.OutputTypeScript), "Output format: ts|json")
	f.StringP("output", "o", "", `Output file relative to --root ("-" for stdout; default uno.config.ts or uno.config.json)`)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	format, err := unoconf.DetermineOutputFormat(stringOr("render.format", ""))
	if err != nil {
		return err
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	output := stringOr("render.output", unoconf.DefaultOutputName(format))
	if output == "-" {
		return unoconf.WriteOutput(stdout, cfg, format)
	}

	var buf bytes.Buffer
	if err := unoconf.WriteOutput(&buf, cfg, format); err != nil {
		return fmt.Errorf("render config: %w", err)
	}

	if !filepath.IsAbs(output) {
		output = filepath.Join(buildOptions().Root, output)
	}
	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	if !isQuiet() {
		scan := cfg.Scan()
		fmt.Fprintf(stdout, "Generated %s\n", output)
		fmt.Fprintf(stdout, "  Presets: %d\n", len(cfg.Presets()))
		fmt.Fprintf(stdout, "  Preflights: %d\n", len(cfg.Preflights()))
		fmt.Fprintf(stdout, "  Output CSS: %s\n", scan.OutFile)
	}

	return nil
}
