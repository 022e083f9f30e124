package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .unoconf.yaml config file",
	Long:  `Create a .unoconf.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(stdout, "Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# unoconf configuration
# Env overrides: UNOCONF_<KEY> with "_" for "." and "__" for "-"
# (e.g. UNOCONF_SCAN_OUT__FILE=static/global.css)

verbose: false
root: .

# Reset stylesheet injected verbatim as a preflight
reset: node_modules/@unocss/reset/tailwind.css

# Templates the generator scans and the CSS file it writes
scan:
  patterns:
    - "templates/**/*.templ"
  out-file: global.css

# Presets are always wind3 then attributify
presets:
  wind3:
    dark: class            # class | media
  attributify:
    prefix: un-
    prefixed-only: false
    strict: false

# unoconf generate
render:
  format: ts               # ts | json
  # output: uno.config.ts  # defaults to uno.config.<ts|json> by format
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
