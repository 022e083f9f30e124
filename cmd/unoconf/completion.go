package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/yacobolo/unoconf"
)

// completionScripts maps each supported shell to its cobra generator.
var completionScripts = map[string]func(io.Writer) error{
	"bash":       func(w io.Writer) error { return rootCmd.GenBashCompletionV2(w, true) },
	"zsh":        func(w io.Writer) error { return rootCmd.GenZshCompletion(w) },
	"fish":       func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) },
	"powershell": func(w io.Writer) error { return rootCmd.GenPowerShellCompletionWithDesc(w) },
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Print a shell completion script",
	Long: `Print a completion script for unoconf. Besides commands and flags it
completes --dark and --format values and offers .css files for --reset.

  source <(unoconf completion bash)`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(_ *cobra.Command, args []string) error {
		return completionScripts[args[0]](stdout)
	},
}

// registerFlagCompletions offers the fixed value sets of enum-like flags.
func registerFlagCompletions() {
	_ = rootCmd.RegisterFlagCompletionFunc("dark", fixedCompletions(unoconf.DarkClass, unoconf.DarkMedia))
	_ = generateCmd.RegisterFlagCompletionFunc("format", fixedCompletions(
		string(unoconf.OutputTypeScript),
		string(unoconf.OutputJSON),
	))
	_ = rootCmd.RegisterFlagCompletionFunc("reset", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"css"}, cobra.ShellCompDirectiveFilterFileExt
	})
}

func fixedCompletions(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
