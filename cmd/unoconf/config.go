package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/unoconf"
)

const defaultConfigFile = ".unoconf.yaml"

var k = koanf.New(".")

// flagKeys maps CLI flags onto config file keys. Unlisted flags keep their name.
var flagKeys = map[string]string{
	"patterns":      "scan.patterns",
	"out-file":      "scan.out-file",
	"dark":          "presets.wind3.dark",
	"prefix":        "presets.attributify.prefix",
	"prefixed-only": "presets.attributify.prefixed-only",
	"strict":        "presets.attributify.strict",
	"format":        "render.format",
	"output":        "render.output",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	flags := cmd.Flags()
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return flagKey(f.Name), posflag.FlagVal(flags, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (UNOCONF_* prefix)
	if err := k.Load(env.Provider("UNOCONF_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable onto a config key. A double underscore
// stands for a dash:
//
//	UNOCONF_RESET                         -> reset
//	UNOCONF_SCAN_OUT__FILE                -> scan.out-file
//	UNOCONF_PRESETS_ATTRIBUTIFY_PREFIX    -> presets.attributify.prefix
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "UNOCONF_"))
	s = strings.ReplaceAll(s, "__", "-")
	return strings.ReplaceAll(s, "_", ".")
}

func flagKey(name string) string {
	if key, ok := flagKeys[name]; ok {
		return key
	}
	return name
}

// buildOptions constructs the library's Options from koanf state.
func buildOptions() unoconf.Options {
	defaults := unoconf.DefaultOptions()

	return unoconf.Options{
		Root:      stringOr("root", defaults.Root),
		ResetPath: stringOr("reset", defaults.ResetPath),
		Patterns:  stringsOr("scan.patterns", defaults.Patterns),
		OutFile:   stringOr("scan.out-file", defaults.OutFile),
		Wind3: unoconf.Wind3Options{
			Dark: stringOr("presets.wind3.dark", defaults.Wind3.Dark),
		},
		Attributify: unoconf.AttributifyOptions{
			Prefix:       stringOr("presets.attributify.prefix", defaults.Attributify.Prefix),
			PrefixedOnly: boolOr("presets.attributify.prefixed-only", false),
			Strict:       boolOr("presets.attributify.strict", false),
		},
	}
}

// buildConfig assembles the config. A missing reset stylesheet aborts the command.
func buildConfig() (*unoconf.Config, error) {
	opts := buildOptions()
	verbosef("Reading reset stylesheet %s (root %s)\n", opts.ResetPath, opts.Root)

	cfg, err := unoconf.Build(opts)
	if err != nil {
		return nil, fmt.Errorf("build config: %w", err)
	}
	return cfg, nil
}

// stringOr returns the key's value, or defaultVal when unset or empty.
func stringOr(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// boolOr returns the key's value, or defaultVal when unset.
func boolOr(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

// stringsOr returns the key's list value, or defaultVal when unset or empty.
// Environment variables arrive as one comma-separated string.
func stringsOr(key string, defaultVal []string) []string {
	if v := k.Strings(key); len(v) > 0 {
		return v
	}
	if v := splitList(k.String(key)); len(v) > 0 {
		return v
	}
	return defaultVal
}

// splitList splits comma-separated values into a slice
func splitList(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func isQuiet() bool {
	return boolOr("quiet", false)
}

// verbosef writes progress to stderr so stdout stays clean for rendered configs.
func verbosef(format string, args ...any) {
	if boolOr("verbose", false) && !isQuiet() {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
