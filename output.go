package unoconf

import (
	"fmt"
	"io"
	"strings"
)

// OutputFormat selects how a Config is rendered for the generator
type OutputFormat string

const (
	// OutputTypeScript renders a uno.config.ts module (what the UnoCSS CLI loads)
	OutputTypeScript OutputFormat = "ts"
	// OutputJSON exports the config as JSON (tooling integration)
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat parses a format flag. An empty flag selects
// TypeScript; anything unknown is an error.
func DetermineOutputFormat(formatFlag string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(formatFlag)) {
	case "", "ts", "typescript":
		return OutputTypeScript, nil
	case "json":
		return OutputJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want ts or json)", formatFlag)
	}
}

// DefaultOutputName returns the conventional file name for a format.
func DefaultOutputName(format OutputFormat) string {
	if format == OutputJSON {
		return "uno.config.json"
	}
	return "uno.config.ts"
}

// WriteOutput renders cfg in the requested format
func WriteOutput(w io.Writer, cfg *Config, format OutputFormat) error {
	switch format {
	case OutputTypeScript:
		return WriteUnoConfig(w, cfg)
	case OutputJSON:
		return WriteJSON(w, cfg)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
