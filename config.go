package unoconf

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// Defaults mirror the layout of a templ project with UnoCSS installed from npm.
const (
	DefaultResetPath = "node_modules/@unocss/reset/tailwind.css"
	DefaultPattern   = "templates/**/*.templ"
	DefaultOutFile   = "global.css"
)

// ErrInvalidOptions is returned by Build when Options cannot describe a config.
var ErrInvalidOptions = errors.New("invalid options")

// Options holds the inputs for Build
type Options struct {
	Root        string   // Directory relative paths are resolved against ("." when empty)
	ResetPath   string   // Reset stylesheet, relative to Root unless absolute
	Patterns    []string // Template globs: ["templates/**/*.templ"]
	OutFile     string   // Aggregated CSS written by the generator: "global.css"
	Wind3       Wind3Options
	Attributify AttributifyOptions
}

// ScanSpec declares which templates the generator inspects and where it
// writes the generated CSS.
type ScanSpec struct {
	Patterns []string
	OutFile  string
}

// Config is the assembled configuration. It is never modified after Build
// returns; accessors hand out copies.
type Config struct {
	presets    []Preset
	preflights []Preflight
	scan       ScanSpec
}

// DefaultOptions returns the options of a stock templ project.
func DefaultOptions() Options {
	return Options{
		Root:        ".",
		ResetPath:   DefaultResetPath,
		Patterns:    []string{DefaultPattern},
		OutFile:     DefaultOutFile,
		Wind3:       Wind3Options{Dark: DarkClass},
		Attributify: AttributifyOptions{Prefix: DefaultAttributifyPrefix},
	}
}

// Default builds the config from DefaultOptions.
func Default() (*Config, error) {
	return Build(DefaultOptions())
}

// Build assembles the config. The reset stylesheet is read exactly once;
// if it is missing or unreadable the returned error wraps the I/O error and
// no config is produced.
func Build(opts Options) (*Config, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	reset, err := LoadPreflight(PreflightReset, opts.resetPath())
	if err != nil {
		return nil, err
	}

	return &Config{
		presets: []Preset{
			PresetWind3(opts.Wind3),
			PresetAttributify(opts.Attributify),
		},
		preflights: []Preflight{reset},
		scan: ScanSpec{
			Patterns: slices.Clone(opts.Patterns),
			OutFile:  opts.OutFile,
		},
	}, nil
}

func (o Options) validate() error {
	if o.ResetPath == "" {
		return fmt.Errorf("%w: reset stylesheet path is empty", ErrInvalidOptions)
	}
	if len(o.Patterns) == 0 {
		return fmt.Errorf("%w: no scan patterns", ErrInvalidOptions)
	}
	for _, pattern := range o.Patterns {
		if pattern == "" || !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: bad scan pattern %q", ErrInvalidOptions, pattern)
		}
	}
	if o.OutFile == "" {
		return fmt.Errorf("%w: output file is empty", ErrInvalidOptions)
	}
	return o.Wind3.validate()
}

func (o Options) resetPath() string {
	if filepath.IsAbs(o.ResetPath) {
		return o.ResetPath
	}
	root := o.Root
	if root == "" {
		root = "."
	}
	return filepath.Join(root, o.ResetPath)
}

// Presets returns the presets in precedence order.
func (c *Config) Presets() []Preset {
	out := make([]Preset, len(c.presets))
	for i, p := range c.presets {
		out[i] = p.clone()
	}
	return out
}

// Preflights returns the preflight entries in injection order.
func (c *Config) Preflights() []Preflight {
	return slices.Clone(c.preflights)
}

// Scan returns the scan declaration.
func (c *Config) Scan() ScanSpec {
	return ScanSpec{
		Patterns: slices.Clone(c.scan.Patterns),
		OutFile:  c.scan.OutFile,
	}
}
