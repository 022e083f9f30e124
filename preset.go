package unoconf

import (
	"fmt"
	"maps"
)

// Preset names
const (
	PresetNameWind3       = "wind3"
	PresetNameAttributify = "attributify"
)

// Dark mode strategies understood by the wind3 preset
const (
	DarkClass = "class" // .dark ancestor toggles dark: variants
	DarkMedia = "media" // prefers-color-scheme
)

// DefaultAttributifyPrefix is the attribute prefix UnoCSS uses when none is set.
const DefaultAttributifyPrefix = "un-"

// Preset is a named bundle of generation rules handed to the generator.
// Options only carries values that differ from the preset's own defaults.
type Preset struct {
	Name    string         // "wind3"
	Module  string         // "@unocss/preset-wind3"
	Factory string         // "presetWind3"
	Options map[string]any // {"dark": "media"}
}

// Wind3Options configures the utility-class preset
type Wind3Options struct {
	Dark string // DarkClass (default) or DarkMedia
}

// AttributifyOptions configures the attributify preset
type AttributifyOptions struct {
	Prefix       string // Attribute prefix (default "un-")
	PrefixedOnly bool   // Only match prefixed attributes
	Strict       bool   // Only generate CSS for attributes that match utilities
}

// PresetWind3 returns the Tailwind v3 compatible utility-class preset.
func PresetWind3(opts Wind3Options) Preset {
	p := Preset{
		Name:    PresetNameWind3,
		Module:  "@unocss/preset-wind3",
		Factory: "presetWind3",
	}
	if opts.Dark == DarkMedia {
		p.Options = map[string]any{"dark": DarkMedia}
	}
	return p
}

// PresetAttributify returns the preset that lets utilities be written as
// HTML attributes.
func PresetAttributify(opts AttributifyOptions) Preset {
	p := Preset{
		Name:    PresetNameAttributify,
		Module:  "@unocss/preset-attributify",
		Factory: "presetAttributify",
	}

	options := make(map[string]any)
	if opts.Prefix != "" && opts.Prefix != DefaultAttributifyPrefix {
		options["prefix"] = opts.Prefix
	}
	if opts.PrefixedOnly {
		options["prefixedOnly"] = true
	}
	if opts.Strict {
		options["strict"] = true
	}
	if len(options) > 0 {
		p.Options = options
	}
	return p
}

func (o Wind3Options) validate() error {
	switch o.Dark {
	case "", DarkClass, DarkMedia:
		return nil
	default:
		return fmt.Errorf("%w: dark mode %q (want %q or %q)", ErrInvalidOptions, o.Dark, DarkClass, DarkMedia)
	}
}

func (p Preset) clone() Preset {
	p.Options = maps.Clone(p.Options)
	return p
}
