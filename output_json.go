package unoconf

import (
	"encoding/json"
	"io"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version    string          `json:"version"`
	Presets    []JSONPreset    `json:"presets"`
	Preflights []JSONPreflight `json:"preflights"`
	CLI        JSONCLI         `json:"cli"`
}

// JSONPreset is one preset, in precedence order
type JSONPreset struct {
	Name    string         `json:"name"`
	Module  string         `json:"module"`
	Options map[string]any `json:"options,omitempty"`
}

// JSONPreflight carries the raw CSS of one preflight
type JSONPreflight struct {
	Name   string `json:"name"`
	Source string `json:"source,omitempty"`
	CSS    string `json:"css"`
}

// JSONCLI mirrors the generator's cli section
type JSONCLI struct {
	Entry JSONEntry `json:"entry"`
}

// JSONEntry declares the scanned templates and the output file
type JSONEntry struct {
	Patterns []string `json:"patterns"`
	OutFile  string   `json:"outFile"`
}

// WriteJSON writes the config as JSON
func WriteJSON(w io.Writer, cfg *Config) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(buildJSONOutput(cfg))
}

// buildJSONOutput converts Config to JSONOutput
func buildJSONOutput(cfg *Config) JSONOutput {
	presets := cfg.Presets()
	jsonPresets := make([]JSONPreset, len(presets))
	for i, p := range presets {
		jsonPresets[i] = JSONPreset{
			Name:    p.Name,
			Module:  p.Module,
			Options: p.Options,
		}
	}

	preflights := cfg.Preflights()
	jsonPreflights := make([]JSONPreflight, len(preflights))
	for i, p := range preflights {
		jsonPreflights[i] = JSONPreflight{
			Name:   p.Name,
			Source: p.Source,
			CSS:    p.GetCSS(),
		}
	}

	scan := cfg.Scan()
	return JSONOutput{
		Version:    "1.0",
		Presets:    jsonPresets,
		Preflights: jsonPreflights,
		CLI: JSONCLI{
			Entry: JSONEntry{
				Patterns: scan.Patterns,
				OutFile:  scan.OutFile,
			},
		},
	}
}
