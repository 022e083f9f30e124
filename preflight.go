package unoconf

import (
	"fmt"
	"os"
)

// PreflightReset names the preflight that carries the reset stylesheet.
const PreflightReset = "reset"

// Preflight is a block of raw CSS injected before the generated utilities.
type Preflight struct {
	Name   string // "reset"
	Source string // File the CSS was read from
	css    string
}

// GetCSS returns the stylesheet text exactly as it was read.
func (p Preflight) GetCSS() string {
	return p.css
}

// LoadPreflight reads path into a preflight. The content is kept verbatim;
// no parsing or normalisation happens here.
func LoadPreflight(name, path string) (Preflight, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return Preflight{}, fmt.Errorf("read %s preflight: %w", name, err)
	}

	return Preflight{
		Name:   name,
		Source: path,
		css:    string(content),
	}, nil
}
