package unoconf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"
)

// WriteUnoConfig renders cfg as a uno.config.ts module. Preflight CSS is
// embedded as string literals so the generated module has no file reads
// of its own.
func WriteUnoConfig(w io.Writer, cfg *Config) error {
	var buf bytes.Buffer
	presets := cfg.Presets()
	preflights := cfg.Preflights()
	scan := cfg.Scan()

	buf.WriteString("// Code generated by unoconf. DO NOT EDIT.\n\n")

	// Imports (sorted, defineConfig included)
	names := []string{"defineConfig"}
	for _, p := range presets {
		names = append(names, p.Factory)
	}
	sort.Strings(names)
	fmt.Fprintf(&buf, "import { %s } from 'unocss'\n\n", strings.Join(names, ", "))

	// One constant per preflight
	idents := make([]string, len(preflights))
	for i, p := range preflights {
		idents[i] = preflightIdent(p.Name, i)
		lit, err := jsLiteral(p.GetCSS())
		if err != nil {
			return fmt.Errorf("encode preflight %s: %w", p.Name, err)
		}
		fmt.Fprintf(&buf, "const %s = %s\n\n", idents[i], lit)
	}

	buf.WriteString("export default defineConfig({\n")

	buf.WriteString("  presets: [\n")
	for _, p := range presets {
		args := ""
		if len(p.Options) > 0 {
			lit, err := jsLiteral(p.Options)
			if err != nil {
				return fmt.Errorf("encode %s options: %w", p.Name, err)
			}
			args = lit
		}
		fmt.Fprintf(&buf, "    %s(%s),\n", p.Factory, args)
	}
	buf.WriteString("  ],\n")

	buf.WriteString("  preflights: [\n")
	for _, ident := range idents {
		buf.WriteString("    {\n")
		fmt.Fprintf(&buf, "      getCSS: () => %s,\n", ident)
		buf.WriteString("    },\n")
	}
	buf.WriteString("  ],\n")

	patterns, err := jsLiteral(scan.Patterns)
	if err != nil {
		return fmt.Errorf("encode patterns: %w", err)
	}
	outFile, err := jsLiteral(scan.OutFile)
	if err != nil {
		return fmt.Errorf("encode output file: %w", err)
	}
	buf.WriteString("  cli: {\n")
	buf.WriteString("    entry: {\n")
	fmt.Fprintf(&buf, "      patterns: %s,\n", patterns)
	fmt.Fprintf(&buf, "      outFile: %s,\n", outFile)
	buf.WriteString("    },\n")
	buf.WriteString("  },\n")
	buf.WriteString("})\n")

	_, err = w.Write(buf.Bytes())
	return err
}

// jsLiteral encodes v as a JSON value, which is also a valid JS literal.
// json.Marshal escapes U+2028/U+2029, so strings stay legal in JS source.
func jsLiteral(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// preflightIdent derives a JS identifier from a preflight name:
// "reset" → "resetCSS", "base-theme" → "baseThemeCSS".
func preflightIdent(name string, index int) string {
	var b strings.Builder
	upper := false
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = b.Len() > 0
			continue
		}
		if b.Len() == 0 && unicode.IsDigit(r) {
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return fmt.Sprintf("preflight%dCSS", index)
	}
	return b.String() + "CSS"
}
