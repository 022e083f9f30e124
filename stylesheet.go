package unoconf

import (
	"errors"
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// StylesheetStats summarises a stylesheet's structure
type StylesheetStats struct {
	Bytes        int
	Rulesets     int // "html { ... }"
	AtRules      int // "@media ...", "@import ...;"
	Declarations int // "line-height: 1.5" and custom properties
}

// InspectStylesheet parses content and counts its rulesets, at-rules and
// declarations, including those nested inside at-rule blocks. It is read-only:
// preflight text is never rewritten.
func InspectStylesheet(content string) (StylesheetStats, error) {
	stats := StylesheetStats{Bytes: len(content)}
	parser := css.NewParser(parse.NewInputString(content), false)

	for {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			// EOF is the normal exit
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				return stats, fmt.Errorf("parse stylesheet: %w", err)
			}
			return stats, nil
		case css.BeginRulesetGrammar:
			stats.Rulesets++
		case css.AtRuleGrammar, css.BeginAtRuleGrammar:
			stats.AtRules++
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			stats.Declarations++
		}
	}
}
