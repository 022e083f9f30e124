package unoconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectStylesheet(t *testing.T) {
	tests := []struct {
		name string
		css  string
		want StylesheetStats
	}{
		{
			name: "empty",
			css:  "",
			want: StylesheetStats{},
		},
		{
			name: "rulesets and declarations",
			css: `html { line-height: 1.5; tab-size: 4; }
body { margin: 0; }`,
			want: StylesheetStats{Rulesets: 2, Declarations: 3},
		},
		{
			name: "custom property",
			css:  `:root { --un-default-border-color: #e5e7eb; }`,
			want: StylesheetStats{Rulesets: 1, Declarations: 1},
		},
		{
			name: "statement at-rule",
			css:  `@import url("fonts.css");`,
			want: StylesheetStats{AtRules: 1},
		},
		{
			name: "rulesets nested in at-rule are counted",
			css:  `@media screen{a{b:c}} d{e:f}`,
			want: StylesheetStats{Rulesets: 2, AtRules: 1, Declarations: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InspectStylesheet(tt.css)
			require.NoError(t, err)

			tt.want.Bytes = len(tt.css)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInspectStylesheetReset(t *testing.T) {
	stats, err := InspectStylesheet(resetCSS)
	require.NoError(t, err)

	assert.Equal(t, len(resetCSS), stats.Bytes)
	assert.Equal(t, 3, stats.Rulesets)
	assert.Zero(t, stats.AtRules)
	assert.Equal(t, 9, stats.Declarations)
}
