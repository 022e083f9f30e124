package unoconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresetWind3(t *testing.T) {
	tests := []struct {
		name        string
		opts        Wind3Options
		wantOptions map[string]any
	}{
		{name: "zero value", opts: Wind3Options{}},
		{name: "class dark mode is the default", opts: Wind3Options{Dark: DarkClass}},
		{
			name:        "media dark mode",
			opts:        Wind3Options{Dark: DarkMedia},
			wantOptions: map[string]any{"dark": "media"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PresetWind3(tt.opts)
			assert.Equal(t, "wind3", p.Name)
			assert.Equal(t, "@unocss/preset-wind3", p.Module)
			assert.Equal(t, "presetWind3", p.Factory)
			assert.Equal(t, tt.wantOptions, p.Options)
		})
	}
}

func TestPresetAttributify(t *testing.T) {
	tests := []struct {
		name        string
		opts        AttributifyOptions
		wantOptions map[string]any
	}{
		{name: "zero value", opts: AttributifyOptions{}},
		{name: "default prefix", opts: AttributifyOptions{Prefix: "un-"}},
		{
			name:        "custom prefix",
			opts:        AttributifyOptions{Prefix: "uno-"},
			wantOptions: map[string]any{"prefix": "uno-"},
		},
		{
			name: "all options",
			opts: AttributifyOptions{Prefix: "x-", PrefixedOnly: true, Strict: true},
			wantOptions: map[string]any{
				"prefix":       "x-",
				"prefixedOnly": true,
				"strict":       true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PresetAttributify(tt.opts)
			assert.Equal(t, "attributify", p.Name)
			assert.Equal(t, "@unocss/preset-attributify", p.Module)
			assert.Equal(t, "presetAttributify", p.Factory)
			assert.Equal(t, tt.wantOptions, p.Options)
		})
	}
}

func TestWind3OptionsValidate(t *testing.T) {
	assert.NoError(t, Wind3Options{}.validate())
	assert.NoError(t, Wind3Options{Dark: DarkClass}.validate())
	assert.NoError(t, Wind3Options{Dark: DarkMedia}.validate())
	assert.ErrorIs(t, Wind3Options{Dark: "system"}.validate(), ErrInvalidOptions)
}
