package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/unoconf"
)

const resetCSS = "html { line-height: 1.5; }\nbody { margin: 0; }\n"

// newProject writes files under a temp root and builds the config for it.
func newProject(t *testing.T, files map[string]string, modify func(*unoconf.Options)) (*unoconf.Config, string) {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	opts := unoconf.DefaultOptions()
	opts.Root = root
	if modify != nil {
		modify(&opts)
	}
	cfg, err := unoconf.Build(opts)
	require.NoError(t, err)
	return cfg, root
}

func TestPrintConfig(t *testing.T) {
	cfg, _ := newProject(t, map[string]string{
		unoconf.DefaultResetPath: resetCSS,
	}, func(o *unoconf.Options) {
		o.Attributify.Prefix = "x-"
	})

	var buf bytes.Buffer
	NewReporter(&buf, false).PrintConfig(cfg)
	out := buf.String()

	assert.Contains(t, out, "1. wind3 (@unocss/preset-wind3)\n")
	assert.Contains(t, out, `2. attributify (@unocss/preset-attributify) {"prefix":"x-"}`)
	assert.Contains(t, out, "• reset: ")
	assert.Contains(t, out, fmt.Sprintf("(%d bytes)", len(resetCSS)))
	assert.Contains(t, out, "Pattern: templates/**/*.templ\n")
	assert.Contains(t, out, "Output:  global.css\n")
}

func TestPrintScan(t *testing.T) {
	result := &unoconf.ScanResult{
		Files: []string{"templates/a.templ", "templates/b.templ"},
		Stats: unoconf.ScanStats{FilesDiscovered: 3, FilesMatched: 2, FilesSkipped: 1},
	}

	var buf bytes.Buffer
	NewReporter(&buf, false).PrintScan(result)

	want := "templates/a.templ\ntemplates/b.templ\n\n2 files matched (1 file skipped: generated or gitignored)\n"
	assert.Equal(t, want, buf.String())
}

func TestRunChecks(t *testing.T) {
	t.Run("healthy project", func(t *testing.T) {
		cfg, root := newProject(t, map[string]string{
			unoconf.DefaultResetPath: resetCSS,
			"templates/index.templ":  "<div p-4></div>",
		}, nil)

		checks := RunChecks(cfg, root)
		require.Len(t, checks, 3)
		assert.False(t, Failed(checks))
		assert.Equal(t, "preflight reset", checks[0].Name)
		assert.Equal(t, "2 rulesets, 2 declarations", checks[0].Detail)
		assert.Equal(t, "1 template matched", checks[1].Detail)
	})

	t.Run("no templates", func(t *testing.T) {
		cfg, root := newProject(t, map[string]string{
			unoconf.DefaultResetPath: resetCSS,
		}, nil)

		checks := RunChecks(cfg, root)
		assert.True(t, Failed(checks))
		assert.False(t, checks[1].OK)
		assert.Contains(t, checks[1].Detail, "no templates match templates/**/*.templ")
	})

	t.Run("empty reset", func(t *testing.T) {
		cfg, root := newProject(t, map[string]string{
			unoconf.DefaultResetPath: "  \n",
			"templates/index.templ":  "<div></div>",
		}, nil)

		checks := RunChecks(cfg, root)
		assert.True(t, Failed(checks))
		assert.False(t, checks[0].OK)
	})

	t.Run("missing output directory", func(t *testing.T) {
		cfg, root := newProject(t, map[string]string{
			unoconf.DefaultResetPath: resetCSS,
			"templates/index.templ":  "<div></div>",
		}, func(o *unoconf.Options) {
			o.OutFile = "static/css/global.css"
		})

		checks := RunChecks(cfg, root)
		assert.True(t, Failed(checks))
		assert.False(t, checks[2].OK)
	})
}

func TestPrintChecks(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, false).PrintChecks([]CheckResult{
		{Name: "scan", OK: true, Detail: "1 template matched"},
		{Name: "output", Detail: "static is not a directory"},
	})

	want := "✓ scan: 1 template matched\n✗ output: static is not a directory\n\n1 check failed\n"
	assert.Equal(t, want, buf.String())
}
