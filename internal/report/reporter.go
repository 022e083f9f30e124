// Package report renders unoconf configs, scan results and checks for the
// terminal.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/yacobolo/unoconf"
)

// Reporter formats config summaries and check results
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a new reporter
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{
		w:         w,
		useColors: useColors,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintConfig outputs the assembled config
func (r *Reporter) PrintConfig(cfg *unoconf.Config) {
	r.header("Presets")
	for i, p := range cfg.Presets() {
		fmt.Fprintf(r.w, "%d. %s %s", i+1, p.Name, r.render(mutedStyle, "("+p.Module+")"))
		if len(p.Options) > 0 {
			// map keys are sorted by encoding/json
			opts, _ := json.Marshal(p.Options)
			fmt.Fprintf(r.w, " %s", opts)
		}
		fmt.Fprintln(r.w)
	}

	r.header("Preflights")
	for _, p := range cfg.Preflights() {
		fmt.Fprintf(r.w, "• %s: %s (%s)\n",
			p.Name,
			r.render(pathStyle, p.Source),
			pluralizeCount(len(p.GetCSS()), "byte", "bytes"))
	}

	scan := cfg.Scan()
	r.header("Scan")
	for _, pattern := range scan.Patterns {
		fmt.Fprintf(r.w, "Pattern: %s\n", pattern)
	}
	fmt.Fprintf(r.w, "Output:  %s\n", r.render(pathStyle, scan.OutFile))
}

// PrintScan lists the files a scan resolved to
func (r *Reporter) PrintScan(result *unoconf.ScanResult) {
	for _, file := range result.Files {
		fmt.Fprintln(r.w, file)
	}

	fmt.Fprintln(r.w, "")
	summary := fmt.Sprintf("%s matched", pluralizeCount(result.Stats.FilesMatched, "file", "files"))
	if result.Stats.FilesSkipped > 0 {
		summary += r.render(warnStyle,
			fmt.Sprintf(" (%s skipped: generated or gitignored)", pluralizeCount(result.Stats.FilesSkipped, "file", "files")))
	}
	fmt.Fprintln(r.w, summary)
}

// PrintChecks outputs check results and a one-line verdict
func (r *Reporter) PrintChecks(checks []CheckResult) {
	failed := 0
	for _, c := range checks {
		mark := r.render(passStyle, "✓")
		if !c.OK {
			mark = r.render(failStyle, "✗")
			failed++
		}
		fmt.Fprintf(r.w, "%s %s: %s\n", mark, c.Name, c.Detail)
	}

	fmt.Fprintln(r.w, "")
	if failed > 0 {
		fmt.Fprintln(r.w, r.render(failStyle,
			fmt.Sprintf("%s failed", pluralizeCount(failed, "check", "checks"))))
		return
	}
	fmt.Fprintln(r.w, r.render(passStyle, "All checks passed"))
}

func (r *Reporter) header(title string) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, r.render(headingStyle, title))
	fmt.Fprintln(r.w, "----------")
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
