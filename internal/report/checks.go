package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yacobolo/unoconf"
)

// CheckResult is the outcome of one sanity check on a config
type CheckResult struct {
	Name   string
	OK     bool
	Detail string
}

// RunChecks verifies that the generator can use cfg from root: every
// preflight parses as CSS, the scan patterns match at least one template, and
// the output file's directory exists.
func RunChecks(cfg *unoconf.Config, root string) []CheckResult {
	var checks []CheckResult

	for _, p := range cfg.Preflights() {
		checks = append(checks, checkPreflight(p))
	}

	scan := cfg.Scan()
	checks = append(checks, checkScan(scan, root), checkOutput(scan.OutFile, root))
	return checks
}

// Failed reports whether any check failed
func Failed(checks []CheckResult) bool {
	for _, c := range checks {
		if !c.OK {
			return true
		}
	}
	return false
}

func checkPreflight(p unoconf.Preflight) CheckResult {
	name := "preflight " + p.Name
	css := p.GetCSS()
	if strings.TrimSpace(css) == "" {
		return CheckResult{Name: name, Detail: p.Source + " is empty"}
	}

	stats, err := unoconf.InspectStylesheet(css)
	if err != nil {
		return CheckResult{Name: name, Detail: err.Error()}
	}

	return CheckResult{
		Name: name,
		OK:   true,
		Detail: fmt.Sprintf("%s, %s",
			pluralizeCount(stats.Rulesets, "ruleset", "rulesets"),
			pluralizeCount(stats.Declarations, "declaration", "declarations")),
	}
}

func checkScan(scan unoconf.ScanSpec, root string) CheckResult {
	result, err := scan.Resolve(root)
	if err != nil {
		return CheckResult{Name: "scan", Detail: err.Error()}
	}
	if len(result.Files) == 0 {
		return CheckResult{
			Name:   "scan",
			Detail: fmt.Sprintf("no templates match %s", strings.Join(scan.Patterns, ", ")),
		}
	}
	return CheckResult{
		Name:   "scan",
		OK:     true,
		Detail: pluralizeCount(len(result.Files), "template", "templates") + " matched",
	}
}

func checkOutput(outFile, root string) CheckResult {
	path := outFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return CheckResult{Name: "output", Detail: fmt.Sprintf("directory %s: %v", dir, err)}
	}
	if !info.IsDir() {
		return CheckResult{Name: "output", Detail: dir + " is not a directory"}
	}
	return CheckResult{Name: "output", OK: true, Detail: path}
}
