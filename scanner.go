package unoconf

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks pattern resolution statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesMatched    int // Files the generator will inspect (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// ScanResult lists the templates a ScanSpec currently matches.
// Files are slash-separated, relative to the resolution root, and sorted.
type ScanResult struct {
	Root  string
	Files []string
	Stats ScanStats
}

// isTemplGenerated checks if a file is a templ-generated Go file
// Handles both _templ.go and .templ.go suffix variations
func isTemplGenerated(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go")
}

// loadGitIgnore compiles root/.gitignore.
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// shouldSkipFile determines if a matched file should be left out.
//
// Two-layer filtering:
// 1. Pattern check (fast): Skip *_templ.go files
// 2. Gitignore check: Skip files ignored by the root .gitignore
func shouldSkipFile(path string, gi *ignore.GitIgnore) bool {
	if isTemplGenerated(path) {
		return true
	}
	return gi != nil && gi.MatchesPath(path)
}

// Resolve expands the scan patterns under root. It only lists what the
// patterns match; reading templates is the generator's job.
//
// Absolute patterns and patterns that climb out of root with "../" are
// globbed from their own base directory. Their matches are still reported
// relative to root.
func (s ScanSpec) Resolve(root string) (*ScanResult, error) {
	if root == "" {
		root = "."
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root %s is not a directory", root)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("scan root: %w", err)
	}

	gi := loadGitIgnore(root)
	result := &ScanResult{Root: root}
	seen := make(map[string]bool)

	for _, pattern := range s.Patterns {
		base, rel := splitScanPattern(absRoot, pattern)

		matches, err := doublestar.Glob(os.DirFS(base), rel)
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			full := filepath.Join(base, filepath.FromSlash(match))
			relPath, err := filepath.Rel(absRoot, full)
			if err != nil {
				continue
			}
			file := filepath.ToSlash(relPath)
			if seen[file] {
				continue
			}
			seen[file] = true

			info, err := os.Stat(full)
			if err != nil || info.IsDir() {
				continue
			}
			result.Stats.FilesDiscovered++

			if skipMatch(file, gi) {
				result.Stats.FilesSkipped++
				continue
			}
			result.Files = append(result.Files, file)
			result.Stats.FilesMatched++
		}
	}

	sort.Strings(result.Files)
	return result, nil
}

// splitScanPattern returns the directory to glob from and the pattern
// relative to it. Patterns inside root glob from root itself.
func splitScanPattern(absRoot, pattern string) (string, string) {
	pattern = filepath.ToSlash(pattern)

	if !isOutsidePattern(pattern) {
		// fs.FS paths never start with "./"
		return absRoot, strings.TrimPrefix(pattern, "./")
	}

	dir, rest := doublestar.SplitPattern(pattern)
	base := filepath.FromSlash(dir)
	if !filepath.IsAbs(base) {
		base = filepath.Join(absRoot, base)
	}
	return filepath.Clean(base), rest
}

func isOutsidePattern(pattern string) bool {
	return path.IsAbs(pattern) ||
		filepath.IsAbs(filepath.FromSlash(pattern)) ||
		pattern == ".." ||
		strings.HasPrefix(pattern, "../")
}

// skipMatch applies shouldSkipFile. The root .gitignore only governs files
// under root.
func skipMatch(file string, gi *ignore.GitIgnore) bool {
	if file == ".." || strings.HasPrefix(file, "../") {
		return isTemplGenerated(file)
	}
	return shouldSkipFile(file, gi)
}
