package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultInclude matches markdown documents.
var DefaultInclude = []string{"**/*.md"}

// DefaultExcludes are directory names skipped during discovery.
var DefaultExcludes = []string{
	".git",
	"node_modules",
	".docview",
	"dist",
	"build",
	".idea",
	".vscode",
	".DS_Store",
}

// Discover scans docsDir and proposes one section per top-level directory
// that contains files matching the include patterns. Root-level files are
// left out; they are home-document candidates, not section members.
//
// Discovery seeds a registry for the init wizard: file lists come out in a
// stable sorted order, which the user is expected to reorder by hand. An
// explicit file list in the configuration is never resorted.
func Discover(docsDir string, include []string) ([]Section, error) {
	if len(include) == 0 {
		include = DefaultInclude
	}

	perDir := make(map[string][]string)
	var dirOrder []string

	err := filepath.Walk(docsDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if shouldExcludeDir(info.Name()) && path != docsDir {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(docsDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !matchesAny(rel, include) {
			return nil
		}
		top, rest, found := strings.Cut(rel, "/")
		if !found {
			return nil // root-level file
		}
		if _, seen := perDir[top]; !seen {
			dirOrder = append(dirOrder, top)
		}
		perDir[top] = append(perDir[top], rest)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", docsDir, err)
	}

	sort.Strings(dirOrder)
	sections := make([]Section, 0, len(dirOrder))
	for _, dir := range dirOrder {
		files := perDir[dir]
		sort.Strings(files)
		sections = append(sections, Section{
			ID:    SlugID(dir),
			Title: formatTitle(dir),
			Root:  dir,
			Files: files,
		})
	}
	return sections, nil
}

// VerifyFiles checks that every file listed by every section exists under
// docsDir. It returns one error per missing file.
func VerifyFiles(docsDir string, r *Registry) []error {
	var errs []error
	for _, s := range r.Sections() {
		for _, f := range s.Files {
			p := filepath.Join(docsDir, filepath.FromSlash(s.Root), filepath.FromSlash(f))
			if _, err := os.Stat(p); err != nil {
				errs = append(errs, fmt.Errorf("section %s: file %q: %w", s.ID, f, err))
			}
		}
	}
	return errs
}

// shouldExcludeDir checks a directory name against the default exclusions.
func shouldExcludeDir(name string) bool {
	for _, excl := range DefaultExcludes {
		if strings.EqualFold(name, excl) {
			return true
		}
	}
	return false
}

// matchesAny checks if relPath matches any of the given glob patterns.
// Doublestar is used for ** support; patterns are also tried against the
// bare filename.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.PathMatch(pattern, normalized); err == nil && matched {
			return true
		}
		base := filepath.Base(normalized)
		if matched, err := doublestar.PathMatch(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}

// formatTitle converts a directory name like "browser-apis" or "01_dom"
// into a display title.
func formatTitle(name string) string {
	words := strings.FieldsFunc(name, func(c rune) bool {
		return c == '-' || c == '_' || c == ' '
	})
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
