package watcher

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/cargokit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Filter decides which changed paths below a root are relevant for a build.
type Filter struct {
	root     string
	patterns []string
}

// NewFilter creates a filter that ignores paths matching any of patterns.
// Patterns are doublestar globs relative to root using forward slashes.
func NewFilter(root string, patterns []string) (*Filter, error) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, zerr.With(domain.ErrInvalidIgnorePattern, "pattern", p)
		}
	}
	return &Filter{root: filepath.Clean(root), patterns: patterns}, nil
}

// Ignored reports whether path must not trigger a build.
// Paths outside root are always ignored.
func (f *Filter) Ignored(path string) bool {
	rel, err := filepath.Rel(f.root, filepath.Clean(path))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return true
	}
	if rel == "." {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, p := range f.patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

// Relevant returns the paths that are not ignored, preserving order.
func (f *Filter) Relevant(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !f.Ignored(p) {
			out = append(out, p)
		}
	}
	return out
}
