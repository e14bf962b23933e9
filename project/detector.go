// Package project locates the project root a relative document path is meant
// to be resolved against, so the normalizer can run from anywhere inside the
// repository rather than only from its top-level folder.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Detector identifies project root folders by marker files
type Detector struct {
	markers []string
}

// New creates a detector with the common JavaScript project markers
func New() *Detector {
	return &Detector{
		markers: []string{
			"package.json", // JavaScript/Node projects
			".git",         // generic VCS marker
		},
	}
}

// Resolve returns the location the document at target should be read from.
// Absolute paths and URLs with an explicit scheme are returned unchanged;
// relative paths are resolved against the nearest ancestor of baseDir that
// carries a project marker, falling back to baseDir itself.
func (d *Detector) Resolve(baseDir, target string) (string, error) {
	if strings.Contains(target, "://") || filepath.IsAbs(target) {
		return target, nil
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %v: %w", baseDir, err)
	}
	root := d.findRoot(absBase)
	if root == "" {
		root = absBase
	}
	return filepath.Join(root, filepath.FromSlash(target)), nil
}

// findRoot searches up the directory tree for a project marker
func (d *Detector) findRoot(dir string) string {
	current := dir
	for {
		for _, marker := range d.markers {
			if _, err := os.Stat(filepath.Join(current, marker)); err == nil {
				return current
			}
		}
		parent := filepath.Dir(current)
		if parent == current {
			return ""
		}
		current = parent
	}
}
