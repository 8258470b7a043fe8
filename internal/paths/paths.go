// Package paths resolves project and user-level locations from explicit
// inputs so callers never consult the process environment directly.
package paths

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrNoHome is returned when a user-level location is requested without a
// home directory.
var ErrNoHome = errors.New("home directory unknown")

// Resolver turns relative paths into absolute ones against WorkDir and
// locates user configuration under Home.
type Resolver struct {
	WorkDir string
	Home    string
}

// Resolve returns path unchanged when absolute, otherwise joined onto WorkDir.
func (r Resolver) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(r.WorkDir, path)
}

// ConfigDir returns <Home>/.config/devtool.
func (r Resolver) ConfigDir() (string, error) {
	if r.Home == "" {
		return "", ErrNoHome
	}
	return filepath.Join(r.Home, ".config", "devtool"), nil
}

// RelativeTo returns path relative to base, or path itself when it does not
// live under base.
func RelativeTo(path, base string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
