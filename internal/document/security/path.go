package security

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrOutsideDirectory is returned for paths that escape the configured directory
var ErrOutsideDirectory = errors.New("path is outside configured directory")

// PathValidator confines file access to a configured directory tree
type PathValidator struct {
	configuredDirectory string
}

// NewPathValidator creates a new path validator rooted at the given directory.
// The directory does not need to exist yet.
func NewPathValidator(configuredDirectory string) (*PathValidator, error) {
	if configuredDirectory == "" {
		return nil, fmt.Errorf("configured directory cannot be empty")
	}

	absDir, err := filepath.Abs(configuredDirectory)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve configured directory: %w", err)
	}

	return &PathValidator{
		configuredDirectory: absDir,
	}, nil
}

// GetConfiguredDirectory returns the absolute configured directory
func (v *PathValidator) GetConfiguredDirectory() string {
	return v.configuredDirectory
}

// ResolvePath returns the absolute form of path. Relative paths are taken
// relative to the configured directory. The result must lie inside it.
func (v *PathValidator) ResolvePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path cannot be empty")
	}
	if strings.ContainsRune(path, 0) {
		return "", fmt.Errorf("path contains a null byte")
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(v.configuredDirectory, path)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	if !v.IsPathWithinDirectory(absPath) {
		return "", fmt.Errorf("%w: %s", ErrOutsideDirectory, path)
	}
	return absPath, nil
}

// ValidateDirectory checks that dirPath lies inside the configured directory
// and, when it exists, is a directory
func (v *PathValidator) ValidateDirectory(dirPath string) error {
	resolved, err := v.ResolvePath(dirPath)
	if err != nil {
		return err
	}

	info, err := os.Stat(resolved)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot access directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", dirPath)
	}
	return nil
}

// IsPathWithinDirectory reports whether an absolute path, after symlink
// resolution, is the configured directory or lies beneath it
func (v *PathValidator) IsPathWithinDirectory(absPath string) bool {
	realDir := resolveExisting(filepath.Clean(v.configuredDirectory))
	realPath := resolveExisting(filepath.Clean(absPath))

	rel, err := filepath.Rel(realDir, realPath)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// resolveExisting evaluates symlinks along the longest existing prefix of
// path and appends the remaining, not yet existing, components
func resolveExisting(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}

	parent := filepath.Dir(path)
	if parent == path {
		return path
	}
	return filepath.Join(resolveExisting(parent), filepath.Base(path))
}
