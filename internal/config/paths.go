package config

import (
	"os"
	"path/filepath"
)

const (
	// DirName is the per-project configuration directory
	DirName = ".workshop"
	// maxSearchDepth bounds the upward search for DirName
	maxSearchDepth = 5
)

// GlobalDir returns the user-level directory (~/.workshop)
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DirName)
}

// FindRoot walks up from startDir looking for a .workshop directory and
// returns the directory containing it, or "" if none is found.
func FindRoot(startDir string) string {
	dir := startDir
	for depth := 0; depth <= maxSearchDepth; depth++ {
		if info, err := os.Stat(filepath.Join(dir, DirName)); err == nil && info.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// ResolveRoot returns the project root for cwd, falling back to cwd itself
func ResolveRoot(cwd string) string {
	if root := FindRoot(cwd); root != "" {
		return root
	}
	return cwd
}

// DefaultDBPath returns <root>/.workshop/ideas.db
func DefaultDBPath(root string) string {
	return filepath.Join(root, DirName, "ideas.db")
}

// Path returns the config file path for a project
func Path(root string) string {
	return filepath.Join(root, DirName, "config.yaml")
}
