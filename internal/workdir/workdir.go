// Package workdir locates the per-user data directory of postgen.
package workdir

import (
	"fmt"
	"os"
	"path/filepath"
)

// Root returns the base directory for postgen data files.
// The path is expanded at runtime to resolve to:
//
//	$HOME/.local/share/postgen
func Root() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "postgen"), nil
}

// FilePath returns the full path for a file in the data directory.
func FilePath(filename string) (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, filename), nil
}

// Prep ensures that the data directory exists.
func Prep() error {
	root, err := Root()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(root, 0o700); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", root, err)
	}

	return nil
}
