// Package security validates user-supplied file paths before they are read or replaced.
package security

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrIsDirectory is returned when a data file path names a directory.
var ErrIsDirectory = errors.New("path is a directory")

// forbiddenChars never appear in a legitimate data file path.
var forbiddenChars = []string{"\x00", "\n", "\r"}

// ResolveDataFile cleans a data file path, makes it absolute and follows
// symlinks of an existing file. The store replaces its file by rename, so
// resolving first keeps a symlinked task list pointing at the real file.
// The file itself does not need to exist.
func ResolveDataFile(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("file path cannot be empty")
	}

	for _, char := range forbiddenChars {
		if strings.Contains(path, char) {
			return "", fmt.Errorf("file path contains forbidden character %q", char)
		}
	}

	cleanPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("failed to resolve file path: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cleanPath, nil
		}
		return "", fmt.Errorf("failed to resolve file path: %w", err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("failed to stat file path: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	return resolved, nil
}
