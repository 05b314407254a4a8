// Package filex contains small filesystem helpers for locating local data.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir (relative paths resolve against the working
// directory) with owner/group access and returns its absolute path.
func EnsureDir(dir string) (string, error) {
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// DataFile ensures dir exists and returns the path of name inside it.
func DataFile(dir, name string) (string, error) {
	d, err := EnsureDir(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(d, name), nil
}
