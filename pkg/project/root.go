// Package project locates the project that owns a vendor tree.
package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindRoot walks up from start looking for a directory that contains the
// vendor directory named vendorDir. A go.mod without a vendor tree does not
// count; the walk continues past it.
func FindRoot(start, vendorDir string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		info, err := os.Stat(filepath.Join(dir, vendorDir))
		if err == nil && info.IsDir() {
			return dir, nil
		}

		// Move up one directory
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("could not find a %s directory above %s", vendorDir, start)
}
