// Package subject locates the emulator binary the harness drives.
package subject

import (
	"fmt"
	"os"
	"path/filepath"
)

// candidatePaths are the conventional build output locations for the
// emulator, relative to the project root.
var candidatePaths = []string{
	filepath.Join("build", "bin", "veloce"),
	filepath.Join("build", "veloce"),
}

// Locate probes the conventional build locations under projectRoot for the
// emulator binary.
func Locate(projectRoot string) (string, error) {
	for _, rel := range candidatePaths {
		path := filepath.Join(projectRoot, rel)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf(
		"cannot find veloce binary under %s; build the project first:\n  cmake -B build && cmake --build build",
		projectRoot)
}

// Resolve returns the subject-program path to use: an explicitly given path
// (which must exist) wins over build-directory discovery.
func Resolve(explicit, projectRoot string) (string, error) {
	if explicit != "" {
		info, err := os.Stat(explicit)
		if err != nil {
			return "", fmt.Errorf("emulator binary %s: %w", explicit, err)
		}
		if info.IsDir() {
			return "", fmt.Errorf("emulator binary %s is a directory", explicit)
		}
		return explicit, nil
	}
	return Locate(projectRoot)
}
