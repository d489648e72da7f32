// Package project provides project discovery and loading functionality.
package project

import (
	"errors"
	"os"
	"path/filepath"
)

// ConfigFileName is the name of the configuration file that marks a project root.
const ConfigFileName = ".run-tests.yaml"

// ErrNoProjectRoot is returned when no .run-tests.yaml is found.
var ErrNoProjectRoot = errors.New(".run-tests.yaml not found in the current directory or any parent")

// FindRootFrom walks up from the given directory until it finds .run-tests.yaml.
func FindRootFrom(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", ErrNoProjectRoot
		}
		dir = parent
	}
}
