// Package paths resolves toodle's default filesystem locations.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDataFile returns the default task file location.
func DefaultDataFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".local", "share", "toodle", "tasks.jsonl"), nil
}

// GlobalConfigFile returns the global configuration file location.
func GlobalConfigFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "toodle", "config.toml"), nil
}
