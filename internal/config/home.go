package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirName is the per-project state directory holding config.yaml and logs.
const DirName = ".clickprint"

// GetHome returns the clickprint home directory
// Priority order:
//  1. CLICKPRINT_HOME environment variable (if set)
//  2. .clickprint under the current working directory
//
// The directory is created if it doesn't exist
func GetHome() (string, error) {
	if home := os.Getenv("CLICKPRINT_HOME"); home != "" {
		if err := os.MkdirAll(home, 0755); err != nil {
			return "", fmt.Errorf("create clickprint home directory: %w", err)
		}
		return home, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	home := filepath.Join(cwd, DirName)
	if err := os.MkdirAll(home, 0755); err != nil {
		return "", fmt.Errorf("create clickprint home directory: %w", err)
	}

	return home, nil
}

// GetConfigPath returns $CLICKPRINT_HOME/config.yaml
func GetConfigPath() (string, error) {
	home, err := GetHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "config.yaml"), nil
}

// GetLogDir returns the log directory path, creating it if needed
func GetLogDir() (string, error) {
	home, err := GetHome()
	if err != nil {
		return "", err
	}

	logDir := filepath.Join(home, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", fmt.Errorf("create log directory: %w", err)
	}

	return logDir, nil
}
