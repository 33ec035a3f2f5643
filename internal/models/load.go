package models

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSession reads a captured session from a .json, .yaml or .yml file.
// Files with any other extension are decoded as JSON.
func LoadSession(path string) (*Session, error) {
	var s Session
	if err := decodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", path, err)
	}
	return &s, nil
}

// LoadFeatures reads a previously extracted feature vector, typically an
// enrolled reference profile exported by `clickprint extract --out`.
func LoadFeatures(path string) (*BiometricFeatures, error) {
	var f BiometricFeatures
	if err := decodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("failed to load features %s: %w", path, err)
	}
	return &f, nil
}

func decodeFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
	}
	return nil
}
