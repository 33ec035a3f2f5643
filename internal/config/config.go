package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harrison/clickprint/internal/logger"
)

// ExplainerConfig configures the local LLM narrative backend
type ExplainerConfig struct {
	// Enabled turns the LLM backend on; the template explainer is always available
	Enabled bool `yaml:"enabled"`

	// BaseURL is the Ollama endpoint, e.g. http://localhost:11434
	BaseURL string `yaml:"base_url"`

	// Model is the Ollama model name
	Model string `yaml:"model"`

	// Timeout bounds a single generation request
	Timeout time.Duration `yaml:"timeout"`

	// HealthTimeout bounds the availability probe
	HealthTimeout time.Duration `yaml:"health_timeout"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	// Address is the listen address for `clickprint serve`
	Address string `yaml:"address"`
}

// Config represents clickprint configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Explainer contains narrative backend configuration
	Explainer ExplainerConfig `yaml:"explainer"`

	// Server contains HTTP API configuration
	Server ServerConfig `yaml:"server"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Explainer: ExplainerConfig{
			Enabled:       false,
			BaseURL:       "http://localhost:11434",
			Model:         "llama3.2",
			Timeout:       30 * time.Second,
			HealthTimeout: 2 * time.Second,
		},
		Server: ServerConfig{
			Address: ":8080",
		},
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Durations are strings in YAML; parse them separately
	type yamlExplainer struct {
		Enabled       *bool  `yaml:"enabled"`
		BaseURL       string `yaml:"base_url"`
		Model         string `yaml:"model"`
		Timeout       string `yaml:"timeout"`
		HealthTimeout string `yaml:"health_timeout"`
	}
	type yamlConfig struct {
		LogLevel  string        `yaml:"log_level"`
		Explainer yamlExplainer `yaml:"explainer"`
		Server    ServerConfig  `yaml:"server"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}

	ex := yamlCfg.Explainer
	// enabled is explicitly set if present in YAML
	if ex.Enabled != nil {
		cfg.Explainer.Enabled = *ex.Enabled
	}
	if ex.BaseURL != "" {
		cfg.Explainer.BaseURL = ex.BaseURL
	}
	if ex.Model != "" {
		cfg.Explainer.Model = ex.Model
	}
	if ex.Timeout != "" {
		d, err := time.ParseDuration(ex.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid explainer.timeout format %q: %w", ex.Timeout, err)
		}
		cfg.Explainer.Timeout = d
	}
	if ex.HealthTimeout != "" {
		d, err := time.ParseDuration(ex.HealthTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid explainer.health_timeout format %q: %w", ex.HealthTimeout, err)
		}
		cfg.Explainer.HealthTimeout = d
	}

	if yamlCfg.Server.Address != "" {
		cfg.Server.Address = yamlCfg.Server.Address
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .clickprint/config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, DirName, "config.yaml"))
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(logLevel *string, explainerEnabled *bool, model *string, address *string) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if explainerEnabled != nil {
		c.Explainer.Enabled = *explainerEnabled
	}
	if model != nil {
		c.Explainer.Model = *model
	}
	if address != nil {
		c.Server.Address = *address
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.Explainer.Timeout <= 0 {
		return fmt.Errorf("explainer.timeout must be > 0, got %v", c.Explainer.Timeout)
	}
	if c.Explainer.HealthTimeout <= 0 {
		return fmt.Errorf("explainer.health_timeout must be > 0, got %v", c.Explainer.HealthTimeout)
	}

	if c.Explainer.Enabled {
		if c.Explainer.Model == "" {
			return fmt.Errorf("explainer.model cannot be empty when the explainer is enabled")
		}
		u, err := url.Parse(c.Explainer.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("explainer.base_url %q must be an absolute URL", c.Explainer.BaseURL)
		}
	}

	if c.Server.Address == "" {
		return fmt.Errorf("server.address cannot be empty")
	}

	return nil
}
