package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Config represents the tix configuration
type Config struct {
	BaseURL    string `yaml:"base_url"`
	Email      string `yaml:"email"`
	APIToken   string `yaml:"api_token,omitempty"`
	ProjectKey string `yaml:"project_key"`
	IssueType  string `yaml:"issue_type,omitempty"`
	LogFile    string `yaml:"log_file,omitempty"`
}

// TokenEnvVar is consulted when api_token is absent from the config file,
// so the token can stay out of plain-text config.
const TokenEnvVar = "TIX_API_TOKEN"

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		IssueType: "Task",
		LogFile:   "/tmp/tix.log",
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "tix", "config.yml")
	}
	return filepath.Join(home, ".config", "tix", "config.yml")
}

// StatsFilePath returns the path to the usage statistics file
// Uses platform-specific XDG data directory
// Can be overridden for testing
var StatsFilePath = func() string {
	return filepath.Join(xdg.DataHome, "tix", "stats.json")
}

// Load reads configuration from the XDG config directory
func Load() (*Config, error) {
	configPath := ConfigPath()
	data, err := os.ReadFile(configPath)
	if err != nil {
		// Return default config if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.APIToken == "" {
		cfg.APIToken = os.Getenv(TokenEnvVar)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to the XDG config directory
func (c *Config) Save() error {
	configPath := ConfigPath()
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Config may hold the API token
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url cannot be empty")
	}
	if c.Email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if c.APIToken == "" {
		return fmt.Errorf("api_token not set (config file or %s)", TokenEnvVar)
	}
	if c.ProjectKey == "" {
		return fmt.Errorf("project_key cannot be empty")
	}
	if c.IssueType == "" {
		return fmt.Errorf("issue_type cannot be empty")
	}
	return nil
}
