/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ssargent/mimir/pkg/fsio"
)

// Config represents the mimir configuration
type Config struct {
	SaveDir     string    `yaml:"save_dir"`
	DefaultFile string    `yaml:"default_file"`
	Format      string    `yaml:"format"`
	Snapshots   Snapshots `yaml:"snapshots"`
	Logging     Logging   `yaml:"logging"`
}

// Snapshots contains snapshot archive configuration
type Snapshots struct {
	Dir  string `yaml:"dir"`
	Keep int    `yaml:"keep"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		SaveDir:     "./saves",
		DefaultFile: "GameSave",
		Format:      "bin",
		Snapshots: Snapshots{
			Dir:  "./snapshots",
			Keep: 10,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// SaveFormat parses the configured save-file format.
func (c *Config) SaveFormat() (fsio.Format, error) {
	return fsio.ParseFormat(c.Format)
}

// LoadConfig loads configuration from the specified path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	// Validate path to prevent directory traversal
	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves the configuration to the specified path
func SaveConfig(config *Config, configPath string) error {
	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// BootstrapConfig creates and saves a new configuration if one does not
// exist at configPath, seeding the save directory when given.
func BootstrapConfig(configPath string, saveDir string) (*Config, error) {
	config := DefaultConfig()
	if saveDir != "" {
		config.SaveDir = saveDir
	}

	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	// Use OS-specific default locations
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./mimir.yaml"
	}

	// For Linux/macOS, use ~/.config/mimir/config.yaml
	configDir := filepath.Join(homeDir, ".config", "mimir")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
