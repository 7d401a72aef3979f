package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureConfigExists creates a config file with template if it doesn't exist.
// It reports whether a new file was written.
func EnsureConfigExists(configPath string) (bool, error) {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		return false, nil
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(configTemplate), 0644); err != nil {
		return false, fmt.Errorf("failed to write config template: %w", err)
	}

	return true, nil
}

// DefaultPath is where `config init` writes when no --config is given.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "selgrab", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".config", "selgrab", "config.yaml"), nil
}
