// Package config provides configuration management functionality for selgrab.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/connorhough/selgrab/internal/selection"
)

// Configuration keys.
const (
	KeyCacheCapacity = "cache_capacity"
	KeySettleDelay   = "settle_delay"
	KeyFileManager   = "file_manager"
	KeyCopyChord     = "copy_chord"
	KeyPathChord     = "path_chord"
	KeyHotkey        = "hotkey"
	KeyLogLevel      = "log_level"
)

// Defaults.
const (
	DefaultSettleDelay = 100 * time.Millisecond
	DefaultHotkey      = "ctrl+shift+space"
	DefaultLogLevel    = "info"
)

// Settings are the resolved tunables. Empty strings defer to the platform.
type Settings struct {
	CacheCapacity int
	SettleDelay   time.Duration
	FileManager   string
	CopyChord     string
	PathChord     string
	Hotkey        string
	LogLevel      string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyCacheCapacity, selection.DefaultCacheCapacity)
	v.SetDefault(KeySettleDelay, DefaultSettleDelay)
	v.SetDefault(KeyHotkey, DefaultHotkey)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
}

// Load resolves Settings from v, rejecting values the engine cannot use.
func Load(v *viper.Viper) (*Settings, error) {
	SetDefaults(v)
	s := &Settings{
		CacheCapacity: v.GetInt(KeyCacheCapacity),
		SettleDelay:   v.GetDuration(KeySettleDelay),
		FileManager:   v.GetString(KeyFileManager),
		CopyChord:     v.GetString(KeyCopyChord),
		PathChord:     v.GetString(KeyPathChord),
		Hotkey:        v.GetString(KeyHotkey),
		LogLevel:      v.GetString(KeyLogLevel),
	}
	if s.CacheCapacity < 1 {
		return nil, fmt.Errorf("%s must be at least 1, got %d", KeyCacheCapacity, s.CacheCapacity)
	}
	if s.SettleDelay < 0 {
		return nil, fmt.Errorf("%s must be non-negative, got %s", KeySettleDelay, s.SettleDelay)
	}
	return s, nil
}

// LoadDotenv loads KEY=value pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// GetValue retrieves a configuration value by key
func GetValue(key string) (string, error) {
	if !viper.IsSet(key) {
		return "", fmt.Errorf("key '%s' not found in configuration", key)
	}
	return viper.GetString(key), nil
}

// SetValue sets a configuration value by key and persists it to the config file
func SetValue(key string, value string) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}
