package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	s, err := Load(viper.New())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.CacheCapacity != 100 {
		t.Errorf("cache capacity: got %d, want 100", s.CacheCapacity)
	}
	if s.SettleDelay != 100*time.Millisecond {
		t.Errorf("settle delay: got %v, want 100ms", s.SettleDelay)
	}
	if s.Hotkey != DefaultHotkey {
		t.Errorf("hotkey: got %q, want %q", s.Hotkey, DefaultHotkey)
	}
	if s.FileManager != "" {
		t.Errorf("file manager: expected platform default (empty), got %q", s.FileManager)
	}
}

func TestLoad_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	configContent := `
cache_capacity: 25
settle_delay: 250ms
file_manager: Files
copy_chord: ctrl+insert
log_level: debug
`
	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("failed to read config: %v", err)
	}

	s, err := Load(v)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := Settings{
		CacheCapacity: 25,
		SettleDelay:   250 * time.Millisecond,
		FileManager:   "Files",
		CopyChord:     "ctrl+insert",
		Hotkey:        DefaultHotkey,
		LogLevel:      "debug",
	}
	if *s != want {
		t.Errorf("got %+v, want %+v", *s, want)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{name: "zero capacity", key: KeyCacheCapacity, value: 0},
		{name: "negative delay", key: KeySettleDelay, value: "-5ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.value)
			if _, err := Load(v); err == nil {
				t.Errorf("Expected error for %s=%v", tt.key, tt.value)
			}
		})
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SELGRAB_SETTLE_DELAY", "40ms")

	v := viper.New()
	v.SetEnvPrefix("SELGRAB")
	v.AutomaticEnv()

	s, err := Load(v)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.SettleDelay != 40*time.Millisecond {
		t.Errorf("settle delay: got %v, want 40ms", s.SettleDelay)
	}
}

func TestLoadDotenv(t *testing.T) {
	tmpDir := t.TempDir()
	envFile := filepath.Join(tmpDir, ".env")
	if err := os.WriteFile(envFile, []byte("SELGRAB_TEST_HOTKEY=alt+space\n"), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	t.Setenv("SELGRAB_TEST_HOTKEY", "")
	os.Unsetenv("SELGRAB_TEST_HOTKEY")

	if err := LoadDotenv(envFile); err != nil {
		t.Fatalf("LoadDotenv failed: %v", err)
	}
	if got := os.Getenv("SELGRAB_TEST_HOTKEY"); got != "alt+space" {
		t.Errorf("got %q, want %q", got, "alt+space")
	}
}

func TestLoadDotenv_Missing(t *testing.T) {
	if err := LoadDotenv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("Expected missing .env to be ignored, got %v", err)
	}
}

func TestGetValue(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set(KeyFileManager, "Finder")
	got, err := GetValue(KeyFileManager)
	if err != nil {
		t.Fatalf("GetValue failed: %v", err)
	}
	if got != "Finder" {
		t.Errorf("got %q, want %q", got, "Finder")
	}

	if _, err := GetValue("no_such_key"); err == nil {
		t.Error("Expected error for unknown key")
	}
}
