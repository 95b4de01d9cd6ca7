package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xvierd/pomo/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Sound.Enabled {
		t.Error("sound should be enabled by default")
	}
	if !cfg.Notifications.Enabled {
		t.Error("notifications should be enabled by default")
	}
	accent, err := cfg.AccentColor()
	if err != nil {
		t.Fatalf("AccentColor() error = %v", err)
	}
	if accent != domain.DefaultColor {
		t.Errorf("default accent = %v, want %v", accent, domain.DefaultColor)
	}
	if cfg.Log.File != "" {
		t.Errorf("default log file = %q, want discard", cfg.Log.File)
	}
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Accent != "default" || !cfg.Sound.Enabled {
		t.Errorf("Load() without a file should return defaults, got %+v", cfg)
	}

	path, _ := GetConfigPath()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Load() must not create a config file")
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
accent = "ocean"

[sound]
enabled = false

[log]
level = "debug"

[theme]
icon_app = "⏲"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Accent != "ocean" {
		t.Errorf("Accent = %q, want ocean", cfg.Accent)
	}
	if cfg.Sound.Enabled {
		t.Error("Sound.Enabled should be false")
	}
	if !cfg.Sound.Bell {
		t.Error("unset keys should keep their defaults")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Theme.IconApp != "⏲" {
		t.Errorf("Theme.IconApp = %q", cfg.Theme.IconApp)
	}
	if cfg.Theme.IconReset != DefaultThemeConfig().IconReset {
		t.Errorf("Theme.IconReset = %q, want default", cfg.Theme.IconReset)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, `accent = "ocean"`)
	t.Setenv("POMO_ACCENT", "rose")
	t.Setenv("POMO_NOTIFICATIONS_ENABLED", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Accent != "rose" {
		t.Errorf("Accent = %q, want env override rose", cfg.Accent)
	}
	if cfg.Notifications.Enabled {
		t.Error("POMO_NOTIFICATIONS_ENABLED=false should disable notifications")
	}
}

func TestLoad_InvalidAccent(t *testing.T) {
	path := writeConfig(t, `accent = "chartreuse-xyz"`)

	_, err := Load(path)
	if !errors.Is(err, domain.ErrUnknownColor) {
		t.Errorf("Load() error = %v, want ErrUnknownColor", err)
	}
}

func TestConfig_AccentColor(t *testing.T) {
	tests := []struct {
		accent string
		want   domain.Color
	}{
		{"", domain.DefaultColor},
		{"mud", "#95714F"},
		{"#b6c687", "#B6C687"},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Accent = tt.accent
		got, err := cfg.AccentColor()
		if err != nil {
			t.Fatalf("AccentColor(%q) error = %v", tt.accent, err)
		}
		if got != tt.want {
			t.Errorf("AccentColor(%q) = %v, want %v", tt.accent, got, tt.want)
		}
	}
}
