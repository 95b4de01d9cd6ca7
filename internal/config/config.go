// Package config provides configuration management for pomo.
//
// Configuration is read once at startup from an optional TOML file and
// POMO_* environment variables. It is never written back: choices made
// while the timer runs do not outlive the process.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/xvierd/pomo/internal/domain"
)

// EnvPrefix is the prefix of environment overrides, e.g. POMO_ACCENT.
const EnvPrefix = "POMO"

// Config holds all configuration for the pomo application.
type Config struct {
	Accent        string             `mapstructure:"accent"`
	Sound         SoundConfig        `mapstructure:"sound"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Log           LogConfig          `mapstructure:"log"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// SoundConfig holds chime settings.
type SoundConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Bell rings the system bell when the audio device cannot be opened.
	Bell bool `mapstructure:"bell"`
}

// NotificationConfig holds desktop notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LogConfig holds logging settings. An empty File discards log output,
// since the terminal belongs to the timer.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// ThemeConfig holds the colors and icons that are not the accent.
type ThemeConfig struct {
	ColorText     string `mapstructure:"color_text"`
	ColorMuted    string `mapstructure:"color_muted"`
	ColorHelp     string `mapstructure:"color_help"`
	ColorOnAccent string `mapstructure:"color_on_accent"`
	IconApp       string `mapstructure:"icon_app"`
	IconReset     string `mapstructure:"icon_reset"`
	IconSettings  string `mapstructure:"icon_settings"`
	IconSwatch    string `mapstructure:"icon_swatch"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorText:     "#D0D0D0",
		ColorMuted:    "#6B7280",
		ColorHelp:     "#95A5A6",
		ColorOnAccent: "#FFFFFF",
		IconApp:       "🍅",
		IconReset:     "↺",
		IconSettings:  "⚙",
		IconSwatch:    "●",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Accent: "default",
		Sound: SoundConfig{
			Enabled: true,
			Bell:    true,
		},
		Notifications: NotificationConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level: "info",
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load reads the configuration. An empty path means the default location;
// a missing file is not an error and yields the defaults plus any
// environment overrides.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound), errors.Is(err, os.ErrNotExist):
			if explicit {
				return nil, fmt.Errorf("config file %s: %w", path, os.ErrNotExist)
			}
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that cannot be checked by type alone.
func (c *Config) Validate() error {
	if _, err := c.AccentColor(); err != nil {
		return fmt.Errorf("invalid accent: %w", err)
	}
	return nil
}

// AccentColor resolves the configured accent against the palette.
func (c *Config) AccentColor() (domain.Color, error) {
	if c.Accent == "" {
		return domain.DefaultColor, nil
	}
	s, err := domain.LookupSwatch(c.Accent)
	if err != nil {
		return "", err
	}
	return s.Color, nil
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".pomo", "config.toml"), nil
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("accent", defaults.Accent)
	v.SetDefault("sound.enabled", defaults.Sound.Enabled)
	v.SetDefault("sound.bell", defaults.Sound.Bell)
	v.SetDefault("notifications.enabled", defaults.Notifications.Enabled)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.file", defaults.Log.File)

	theme := defaults.Theme
	v.SetDefault("theme.color_text", theme.ColorText)
	v.SetDefault("theme.color_muted", theme.ColorMuted)
	v.SetDefault("theme.color_help", theme.ColorHelp)
	v.SetDefault("theme.color_on_accent", theme.ColorOnAccent)
	v.SetDefault("theme.icon_app", theme.IconApp)
	v.SetDefault("theme.icon_reset", theme.IconReset)
	v.SetDefault("theme.icon_settings", theme.IconSettings)
	v.SetDefault("theme.icon_swatch", theme.IconSwatch)
}
