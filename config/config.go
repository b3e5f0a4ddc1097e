package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds persistent picker settings stored at <profileDir>/wheel.yaml.
type Config struct {
	Theme                   string  `yaml:"theme,omitempty"`
	Overscan                int     `yaml:"overscan"`
	AnimationMillis         int     `yaml:"animation_ms"`
	Friction                float64 `yaml:"friction"`
	FPS                     int     `yaml:"fps"`
	ShowsSelectionIndicator bool    `yaml:"shows_selection_indicator"`
	ColumnGap               int     `yaml:"column_gap"`
	DefaultColumnWidth      int     `yaml:"default_column_width"`
	Rail                    bool    `yaml:"rail"`
}

const filename = "wheel.yaml"

// Path returns the settings file location inside profileDir.
func Path(profileDir string) string {
	return filepath.Join(profileDir, filename)
}

// Load reads <profileDir>/wheel.yaml and returns the parsed Config.
// If the file is absent, unreadable or invalid, a default Config is returned.
func Load(profileDir string) Config {
	cfg := Defaults()
	data, err := os.ReadFile(Path(profileDir))
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults()
	}
	if err := cfg.Validate(); err != nil {
		return Defaults()
	}
	return cfg
}

// Save writes cfg to <profileDir>/wheel.yaml, creating the directory if needed.
func Save(profileDir string, cfg Config) error {
	if err := os.MkdirAll(profileDir, 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filename, err)
	}
	return os.WriteFile(Path(profileDir), data, 0o644)
}

// Validate rejects settings the picker cannot run with.
func (c Config) Validate() error {
	if c.Overscan < 0 {
		return fmt.Errorf("overscan must be >= 0, got %d", c.Overscan)
	}
	if c.AnimationMillis < 0 {
		return fmt.Errorf("animation_ms must be >= 0, got %d", c.AnimationMillis)
	}
	if c.Friction <= 0 {
		return fmt.Errorf("friction must be > 0, got %v", c.Friction)
	}
	if c.FPS <= 0 || c.FPS > 240 {
		return fmt.Errorf("fps must be in (0,240], got %d", c.FPS)
	}
	if c.ColumnGap < 0 {
		return fmt.Errorf("column_gap must be >= 0, got %d", c.ColumnGap)
	}
	if c.DefaultColumnWidth <= 0 {
		return fmt.Errorf("default_column_width must be > 0, got %d", c.DefaultColumnWidth)
	}
	return nil
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		Theme:                   "",
		Overscan:                1,
		AnimationMillis:         250,
		Friction:                4,
		FPS:                     60,
		ShowsSelectionIndicator: true,
		ColumnGap:               2,
		DefaultColumnWidth:      12,
		Rail:                    false,
	}
}
