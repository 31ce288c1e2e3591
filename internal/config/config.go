package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"devtoys/internal/jsonfmt"
)

// Theme is the color scheme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Next cycles light -> dark -> system -> light.
func (t Theme) Next() Theme {
	switch t {
	case ThemeLight:
		return ThemeDark
	case ThemeDark:
		return ThemeSystem
	default:
		return ThemeLight
	}
}

func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return t, nil
	}
	return "", fmt.Errorf("unknown theme %q (want light, dark or system)", s)
}

// Config is the user configuration file, ~/.config/devtoys/config.yaml.
// Only the theme is written back by the application.
type Config struct {
	Theme     Theme           `yaml:"theme"`
	Codec     string          `yaml:"codec"`
	NoColor   bool            `yaml:"no_color"`
	Clipboard ClipboardConfig `yaml:"clipboard"`
	Log       LogConfig       `yaml:"log"`
}

type ClipboardConfig struct {
	// ReportFailures shows a transient "Copy failed" notice instead of
	// ignoring a failed copy.
	ReportFailures bool `yaml:"report_failures"`
}

type LogConfig struct {
	File  string `yaml:"file"`  // empty disables logging
	Level string `yaml:"level"` // debug | info | warn | error
}

func Default() *Config {
	return &Config{
		Theme: ThemeSystem,
		Codec: jsonfmt.Std.Name(),
		Log:   LogConfig{Level: "info"},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/devtoys/config.yaml, falling back to ~/.config.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		if h, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(h, ".config")
		}
	}
	return filepath.Join(dir, "devtoys", "config.yaml")
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Validate normalizes empty fields to defaults and rejects unknown values.
func (c *Config) Validate() error {
	if c.Theme == "" {
		c.Theme = ThemeSystem
	}
	t, err := ParseTheme(string(c.Theme))
	if err != nil {
		return err
	}
	c.Theme = t
	codec, err := jsonfmt.CodecByName(c.Codec)
	if err != nil {
		return err
	}
	c.Codec = codec.Name()
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}

// NoColorEnabled reports whether colors are off, via config or NO_COLOR.
func (c *Config) NoColorEnabled() bool {
	return c.NoColor || os.Getenv("NO_COLOR") != ""
}

// Clone returns a copy safe to modify independently.
func Clone(c *Config) *Config {
	cp := *c
	return &cp
}

func Save(path string, c *Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
