// Package config loads templeops settings from YAML, a .env file and
// TEMPLEOPS_* environment variables, in that order of precedence (last wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/csheth/templeops/internal/simulation"
)

// Config is the root configuration.
type Config struct {
	Timing  PacingConfig  `yaml:"pacing"`
	Logging LoggingConfig `yaml:"logging"`
	UI      UIConfig      `yaml:"ui"`
}

// PacingConfig holds the reveal delays as duration strings ("800ms").
type PacingConfig struct {
	ThinkDelay       string `yaml:"think_delay"`
	SectionCharDelay string `yaml:"section_char_delay"`
	SectionPause     string `yaml:"section_pause"`
	ChatCharDelay    string `yaml:"chat_char_delay"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error, off
	File  string `yaml:"file"`
}

type UIConfig struct {
	AltScreen bool `yaml:"alt_screen"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	p := simulation.DefaultPacing()
	return &Config{
		Timing: PacingConfig{
			ThinkDelay:       p.Think.String(),
			SectionCharDelay: p.SectionCharDelay.String(),
			SectionPause:     p.SectionPause.String(),
			ChatCharDelay:    p.ChatCharDelay.String(),
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(xdg.StateHome, "templeops", "templeops.log"),
		},
		UI: UIConfig{AltScreen: true},
	}
}

// DefaultPath returns the XDG config file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "templeops", "config.yaml")
}

// Load reads path (DefaultPath when empty). A missing file yields the
// defaults. A .env file in the working directory is loaded before the
// environment overrides are applied.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	overrides := map[string]*string{
		"TEMPLEOPS_THINK_DELAY":        &c.Timing.ThinkDelay,
		"TEMPLEOPS_SECTION_CHAR_DELAY": &c.Timing.SectionCharDelay,
		"TEMPLEOPS_SECTION_PAUSE":      &c.Timing.SectionPause,
		"TEMPLEOPS_CHAT_CHAR_DELAY":    &c.Timing.ChatCharDelay,
		"TEMPLEOPS_LOG_LEVEL":          &c.Logging.Level,
		"TEMPLEOPS_LOG_FILE":           &c.Logging.File,
	}
	for key, field := range overrides {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*field = v
		}
	}
	if v, ok := os.LookupEnv("TEMPLEOPS_ALT_SCREEN"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.UI.AltScreen = b
		}
	}
}

// Validate checks the duration strings and the log level.
func (c *Config) Validate() error {
	for name, v := range map[string]string{
		"pacing.think_delay":        c.Timing.ThinkDelay,
		"pacing.section_char_delay": c.Timing.SectionCharDelay,
		"pacing.section_pause":      c.Timing.SectionPause,
		"pacing.chat_char_delay":    c.Timing.ChatCharDelay,
	} {
		if v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, v, err)
		}
		if d < 0 {
			return fmt.Errorf("invalid %s %q: negative duration", name, v)
		}
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error", "off":
	default:
		return fmt.Errorf("invalid logging.level %q (valid: debug, info, warn, error, off)", c.Logging.Level)
	}
	return nil
}

// Pacing converts the pacing section, falling back to the defaults for
// empty or malformed values.
func (c *Config) Pacing() simulation.Pacing {
	def := simulation.DefaultPacing()
	return simulation.Pacing{
		Think:            duration(c.Timing.ThinkDelay, def.Think),
		SectionCharDelay: duration(c.Timing.SectionCharDelay, def.SectionCharDelay),
		SectionPause:     duration(c.Timing.SectionPause, def.SectionPause),
		ChatCharDelay:    duration(c.Timing.ChatCharDelay, def.ChatCharDelay),
	}
}

func duration(v string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}
