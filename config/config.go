// Package config loads the YAML settings for the table viewer and server.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/andareed/siftly-table/grid"
	"github.com/andareed/siftly-table/htmlview"
	"github.com/andareed/siftly-table/logging"
)

// Config holds all siftly-table configuration.
type Config struct {
	Source  SourceConfig   `yaml:"source"`
	Filters []FilterConfig `yaml:"filters"`
	Locale  string         `yaml:"locale"`
	Server  ServerConfig   `yaml:"server"`
	Logging LoggingConfig  `yaml:"logging"`
}

// SourceConfig says where rows come from. Path wins over Generate.
type SourceConfig struct {
	Path        string   `yaml:"path"`
	Generate    int      `yaml:"generate"`
	Seed        uint64   `yaml:"seed"`
	TextColumns []string `yaml:"text_columns"` // never parsed as numbers
}

// FilterConfig is one input of the filter bar.
type FilterConfig struct {
	Key         string   `yaml:"key"`
	Column      string   `yaml:"column"`
	Kind        string   `yaml:"kind"` // text, number, enum, date-from, date-to
	Label       string   `yaml:"label"`
	Options     []string `yaml:"options"`
	Placeholder string   `yaml:"placeholder"`
}

type ServerConfig struct {
	Addr              string `yaml:"addr"`
	ReadHeaderTimeout string `yaml:"read_header_timeout"`
	ShutdownTimeout   string `yaml:"shutdown_timeout"`
}

type LoggingConfig struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	Debug      bool   `yaml:"debug"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// DefaultConfig is 500 generated users and the
// full filter bar.
func DefaultConfig() *Config {
	cfg := &Config{
		Source: SourceConfig{
			Generate:    500,
			TextColumns: []string{"phoneNumber"},
		},
		Locale: "en",
		Server: ServerConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: "5s",
			ShutdownTimeout:   "15s",
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
	for _, f := range grid.DefaultFields() {
		cfg.Filters = append(cfg.Filters, FilterConfig{
			Key:         f.Key,
			Column:      f.Column,
			Kind:        f.Kind.String(),
			Label:       f.Label,
			Options:     append([]string(nil), f.Options...),
			Placeholder: f.Placeholder,
		})
	}
	return cfg
}

// Load reads path on top of the defaults. A missing file is not an error;
// env overrides are applied either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %q: %w", path, err)
			}
		}
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SIFTLY_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("SIFTLY_LOCALE"); v != "" {
		c.Locale = v
	}
	if v := os.Getenv("SIFTLY_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("SIFTLY_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.Debug = b
		}
	}
}

// Validate checks the parts that would otherwise fail late.
func (c *Config) Validate() error {
	seen := make(map[string]struct{}, len(c.Filters))
	for i, f := range c.Filters {
		if f.Key == "" {
			return fmt.Errorf("filters[%d]: key is required", i)
		}
		if _, dup := seen[f.Key]; dup {
			return fmt.Errorf("filters[%d]: duplicate key %q", i, f.Key)
		}
		seen[f.Key] = struct{}{}
		if htmlview.Reserved(f.Key) {
			return fmt.Errorf("filters[%d]: key %q is reserved", i, f.Key)
		}
		kind, err := grid.ParseFilterKind(f.Kind)
		if err != nil {
			return fmt.Errorf("filters[%d] %q: %w", i, f.Key, err)
		}
		if kind == grid.KindEnum && len(f.Options) == 0 {
			return fmt.Errorf("filters[%d] %q: enum needs options", i, f.Key)
		}
	}
	if c.Source.Generate < 0 {
		return fmt.Errorf("source.generate must not be negative")
	}
	if _, err := c.Server.shutdownTimeout(); err != nil {
		return err
	}
	if _, err := c.Server.readHeaderTimeout(); err != nil {
		return err
	}
	return nil
}

// FilterFields converts the filter bar config for grid.
func (c *Config) FilterFields() []grid.FilterField {
	out := make([]grid.FilterField, 0, len(c.Filters))
	for _, f := range c.Filters {
		kind, _ := grid.ParseFilterKind(f.Kind)
		col := f.Column
		if col == "" {
			col = f.Key
		}
		label := f.Label
		if label == "" {
			label = grid.LabelFor(f.Key)
		}
		out = append(out, grid.FilterField{
			Key:         f.Key,
			Column:      col,
			Kind:        kind,
			Label:       label,
			Options:     append([]string(nil), f.Options...),
			Placeholder: f.Placeholder,
		})
	}
	return out
}

// TableOptions bundles the grid options the config controls.
func (c *Config) TableOptions() []grid.Option {
	return []grid.Option{
		grid.WithFields(c.FilterFields()),
		grid.WithLocale(grid.ParseLocale(c.Locale)),
	}
}

// LogOptions is the logging package view of the logging section.
func (c *Config) LogOptions() logging.Options {
	return logging.Options{
		File:       c.Logging.File,
		Level:      c.Logging.Level,
		Debug:      c.Logging.Debug,
		MaxSizeMB:  c.Logging.MaxSizeMB,
		MaxBackups: c.Logging.MaxBackups,
		MaxAgeDays: c.Logging.MaxAgeDays,
	}
}

func (s ServerConfig) ShutdownTimeoutDuration() time.Duration {
	d, _ := s.shutdownTimeout()
	return d
}

func (s ServerConfig) ReadHeaderTimeoutDuration() time.Duration {
	d, _ := s.readHeaderTimeout()
	return d
}

func (s ServerConfig) shutdownTimeout() (time.Duration, error) {
	return parseDuration("server.shutdown_timeout", s.ShutdownTimeout, 15*time.Second)
}

func (s ServerConfig) readHeaderTimeout() (time.Duration, error) {
	return parseDuration("server.read_header_timeout", s.ReadHeaderTimeout, 5*time.Second)
}

func parseDuration(name, v string, def time.Duration) (time.Duration, error) {
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", name, err)
	}
	return d, nil
}
