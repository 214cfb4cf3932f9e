// Package config loads campusdash.yml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory and in
// $HOME/.config/campusdash.
const FileName = "campusdash.yml"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	// Student overrides the display name in the header.
	Student string    `yaml:"student"`
	Log     LogConfig `yaml:"log"`
	Web     WebConfig `yaml:"web"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	File   string `yaml:"file"`
	Format string `yaml:"format"` // "text" (default) or "json"
}

type WebConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Web: WebConfig{Addr: "127.0.0.1:0"},
	}
}

// Load reads path, or searches the default locations when path is empty.
// A missing file yields Default(); env overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = find()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "", "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

func applyEnv(c *Config) {
	if v := os.Getenv("CAMPUSDASH_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("CAMPUSDASH_ADDR"); v != "" {
		c.Web.Addr = v
	}
}

func find() string {
	candidates := []string{FileName}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "campusdash", FileName))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
