package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/leonardcser/look-and-say/internal/cache"
	"github.com/leonardcser/look-and-say/internal/sequence"
)

// Config holds settings shared by the CLI and the MCP server.
// Values come from Default, then an optional YAML file, then the environment.
type Config struct {
	LogPath  string `yaml:"log_path" env:"LOOKANDSAY_LOG"`
	LogLevel string `yaml:"log_level" env:"LOOKANDSAY_LOG_LEVEL"`

	// Strategy is the default term strategy: recursive, iterative or memoized.
	Strategy string `yaml:"strategy" env:"LOOKANDSAY_STRATEGY"`
	MaxDepth int    `yaml:"max_depth" env:"LOOKANDSAY_MAX_DEPTH"`

	// Cache is the term cache backend: memory or bolt.
	Cache            string `yaml:"cache" env:"LOOKANDSAY_CACHE"`
	SpillDir         string `yaml:"spill_dir" env:"LOOKANDSAY_SPILL_DIR"`
	CompressionLevel int    `yaml:"compression_level" env:"LOOKANDSAY_COMPRESSION_LEVEL"`
}

func Default() *Config {
	return &Config{
		LogLevel:         "info",
		Strategy:         sequence.Memoized.String(),
		MaxDepth:         sequence.DefaultMaxDepth,
		Cache:            cache.BackendMemory,
		CompressionLevel: 3,
	}
}

// Load builds a Config. An empty path skips the file layer; a path that
// does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := sequence.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	switch c.Cache {
	case cache.BackendMemory, cache.BackendBolt:
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache)
	}
	if c.MaxDepth < 0 {
		return errors.New("max_depth must not be negative")
	}
	if c.CompressionLevel < 0 || c.CompressionLevel > 22 {
		return fmt.Errorf("compression_level %d out of range 0-22", c.CompressionLevel)
	}
	return nil
}

// DefaultStrategy returns the parsed Strategy field.
func (c *Config) DefaultStrategy() sequence.Strategy {
	s, err := sequence.ParseStrategy(c.Strategy)
	if err != nil {
		return sequence.Memoized
	}
	return s
}

// CacheOptions returns the options for opening a session cache named id.
func (c *Config) CacheOptions(id string) cache.Options {
	return cache.Options{
		Backend:          c.Cache,
		Dir:              c.SpillDir,
		ID:               id,
		CompressionLevel: c.CompressionLevel,
	}
}
