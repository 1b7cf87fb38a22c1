// Package config loads tool settings from defaults, an optional memimg.yaml
// file and MEMIMG_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Defaults match a 4096-byte local memory with the bootloader writing the
// uploaded program at 0x300.
const (
	DefaultBytesPerWord = 4
	DefaultMemorySize   = 4096
	DefaultLoadOffset   = 0x300
)

// Config holds the settings shared by the memimg commands.
type Config struct {
	BytesPerWord int    `mapstructure:"bytes_per_word"`
	MemorySize   int64  `mapstructure:"memory_size"`
	LoadOffset   int64  `mapstructure:"load_offset"`
	OutputDir    string `mapstructure:"output_dir"`
	Fill         int    `mapstructure:"fill"`
	Lenient      bool   `mapstructure:"lenient"`
	LogLevel     string `mapstructure:"log_level"`
	LogFormat    string `mapstructure:"log_format"`
}

// Load reads the configuration. An empty path searches ".", "./config" and
// "$HOME/.config/memimg" for memimg.yaml and tolerates its absence; an
// explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("bytes_per_word", DefaultBytesPerWord)
	v.SetDefault("memory_size", DefaultMemorySize)
	v.SetDefault("load_offset", DefaultLoadOffset)
	v.SetDefault("output_dir", ".")
	v.SetDefault("fill", 0)
	v.SetDefault("lenient", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	v.SetEnvPrefix("MEMIMG")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName("memimg")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".config", "memimg"))
		}

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.BytesPerWord < 1 {
		return fmt.Errorf("bytes_per_word must be at least 1, got %d", c.BytesPerWord)
	}
	if c.MemorySize <= 0 {
		return fmt.Errorf("memory_size must be positive, got %d", c.MemorySize)
	}
	if c.LoadOffset < 0 || c.LoadOffset >= c.MemorySize {
		return fmt.Errorf("load_offset 0x%X is outside memory of %d bytes", c.LoadOffset, c.MemorySize)
	}
	if c.Fill < 0 || c.Fill > 0xFF {
		return fmt.Errorf("fill must be a byte value, got %d", c.Fill)
	}
	return nil
}
