// Package cli holds the flags and setup shared by the memimg commands.
package cli

import (
	"log/slog"

	"github.com/moffa90/go-memimg/internal/config"
	"github.com/moffa90/go-memimg/internal/logging"
)

// Globals are the flags every command accepts. Empty values fall back to the
// configuration file and MEMIMG_* environment variables.
type Globals struct {
	Config    string `name:"config" help:"Path to memimg.yaml (default: search . ./config ~/.config/memimg)"`
	LogLevel  string `name:"log-level" help:"Log level: debug, info, warn, error"`
	LogFormat string `name:"log-format" help:"Log format: text, json"`
}

// Setup loads the configuration and installs the global logger.
func (g *Globals) Setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, err
	}

	levelName := cfg.LogLevel
	if g.LogLevel != "" {
		levelName = g.LogLevel
	}
	formatName := cfg.LogFormat
	if g.LogFormat != "" {
		formatName = g.LogFormat
	}

	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, nil, err
	}
	format, err := logging.ParseFormat(formatName)
	if err != nil {
		return nil, nil, err
	}

	logging.InitLogger(level, format)
	return cfg, logging.GetLogger(), nil
}
