package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/trailmaze/longest"
	"github.com/katalvlaran/trailmaze/maze"
)

// Config is the optional YAML file behind --config. Command-line flags
// override any value set here.
type Config struct {
	Mode          string `yaml:"mode"`
	ParallelDepth *int   `yaml:"parallel_depth"`
	Prune         *bool  `yaml:"prune"`
	Format        string `yaml:"format"`
	LogLevel      string `yaml:"log_level"`
}

// settings are the resolved values every subcommand works from.
type settings struct {
	modes         []maze.Mode
	parallelDepth int
	prune         bool
	format        string
	logLevel      string
}

func defaultSettings() settings {
	return settings{
		modes:         maze.Modes,
		parallelDepth: longest.DefaultParallelDepth,
		prune:         true,
		format:        "text",
		logLevel:      "warn",
	}
}

// loadConfig reads and decodes path. An empty path yields an empty Config.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// apply overlays the file values on s.
func (c Config) apply(s *settings) error {
	if c.Mode != "" {
		modes, err := parseModes(c.Mode)
		if err != nil {
			return err
		}
		s.modes = modes
	}
	if c.ParallelDepth != nil {
		s.parallelDepth = *c.ParallelDepth
	}
	if c.Prune != nil {
		s.prune = *c.Prune
	}
	if c.Format != "" {
		s.format = c.Format
	}
	if c.LogLevel != "" {
		s.logLevel = c.LogLevel
	}

	return nil
}

// parseModes accepts a single mode name or "both".
func parseModes(s string) ([]maze.Mode, error) {
	if strings.EqualFold(strings.TrimSpace(s), "both") {
		return maze.Modes, nil
	}
	m, err := maze.ParseMode(s)
	if err != nil {
		return nil, err
	}

	return []maze.Mode{m}, nil
}
