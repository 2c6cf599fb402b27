// Package config loads srsearch run settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/srsearch/bfs"
	"github.com/katalvlaran/srsearch/dfs"
)

// Strategy names accepted in config files and on the command line.
const (
	StrategyDFS = "dfs"
	StrategyBFS = "bfs"
	StrategySRS = "srs"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Graph      string     `toml:"graph"`
	Start      string     `toml:"start"`
	Goal       string     `toml:"goal"`
	Strategy   string     `toml:"strategy"`
	Thresholds Thresholds `toml:"thresholds"`
	Log        Log        `toml:"log"`
}

type Thresholds struct {
	Depth  int `toml:"depth"`
	Memory int `toml:"memory"`
}

type Log struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Strategy: StrategySRS,
		Thresholds: Thresholds{
			Depth:  dfs.DefaultDepthThreshold,
			Memory: bfs.DefaultMemoryThreshold,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path on top of Default. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if cfg.Strategy == "" {
		cfg.Strategy = StrategySRS
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks thresholds and strategy. Start, goal and graph are checked
// by the caller once flags have been merged.
func (c *Config) Validate() error {
	switch c.Strategy {
	case StrategyDFS, StrategyBFS, StrategySRS:
	default:
		return fmt.Errorf("%w: strategy %q (want dfs, bfs or srs)", ErrInvalid, c.Strategy)
	}
	if c.Thresholds.Depth < 0 {
		return fmt.Errorf("%w: thresholds.depth %d", ErrInvalid, c.Thresholds.Depth)
	}
	if c.Thresholds.Memory < 0 {
		return fmt.Errorf("%w: thresholds.memory %d", ErrInvalid, c.Thresholds.Memory)
	}

	return nil
}
