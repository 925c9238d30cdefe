// Package config holds the layout constants and the runtime settings of the
// dot machine.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	// Button dimensions
	ButtonWidth  = 60
	ButtonHeight = 20
	ButtonGap    = 10

	// Dots
	DotRadius  = 5
	DotsPerRow = 4
	DotStep    = 0.2

	// Cell flash on explode, seconds
	FlashDuration = 0.35

	// Explosion pop
	PopFrequency = 660.0
	PopDuration  = 0.08

	MaxPlaces   = 12
	HardMaxBase = 16
)

// Config is the runtime configuration. Values come from Default, then an
// optional YAML file, then DOTS_* environment variables, then flags.
type Config struct {
	Places      int  `yaml:"places" env:"PLACES"`
	Base        int  `yaml:"base" env:"BASE"`
	MinBase     int  `yaml:"min_base" env:"MIN_BASE"`
	MaxBase     int  `yaml:"max_base" env:"MAX_BASE"`
	AutoExplode bool `yaml:"auto_explode" env:"AUTO_EXPLODE"`

	Sound  bool    `yaml:"sound" env:"SOUND"`
	Volume float64 `yaml:"volume" env:"VOLUME"`

	WindowWidth  int `yaml:"window_width" env:"WINDOW_WIDTH"`
	WindowHeight int `yaml:"window_height" env:"WINDOW_HEIGHT"`
	CellWidth    int `yaml:"cell_width" env:"CELL_WIDTH"`
	CellHeight   int `yaml:"cell_height" env:"CELL_HEIGHT"`
	StartY       int `yaml:"start_y" env:"START_Y"`

	HistorySize int    `yaml:"history_size" env:"HISTORY_SIZE"`
	LogLevel    string `yaml:"log_level" env:"LOG_LEVEL"`
}

// Default returns the classic 1 <- 8 machine with seven places.
func Default() *Config {
	return &Config{
		Places:       7,
		Base:         8,
		MinBase:      2,
		MaxBase:      HardMaxBase,
		AutoExplode:  true,
		Sound:        true,
		Volume:       0.5,
		WindowWidth:  800,
		WindowHeight: 600,
		CellWidth:    80,
		CellHeight:   80,
		StartY:       120,
		HistorySize:  6,
		LogLevel:     "info",
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment. It does not validate.
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
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: "DOTS_"}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks ranges. The base bounds must satisfy
// 2 <= min_base <= base <= max_base <= 16.
func (c *Config) Validate() error {
	var errs []error
	if c.Places < 1 || c.Places > MaxPlaces {
		errs = append(errs, fmt.Errorf("places must be in 1..%d, got %d", MaxPlaces, c.Places))
	}
	if c.MinBase < 2 || c.MaxBase > HardMaxBase || c.MinBase > c.MaxBase {
		errs = append(errs, fmt.Errorf("base bounds must satisfy 2 <= min_base <= max_base <= %d, got %d..%d", HardMaxBase, c.MinBase, c.MaxBase))
	} else if c.Base < c.MinBase || c.Base > c.MaxBase {
		errs = append(errs, fmt.Errorf("base must be in %d..%d, got %d", c.MinBase, c.MaxBase, c.Base))
	}
	if c.Volume < 0 || c.Volume > 1 {
		errs = append(errs, fmt.Errorf("volume must be in 0..1, got %v", c.Volume))
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight))
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %dx%d", c.CellWidth, c.CellHeight))
	}
	if c.HistorySize < 1 {
		errs = append(errs, fmt.Errorf("history_size must be positive, got %d", c.HistorySize))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log_level %q", c.LogLevel))
	}
	return errors.Join(errs...)
}
