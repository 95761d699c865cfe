package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the engine configuration loaded at boot
type Config struct {
	Window     WindowConfig     `toml:"window"`
	Simulation SimulationConfig `toml:"simulation"`
	Boundary   BoundaryConfig   `toml:"boundary"`
	Audio      AudioConfig      `toml:"audio"`
	Logging    LoggingConfig    `toml:"logging"`
}

type WindowConfig struct {
	Title  string  `toml:"title"`
	ScaleX float64 `toml:"scale_x"` // world units per terminal cell column
	ScaleY float64 `toml:"scale_y"` // world units per terminal cell row
}

type SimulationConfig struct {
	TickRate int `toml:"tick_rate"` // frames per second
}

type BoundaryConfig struct {
	Mode   string  `toml:"mode"` // "wrap" or "clamp"
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`  // zap level name
	Format string `toml:"format"` // "json" or "console"
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "tessera",
			ScaleX: 10,
			ScaleY: 20,
		},
		Simulation: SimulationConfig{TickRate: 60},
		Boundary: BoundaryConfig{
			Mode:   "wrap",
			Width:  800,
			Height: 600,
		},
		Audio: AudioConfig{Enabled: true},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a TOML config file over the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
