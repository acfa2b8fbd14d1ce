// Package config holds the viewer's YAML configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Window struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
	Samples   int    `yaml:"samples"`
	FPS       int    `yaml:"fps"`
}

type Terrain struct {
	Grid      int     `yaml:"grid"`
	CellSize  float64 `yaml:"cell_size"`
	Amplitude float64 `yaml:"amplitude"`
}

type Config struct {
	Window  Window  `yaml:"window"`
	Terrain Terrain `yaml:"terrain"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:     1024,
			Height:    768,
			Title:     "gokt viewer",
			Resizable: true,
			Samples:   4,
			FPS:       60,
		},
		Terrain: Terrain{
			Grid:      129,
			CellSize:  0.25,
			Amplitude: 3,
		},
	}
}

// Load reads path over the defaults, so a config file only needs the keys
// it overrides.
func Load(path string) (Config, error) {
	conf := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return conf, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return conf, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if conf.Window.Width <= 0 || conf.Window.Height <= 0 {
		return conf, fmt.Errorf("config: window size must be positive, got %dx%d", conf.Window.Width, conf.Window.Height)
	}
	if conf.Terrain.Grid < 2 {
		return conf, fmt.Errorf("config: terrain grid must be at least 2, got %d", conf.Terrain.Grid)
	}
	return conf, nil
}
