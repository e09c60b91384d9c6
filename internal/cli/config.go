package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the optional settings read from a TOML config file. Zero
// values fall back to the defaults below; the physics constants themselves
// are not configurable.
type Config struct {
	Demo   DemoConfig   `toml:"demo"`
	Layout LayoutConfig `toml:"layout"`
	Server ServerConfig `toml:"server"`
}

// DemoConfig configures the interactive terminal demo.
type DemoConfig struct {
	Seed       int64 `toml:"seed"`
	ShowLabels bool  `toml:"show_labels"`
}

// LayoutConfig configures batch rendering output.
type LayoutConfig struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Background string  `toml:"background"`
	Steps      int     `toml:"steps"`
}

// ServerConfig configures the HTTP viewer.
type ServerConfig struct {
	Port        int `toml:"port"`
	SettleSteps int `toml:"settle_steps"`
}

// defaultConfig returns the settings used when no config file is given.
func defaultConfig() Config {
	return Config{
		Demo: DemoConfig{
			Seed:       1,
			ShowLabels: true,
		},
		Layout: LayoutConfig{
			Width:      800,
			Height:     800,
			Background: "#f8f8f8",
			Steps:      900,
		},
		Server: ServerConfig{
			Port:        8080,
			SettleSteps: 900,
		},
	}
}

// loadConfig reads path into the default config. An empty path returns the
// defaults unchanged; a missing or malformed file is an error, since the
// user asked for it explicitly.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return cfg, fmt.Errorf("config file: %w", err)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}
