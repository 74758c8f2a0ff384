package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds the configurable paths and render settings shared by
// the CLI tools.
type Config struct {
	// Paths
	ScenePath  string `json:"scene_path"`
	OutputPath string `json:"output_path"`

	// Preview render settings
	RenderSize  int     `json:"render_size"`
	Supersample int     `json:"supersample"`
	ElevDeg     float64 `json:"elev_deg"`
	TurnDeg     float64 `json:"turn_deg"`

	// Batch settings
	Workers int `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Scene       string
	Out         string
	Size        int
	Supersample int
	Workers     int
}

// Resolve fills in any empty fields with defaults. CLI flags take
// priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Scene != "" {
		c.ScenePath = flags.Scene
	}
	if flags.Out != "" {
		c.OutputPath = flags.Out
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.RenderSize <= 0 {
		c.RenderSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
