package core

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the engine configuration, read from a TOML or YAML file.
type Config struct {
	App struct {
		// The application name used in log lines.
		Name string `toml:"name" yaml:"name"`
	} `toml:"app" yaml:"app"`
	Log struct {
		// When false only errors are reported.
		Debug bool `toml:"debug" yaml:"debug"`
		// info or verbose.
		Level LogLevel `toml:"level" yaml:"level"`
	} `toml:"log" yaml:"log"`
	Frame struct {
		// Target frames per second for the real-time loop and offline rendering.
		Rate float64 `toml:"rate" yaml:"rate"`
		// Seconds of animation to run. Zero runs until cancelled.
		Duration float64 `toml:"duration" yaml:"duration"`
	} `toml:"frame" yaml:"frame"`
	Render struct {
		Width  int `toml:"width" yaml:"width"`
		Height int `toml:"height" yaml:"height"`
		// Pixels per world unit.
		Scale float64 `toml:"scale" yaml:"scale"`
		// Frames are written here as frame_000000.png, frame_000001.png, ...
		OutputDir string `toml:"output_dir" yaml:"output_dir"`
		// Hex colour, e.g. "#05050f".
		Background string `toml:"background" yaml:"background"`
		// Number of goroutines encoding frames.
		Workers int `toml:"workers" yaml:"workers"`
	} `toml:"render" yaml:"render"`
	Objects struct {
		// Disabling a node gates its whole subtree.
		StrictEnable bool `toml:"strict_enable" yaml:"strict_enable"`
		// Vector lines sit at the real midpoint between tail and head.
		TrueMidpoint bool `toml:"true_midpoint" yaml:"true_midpoint"`
	} `toml:"objects" yaml:"objects"`
}

func DefaultConfig() *Config {
	c := &Config{}
	c.App.Name = "motion"
	c.Log.Debug = true
	c.Log.Level = InfoLevel
	c.Frame.Rate = 30
	c.Frame.Duration = 5
	c.Render.Width = 1920
	c.Render.Height = 1080
	c.Render.Scale = 100
	c.Render.OutputDir = "./output"
	c.Render.Background = "#000000"
	c.Render.Workers = 4
	return c
}

// LoadConfig reads path on top of the defaults. The format is picked from the
// file extension.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.NewDecoder(bytes.NewReader(data)).Decode(c); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Frame.Rate <= 0 {
		return fmt.Errorf("frame.rate must be > 0, got %v", c.Frame.Rate)
	}
	if c.Frame.Duration < 0 {
		return fmt.Errorf("frame.duration must be >= 0, got %v", c.Frame.Duration)
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("render size must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Render.Workers <= 0 {
		return fmt.Errorf("render.workers must be > 0, got %d", c.Render.Workers)
	}
	return nil
}

// ApplyLogging pushes the log section into the logger.
func (c *Config) ApplyLogging() {
	SetLogLevel(c.Log.Debug, c.Log.Level)
}
