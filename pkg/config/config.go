// Package config loads render settings from defaults, an optional YAML file
// and RAYTRACER_* environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/df07/go-pathtracer/pkg/logging"
)

// EnvPrefix is prepended to every environment variable name, e.g. RAYTRACER_SAMPLES
const EnvPrefix = "RAYTRACER"

// Config holds everything the command line renderer needs. Zero camera
// fields keep the values chosen by the selected scene.
type Config struct {
	Scene       string  `yaml:"scene" split_words:"true"`
	Width       int     `yaml:"width" split_words:"true"`        // Image width override
	AspectRatio float64 `yaml:"aspect_ratio" split_words:"true"` // Width / height override
	Samples     int     `yaml:"samples" split_words:"true"`      // Samples per pixel override
	MaxDepth    int     `yaml:"max_depth" split_words:"true"`    // Path length override
	Workers     int     `yaml:"workers" split_words:"true"`      // 0 uses every CPU
	TileSize    int     `yaml:"tile_size" split_words:"true"`
	Seed        int64   `yaml:"seed" split_words:"true"`
	Output      string  `yaml:"output" split_words:"true"` // .ppm or .png; empty derives output/<scene>.ppm
	LogLevel    string  `yaml:"log_level" split_words:"true"`
}

// Default creates a default configuration
func Default() *Config {
	return &Config{
		Scene:    "default",
		Workers:  0,
		TileSize: 32,
		Seed:     42,
		LogLevel: "info",
	}
}

// Load applies the YAML file at path (skipped when path is empty) and then
// the environment on top of Default
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.UnmarshalStrict(data, config); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, config); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	return config, nil
}

// Save writes the configuration as YAML
func Save(config *Config, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate rejects settings no render can use
func (c *Config) Validate() error {
	switch {
	case c.Scene == "":
		return fmt.Errorf("scene must be set")
	case c.Width < 0:
		return fmt.Errorf("width must not be negative, got %d", c.Width)
	case c.AspectRatio < 0:
		return fmt.Errorf("aspect ratio must not be negative, got %g", c.AspectRatio)
	case c.Samples < 0:
		return fmt.Errorf("samples must not be negative, got %d", c.Samples)
	case c.MaxDepth < 0:
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	case c.Workers < 0:
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	case c.TileSize <= 0:
		return fmt.Errorf("tile size must be positive, got %d", c.TileSize)
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	if ext := strings.ToLower(filepath.Ext(c.Output)); c.Output != "" && ext != ".ppm" && ext != ".png" {
		return fmt.Errorf("output must end in .ppm or .png, got %q", c.Output)
	}

	return nil
}

// OutputPath returns Output, or output/<scene>.ppm when it is empty
func (c *Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return filepath.Join("output", c.Scene+".ppm")
}
