package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/isamu/svg2path"
	"gopkg.in/yaml.v3"
)

// Config holds the conversion settings that can be read from a YAML file.
type Config struct {
	Precision     int    `yaml:"precision"`
	Format        string `yaml:"format"`         // varint | fixed16
	MaxCoordinate int    `yaml:"max_coordinate"` // bound of encoded values
	Escape        string `yaml:"escape"`         // printable | all
	Workers       int    `yaml:"workers"`
	Minify        bool   `yaml:"minify"`
}

func DefaultConfig() *Config {
	return &Config{
		Format:        "varint",
		MaxCoordinate: svg2path.Size,
		Escape:        "printable",
		Workers:       runtime.GOMAXPROCS(0),
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig. An empty path
// returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Precision < 0 {
		return fmt.Errorf("precision must be >= 0")
	} else if c.MaxCoordinate <= 0 {
		return fmt.Errorf("max_coordinate must be > 0")
	} else if c.Workers <= 0 {
		return fmt.Errorf("workers must be > 0")
	}
	if _, err := svg2path.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := svg2path.ParseEscape(c.Escape); err != nil {
		return err
	}
	return nil
}

// Options returns the pipeline options of a validated config.
func (c *Config) Options() svg2path.Options {
	format, _ := svg2path.ParseFormat(c.Format)
	escape, _ := svg2path.ParseEscape(c.Escape)
	return svg2path.Options{
		Precision: c.Precision,
		Codec:     svg2path.Codec{Format: format, MaxCoordinate: c.MaxCoordinate},
		Escape:    escape,
		Minify:    c.Minify,
		Workers:   c.Workers,
	}
}
