// Package config loads the engine configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sofiastro/astroscan/internal/aspect"
	"github.com/sofiastro/astroscan/internal/scan"
)

// Config is the full engine configuration.
type Config struct {
	Ephemeris EphemerisConfig `yaml:"ephemeris"`
	Orbs      aspect.Policy   `yaml:"orbs"`
	Scan      scan.Config     `yaml:"scan"`
}

// EphemerisConfig locates the Swiss Ephemeris data set.
type EphemerisConfig struct {
	Path string `yaml:"path"`
}

// Default returns the built-in configuration. The ephemeris path defaults to
// ./ephe, matching the data layout the download script produces.
func Default() Config {
	return Config{
		Ephemeris: EphemerisConfig{Path: "ephe"},
		Orbs:      aspect.DefaultPolicy(),
		Scan:      scan.DefaultConfig(),
	}
}

// Load reads a YAML config file on top of the defaults, so partial files
// only override what they name.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config YAML: %w", err)
	}
	return cfg, nil
}
