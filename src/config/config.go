// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigFile names the environment variable consulted when no explicit
// configuration path is given.
const EnvConfigFile = "MOCKZMQ_CONFIG_FILE"

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Default values.
var (
	DefaultSizes = []int{64, 1024, 65536, 1048576}
)

const (
	DefaultThreads               = 1
	DefaultWarmupIterations      = 3
	DefaultMeasurementIterations = 5
	DefaultIterationTime         = "1s"
	DefaultFormat                = "table"
	DefaultLogFormat             = "text"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Bench holds the harness settings.
type Bench struct {
	// Sizes: buffer sizes in bytes, one case per size
	Sizes []int `json:"sizes" yaml:"sizes"`
	// Scenarios: scenario names to run; empty runs all
	Scenarios []string `json:"scenarios,omitempty" yaml:"scenarios,omitempty"`
	// Backends: "go", "cgo"; empty runs every available backend
	Backends []string `json:"backends,omitempty" yaml:"backends,omitempty"`
	// Threads: goroutines per case, each with private buffers
	Threads int `json:"threads" yaml:"threads"`
	// WarmupIterations: untimed iterations before measuring
	WarmupIterations int `json:"warmupIterations" yaml:"warmupIterations"`
	// MeasurementIterations: timed iterations averaged into the result
	MeasurementIterations int `json:"measurementIterations" yaml:"measurementIterations"`
	// IterationTime: wall time of one iteration, as a Go duration string
	IterationTime string `json:"iterationTime" yaml:"iterationTime"`
}

// Output holds the report and logging settings.
type Output struct {
	// Format: "table", "json" or "yaml"
	Format string `json:"format" yaml:"format"`
	// Log: "text" or "json"
	Log string `json:"log" yaml:"log"`
}

// Config represents the complete configuration.
type Config struct {
	Bench  Bench  `json:"bench" yaml:"bench"`
	Output Output `json:"output" yaml:"output"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	return &Config{
		Bench: Bench{
			Sizes:                 append([]int(nil), DefaultSizes...),
			Threads:               DefaultThreads,
			WarmupIterations:      DefaultWarmupIterations,
			MeasurementIterations: DefaultMeasurementIterations,
			IterationTime:         DefaultIterationTime,
		},
		Output: Output{
			Format: DefaultFormat,
			Log:    DefaultLogFormat,
		},
	}
}

// IterationDuration parses [Bench.IterationTime].
func (c *Config) IterationDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Bench.IterationTime)
	if err != nil {
		return 0, fmt.Errorf("%w: iterationTime: %w", ErrInvalidConfig, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: iterationTime must be positive, got %s", ErrInvalidConfig, d)
	}
	return d, nil
}

// detectConfigFormat determines the configuration file format based on file extension.
// Matching is case-insensitive; anything that is not .yaml or .yml is read as JSON.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load loads configuration from a JSON or YAML file or applies defaults.
//
// Configuration Priority:
//  1. Default values are set
//  2. EnvConfigFile is checked if configPath is empty
//  3. Config file values override defaults (if a path is known)
//  4. Out-of-range counts and empty values fall back to defaults
//
// The result is validated with [Validate] before it is returned.
func Load(configPath string) (*Config, error) {
	config := Default()

	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := unmarshalConfig(data, config, detectConfigFormat(configPath)); err != nil {
			return nil, err
		}

		applyFallbacks(config)
	}

	if err := Validate(config); err != nil {
		return nil, err
	}
	return config, nil
}

// applyFallbacks resets values that cannot be meaningful to their defaults.
// Negative sizes are left alone so validation can report them.
func applyFallbacks(c *Config) {
	if len(c.Bench.Sizes) == 0 {
		c.Bench.Sizes = append([]int(nil), DefaultSizes...)
	}
	if c.Bench.Threads <= 0 {
		c.Bench.Threads = DefaultThreads
	}
	if c.Bench.WarmupIterations < 0 {
		c.Bench.WarmupIterations = DefaultWarmupIterations
	}
	if c.Bench.MeasurementIterations <= 0 {
		c.Bench.MeasurementIterations = DefaultMeasurementIterations
	}
	if c.Bench.IterationTime == "" {
		c.Bench.IterationTime = DefaultIterationTime
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultFormat
	}
	if c.Output.Log == "" {
		c.Output.Log = DefaultLogFormat
	}
}
