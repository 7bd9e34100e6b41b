// Package config holds the settings of the coinweigh command and their
// YAML representation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Mode selects the solving strategy.
type Mode string

const (
	ModeSequential Mode = "sequential"
	ModeStatic     Mode = "static"
)

// Format selects the output representation.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// Color selects when text output is styled.
type Color string

const (
	ColorAuto   Color = "auto"
	ColorAlways Color = "always"
	ColorNever  Color = "never"
)

var (
	// ErrInvalidCoins indicates a coin count below 3.
	ErrInvalidCoins = errors.New("config: coins must be at least 3")

	// ErrInvalidMode indicates an unknown mode.
	ErrInvalidMode = errors.New("config: invalid mode")

	// ErrInvalidFormat indicates an unknown output format.
	ErrInvalidFormat = errors.New("config: invalid format")

	// ErrInvalidColor indicates an unknown color setting.
	ErrInvalidColor = errors.New("config: invalid color")

	// ErrInvalidParallelDepth indicates a negative parallel depth.
	ErrInvalidParallelDepth = errors.New("config: parallel_depth must be non-negative")
)

// Config is the complete coinweigh configuration.
type Config struct {
	Coins int  `yaml:"coins"`
	Mode  Mode `yaml:"mode"`

	// Quiet prints only the summary line.
	Quiet   bool `yaml:"quiet"`
	Verbose bool `yaml:"verbose"`

	// ParallelDepth fans out the top levels of the sequential search.
	ParallelDepth int `yaml:"parallel_depth"`

	Format Format `yaml:"format"`
	Color  Color  `yaml:"color"`
}

// DefaultConfig returns the classic twelve-coin puzzle, solved sequentially
// and printed as text.
func DefaultConfig() *Config {
	return &Config{
		Coins:         12,
		Mode:          ModeSequential,
		ParallelDepth: 0,
		Format:        FormatText,
		Color:         ColorAuto,
	}
}

// Load reads configuration from a YAML file. An empty path or a missing
// file yields the defaults; keys absent from the file keep their default
// values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration to a YAML file, creating its directory.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides honours the NO_COLOR convention (https://no-color.org).
func (c *Config) applyEnvOverrides() {
	if os.Getenv("NO_COLOR") != "" && c.Color == ColorAuto {
		c.Color = ColorNever
	}
}

// Validate checks every field.
func (c *Config) Validate() error {
	if c.Coins < 3 {
		return fmt.Errorf("%w: got %d", ErrInvalidCoins, c.Coins)
	}
	switch c.Mode {
	case ModeSequential, ModeStatic:
	default:
		return fmt.Errorf("%w: %q (valid: %s, %s)", ErrInvalidMode, c.Mode, ModeSequential, ModeStatic)
	}
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("%w: %q (valid: %s, %s)", ErrInvalidFormat, c.Format, FormatText, FormatYAML)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: %q (valid: %s, %s, %s)", ErrInvalidColor, c.Color, ColorAuto, ColorAlways, ColorNever)
	}
	if c.ParallelDepth < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidParallelDepth, c.ParallelDepth)
	}

	return nil
}
