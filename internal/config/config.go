// Package config loads gridcover settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-ricrob/gridcover/internal/grid"
	"github.com/go-ricrob/gridcover/internal/logging"
	"github.com/go-ricrob/gridcover/internal/packed"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the file written by "gridcover init" when no path is given.
const DefaultPath = "gridcover.yaml"

// ErrInvalid wraps every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config describes one search.
type Config struct {
	Rows    int          `yaml:"rows"`
	Cols    int          `yaml:"cols"`
	Blocked []grid.Coord `yaml:"blocked"`
	// Moves bounds the number of cells on a path.
	Moves   int  `yaml:"moves"`
	Pruning bool `yaml:"pruning"`

	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`
}

// Default returns the reference problem: an 8x8 grid with 9 blocked cells and a budget of 25.
func Default() Config {
	return Config{
		Rows: 8,
		Cols: 8,
		Blocked: []grid.Coord{
			{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3}, {Row: 2, Col: 4},
			{Row: 3, Col: 3}, {Row: 4, Col: 3}, {Row: 5, Col: 5}, {Row: 6, Col: 6},
		},
		Moves:    25,
		Pruning:  true,
		LogLevel: "info",
	}
}

// Load reads path over the defaults. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	// a blocked list in the file replaces the default one
	cfg.Blocked = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the grid size, the move budget and the log level.
func (c Config) Validate() error {
	if c.Rows < 0 || c.Cols < 0 {
		return fmt.Errorf("%w: grid size %dx%d", ErrInvalid, c.Rows, c.Cols)
	}
	if c.Moves < 1 {
		return fmt.Errorf("%w: moves must be at least 1, got %d", ErrInvalid, c.Moves)
	}
	if _, err := packed.New(c.Rows, c.Cols, c.Moves); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Grid builds the grid described by c.
func (c Config) Grid() (*grid.Grid, error) { return grid.New(c.Rows, c.Cols, c.Blocked) }

// Logging returns the logger config described by c.
func (c Config) Logging() (logging.Config, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logging.Config{}, err
	}
	return logging.Config{Level: level, JSON: c.LogJSON}, nil
}

// Write stores cfg at path, creating missing directories.
func Write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
