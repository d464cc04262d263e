// Package config loads and saves hexgrid settings.
//
// Files follow the XDG Base Directory layout:
//   - Config: ~/.config/hexgrid/config.yaml
//   - State:  ~/.local/state/hexgrid/ (debug log)
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const appName = "hexgrid"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Bounds accepted by Validate.
const (
	MinDim        = 1
	MaxDim        = 32
	MinCellWidth  = 8
	MaxCellWidth  = 40
	MinCellHeight = 3
	MaxCellHeight = 15
)

// GridConfig sets the palette capacity as columns × rows.
type GridConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// CellConfig sets the size of one rendered swatch in terminal cells.
type CellConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ClipboardConfig controls the leader clipboard commands.
type ClipboardConfig struct {
	Enabled bool `yaml:"enabled"`
	OSC52   bool `yaml:"osc52"` // write via terminal escape when no system tool exists
}

// Config holds application configuration.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Cell      CellConfig      `yaml:"cell"`
	Clipboard ClipboardConfig `yaml:"clipboard"`
	LogFile   string          `yaml:"log_file,omitempty"`
}

// DefaultConfig returns the built-in settings: an 8×8 grid of 10×3 cells with
// the clipboard enabled.
func DefaultConfig() *Config {
	return &Config{
		Grid:      GridConfig{Cols: 8, Rows: 8},
		Cell:      CellConfig{Width: 10, Height: 3},
		Clipboard: ClipboardConfig{Enabled: true, OSC52: true},
	}
}

// ConfigDir returns the XDG config directory for hexgrid.
func ConfigDir() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// StateDir returns the XDG state directory for hexgrid.
func StateDir() string {
	return xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

func xdgDir(env, fallback string) string {
	if dir := os.Getenv(env); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, fallback, appName)
}

// Path returns the default config file location, or "" when no home
// directory can be determined.
func Path() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config from the default location.
func Load() (*Config, error) {
	p := Path()
	if p == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(p)
}

// LoadFrom reads the config at path. A missing file yields the defaults; keys
// absent from the file keep their default values.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to the default location.
func Save(cfg *Config) error {
	p := Path()
	if p == "" {
		return errors.New("cannot determine config directory")
	}
	return SaveTo(cfg, p)
}

// SaveTo writes the config as YAML to path, creating parent directories.
func SaveTo(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	FixOwnership(path)
	return nil
}

// Validate reports the first out-of-range setting.
func (c *Config) Validate() error {
	switch {
	case c.Grid.Cols < MinDim || c.Grid.Cols > MaxDim:
		return fmt.Errorf("%w: grid.cols %d not in [%d, %d]", ErrInvalid, c.Grid.Cols, MinDim, MaxDim)
	case c.Grid.Rows < MinDim || c.Grid.Rows > MaxDim:
		return fmt.Errorf("%w: grid.rows %d not in [%d, %d]", ErrInvalid, c.Grid.Rows, MinDim, MaxDim)
	case c.Cell.Width < MinCellWidth || c.Cell.Width > MaxCellWidth:
		return fmt.Errorf("%w: cell.width %d not in [%d, %d]", ErrInvalid, c.Cell.Width, MinCellWidth, MaxCellWidth)
	case c.Cell.Height < MinCellHeight || c.Cell.Height > MaxCellHeight:
		return fmt.Errorf("%w: cell.height %d not in [%d, %d]", ErrInvalid, c.Cell.Height, MinCellHeight, MaxCellHeight)
	}
	return nil
}

// Capacity is the number of cells the grid can hold.
func (c *Config) Capacity() int {
	return c.Grid.Cols * c.Grid.Rows
}
