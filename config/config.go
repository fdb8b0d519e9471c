// Package config loads the optional TOML settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/orrery/constants"
)

// ErrInvalid marks a config value outside its accepted set
var ErrInvalid = errors.New("invalid config value")

// Color modes accepted by [display] color
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// DefaultPath is the settings file location relative to the home directory
const DefaultPath = "~/.config/orrery/config.toml"

// Config is the complete settings tree
type Config struct {
	Display DisplayConfig     `toml:"display"`
	Assets  AssetsConfig      `toml:"assets"`
	Audio   AudioConfig       `toml:"audio"`
	Input   InputConfig       `toml:"input"`
	Keys    map[string]string `toml:"keys"`
}

type DisplayConfig struct {
	Color   string `toml:"color"`
	TickMs  int    `toml:"tick_ms"`
	FrameMs int    `toml:"frame_ms"`
	HUD     bool   `toml:"hud"`
}

type AssetsConfig struct {
	Dir string `toml:"dir"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// InputConfig carries the assumed terminal cell size in pixels for pointer scaling
type InputConfig struct {
	CellWidth  int `toml:"cell_width"`
	CellHeight int `toml:"cell_height"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Color:   ColorAuto,
			TickMs:  int(constants.TickInterval.Milliseconds()),
			FrameMs: int(constants.FrameUpdateInterval.Milliseconds()),
			HUD:     true,
		},
		Assets: AssetsConfig{Dir: "assets/textures"},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  constants.DefaultVolume,
		},
		Input: InputConfig{
			CellWidth:  constants.DefaultCellWidth,
			CellHeight: constants.DefaultCellHeight,
		},
	}
}

// ResolvePath expands a leading ~ and falls back to DefaultPath when path is empty
func ResolvePath(path string) (string, error) {
	if path == "" {
		path = DefaultPath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expand config path %q: %w", path, err)
	}
	return filepath.Clean(expanded), nil
}

// Load reads the TOML file at path over the defaults
// A missing file is not an error; the defaults are returned
// On a read or parse error the defaults are returned; on a validation error
// the parsed config is returned with the offending values reset
func Load(path string) (*Config, error) {
	cfg := Default()

	resolved, err := ResolvePath(path)
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	parsed := Default()
	if err := toml.Unmarshal(data, parsed); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", resolved, err)
	}
	if err := parsed.Validate(); err != nil {
		return parsed, fmt.Errorf("config %s: %w", resolved, err)
	}
	return parsed, nil
}

// Validate clamps numeric ranges and rejects unknown enum values
// Clamping is silent; an unknown color mode is reset to auto and reported
func (c *Config) Validate() error {
	if c.Display.TickMs <= 0 {
		c.Display.TickMs = int(constants.TickInterval.Milliseconds())
	}
	if c.Display.FrameMs <= 0 {
		c.Display.FrameMs = int(constants.FrameUpdateInterval.Milliseconds())
	}
	c.Audio.Volume = max(0, min(c.Audio.Volume, 1))
	if c.Input.CellWidth <= 0 {
		c.Input.CellWidth = constants.DefaultCellWidth
	}
	if c.Input.CellHeight <= 0 {
		c.Input.CellHeight = constants.DefaultCellHeight
	}

	switch c.Display.Color {
	case ColorAuto, ColorTrueColor, Color256:
	case "":
		c.Display.Color = ColorAuto
	default:
		bad := c.Display.Color
		c.Display.Color = ColorAuto
		return fmt.Errorf("%w: display.color %q (want auto, truecolor or 256)", ErrInvalid, bad)
	}
	return nil
}
