// Package config loads painterm configuration from TOML. A missing file is
// not an error: every field has a default, and the file only overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/painterm/internal/canvas"
)

// Limits on configurable values.
const (
	MaxCanvasDim  = 4096
	MaxUndoDepth  = 100000
	DefaultWidth  = 80
	DefaultHeight = 24
	DefaultDepth  = 1000
)

// Config is the full application configuration.
type Config struct {
	Canvas  CanvasConfig      `toml:"canvas"`
	History HistoryConfig     `toml:"history"`
	Brush   BrushConfig       `toml:"brush"`
	Palette []string          `toml:"palette"`
	Keys    map[string]string `toml:"keys"`
	Log     LogConfig         `toml:"log"`
}

// CanvasConfig sets the starting canvas dimensions.
type CanvasConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// HistoryConfig bounds the undo stack.
type HistoryConfig struct {
	MaxDepth int `toml:"max_depth"`
}

// BrushConfig sets the starting brush.
type BrushConfig struct {
	Glyph string `toml:"glyph"`
}

// LogConfig routes logging. The terminal belongs to the UI, so logs go to a
// file; an empty path disables logging.
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Canvas:  CanvasConfig{Width: DefaultWidth, Height: DefaultHeight},
		History: HistoryConfig{MaxDepth: DefaultDepth},
		Brush:   BrushConfig{Glyph: "█"},
		Palette: []string{
			"#ffffff", "#ff5555", "#50fa7b", "#f1fa8c",
			"#bd93f9", "#ff79c6", "#8be9fd", "#ffb86c",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the configuration at path, merged over the defaults. A missing
// file returns the defaults with no error. Decoding is strict: an unknown
// key is an error, so a top-level key written after a table header (which
// TOML scopes into that table) fails loudly instead of being dropped.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Default(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and parseability of every configured value.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Width > MaxCanvasDim {
		return fmt.Errorf("canvas width %d out of range [1,%d]", c.Canvas.Width, MaxCanvasDim)
	}
	if c.Canvas.Height <= 0 || c.Canvas.Height > MaxCanvasDim {
		return fmt.Errorf("canvas height %d out of range [1,%d]", c.Canvas.Height, MaxCanvasDim)
	}
	if c.History.MaxDepth <= 0 || c.History.MaxDepth > MaxUndoDepth {
		return fmt.Errorf("history max_depth %d out of range [1,%d]", c.History.MaxDepth, MaxUndoDepth)
	}
	if _, err := c.BrushGlyph(); err != nil {
		return err
	}
	if len(c.Palette) == 0 {
		return errors.New("palette must have at least one color")
	}
	if _, err := c.PaletteColors(); err != nil {
		return err
	}
	return nil
}

// PaletteColors parses the configured palette into canvas colors.
func (c Config) PaletteColors() ([]canvas.Color, error) {
	colors := make([]canvas.Color, 0, len(c.Palette))
	for _, hex := range c.Palette {
		col, err := canvas.ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette: %w", err)
		}
		colors = append(colors, col)
	}
	return colors, nil
}

// BrushGlyph returns the configured brush glyph as a rune.
func (c Config) BrushGlyph() (rune, error) {
	runes := []rune(c.Brush.Glyph)
	if len(runes) != 1 {
		return 0, fmt.Errorf("brush glyph %q must be exactly one character", c.Brush.Glyph)
	}
	return runes[0], nil
}
