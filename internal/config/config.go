// Package config loads pixed editor settings from a TOML file and
// PIXED_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/pixed"
)

// EnvPrefix is the prefix of environment variables read by ApplyEnv.
const EnvPrefix = "PIXED_"

// ErrInvalid is returned by Validate for settings outside their range.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds editor settings.
type Config struct {
	Grid         Grid     `toml:"grid"`
	CellSize     int      `toml:"cell_size"`
	HistoryLimit int      `toml:"history_limit"`
	Background   string   `toml:"background"`
	Color        string   `toml:"color"`
	Palette      []string `toml:"palette"`
	Log          Log      `toml:"log"`
}

// Grid is the canvas size in cells.
type Grid struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Log configures diagnostic output. The terminal belongs to the editor,
// so logs only go to a file.
type Log struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the built-in settings. Terminal cells are coarse, so the
// cell size starts at the smallest zoom.
func Default() Config {
	return Config{
		Grid:         Grid{Width: pixed.DefaultGridSize, Height: pixed.DefaultGridSize},
		CellSize:     pixed.MinCellSize,
		HistoryLimit: pixed.DefaultHistoryLimit,
		Background:   "#00000000",
		Color:        "#000000",
		Palette: []string{
			"#000000", "#ffffff", "#ff0000", "#00ff00", "#0000ff",
			"#ffff00", "#ff00ff", "#00ffff", "#808080",
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := cfg.Decode(f); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r over the current values. Keys absent from the
// document keep their values.
func (c *Config) Decode(r io.Reader) error {
	d := toml.NewDecoder(r)
	d.DisallowUnknownFields()
	if err := d.Decode(c); err != nil {
		return fmt.Errorf("decode TOML: %w", err)
	}
	return nil
}

// ApplyEnv overrides settings from PIXED_* variables using lookup,
// normally os.LookupEnv. Recognized variables: PIXED_GRID_WIDTH,
// PIXED_GRID_HEIGHT, PIXED_GRID_SIZE (both sides), PIXED_CELL_SIZE,
// PIXED_HISTORY_LIMIT, PIXED_BACKGROUND, PIXED_COLOR, PIXED_PALETTE
// (comma separated), PIXED_LOG_LEVEL and PIXED_LOG_FILE.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		name string
		dst  []*int
	}{
		{"GRID_SIZE", []*int{&c.Grid.Width, &c.Grid.Height}},
		{"GRID_WIDTH", []*int{&c.Grid.Width}},
		{"GRID_HEIGHT", []*int{&c.Grid.Height}},
		{"CELL_SIZE", []*int{&c.CellSize}},
		{"HISTORY_LIMIT", []*int{&c.HistoryLimit}},
	}
	for _, v := range ints {
		s, ok := lookup(EnvPrefix + v.name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("config: %s%s: %w", EnvPrefix, v.name, err)
		}
		for _, dst := range v.dst {
			*dst = n
		}
	}

	strs := []struct {
		name string
		dst  *string
	}{
		{"BACKGROUND", &c.Background},
		{"COLOR", &c.Color},
		{"LOG_LEVEL", &c.Log.Level},
		{"LOG_FILE", &c.Log.File},
	}
	for _, v := range strs {
		if s, ok := lookup(EnvPrefix + v.name); ok {
			*v.dst = strings.TrimSpace(s)
		}
	}

	if s, ok := lookup(EnvPrefix + "PALETTE"); ok {
		c.Palette = nil
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				c.Palette = append(c.Palette, p)
			}
		}
	}
	return nil
}

// Validate checks sizes, colors and the log level.
func (c *Config) Validate() error {
	var errs []error
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: grid %dx%d", ErrInvalid, c.Grid.Width, c.Grid.Height))
	}
	if c.CellSize < pixed.MinCellSize {
		errs = append(errs, fmt.Errorf("%w: cell_size %d below %d", ErrInvalid, c.CellSize, pixed.MinCellSize))
	}
	if c.HistoryLimit < 0 {
		errs = append(errs, fmt.Errorf("%w: history_limit %d", ErrInvalid, c.HistoryLimit))
	}
	for _, s := range append([]string{c.Background, c.Color}, c.Palette...) {
		if _, err := pixed.ParseHex(s); err != nil {
			errs = append(errs, err)
		}
	}
	if len(c.Palette) > 9 {
		errs = append(errs, fmt.Errorf("%w: palette has %d colors, at most 9", ErrInvalid, len(c.Palette)))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// LogLevel parses Log.Level. An empty level means info.
func (c *Config) LogLevel() (slog.Level, error) {
	var l slog.Level
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return l, nil
}

// SessionOptions converts the settings into options for pixed.NewSession.
func (c *Config) SessionOptions() ([]pixed.SessionOption, error) {
	bg, err := pixed.ParseHex(c.Background)
	if err != nil {
		return nil, fmt.Errorf("config: background: %w", err)
	}
	fg, err := pixed.ParseHex(c.Color)
	if err != nil {
		return nil, fmt.Errorf("config: color: %w", err)
	}
	return []pixed.SessionOption{
		pixed.WithGridSize(c.Grid.Width, c.Grid.Height),
		pixed.WithCellSize(c.CellSize),
		pixed.WithHistoryLimit(c.HistoryLimit),
		pixed.WithBackground(bg),
		pixed.WithColor(fg),
	}, nil
}

// PaletteColors parses the palette.
func (c *Config) PaletteColors() ([]pixed.Color, error) {
	colors := make([]pixed.Color, 0, len(c.Palette))
	for i, s := range c.Palette {
		col, err := pixed.ParseHex(s)
		if err != nil {
			return nil, fmt.Errorf("config: palette[%d]: %w", i, err)
		}
		colors = append(colors, col)
	}
	return colors, nil
}
