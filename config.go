package main

import (
	"errors"
	"fmt"
	"image/color"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type PaletteColor struct {
	Name string `yaml:"name"`
	Hex  string `yaml:"hex"`
}

// Color resolves the hex value; unparsable values render black.
func (p PaletteColor) Color() color.Color {
	c, err := colorful.Hex(p.Hex)
	if err != nil {
		return color.Black
	}
	return c
}

type Config struct {
	SaveDirectory string          `yaml:"save_directory"`
	GridSize      int             `yaml:"grid_size"`
	CellSize      int             `yaml:"cell_size"`
	CornerRatio   float64         `yaml:"corner_ratio"`
	Palette       []PaletteColor  `yaml:"palette"`
	Density       map[int]float64 `yaml:"density"`
	StampPolicy   string          `yaml:"stamp_policy"`
	Seed          int64           `yaml:"seed"`
	PNGCaption    bool            `yaml:"png_caption"`
	LogFile       string          `yaml:"log_file"`
}

func defaultPalette() []PaletteColor {
	return []PaletteColor{
		{Name: "blue", Hex: "#2e5cb8"},
		{Name: "orange", Hex: "#e8833a"},
	}
}

func defaultDensity() map[int]float64 {
	return map[int]float64{
		2:  0.75,
		3:  0.6,
		4:  0.5,
		5:  0.45,
		6:  0.4,
		8:  0.35,
		10: 0.3,
	}
}

func DefaultConfig() *Config {
	return &Config{
		GridSize:    defaultGrid,
		CellSize:    defaultCellPx,
		CornerRatio: defaultCorner,
		Palette:     defaultPalette(),
		Density:     defaultDensity(),
		StampPolicy: StampReplace.String(),
	}
}

func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".shapegridrc")
}

// LoadConfig reads a YAML config from path, or from ~/.shapegridrc when path
// is empty. A missing file yields the defaults. The returned config is always
// usable; a non-nil error reports what was wrong with the file.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		path = defaultConfigPath()
		if path == "" {
			return config, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("read config: %w", err)
	}

	loaded := DefaultConfig()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return config, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := loaded.Validate(); err != nil {
		return loaded, err
	}
	return loaded, nil
}

// Validate puts every out-of-range field back to its default and reports
// what it changed.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(gridSizes, c.GridSize) {
		errs = append(errs, fmt.Errorf("%w: grid_size %d not in %v", ErrInvalidConfig, c.GridSize, gridSizes))
		c.GridSize = defaultGrid
	}
	if c.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: cell_size %d", ErrInvalidConfig, c.CellSize))
		c.CellSize = defaultCellPx
	}
	if c.CornerRatio <= 0 || c.CornerRatio > 0.5 {
		errs = append(errs, fmt.Errorf("%w: corner_ratio %g outside (0, 0.5]", ErrInvalidConfig, c.CornerRatio))
		c.CornerRatio = defaultCorner
	}
	if len(c.Palette) < minPalette || len(c.Palette) > maxPalette {
		errs = append(errs, fmt.Errorf("%w: palette needs %d to %d colors, got %d", ErrInvalidConfig, minPalette, maxPalette, len(c.Palette)))
		c.Palette = defaultPalette()
	} else {
		for _, p := range c.Palette {
			if _, err := colorful.Hex(p.Hex); err != nil {
				errs = append(errs, fmt.Errorf("%w: palette color %q: %v", ErrInvalidConfig, p.Name, err))
				c.Palette = defaultPalette()
				break
			}
		}
	}
	for size, p := range c.Density {
		if size <= 0 || p < 0 || p > 1 {
			errs = append(errs, fmt.Errorf("%w: density %d=%g", ErrInvalidConfig, size, p))
			delete(c.Density, size)
		}
	}
	if len(c.Density) == 0 {
		c.Density = defaultDensity()
	}
	if _, ok := parseStampPolicy(strings.ToLower(c.StampPolicy)); !ok {
		errs = append(errs, fmt.Errorf("%w: stamp_policy %q", ErrInvalidConfig, c.StampPolicy))
		c.StampPolicy = StampReplace.String()
	}
	if c.SaveDirectory != "" {
		c.SaveDirectory = expandPath(c.SaveDirectory)
	}

	return errors.Join(errs...)
}

func (c *Config) Policy() StampPolicy {
	p, _ := parseStampPolicy(strings.ToLower(c.StampPolicy))
	return p
}

// WindowSizes lists the output-window sizes available on an n×n board,
// smallest first.
func (c *Config) WindowSizes(n int) []int {
	var sizes []int
	for _, s := range slices.Sorted(maps.Keys(c.Density)) {
		if s <= n {
			sizes = append(sizes, s)
		}
	}
	if len(sizes) == 0 {
		sizes = []int{n}
	}
	return sizes
}

// DensityFor returns the fill probability for an s×s window. Sizes missing
// from the table use the nearest smaller entry.
func (c *Config) DensityFor(s int) float64 {
	if p, ok := c.Density[s]; ok {
		return p
	}
	best, found := 0, false
	for size := range c.Density {
		if size < s && (!found || size > best) {
			best, found = size, true
		}
	}
	if found {
		return c.Density[best]
	}
	return 0.5
}

func (c *Config) ColorName(t ColorToken) string {
	if int(t) < 0 || int(t) >= len(c.Palette) {
		return "?"
	}
	return c.Palette[t].Name
}

func (c *Config) ColorHex(t ColorToken) string {
	if int(t) < 0 || int(t) >= len(c.Palette) {
		return "#000000"
	}
	return c.Palette[t].Hex
}

// GetSavePath joins filename onto the save directory, creating the
// directory if needed.
func (c *Config) GetSavePath(filename string) (string, error) {
	if c.SaveDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		return "", fmt.Errorf("create save directory: %w", err)
	}
	return c.savePath(filename), nil
}

func (c *Config) savePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	return filepath.Join(c.SaveDirectory, filename)
}

func expandPath(value string) string {
	if strings.HasPrefix(value, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
		}
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}
