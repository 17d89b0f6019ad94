// Package config loads mosaic settings from YAML and maps them onto the
// mosaic package options.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/mosaic"
	"github.com/phanxgames/mosaic/page"
)

const (
	DefaultVariant        = mosaic.VariantFall
	DefaultWidth          = 1280
	DefaultHeight         = 720
	DefaultLogLevel       = "info"
	DefaultRecordFrames   = 100
	DefaultRecordFPS      = mosaic.DefaultRecordFPS
	DefaultScreenshotDir  = "screenshots"
	DefaultPageTitle      = "Portfolio"
	DefaultResizeDebounce = mosaic.DefaultResizeDebounce
)

type Config struct {
	Variant       string `yaml:"variant"`
	Seed          uint64 `yaml:"seed"`
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`
	Debug         bool   `yaml:"debug"`
	ShowFPS       bool   `yaml:"show_fps"`
	Background    bool   `yaml:"background"`
	ClearColor    string `yaml:"clear_color"`
	ScreenshotDir string `yaml:"screenshot_dir"`

	// Palette names a built-in palette; Colors, when set, replaces it.
	Palette string   `yaml:"palette"`
	Colors  []string `yaml:"colors"`

	ResizeDebounce time.Duration `yaml:"resize_debounce"`
	RegenFade      time.Duration `yaml:"regen_fade"`
	RegenEasing    string        `yaml:"regen_easing"`
	MaxDelta       time.Duration `yaml:"max_delta"`

	Static StaticConfig `yaml:"static"`
	Fall   FallConfig   `yaml:"fall"`
	Wobble WobbleConfig `yaml:"wobble"`
	Spawn  SpawnConfig  `yaml:"spawn"`

	Record RecordConfig `yaml:"record"`
	Page   PageConfig   `yaml:"page"`
}

type SubdivideConfig struct {
	MaxDepth int     `yaml:"max_depth"`
	MinSize  float64 `yaml:"min_size"`
}

type StaticConfig struct {
	SubdivideConfig `yaml:",inline"`
}

type FallConfig struct {
	SubdivideConfig `yaml:",inline"`
	Speed           float64       `yaml:"speed"`
	FadeRate        float64       `yaml:"fade_rate"`
	Margin          float64       `yaml:"margin"`
	Chance          float64       `yaml:"chance"`
	Interval        time.Duration `yaml:"interval"`
	SizeMin         float64       `yaml:"size_min"`
	SizeMax         float64       `yaml:"size_max"`
	Gap             float64       `yaml:"gap"`
}

type WobbleConfig struct {
	SubdivideConfig `yaml:",inline"`
	Shift           float64 `yaml:"shift"`
	Tilt            float64 `yaml:"tilt"`
	Zoom            float64 `yaml:"zoom"`
	Frequency       float64 `yaml:"frequency"`
}

type SpawnConfig struct {
	SubdivideConfig `yaml:",inline"`
	Interval        time.Duration `yaml:"interval"`
	Chance          float64       `yaml:"chance"`
	SpeedMin        float64       `yaml:"speed_min"`
	SpeedMax        float64       `yaml:"speed_max"`
	OpacityStep     float64       `yaml:"opacity_step"`
	Margin          float64       `yaml:"margin"`
}

type RecordConfig struct {
	Frames int           `yaml:"frames"`
	FPS    int           `yaml:"fps"`
	Warmup time.Duration `yaml:"warmup"`
}

type PageConfig struct {
	Title      string       `yaml:"title"`
	Background string       `yaml:"background_src"`
	Profile    page.Profile `yaml:"profile"`
}

func DefaultConfig() *Config {
	static := mosaic.DefaultStaticConfig()
	fall := mosaic.DefaultFallConfig()
	wobble := mosaic.DefaultWobbleConfig()
	spawn := mosaic.DefaultSpawnConfig()
	return &Config{
		Variant:        DefaultVariant,
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		LogLevel:       DefaultLogLevel,
		ScreenshotDir:  DefaultScreenshotDir,
		ResizeDebounce: DefaultResizeDebounce,
		RegenEasing:    "linear",
		MaxDelta:       mosaic.DefaultMaxDelta,
		Static: StaticConfig{
			SubdivideConfig: SubdivideConfig{static.MaxDepth, static.MinSize},
		},
		Fall: FallConfig{
			SubdivideConfig: SubdivideConfig{fall.MaxDepth, fall.MinSize},
			Speed:           fall.Speed,
			FadeRate:        fall.FadeRate,
			Margin:          fall.Margin,
			Chance:          fall.Chance,
			Interval:        fall.Interval,
			SizeMin:         fall.Size.Min,
			SizeMax:         fall.Size.Max,
			Gap:             fall.Gap,
		},
		Wobble: WobbleConfig{
			SubdivideConfig: SubdivideConfig{wobble.MaxDepth, wobble.MinSize},
			Shift:           wobble.Shift,
			Tilt:            wobble.Tilt,
			Zoom:            wobble.Zoom,
			Frequency:       wobble.Frequency,
		},
		Spawn: SpawnConfig{
			SubdivideConfig: SubdivideConfig{spawn.MaxDepth, spawn.MinSize},
			Interval:        spawn.Interval,
			Chance:          spawn.Chance,
			SpeedMin:        spawn.Speed.Min,
			SpeedMax:        spawn.Speed.Max,
			OpacityStep:     spawn.OpacityStep,
			Margin:          spawn.Margin,
		},
		Record: RecordConfig{
			Frames: DefaultRecordFrames,
			FPS:    DefaultRecordFPS,
		},
		Page: PageConfig{
			Title: DefaultPageTitle,
			Profile: page.Profile{
				Name:   "Your Name",
				Role:   "Software Engineer",
				Footer: "Built with mosaic",
			},
		},
	}
}

// Load reads path over the defaults, so a file only needs the keys it
// changes.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto reads path over cfg, keeping every key the file leaves out, and
// validates the result.
func LoadInto(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks names and sizes that would otherwise fail late.
func (c *Config) Validate() error {
	if !knownVariant(c.Variant) {
		return fmt.Errorf("%w: %q", mosaic.ErrUnknownVariant, c.Variant)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	sections := []struct {
		name string
		sub  SubdivideConfig
	}{
		{"static", c.Static.SubdivideConfig},
		{"fall", c.Fall.SubdivideConfig},
		{"wobble", c.Wobble.SubdivideConfig},
		{"spawn", c.Spawn.SubdivideConfig},
	}
	for _, s := range sections {
		if s.sub.MaxDepth <= 0 {
			return fmt.Errorf("%s: max_depth must be positive, got %d", s.name, s.sub.MaxDepth)
		}
		if s.sub.MinSize < 0 {
			return fmt.Errorf("%s: min_size must not be negative, got %v", s.name, s.sub.MinSize)
		}
	}
	if _, err := c.Colorset(); err != nil {
		return err
	}
	if _, err := c.Clear(); err != nil {
		return err
	}
	if _, ok := mosaic.EasingByName(c.RegenEasing); !ok && c.RegenEasing != "" {
		return fmt.Errorf("unknown easing %q", c.RegenEasing)
	}
	return nil
}

func knownVariant(name string) bool {
	for _, v := range mosaic.Variants() {
		if strings.EqualFold(v, name) {
			return true
		}
	}
	return false
}

// Colorset resolves Colors or Palette. A nil palette leaves each variant
// with its own default.
func (c *Config) Colorset() (mosaic.Palette, error) {
	if len(c.Colors) > 0 {
		p := make(mosaic.Palette, 0, len(c.Colors))
		for _, s := range c.Colors {
			col, ok := mosaic.ParseHex(s)
			if !ok {
				return nil, fmt.Errorf("invalid color %q", s)
			}
			p = append(p, col)
		}
		return p, nil
	}
	if c.Palette == "" {
		return nil, nil
	}
	p, ok := mosaic.PaletteByName(c.Palette)
	if !ok {
		return nil, fmt.Errorf("unknown palette %q", c.Palette)
	}
	return p, nil
}

// Clear parses ClearColor; empty means transparent.
func (c *Config) Clear() (mosaic.Color, error) {
	if c.ClearColor == "" {
		return mosaic.Color{}, nil
	}
	col, ok := mosaic.ParseHex(c.ClearColor)
	if !ok {
		return mosaic.Color{}, fmt.Errorf("invalid clear color %q", c.ClearColor)
	}
	return col, nil
}

// Options maps the per-variant sections onto mosaic.Options seeded from Seed.
func (c *Config) Options() (mosaic.Options, error) {
	pal, err := c.Colorset()
	if err != nil {
		return mosaic.Options{}, err
	}
	sub := func(s SubdivideConfig, def mosaic.Palette) mosaic.SubdivideConfig {
		if pal != nil {
			def = pal
		}
		return mosaic.SubdivideConfig{MaxDepth: s.MaxDepth, MinSize: s.MinSize, Palette: def}
	}
	return mosaic.Options{
		Rand: mosaic.NewRand(c.Seed),
		Static: mosaic.StaticConfig{
			SubdivideConfig: sub(c.Static.SubdivideConfig, mosaic.ProjectPalette),
		},
		Fall: mosaic.FallConfig{
			SubdivideConfig: sub(c.Fall.SubdivideConfig, mosaic.DefaultPalette),
			Speed:           c.Fall.Speed,
			FadeRate:        c.Fall.FadeRate,
			Margin:          c.Fall.Margin,
			Chance:          c.Fall.Chance,
			Interval:        c.Fall.Interval,
			Size:            mosaic.Range{Min: c.Fall.SizeMin, Max: c.Fall.SizeMax},
			Gap:             c.Fall.Gap,
		},
		Wobble: mosaic.WobbleConfig{
			SubdivideConfig: sub(c.Wobble.SubdivideConfig, mosaic.DefaultPalette),
			Shift:           c.Wobble.Shift,
			Tilt:            c.Wobble.Tilt,
			Zoom:            c.Wobble.Zoom,
			Frequency:       c.Wobble.Frequency,
		},
		Spawn: mosaic.SpawnConfig{
			SubdivideConfig: sub(c.Spawn.SubdivideConfig, mosaic.DefaultPalette),
			Interval:        c.Spawn.Interval,
			Chance:          c.Spawn.Chance,
			Speed:           mosaic.Range{Min: c.Spawn.SpeedMin, Max: c.Spawn.SpeedMax},
			OpacityStep:     c.Spawn.OpacityStep,
			Margin:          c.Spawn.Margin,
		},
	}, nil
}

// NewVariant builds the configured variant.
func (c *Config) NewVariant() (mosaic.Variant, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return mosaic.NewVariant(c.Variant, opts)
}

// ControllerConfig maps the timing settings for v.
func (c *Config) ControllerConfig(v mosaic.Variant) mosaic.ControllerConfig {
	easing, _ := mosaic.EasingByName(c.RegenEasing)
	return mosaic.ControllerConfig{
		Variant:        v,
		ResizeDebounce: c.ResizeDebounce,
		RegenFade:      c.RegenFade,
		RegenEasing:    easing,
		MaxDelta:       c.MaxDelta,
		Debug:          c.Debug,
	}
}

// RecordConfig maps the recording settings at the configured size.
func (c *Config) RecordConfig() mosaic.RecordConfig {
	bg, _ := c.Clear()
	return mosaic.RecordConfig{
		Width:      c.Width,
		Height:     c.Height,
		Frames:     c.Record.Frames,
		FPS:        c.Record.FPS,
		Warmup:     c.Record.Warmup,
		Background: bg,
	}
}
