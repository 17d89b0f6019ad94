package config

import (
	"sort"
	"time"
)

// Presets adjust DefaultConfig for common backgrounds.
var Presets = map[string]func(*Config){
	"page": func(c *Config) {
		c.Variant = "fall"
	},
	"project": func(c *Config) {
		c.Variant = "static"
		c.Palette = "project"
	},
	"rain": func(c *Config) {
		c.Variant = "fall"
		c.Fall.Speed = 0.08
		c.Fall.Interval = 250 * time.Millisecond
		c.Fall.SizeMin, c.Fall.SizeMax = 20, 90
	},
	"sway": func(c *Config) {
		c.Variant = "wobble"
		c.RegenFade = 600 * time.Millisecond
		c.RegenEasing = "in-out-sine"
	},
	"drift": func(c *Config) {
		c.Variant = "spawn"
		c.Spawn.Interval = 50 * time.Millisecond
	},
	"confetti": func(c *Config) {
		c.Variant = "spawn"
		c.Spawn.MaxDepth, c.Spawn.MinSize = 9, 8
		c.Spawn.SpeedMin, c.Spawn.SpeedMax = 1, 3
		c.Spawn.OpacityStep = 0.05
	},
}

// GetPreset returns DefaultConfig with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
