package mosaic

import "math"

// WobbleConfig configures the whole-scene sway. Every term is a sine of
// wall-clock time, so the motion does not depend on frame pacing.
type WobbleConfig struct {
	SubdivideConfig

	// Shift is the peak translation in pixels.
	Shift float64
	// Tilt is the peak rotation in radians.
	Tilt float64
	// Zoom is the peak relative scale change (0.02 = ±2%).
	Zoom float64
	// Frequency is the base angular speed in radians per second.
	Frequency float64
}

// DefaultWobbleConfig returns a slow, subtle sway.
func DefaultWobbleConfig() WobbleConfig {
	return WobbleConfig{
		SubdivideConfig: SubdivideConfig{MaxDepth: 8, MinSize: 10, Palette: DefaultPalette},
		Shift:           12,
		Tilt:            0.015,
		Zoom:            0.02,
		Frequency:       0.6,
	}
}

// WobbleVariant draws a static mosaic under a sinusoidal translate, rotate
// and scale about the canvas center.
type WobbleVariant struct {
	cfg   WobbleConfig
	sub   *Subdivider
	tiles []Tile
}

func (c WobbleConfig) withDefaults() WobbleConfig {
	def := DefaultWobbleConfig()
	c.SubdivideConfig = c.SubdivideConfig.withDefaults(def.SubdivideConfig)
	if c.Shift == 0 {
		c.Shift = def.Shift
	}
	if c.Tilt == 0 {
		c.Tilt = def.Tilt
	}
	if c.Zoom == 0 {
		c.Zoom = def.Zoom
	}
	if c.Frequency == 0 {
		c.Frequency = def.Frequency
	}
	return c
}

// NewWobbleVariant creates a WobbleVariant. A zero MaxDepth marks a partial
// config whose zero fields take the defaults.
func NewWobbleVariant(cfg WobbleConfig, rng Rand) *WobbleVariant {
	if cfg.MaxDepth == 0 {
		cfg = cfg.withDefaults()
	}
	return &WobbleVariant{cfg: cfg, sub: cfg.subdivider(rng)}
}

func (v *WobbleVariant) Name() string { return VariantWobble }

func (v *WobbleVariant) Regenerate(viewport Rect) {
	v.tiles = v.sub.Fill(viewport)
}

func (v *WobbleVariant) Update(Frame) {}

// Transform returns the scene transform at time t (seconds).
func (v *WobbleVariant) Transform(viewport Rect, t float64) Affine {
	w := v.cfg.Frequency * t
	dx := math.Sin(w) * v.cfg.Shift
	dy := math.Cos(w*0.8) * v.cfg.Shift
	rot := math.Sin(w*0.5) * v.cfg.Tilt
	scale := 1 + math.Sin(w*0.7)*v.cfg.Zoom
	cx, cy := viewport.Center()
	return AboutPoint(cx, cy, dx, dy, rot, scale)
}

func (v *WobbleVariant) Draw(s Surface, f Frame) {
	s.PushTransform(v.Transform(f.Viewport, f.Seconds()))
	drawAll(s, v.tiles)
	s.PopTransform()
}

func (v *WobbleVariant) Tiles() []Tile { return v.tiles }
