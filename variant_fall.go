package mosaic

import "time"

// FallConfig configures the falling-tiles background.
type FallConfig struct {
	SubdivideConfig

	// Speed is the downward drift in pixels per millisecond.
	Speed float64
	// FadeRate is the opacity gained per millisecond by spawned tiles.
	FadeRate float64
	// Margin grows the viewport before out-of-bounds tiles are removed.
	Margin float64
	// Chance is the per-frame spawn probability, used when Interval is 0.
	Chance float64
	// Interval, when positive, spawns one tile per elapsed interval instead.
	Interval time.Duration
	// Size is the range spawned tile widths and heights are drawn from.
	Size Range
	// Gap is how far above the top edge a spawned tile's bottom sits.
	Gap float64
}

// DefaultFallConfig returns the page-background settings: 20 px/s drift,
// roughly one new tile every hundred frames.
func DefaultFallConfig() FallConfig {
	return FallConfig{
		SubdivideConfig: SubdivideConfig{MaxDepth: 5, MinSize: 5, Palette: DefaultPalette},
		Speed:           20.0 / 1000,
		FadeRate:        0.0008,
		Margin:          50,
		Chance:          0.01,
		Size:            Range{30, 180},
		Gap:             5,
	}
}

// FallVariant lets the whole mosaic sink slowly while fresh tiles fade in
// above the top edge. Tiles leaving the bottom are dropped.
type FallVariant struct {
	cfg   FallConfig
	rng   Rand
	sub   *Subdivider
	gate  spawnGate
	tiles []Tile
}

// withDefaults fills the zero fields of c from DefaultFallConfig. Chance
// and Interval are only filled when both are zero.
func (c FallConfig) withDefaults() FallConfig {
	def := DefaultFallConfig()
	c.SubdivideConfig = c.SubdivideConfig.withDefaults(def.SubdivideConfig)
	if c.Speed == 0 {
		c.Speed = def.Speed
	}
	if c.FadeRate == 0 {
		c.FadeRate = def.FadeRate
	}
	if c.Margin == 0 {
		c.Margin = def.Margin
	}
	if c.Chance == 0 && c.Interval == 0 {
		c.Chance, c.Interval = def.Chance, def.Interval
	}
	if c.Size == (Range{}) {
		c.Size = def.Size
	}
	if c.Gap == 0 {
		c.Gap = def.Gap
	}
	return c
}

// NewFallVariant creates a FallVariant. A zero MaxDepth marks a partial
// config whose zero fields take the defaults; otherwise cfg is used as is.
func NewFallVariant(cfg FallConfig, rng Rand) *FallVariant {
	if cfg.MaxDepth == 0 {
		cfg = cfg.withDefaults()
	}
	return &FallVariant{
		cfg:  cfg,
		rng:  rng,
		sub:  cfg.subdivider(rng),
		gate: spawnGate{Chance: cfg.Chance, Interval: cfg.Interval},
	}
}

func (v *FallVariant) Name() string { return VariantFall }

func (v *FallVariant) Regenerate(viewport Rect) {
	v.tiles = v.sub.Fill(viewport)
	v.gate.reset()
}

func (v *FallVariant) Update(f Frame) {
	dt := f.Millis()
	for i := range v.tiles {
		v.tiles[i].Fall(dt, v.cfg.Speed)
		v.tiles[i].Fade(dt, v.cfg.FadeRate)
	}
	v.tiles, _ = Filter(v.tiles, f.Viewport, v.cfg.Margin)

	if v.gate.ready(f, v.rng) {
		v.tiles = append(v.tiles, v.spawn(f.Viewport))
	}
}

// spawn creates a transparent tile just above the top edge.
func (v *FallVariant) spawn(viewport Rect) Tile {
	w := v.cfg.Size.Random(v.rng)
	h := v.cfg.Size.Random(v.rng)
	t := NewTile(Rect{
		X:      viewport.X + v.rng.Float64()*max(viewport.Width-w, 0),
		Y:      viewport.Y - h - v.cfg.Gap,
		Width:  w,
		Height: h,
	}, v.sub.palette().Pick(v.rng))
	t.Opacity = 0
	t.FadeIn = true
	return t
}

func (v *FallVariant) Draw(s Surface, _ Frame) {
	drawAll(s, v.tiles)
}

func (v *FallVariant) Tiles() []Tile { return v.tiles }
