package mosaic

import (
	"math"
	"time"
)

// SpawnConfig configures the drifting-copies background.
type SpawnConfig struct {
	SubdivideConfig

	// Interval spawns one moving tile per elapsed interval when positive.
	Interval time.Duration
	// Chance is the per-frame spawn probability, used when Interval is 0.
	Chance float64
	// Speed is the range of drift speeds in pixels per frame.
	Speed Range
	// OpacityStep is the opacity gained by a moving tile each frame.
	OpacityStep float64
	// Margin grows the viewport before out-of-bounds tiles are removed.
	Margin float64
}

// DefaultSpawnConfig returns the spawn-and-drift settings.
func DefaultSpawnConfig() SpawnConfig {
	return SpawnConfig{
		SubdivideConfig: SubdivideConfig{MaxDepth: 6, MinSize: 15, Palette: DefaultPalette},
		Interval:        100 * time.Millisecond,
		Speed:           Range{0.2, 1.0},
		OpacityStep:     0.01,
		Margin:          200,
	}
}

// SpawnVariant keeps the static mosaic in place and periodically lifts a
// copy of one of its tiles, which drifts off in a random direction while
// fading in. Motion is counted per frame, not per millisecond.
type SpawnVariant struct {
	cfg    SpawnConfig
	rng    Rand
	sub    *Subdivider
	gate   spawnGate
	static []Tile
	moving []Tile
	all    []Tile
}

func (c SpawnConfig) withDefaults() SpawnConfig {
	def := DefaultSpawnConfig()
	c.SubdivideConfig = c.SubdivideConfig.withDefaults(def.SubdivideConfig)
	if c.Chance == 0 && c.Interval == 0 {
		c.Chance, c.Interval = def.Chance, def.Interval
	}
	if c.Speed == (Range{}) {
		c.Speed = def.Speed
	}
	if c.OpacityStep == 0 {
		c.OpacityStep = def.OpacityStep
	}
	if c.Margin == 0 {
		c.Margin = def.Margin
	}
	return c
}

// NewSpawnVariant creates a SpawnVariant. A zero MaxDepth marks a partial
// config whose zero fields take the defaults.
func NewSpawnVariant(cfg SpawnConfig, rng Rand) *SpawnVariant {
	if cfg.MaxDepth == 0 {
		cfg = cfg.withDefaults()
	}
	return &SpawnVariant{
		cfg:  cfg,
		rng:  rng,
		sub:  cfg.subdivider(rng),
		gate: spawnGate{Chance: cfg.Chance, Interval: cfg.Interval},
	}
}

func (v *SpawnVariant) Name() string { return VariantSpawn }

func (v *SpawnVariant) Regenerate(viewport Rect) {
	v.static = v.sub.Fill(viewport)
	v.moving = v.moving[:0]
	v.gate.reset()
}

func (v *SpawnVariant) Update(f Frame) {
	for i := range v.moving {
		v.moving[i].Drift(v.cfg.OpacityStep)
	}
	v.moving, _ = Filter(v.moving, f.Viewport, v.cfg.Margin)

	if len(v.static) > 0 && v.gate.ready(f, v.rng) {
		v.moving = append(v.moving, v.spawn())
	}
}

// spawn copies the geometry of a random static tile.
func (v *SpawnVariant) spawn() Tile {
	src := v.static[v.rng.IntN(len(v.static))]
	t := NewTile(src.Rect, v.sub.palette().Pick(v.rng))
	t.Opacity = 0
	t.Angle = v.rng.Float64() * 2 * math.Pi
	t.Speed = v.cfg.Speed.Random(v.rng)
	return t
}

func (v *SpawnVariant) Draw(s Surface, _ Frame) {
	drawAll(s, v.static)
	drawAll(s, v.moving)
}

// Moving returns the drifting tiles only.
func (v *SpawnVariant) Moving() []Tile { return v.moving }

func (v *SpawnVariant) Tiles() []Tile {
	v.all = append(append(v.all[:0], v.static...), v.moving...)
	return v.all
}
