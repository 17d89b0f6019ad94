package mosaic

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownVariant is returned by NewVariant for an unregistered name.
var ErrUnknownVariant = errors.New("mosaic: unknown variant")

// Frame carries the timing of one animation step.
type Frame struct {
	Now      time.Duration // time since the controller started
	Dt       time.Duration // time since the previous frame
	Count    uint64        // frames since the controller started
	Viewport Rect
}

// Millis returns Dt in fractional milliseconds.
func (f Frame) Millis() float64 {
	return float64(f.Dt) / float64(time.Millisecond)
}

// Seconds returns Now in fractional seconds.
func (f Frame) Seconds() float64 {
	return f.Now.Seconds()
}

// Variant is one self-contained animation behavior. Variants own their tile
// collections; the Controller owns timing and the viewport.
type Variant interface {
	// Name returns the registry name of the variant.
	Name() string
	// Regenerate discards every tile and rebuilds the static mosaic for
	// viewport.
	Regenerate(viewport Rect)
	// Update advances tile state by one frame: motion, opacity, removal
	// and spawning.
	Update(f Frame)
	// Draw paints every live tile onto s, later tiles on top.
	Draw(s Surface, f Frame)
	// Tiles returns the live tiles in draw order. Callers must not retain
	// the slice across frames.
	Tiles() []Tile
}

// SubdivideConfig controls the static mosaic every variant starts from.
type SubdivideConfig struct {
	MaxDepth int
	MinSize  float64
	Palette  Palette
}

// withDefaults fills the zero fields of c from def.
func (c SubdivideConfig) withDefaults(def SubdivideConfig) SubdivideConfig {
	if c.MaxDepth == 0 {
		c.MaxDepth = def.MaxDepth
	}
	if c.MinSize == 0 {
		c.MinSize = def.MinSize
	}
	if c.Palette == nil {
		c.Palette = def.Palette
	}
	return c
}

func (c SubdivideConfig) subdivider(rng Rand) *Subdivider {
	return &Subdivider{
		MaxDepth: c.MaxDepth,
		MinSize:  c.MinSize,
		Palette:  c.Palette,
		Rand:     rng,
	}
}

// Options selects the randomness and per-variant configuration passed to
// NewVariant. A config with a zero MaxDepth takes each variant's defaults
// for its zero fields.
type Options struct {
	Rand   Rand
	Static StaticConfig
	Fall   FallConfig
	Wobble WobbleConfig
	Spawn  SpawnConfig
}

// Registered variant names.
const (
	VariantStatic = "static"
	VariantFall   = "fall"
	VariantWobble = "wobble"
	VariantSpawn  = "spawn"
)

// Variants lists the registered variant names.
func Variants() []string {
	return []string{VariantStatic, VariantFall, VariantWobble, VariantSpawn}
}

// NewVariant constructs a variant by name.
func NewVariant(name string, opts Options) (Variant, error) {
	rng := opts.Rand
	if rng == nil {
		rng = NewRand(0)
	}
	switch strings.ToLower(name) {
	case VariantStatic:
		return NewStaticVariant(opts.Static, rng), nil
	case VariantFall:
		return NewFallVariant(opts.Fall, rng), nil
	case VariantWobble:
		return NewWobbleVariant(opts.Wobble, rng), nil
	case VariantSpawn:
		return NewSpawnVariant(opts.Spawn, rng), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
}

// spawnGate decides when a dynamic tile is created: once per Interval when
// Interval is set, otherwise with probability Chance on every frame.
type spawnGate struct {
	Chance   float64
	Interval time.Duration

	last    time.Duration
	started bool
}

func (g *spawnGate) ready(f Frame, rng Rand) bool {
	if g.Interval > 0 {
		if !g.started {
			g.started = true
			g.last = f.Now
			return false
		}
		if f.Now-g.last < g.Interval {
			return false
		}
		g.last = f.Now
		return true
	}
	return g.Chance > 0 && rng.Float64() < g.Chance
}

func (g *spawnGate) reset() {
	g.started = false
	g.last = 0
}

func drawAll(s Surface, tiles []Tile) {
	for i := range tiles {
		tiles[i].Draw(s)
	}
}
