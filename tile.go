package mosaic

import "math"

// OutlineWidth is the stroke width of every tile border, in pixels.
const OutlineWidth = 3

// Tile is a colored rectangle, the atomic drawable unit. Tiles are plain
// values; collections own them and nothing else refers to them.
type Tile struct {
	Rect
	Color   Color
	Opacity float64 // in [0, 1]

	// FadeIn, when set, raises Opacity over time until it reaches 1.
	FadeIn bool
	// Angle and Speed describe per-frame drift (radians, px per frame).
	Angle float64
	Speed float64
}

// NewTile returns a fully opaque static tile.
func NewTile(r Rect, c Color) Tile {
	return Tile{Rect: r, Color: c, Opacity: 1}
}

// Draw paints the tile filled and outlined at its current opacity. The
// surface's global alpha is reset to 1 afterwards so opacity never leaks
// into later draws. Degenerate tiles are skipped.
func (t *Tile) Draw(s Surface) {
	if t.Empty() || t.Opacity <= 0 {
		return
	}
	s.SetGlobalAlpha(t.Opacity)
	s.FillRect(t.Rect, t.Color)
	s.StrokeRect(t.Rect, OutlineWidth, ColorBlack)
	s.SetGlobalAlpha(1)
}

// Fall moves the tile down by speed (px/ms) times dt (ms).
func (t *Tile) Fall(dt, speed float64) {
	t.Y += speed * dt
}

// Fade raises opacity by dt*rate when FadeIn is set, clamping at 1. Once
// opaque the flag has no further effect.
func (t *Tile) Fade(dt, rate float64) {
	if !t.FadeIn || t.Opacity >= 1 {
		return
	}
	t.Opacity = clamp01(t.Opacity + dt*rate)
}

// Drift advances the tile one frame along its angle and raises opacity by
// step, clamped to 1.
func (t *Tile) Drift(step float64) {
	sin, cos := math.Sincos(t.Angle)
	t.X += cos * t.Speed
	t.Y += sin * t.Speed
	t.Opacity = clamp01(t.Opacity + step)
}

// Within reports whether any part of the tile touches bounds.
func (t *Tile) Within(bounds Rect) bool {
	return t.Intersects(bounds)
}

// Filter removes, in place, every tile lying fully outside viewport grown by
// margin. It returns the kept tiles and how many were dropped. Order of the
// kept tiles is preserved so draw order is stable.
func Filter(tiles []Tile, viewport Rect, margin float64) ([]Tile, int) {
	bounds := viewport.Expand(margin)
	kept := tiles[:0]
	for i := range tiles {
		if tiles[i].Within(bounds) {
			kept = append(kept, tiles[i])
		}
	}
	removed := len(tiles) - len(kept)
	clear(tiles[len(kept):])
	return kept, removed
}
