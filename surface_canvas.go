package mosaic

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
)

// CanvasSurface draws with the gg software rasterizer, for headless
// snapshots and recordings. Rasterizer errors do not interrupt a frame; the
// first one is kept and reported by Err.
type CanvasSurface struct {
	// Background is used by Clear. A zero alpha clears to transparent.
	Background Color

	dc    *gg.Context
	alpha float64
	err   error
}

// NewCanvasSurface creates a w×h canvas.
func NewCanvasSurface(w, h int) *CanvasSurface {
	return &CanvasSurface{dc: gg.NewContext(w, h), alpha: 1}
}

func (s *CanvasSurface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

func (s *CanvasSurface) Clear() {
	if s.Background.A > 0 {
		b := s.Background
		s.dc.ClearWithColor(gg.RGBA2(b.R, b.G, b.B, b.A))
		return
	}
	s.dc.Clear()
}

func (s *CanvasSurface) SetGlobalAlpha(a float64) {
	s.alpha = clamp01(a)
}

func (s *CanvasSurface) FillRect(r Rect, c Color) {
	if r.Empty() {
		return
	}
	s.dc.SetRGBA(c.R, c.G, c.B, c.A*s.alpha)
	s.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	s.keep(s.dc.Fill())
}

func (s *CanvasSurface) StrokeRect(r Rect, width float64, c Color) {
	if r.Empty() || width <= 0 {
		return
	}
	s.dc.SetRGBA(c.R, c.G, c.B, c.A*s.alpha)
	s.dc.SetLineWidth(width)
	s.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	s.keep(s.dc.Stroke())
}

func (s *CanvasSurface) PushTransform(m Affine) {
	s.dc.Push()
	s.dc.Transform(gg.Matrix{
		A: m[0], B: m[2], C: m[4],
		D: m[1], E: m[3], F: m[5],
	})
}

func (s *CanvasSurface) PopTransform() {
	s.dc.Pop()
}

// Resize changes the canvas dimensions.
func (s *CanvasSurface) Resize(w, h int) error {
	if err := s.dc.Resize(w, h); err != nil {
		return fmt.Errorf("resize canvas: %w", err)
	}
	return nil
}

// Image returns the current pixels.
func (s *CanvasSurface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the current pixels as PNG.
func (s *CanvasSurface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// SavePNG writes the current pixels to a PNG file.
func (s *CanvasSurface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Err returns the first rasterizer error seen since the last ResetErr.
func (s *CanvasSurface) Err() error {
	return s.err
}

// ResetErr clears the recorded error.
func (s *CanvasSurface) ResetErr() {
	s.err = nil
}

// Close releases the drawing context.
func (s *CanvasSurface) Close() error {
	return s.dc.Close()
}

func (s *CanvasSurface) keep(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}
