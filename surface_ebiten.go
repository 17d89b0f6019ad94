package mosaic

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface draws onto an *ebiten.Image. Transformed draws go to an
// offscreen layer that is composited through a GeoM on PopTransform, since
// the vector helpers only draw axis-aligned rectangles.
type EbitenSurface struct {
	// Background is used by Clear. A zero alpha clears to transparent.
	Background Color
	// AntiAlias smooths rectangle edges.
	AntiAlias bool

	target *ebiten.Image
	alpha  float64
	layers []ebitenLayer
	pool   []*ebiten.Image
}

type ebitenLayer struct {
	img *ebiten.Image
	m   Affine
}

// NewEbitenSurface wraps target. Target may be nil until the first frame.
func NewEbitenSurface(target *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{target: target, alpha: 1, AntiAlias: true}
}

// SetTarget points the surface at a new image, usually each frame's screen.
// Pooled layers sized for a previous target are released.
func (s *EbitenSurface) SetTarget(target *ebiten.Image) {
	if s.target != nil && target != nil && s.target.Bounds().Size() != target.Bounds().Size() {
		s.releasePool()
	}
	s.target = target
}

// Target returns the current target image.
func (s *EbitenSurface) Target() *ebiten.Image {
	return s.target
}

func (s *EbitenSurface) Size() (int, int) {
	if s.target == nil {
		return 0, 0
	}
	b := s.target.Bounds()
	return b.Dx(), b.Dy()
}

func (s *EbitenSurface) Clear() {
	if s.target == nil {
		return
	}
	if s.Background.A > 0 {
		s.target.Fill(s.Background.NRGBA())
		return
	}
	s.target.Clear()
}

func (s *EbitenSurface) SetGlobalAlpha(a float64) {
	s.alpha = clamp01(a)
}

func (s *EbitenSurface) FillRect(r Rect, c Color) {
	dst := s.dst()
	if dst == nil || r.Empty() {
		return
	}
	vector.DrawFilledRect(dst,
		float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
		c.WithAlpha(s.alpha).NRGBA(), s.AntiAlias)
}

func (s *EbitenSurface) StrokeRect(r Rect, width float64, c Color) {
	dst := s.dst()
	if dst == nil || r.Empty() || width <= 0 {
		return
	}
	vector.StrokeRect(dst,
		float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
		float32(width), c.WithAlpha(s.alpha).NRGBA(), s.AntiAlias)
}

func (s *EbitenSurface) PushTransform(m Affine) {
	if s.target == nil {
		return
	}
	s.layers = append(s.layers, ebitenLayer{img: s.acquire(), m: m})
}

func (s *EbitenSurface) PopTransform() {
	n := len(s.layers)
	if n == 0 {
		return
	}
	top := s.layers[n-1]
	s.layers = s.layers[:n-1]

	op := &ebiten.DrawImageOptions{GeoM: geoM(top.m), Filter: ebiten.FilterLinear}
	s.dst().DrawImage(top.img, op)
	s.pool = append(s.pool, top.img)
}

// dst returns the innermost layer, or the target when no transform is active.
func (s *EbitenSurface) dst() *ebiten.Image {
	if n := len(s.layers); n > 0 {
		return s.layers[n-1].img
	}
	return s.target
}

// acquire returns a cleared layer the size of the target.
func (s *EbitenSurface) acquire() *ebiten.Image {
	if n := len(s.pool); n > 0 {
		img := s.pool[n-1]
		s.pool = s.pool[:n-1]
		img.Clear()
		return img
	}
	w, h := s.Size()
	return ebiten.NewImage(w, h)
}

func (s *EbitenSurface) releasePool() {
	for _, img := range s.pool {
		img.Deallocate()
	}
	s.pool = s.pool[:0]
}

// geoM converts an Affine into an ebiten.GeoM.
func geoM(m Affine) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}
