package mosaic

import "math"

// Surface is the immediate-mode drawing target tiles are painted onto.
// Implementations never fail mid-frame; backends that can report errors
// expose them separately.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (w, h int)
	// Clear erases the whole surface.
	Clear()
	// SetGlobalAlpha sets the opacity applied to subsequent fills and strokes.
	SetGlobalAlpha(a float64)
	// FillRect paints r in c.
	FillRect(r Rect, c Color)
	// StrokeRect outlines r with a line of the given width.
	StrokeRect(r Rect, width float64, c Color)
	// PushTransform applies m on top of the current transform until the
	// matching PopTransform.
	PushTransform(m Affine)
	// PopTransform restores the transform saved by PushTransform.
	PopTransform()
}

// Affine is a 2D affine matrix laid out as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Affine [6]float64

// IdentityAffine is the identity matrix.
var IdentityAffine = Affine{1, 0, 0, 1, 0, 0}

// TranslateAffine returns a translation matrix.
func TranslateAffine(x, y float64) Affine {
	return Affine{1, 0, 0, 1, x, y}
}

// ScaleAffine returns a scaling matrix.
func ScaleAffine(sx, sy float64) Affine {
	return Affine{sx, 0, 0, sy, 0, 0}
}

// RotateAffine returns a rotation matrix (radians, clockwise on screen).
func RotateAffine(angle float64) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Multiply returns p * c: c is applied first, then p.
func (p Affine) Multiply(c Affine) Affine {
	return Affine{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// Apply transforms the point (x, y).
func (p Affine) Apply(x, y float64) (float64, float64) {
	return p[0]*x + p[2]*y + p[4], p[1]*x + p[3]*y + p[5]
}

// AboutPoint composes offset, rotation and uniform scale around the pivot
// (px, py):
//
//	Translate(px+dx, py+dy) -> Rotate -> Scale -> Translate(-px, -py)
func AboutPoint(px, py, dx, dy, rotation, scale float64) Affine {
	m := TranslateAffine(px+dx, py+dy)
	m = m.Multiply(RotateAffine(rotation))
	m = m.Multiply(ScaleAffine(scale, scale))
	return m.Multiply(TranslateAffine(-px, -py))
}

// fadeSurface scales every global alpha by a scene-wide factor.
type fadeSurface struct {
	Surface
	alpha float64
}

func (f fadeSurface) SetGlobalAlpha(a float64) {
	f.Surface.SetGlobalAlpha(a * f.alpha)
}

// withSceneAlpha wraps s so all draws are attenuated by alpha. Fully opaque
// scenes are returned unwrapped.
func withSceneAlpha(s Surface, alpha float64) Surface {
	if alpha >= 1 {
		return s
	}
	s.SetGlobalAlpha(alpha)
	return fadeSurface{Surface: s, alpha: clamp01(alpha)}
}
