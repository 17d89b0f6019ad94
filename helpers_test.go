package mosaic

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Affine) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// drawCall is one recorded Surface operation.
type drawCall struct {
	op    string
	rect  Rect
	color Color
	alpha float64
	width float64
	m     Affine
}

// recordSurface records every call for inspection.
type recordSurface struct {
	w, h  int
	alpha float64
	calls []drawCall
	depth int
}

func newRecordSurface(w, h int) *recordSurface {
	return &recordSurface{w: w, h: h, alpha: 1}
}

func (s *recordSurface) Size() (int, int) { return s.w, s.h }

func (s *recordSurface) Clear() {
	s.calls = append(s.calls, drawCall{op: "clear"})
}

func (s *recordSurface) SetGlobalAlpha(a float64) {
	s.alpha = a
	s.calls = append(s.calls, drawCall{op: "alpha", alpha: a})
}

func (s *recordSurface) FillRect(r Rect, c Color) {
	s.calls = append(s.calls, drawCall{op: "fill", rect: r, color: c, alpha: s.alpha})
}

func (s *recordSurface) StrokeRect(r Rect, width float64, c Color) {
	s.calls = append(s.calls, drawCall{op: "stroke", rect: r, color: c, alpha: s.alpha, width: width})
}

func (s *recordSurface) PushTransform(m Affine) {
	s.depth++
	s.calls = append(s.calls, drawCall{op: "push", m: m})
}

func (s *recordSurface) PopTransform() {
	s.depth--
	s.calls = append(s.calls, drawCall{op: "pop"})
}

// ops returns the recorded operations whose name is op.
func (s *recordSurface) ops(op string) []drawCall {
	var out []drawCall
	for _, c := range s.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

func (s *recordSurface) reset() {
	s.calls = s.calls[:0]
	s.alpha = 1
}

// seqRand replays a fixed sequence of Float64 values and IntN results.
type seqRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *seqRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *seqRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}
