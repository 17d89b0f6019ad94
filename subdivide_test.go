package mosaic

import (
	"math"
	"testing"
)

func TestSubdivideOneLevel(t *testing.T) {
	d := &Subdivider{MaxDepth: 1, MinSize: 0, Rand: NewRand(3)}
	tiles := d.Subdivide(0, 0, 100, 100, 0, AxisVertical)
	if len(tiles) != 2 {
		t.Fatalf("tiles = %d, want 2", len(tiles))
	}
	var width float64
	for _, tile := range tiles {
		assertNear(t, "height", tile.Height, 100)
		width += tile.Width
	}
	assertNear(t, "width sum", width, 100)
	if tiles[0].X != 0 || tiles[1].X != tiles[0].Width {
		t.Errorf("leaves out of order: %v", tiles)
	}
}

func TestSubdivideHorizontalFirst(t *testing.T) {
	d := &Subdivider{MaxDepth: 1, Rand: &seqRand{floats: []float64{0.5}}}
	tiles := d.Subdivide(0, 0, 100, 200, 0, AxisHorizontal)
	if len(tiles) != 2 {
		t.Fatalf("tiles = %d", len(tiles))
	}
	// f = 0.5*0.6 + 0.2 = 0.5
	assertNear(t, "first height", tiles[0].Height, 100)
	assertNear(t, "second y", tiles[1].Y, 100)
	assertNear(t, "width", tiles[0].Width, 100)
}

func TestSubdivideSplitFractionRange(t *testing.T) {
	for _, f := range []float64{0, 0.999999} {
		d := &Subdivider{MaxDepth: 1, Rand: &seqRand{floats: []float64{f}}}
		tiles := d.Fill(Rect{0, 0, 100, 100})
		frac := tiles[0].Width / 100
		if frac < 0.2-epsilon || frac >= 0.8 {
			t.Errorf("rand %v gave split fraction %v", f, frac)
		}
	}
}

func TestSubdividePartition(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		bounds := Rect{0, 0, 1280, 720}
		d := &Subdivider{MaxDepth: 8, MinSize: 0, Rand: NewRand(seed)}
		tiles := d.Fill(bounds)

		if len(tiles) != 1<<8 {
			t.Fatalf("seed %d: tiles = %d, want 256", seed, len(tiles))
		}
		var area float64
		for i, a := range tiles {
			area += a.Area()
			if a.X < -epsilon || a.Y < -epsilon ||
				a.X+a.Width > bounds.Width+1e-6 || a.Y+a.Height > bounds.Height+1e-6 {
				t.Fatalf("seed %d: tile %v outside bounds", seed, a.Rect)
			}
			for _, b := range tiles[i+1:] {
				if shrink(a.Rect).Overlaps(shrink(b.Rect)) {
					t.Fatalf("seed %d: %v overlaps %v", seed, a.Rect, b.Rect)
				}
			}
		}
		if math.Abs(area-bounds.Area()) > 1e-6 {
			t.Errorf("seed %d: area = %v, want %v", seed, area, bounds.Area())
		}
	}
}

// shrink trims floating-point slack so touching tiles are not reported as
// overlapping.
func shrink(r Rect) Rect {
	return r.Expand(-1e-7)
}

func TestSubdivideDepthAndAlternation(t *testing.T) {
	const maxDepth = 6
	var maxSeen int
	d := &Subdivider{
		MaxDepth: maxDepth,
		Rand:     NewRand(9),
		OnSplit: func(r Rect, depth int, axis Axis) {
			if depth > maxSeen {
				maxSeen = depth
			}
			want := AxisVertical
			if depth%2 == 1 {
				want = AxisHorizontal
			}
			if axis != want {
				t.Errorf("depth %d cut %v, want %v", depth, axis, want)
			}
		},
	}
	d.Fill(Rect{0, 0, 1000, 1000})
	if maxSeen != maxDepth-1 {
		t.Errorf("deepest split at %d, want %d", maxSeen, maxDepth-1)
	}
}

func TestSubdivideMinSizeDropsBranches(t *testing.T) {
	d := &Subdivider{MaxDepth: 3, MinSize: 50, Rand: &seqRand{floats: []float64{0}}}
	// Every cut is at 20%: 100 wide -> 20 | 80; the 20 px branch is dropped.
	tiles := d.Fill(Rect{0, 0, 100, 100})
	for _, tile := range tiles {
		if tile.Width < 50 || tile.Height < 50 {
			t.Errorf("tile %v smaller than MinSize", tile.Rect)
		}
	}
	if len(tiles) == 0 {
		t.Fatal("expected some tiles")
	}

	if got := d.Subdivide(0, 0, 40, 400, 0, AxisVertical); len(got) != 0 {
		t.Errorf("undersized region produced %d tiles", len(got))
	}
}

func TestSubdivideZeroDepthIsSingleLeaf(t *testing.T) {
	d := &Subdivider{MaxDepth: 0, Rand: NewRand(1)}
	tiles := d.Fill(Rect{0, 0, 50, 50})
	if len(tiles) != 1 || tiles[0].Rect != (Rect{0, 0, 50, 50}) {
		t.Errorf("tiles = %v", tiles)
	}
	if got := d.Fill(Rect{0, 0, 0, 50}); len(got) != 0 {
		t.Errorf("empty region produced %v", got)
	}
}

func TestSubdivideColorsFromPalette(t *testing.T) {
	pal := Palette{MustHex("#112233"), MustHex("#445566")}
	d := &Subdivider{MaxDepth: 5, Palette: pal, Rand: NewRand(5)}
	for _, tile := range d.Fill(Rect{0, 0, 500, 500}) {
		if tile.Color != pal[0] && tile.Color != pal[1] {
			t.Errorf("color %v not in palette", tile.Color)
		}
		if tile.Opacity != 1 {
			t.Errorf("static tile opacity = %v", tile.Opacity)
		}
	}

	d.Palette = nil
	tile := d.Fill(Rect{0, 0, 10, 10})[0]
	found := false
	for _, c := range DefaultPalette {
		found = found || c == tile.Color
	}
	if !found {
		t.Error("nil palette should fall back to DefaultPalette")
	}
}

func TestSubdivideReproducible(t *testing.T) {
	a := (&Subdivider{MaxDepth: 6, Rand: NewRand(77)}).Fill(Rect{0, 0, 300, 300})
	b := (&Subdivider{MaxDepth: 6, Rand: NewRand(77)}).Fill(Rect{0, 0, 300, 300})
	if len(a) != len(b) {
		t.Fatal("length differs")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tile %d differs", i)
		}
	}
}
