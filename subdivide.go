package mosaic

// Split fractions are drawn uniformly from [splitMin, splitMin+splitSpan).
const (
	splitMin  = 0.2
	splitSpan = 0.6
)

// Subdivider recursively cuts a rectangle into a randomized binary tree of
// sub-rectangles and returns the leaves as tiles. Cuts alternate strictly
// between vertical and horizontal at each level.
type Subdivider struct {
	// MaxDepth is the recursion level at which a rectangle becomes a leaf.
	MaxDepth int
	// MinSize drops any branch narrower or shorter than this many pixels.
	// Dropped branches emit nothing.
	MinSize float64
	// Palette supplies leaf colors; DefaultPalette when empty.
	Palette Palette
	// Rand drives split fractions and colors; required.
	Rand Rand
	// OnSplit, if set, is called for every rectangle that is cut, with the
	// depth of that rectangle and the axis of the cut.
	OnSplit func(r Rect, depth int, axis Axis)
}

// Fill subdivides bounds starting at depth 0 with a vertical cut.
func (d *Subdivider) Fill(bounds Rect) []Tile {
	return d.Subdivide(bounds.X, bounds.Y, bounds.Width, bounds.Height, 0, AxisVertical)
}

// Subdivide partitions the rectangle (x, y, w, h) currently at the given
// depth, cutting along axis first. Leaves are emitted depth-first, left/top
// child before right/bottom child.
func (d *Subdivider) Subdivide(x, y, w, h float64, depth int, axis Axis) []Tile {
	var out []Tile
	return d.subdivide(out, Rect{x, y, w, h}, depth, axis)
}

func (d *Subdivider) subdivide(out []Tile, r Rect, depth int, axis Axis) []Tile {
	if r.Width < d.MinSize || r.Height < d.MinSize {
		return out
	}
	if depth >= d.MaxDepth {
		if r.Empty() {
			return out
		}
		return append(out, NewTile(r, d.palette().Pick(d.Rand)))
	}

	if d.OnSplit != nil {
		d.OnSplit(r, depth, axis)
	}

	f := d.Rand.Float64()*splitSpan + splitMin
	var first, second Rect
	if axis == AxisVertical {
		cut := r.Width * f
		first = Rect{r.X, r.Y, cut, r.Height}
		second = Rect{r.X + cut, r.Y, r.Width - cut, r.Height}
	} else {
		cut := r.Height * f
		first = Rect{r.X, r.Y, r.Width, cut}
		second = Rect{r.X, r.Y + cut, r.Width, r.Height - cut}
	}

	next := axis.Flip()
	out = d.subdivide(out, first, depth+1, next)
	return d.subdivide(out, second, depth+1, next)
}

func (d *Subdivider) palette() Palette {
	if len(d.Palette) == 0 {
		return DefaultPalette
	}
	return d.Palette
}
