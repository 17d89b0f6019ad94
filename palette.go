package mosaic

import (
	"sort"
	"strings"
)

// Palette is a fixed set of tile colors. Leaves pick from it uniformly.
type Palette []Color

// DefaultPalette is the muted set used by the animated page background.
var DefaultPalette = Palette{
	MustHex("#acc7a9"), MustHex("#d0e1de"), MustHex("#d9b5c3"),
	MustHex("#cb8f97"), MustHex("#7380a1"), MustHex("#e3d3ba"),
	MustHex("#418e96"), MustHex("#c1afc0"), MustHex("#dbb99e"),
}

// ProjectPalette is the brighter set used behind project pages.
var ProjectPalette = Palette{
	MustHex("#a1d69b"), MustHex("#c8eae4"), MustHex("#eca3bf"),
	MustHex("#e97181"), MustHex("#5c76b9"), MustHex("#f8d8a6"),
	MustHex("#17b1c1"), MustHex("#caa7c8"), MustHex("#fab580"),
}

var palettes = map[string]Palette{
	"default": DefaultPalette,
	"project": ProjectPalette,
}

// PaletteByName looks up a built-in palette. Names are case-insensitive.
func PaletteByName(name string) (Palette, bool) {
	p, ok := palettes[strings.ToLower(name)]
	return p, ok
}

// PaletteNames returns the built-in palette names in sorted order.
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pick returns a uniformly chosen color. An empty palette yields black.
func (p Palette) Pick(rng Rand) Color {
	if len(p) == 0 {
		return ColorBlack
	}
	return p[rng.IntN(len(p))]
}
