package mosaic

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the overlay text is redrawn.
const fpsRefresh = 500 * time.Millisecond

// fpsOverlay shows FPS, TPS and the live tile count. The text is rendered
// into its own image and only refreshed every fpsRefresh.
type fpsOverlay struct {
	img  *ebiten.Image
	last time.Duration
	seen bool
}

func newFPSOverlay() *fpsOverlay {
	// 120x48 is enough for three short lines of debug text.
	return &fpsOverlay{img: ebiten.NewImage(120, 48)}
}

func (o *fpsOverlay) update(now time.Duration, tiles int) {
	if o.seen && now-o.last < fpsRefresh {
		return
	}
	o.seen = true
	o.last = now

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nTiles: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), tiles))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
