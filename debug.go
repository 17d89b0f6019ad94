package mosaic

import "time"

// Stats holds frame counters and, in debug mode, per-frame timings.
type Stats struct {
	Frames        uint64
	Regenerations int
	Tiles         int
	UpdateTime    time.Duration
	DrawTime      time.Duration
}

// debugLogEvery throttles per-frame debug output to once a second at 60 FPS.
const debugLogEvery = 60

// debugLog writes timing and tile-count stats at debug level.
func (c *Controller) debugLog() {
	if c.stats.Frames%debugLogEvery != 0 {
		return
	}
	c.log.Debug().
		Uint64("frame", c.stats.Frames).
		Int("tiles", c.stats.Tiles).
		Dur("update", c.stats.UpdateTime).
		Dur("draw", c.stats.DrawTime).
		Dur("total", c.stats.UpdateTime+c.stats.DrawTime).
		Msg("mosaic frame")
}
