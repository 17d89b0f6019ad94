package mosaic

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/tanema/gween/ease"
)

// DefaultMaxDelta caps the frame delta so a stalled window does not make
// every tile jump on the next frame.
const DefaultMaxDelta = 250 * time.Millisecond

// ControllerConfig configures a Controller.
type ControllerConfig struct {
	// Variant is the animation behavior to drive. Required.
	Variant Variant
	// ResizeDebounce is the quiet period before a requested resize is
	// applied. Zero selects DefaultResizeDebounce; negative applies resizes
	// immediately.
	ResizeDebounce time.Duration
	// RegenFade, when positive, eases each regenerated mosaic in over this
	// duration.
	RegenFade time.Duration
	// RegenEasing shapes the regeneration fade; linear when nil.
	RegenEasing ease.TweenFunc
	// MaxDelta caps the frame delta. Zero selects DefaultMaxDelta; negative
	// disables the cap.
	MaxDelta time.Duration
	// Debug logs per-frame timings and tile counts at debug level.
	Debug bool
	// Logger receives lifecycle and debug events. Nil discards them.
	Logger *zerolog.Logger
	// Events, when set, receives lifecycle events.
	Events EventSink
}

// Controller owns the tile state of one animated background: the variant and
// its tile collections, the viewport, and the previous frame timestamp.
// It is not safe for concurrent use; drive it from a single frame loop.
type Controller struct {
	variant  Variant
	viewport Rect
	frame    Frame
	started  bool
	stopped  bool

	maxDelta time.Duration
	debounce Debouncer
	pendingW int
	pendingH int

	fadeDur  time.Duration
	fadeEase ease.TweenFunc
	fade     *SceneFade

	debug  bool
	log    zerolog.Logger
	stats  Stats
	events EventSink
}

// NewController creates a controller for cfg.Variant. Nothing is generated
// until the first OnResize.
func NewController(cfg ControllerConfig) (*Controller, error) {
	if cfg.Variant == nil {
		return nil, errors.New("mosaic: controller requires a variant")
	}
	c := &Controller{
		variant:  cfg.Variant,
		maxDelta: cfg.MaxDelta,
		fadeDur:  cfg.RegenFade,
		fadeEase: cfg.RegenEasing,
		debug:    cfg.Debug,
		log:      zerolog.Nop(),
		events:   cfg.Events,
	}
	if c.maxDelta == 0 {
		c.maxDelta = DefaultMaxDelta
	}
	switch {
	case cfg.ResizeDebounce == 0:
		c.debounce.Delay = DefaultResizeDebounce
	case cfg.ResizeDebounce > 0:
		c.debounce.Delay = cfg.ResizeDebounce
	default:
		c.debounce.Delay = -1
	}
	if cfg.Logger != nil {
		c.log = cfg.Logger.With().Str("variant", cfg.Variant.Name()).Logger()
	}
	return c, nil
}

// OnResize sets the viewport to w×h and regenerates the mosaic immediately.
// Dynamic tiles are discarded.
func (c *Controller) OnResize(w, h int) {
	c.debounce.Cancel()
	c.viewport = Viewport(w, h)
	c.frame.Viewport = c.viewport

	t0 := time.Now()
	c.variant.Regenerate(c.viewport)
	c.stats.Regenerations++

	if c.fadeDur > 0 {
		c.fade = NewSceneFade(c.fadeDur, c.fadeEase)
	} else {
		c.fade = nil
	}

	c.log.Debug().
		Int("width", w).
		Int("height", h).
		Int("tiles", len(c.variant.Tiles())).
		Dur("took", time.Since(t0)).
		Msg("mosaic regenerated")
	c.emit(EventRegenerated, c.viewport)
}

// RequestResize records a window size change observed at now. The mosaic is
// regenerated once the size has been stable for the debounce period; each
// new request restarts the wait.
func (c *Controller) RequestResize(w, h int, now time.Duration) {
	if c.debounce.Delay < 0 {
		c.OnResize(w, h)
		return
	}
	c.pendingW, c.pendingH = w, h
	c.debounce.Trigger(now)
	c.emit(EventResizeRequested, Viewport(w, h))
}

// ResizePending reports whether a debounced resize is waiting.
func (c *Controller) ResizePending() bool {
	return c.debounce.Pending()
}

// Update advances the animation to now, the time elapsed since the loop
// started. It applies a due resize first. Update is a no-op once stopped.
func (c *Controller) Update(now time.Duration) {
	if c.stopped {
		return
	}
	if c.debounce.Ready(now) {
		c.OnResize(c.pendingW, c.pendingH)
	}

	var dt time.Duration
	if c.started {
		dt = now - c.frame.Now
	}
	if dt < 0 {
		dt = 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		dt = c.maxDelta
	}
	c.started = true
	c.frame.Now = now
	c.frame.Dt = dt
	c.frame.Count++

	var t0 time.Time
	if c.debug {
		t0 = time.Now()
	}

	c.variant.Update(c.frame)
	if c.fade != nil {
		c.fade.Update(dt)
	}
	c.stats.Frames++

	if c.debug {
		c.stats.UpdateTime = time.Since(t0)
	}
}

// Draw clears s and paints the current frame.
func (c *Controller) Draw(s Surface) {
	var t0 time.Time
	if c.debug {
		t0 = time.Now()
	}

	s.Clear()
	c.variant.Draw(withSceneAlpha(s, c.fade.Alpha()), c.frame)
	s.SetGlobalAlpha(1)
	c.stats.Tiles = len(c.variant.Tiles())

	if c.debug {
		c.stats.DrawTime = time.Since(t0)
		c.debugLog()
	}
}

// Tick runs one full frame: Update then Draw. It reports whether the loop
// should schedule another frame.
func (c *Controller) Tick(now time.Duration, s Surface) bool {
	if c.stopped {
		return false
	}
	c.Update(now)
	c.Draw(s)
	return !c.stopped
}

// Stop ends the animation. Pending resizes are dropped and later frames do
// nothing.
func (c *Controller) Stop() {
	if c.stopped {
		return
	}
	c.stopped = true
	c.debounce.Cancel()
	c.log.Debug().Uint64("frames", c.stats.Frames).Msg("mosaic stopped")
	c.emit(EventStopped, c.viewport)
}

// Stopped reports whether Stop has been called.
func (c *Controller) Stopped() bool {
	return c.stopped
}

// Viewport returns the current viewport.
func (c *Controller) Viewport() Rect {
	return c.viewport
}

// Variant returns the driven variant.
func (c *Controller) Variant() Variant {
	return c.variant
}

// Frame returns the timing of the most recent Update.
func (c *Controller) Frame() Frame {
	return c.frame
}

// SceneAlpha returns the current regeneration fade alpha.
func (c *Controller) SceneAlpha() float64 {
	return c.fade.Alpha()
}

// Stats returns the counters collected so far. Timings are only populated in
// debug mode.
func (c *Controller) Stats() Stats {
	return c.stats
}
