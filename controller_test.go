package mosaic

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// countingVariant records the calls a controller makes.
type countingVariant struct {
	regens  []Rect
	updates []Frame
	draws   int
	tiles   []Tile
}

func (v *countingVariant) Name() string { return "counting" }

func (v *countingVariant) Regenerate(vp Rect) {
	v.regens = append(v.regens, vp)
	v.tiles = []Tile{NewTile(Rect{0, 0, vp.Width, vp.Height}, ColorWhite)}
}

func (v *countingVariant) Update(f Frame) { v.updates = append(v.updates, f) }

func (v *countingVariant) Draw(s Surface, _ Frame) {
	v.draws++
	drawAll(s, v.tiles)
}

func (v *countingVariant) Tiles() []Tile { return v.tiles }

func newTestController(t *testing.T, cfg ControllerConfig) (*Controller, *countingVariant) {
	t.Helper()
	v := &countingVariant{}
	cfg.Variant = v
	c, err := NewController(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return c, v
}

func TestNewControllerRequiresVariant(t *testing.T) {
	if _, err := NewController(ControllerConfig{}); err == nil {
		t.Error("expected an error without a variant")
	}
}

func TestControllerDebouncesResize(t *testing.T) {
	c, v := newTestController(t, ControllerConfig{})
	c.OnResize(800, 600)

	c.Update(0)
	c.RequestResize(1000, 700, 10*time.Millisecond)
	c.Update(100 * time.Millisecond)
	c.RequestResize(1200, 900, 150*time.Millisecond)
	c.Update(300 * time.Millisecond)
	if c.Viewport() != Viewport(800, 600) || !c.ResizePending() {
		t.Fatalf("resize applied early: %v", c.Viewport())
	}

	c.Update(350 * time.Millisecond)
	if c.Viewport() != Viewport(1200, 900) {
		t.Fatalf("viewport = %v, want 1200x900", c.Viewport())
	}
	if len(v.regens) != 2 {
		t.Errorf("regenerations = %d, want 2 (burst collapses to one)", len(v.regens))
	}
	last := v.updates[len(v.updates)-1]
	if last.Viewport != Viewport(1200, 900) {
		t.Error("update after resize should see the new viewport")
	}
}

func TestControllerImmediateResize(t *testing.T) {
	c, v := newTestController(t, ControllerConfig{ResizeDebounce: -1})
	c.RequestResize(320, 240, 0)
	if c.Viewport() != Viewport(320, 240) || len(v.regens) != 1 {
		t.Errorf("negative debounce should resize immediately")
	}
}

func TestControllerFrameDelta(t *testing.T) {
	c, v := newTestController(t, ControllerConfig{})
	c.OnResize(100, 100)

	c.Update(5 * time.Second)
	c.Update(5*time.Second + 16*time.Millisecond)
	c.Update(20 * time.Second)
	c.Update(19 * time.Second)

	want := []time.Duration{0, 16 * time.Millisecond, DefaultMaxDelta, 0}
	for i, f := range v.updates {
		if f.Dt != want[i] {
			t.Errorf("update %d dt = %v, want %v", i, f.Dt, want[i])
		}
		if f.Count != uint64(i+1) {
			t.Errorf("update %d count = %d", i, f.Count)
		}
	}
}

func TestControllerUncappedDelta(t *testing.T) {
	c, v := newTestController(t, ControllerConfig{MaxDelta: -1})
	c.Update(0)
	c.Update(10 * time.Second)
	if v.updates[1].Dt != 10*time.Second {
		t.Errorf("dt = %v, want 10s", v.updates[1].Dt)
	}
}

func TestControllerStop(t *testing.T) {
	c, v := newTestController(t, ControllerConfig{})
	c.OnResize(100, 100)
	s := newRecordSurface(100, 100)

	if !c.Tick(0, s) {
		t.Fatal("Tick should continue before Stop")
	}
	c.RequestResize(50, 50, 0)
	c.Stop()
	c.Stop()
	if !c.Stopped() || c.ResizePending() {
		t.Error("Stop should drop pending resizes")
	}
	if c.Tick(time.Second, s) {
		t.Error("Tick should report stopped")
	}
	c.Update(2 * time.Second)
	if len(v.updates) != 1 || v.draws != 1 {
		t.Errorf("updates %d draws %d after stop", len(v.updates), v.draws)
	}
}

func TestControllerDrawClearsFirst(t *testing.T) {
	c, _ := newTestController(t, ControllerConfig{})
	c.OnResize(10, 10)
	s := newRecordSurface(10, 10)
	c.Tick(0, s)
	if s.calls[0].op != "clear" {
		t.Errorf("first call = %s, want clear", s.calls[0].op)
	}
	if s.alpha != 1 {
		t.Errorf("global alpha left at %v", s.alpha)
	}
}

func TestControllerRegenFade(t *testing.T) {
	c, _ := newTestController(t, ControllerConfig{RegenFade: 100 * time.Millisecond})
	c.OnResize(10, 10)
	s := newRecordSurface(10, 10)

	c.Tick(0, s)
	if a := c.SceneAlpha(); a != 0 {
		t.Errorf("alpha at start = %v", a)
	}
	if fill := s.ops("fill")[0]; fill.alpha != 0 {
		t.Errorf("fill alpha = %v, want 0", fill.alpha)
	}

	s.reset()
	c.Tick(50*time.Millisecond, s)
	if a := c.SceneAlpha(); math.Abs(a-0.5) > 1e-3 {
		t.Errorf("alpha midway = %v", a)
	}
	if fill := s.ops("fill")[0]; math.Abs(fill.alpha-0.5) > 1e-3 {
		t.Errorf("fill alpha midway = %v", fill.alpha)
	}

	c.Update(200 * time.Millisecond)
	if a := c.SceneAlpha(); a != 1 {
		t.Errorf("alpha after fade = %v", a)
	}
}

func TestControllerWithoutFadeIsOpaque(t *testing.T) {
	c, _ := newTestController(t, ControllerConfig{})
	c.OnResize(10, 10)
	if c.SceneAlpha() != 1 {
		t.Errorf("SceneAlpha = %v", c.SceneAlpha())
	}
}

func TestControllerDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	c, _ := newTestController(t, ControllerConfig{Debug: true, Logger: &logger})
	c.OnResize(64, 48)

	s := newRecordSurface(64, 48)
	for i := 0; i < debugLogEvery; i++ {
		c.Tick(time.Duration(i)*16*time.Millisecond, s)
	}

	out := buf.String()
	if !strings.Contains(out, `"message":"mosaic regenerated"`) {
		t.Error("missing regeneration log")
	}
	if !strings.Contains(out, `"message":"mosaic frame"`) || !strings.Contains(out, `"variant":"counting"`) {
		t.Errorf("missing frame stats log: %s", out)
	}
	st := c.Stats()
	if st.Frames != debugLogEvery || st.Tiles != 1 || st.Regenerations != 1 {
		t.Errorf("stats = %+v", st)
	}
}

type eventLog []Event

func (l *eventLog) EmitEvent(e Event) { *l = append(*l, e) }

func TestControllerEmitsLifecycleEvents(t *testing.T) {
	var events eventLog
	c, _ := newTestController(t, ControllerConfig{Events: &events})

	c.OnResize(100, 80)
	c.Update(0)
	c.RequestResize(200, 160, 0)
	c.Update(DefaultResizeDebounce)
	c.Stop()

	want := []EventType{EventRegenerated, EventResizeRequested, EventRegenerated, EventStopped}
	if len(events) != len(want) {
		t.Fatalf("events = %v", events)
	}
	for i, typ := range want {
		if events[i].Type != typ {
			t.Errorf("event %d = %v, want %v", i, events[i].Type, typ)
		}
		if events[i].Variant != "counting" {
			t.Errorf("event %d variant = %q", i, events[i].Variant)
		}
	}
	if events[1].Viewport != Viewport(200, 160) {
		t.Errorf("resize request viewport = %v", events[1].Viewport)
	}
	if events[2].Tiles != 1 || events[2].Frame != 1 {
		t.Errorf("regenerated event = %+v", events[2])
	}
	if EventStopped.String() != "stopped" {
		t.Error("EventType.String")
	}
}
