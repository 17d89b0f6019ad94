package mosaic

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newFallController(t *testing.T, seed uint64) *Controller {
	t.Helper()
	v, err := NewVariant(VariantFall, Options{Rand: NewRand(seed)})
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewController(ControllerConfig{Variant: v})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestRecordFrames(t *testing.T) {
	c := newFallController(t, 1)
	frames, err := Record(context.Background(), c, RecordConfig{
		Width: 64, Height: 48, Frames: 5, Warmup: 200 * time.Millisecond,
		Background: ColorWhite,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 5 {
		t.Fatalf("frames = %d, want 5", len(frames))
	}
	for i, f := range frames {
		if b := f.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
			t.Errorf("frame %d bounds %v", i, b)
		}
	}
	if c.Viewport() != Viewport(64, 48) {
		t.Errorf("controller viewport = %v", c.Viewport())
	}
	// Warmup at 25 fps is 5 updates, then 5 captured frames.
	if got := c.Frame().Count; got != 10 {
		t.Errorf("frame count = %d, want 10", got)
	}
	if frames[0] == frames[1] {
		t.Error("frames must be independent copies")
	}
}

func TestRecordValidates(t *testing.T) {
	c := newFallController(t, 2)
	if _, err := Record(context.Background(), c, RecordConfig{Width: 0, Height: 10, Frames: 1}); err == nil {
		t.Error("zero width accepted")
	}
	if _, err := Record(context.Background(), c, RecordConfig{Width: 10, Height: 10}); err == nil {
		t.Error("zero frames accepted")
	}
}

func TestRecordCancelled(t *testing.T) {
	c := newFallController(t, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	frames, err := Record(ctx, c, RecordConfig{Width: 10, Height: 10, Frames: 3})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if len(frames) != 0 {
		t.Errorf("frames = %d", len(frames))
	}
}

func TestRecordStoppedController(t *testing.T) {
	c := newFallController(t, 4)
	c.Stop()
	frames, err := Record(context.Background(), c, RecordConfig{Width: 10, Height: 10, Frames: 3})
	if err != nil || len(frames) != 0 {
		t.Errorf("frames %d err %v", len(frames), err)
	}
	if _, err := Snapshot(context.Background(), c, RecordConfig{Width: 10, Height: 10}); err == nil {
		t.Error("Snapshot of a stopped controller should fail")
	}
}

func TestSnapshotIsReproducible(t *testing.T) {
	cfg := RecordConfig{Width: 32, Height: 32, Background: ColorWhite}
	a, err := Snapshot(context.Background(), newFallController(t, 9), cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Snapshot(context.Background(), newFallController(t, 9), cfg)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("pixel (%d,%d) differs", x, y)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "snap.png")
	if err := SavePNG(path, a); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("png not written: %v", err)
	}
}

func TestSaveAPNG(t *testing.T) {
	c := newFallController(t, 5)
	frames, err := Record(context.Background(), c, RecordConfig{Width: 16, Height: 16, Frames: 3})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "anim.png")
	if err := SaveAPNG(path, frames); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("apng not written: %v", err)
	}
	if err := SaveAPNG(path, nil); err == nil {
		t.Error("empty frame list accepted")
	}
}
