package mosaic

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"
	"time"

	"github.com/setanarut/apng"
)

const (
	// DefaultRecordFPS is the virtual frame rate of headless recordings and
	// the playback rate of exported APNGs.
	DefaultRecordFPS = 25
	// apngDelay is the per-frame delay written to APNGs, in 1/100 s.
	apngDelay = 100 / DefaultRecordFPS
)

// RecordConfig configures a headless recording.
type RecordConfig struct {
	Width, Height int
	// Frames is the number of frames captured.
	Frames int
	// FPS is the virtual clock rate; DefaultRecordFPS when zero.
	FPS int
	// Warmup advances the animation this long before the first capture.
	Warmup time.Duration
	// Background is the clear color of every frame.
	Background Color
}

// Record drives ctrl on a virtual clock and returns the captured frames.
// The controller is resized to the recording size first. Cancelling ctx
// stops the recording and returns the frames captured so far with the
// context error.
func Record(ctx context.Context, ctrl *Controller, cfg RecordConfig) ([]image.Image, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("record: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Frames <= 0 {
		return nil, errors.New("record: frame count must be positive")
	}
	fps := cfg.FPS
	if fps <= 0 {
		fps = DefaultRecordFPS
	}
	step := time.Second / time.Duration(fps)

	surface := NewCanvasSurface(cfg.Width, cfg.Height)
	defer surface.Close()
	surface.Background = cfg.Background

	ctrl.OnResize(cfg.Width, cfg.Height)

	var now time.Duration
	for ; now < cfg.Warmup; now += step {
		ctrl.Update(now)
	}

	frames := make([]image.Image, 0, cfg.Frames)
	for i := 0; i < cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			return frames, ctx.Err()
		default:
		}
		if !ctrl.Tick(now, surface) {
			break
		}
		if err := surface.Err(); err != nil {
			return frames, fmt.Errorf("record frame %d: %w", i, err)
		}
		frames = append(frames, cloneImage(surface.Image()))
		now += step
	}
	return frames, nil
}

// Snapshot renders a single frame after warmup.
func Snapshot(ctx context.Context, ctrl *Controller, cfg RecordConfig) (image.Image, error) {
	cfg.Frames = 1
	frames, err := Record(ctx, ctrl, cfg)
	if err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, errors.New("snapshot: controller stopped before the first frame")
	}
	return frames[0], nil
}

// SavePNG writes img as a PNG file.
func SavePNG(path string, img image.Image) error {
	return writePNG(path, img)
}

// SaveAPNG writes frames as an animated PNG played at DefaultRecordFPS.
func SaveAPNG(path string, frames []image.Image) error {
	if len(frames) == 0 {
		return errors.New("save apng: no frames")
	}
	// apng.Save does not report failures, so check for the file it writes.
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("save apng %s: %w", path, err)
	}
	apng.Save(path, frames, apngDelay)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("save apng %s: %w", path, err)
	}
	return nil
}

// cloneImage copies src into a fresh RGBA image so later frames do not
// overwrite it.
func cloneImage(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}
