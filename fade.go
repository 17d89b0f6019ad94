package mosaic

import (
	"strings"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// SceneFade tweens the scene alpha from 0 to 1 after a regeneration so the
// new mosaic eases in instead of popping. Call Update once per frame.
type SceneFade struct {
	tween *gween.Tween
	alpha float64
	Done  bool
}

// NewSceneFade creates a fade lasting d. A nil easing function is linear.
func NewSceneFade(d time.Duration, fn ease.TweenFunc) *SceneFade {
	if fn == nil {
		fn = ease.Linear
	}
	return &SceneFade{tween: gween.New(0, 1, float32(d.Seconds()), fn)}
}

// Update advances the fade by dt.
func (f *SceneFade) Update(dt time.Duration) {
	if f.Done {
		return
	}
	val, finished := f.tween.Update(float32(dt.Seconds()))
	f.alpha = clamp01(float64(val))
	if finished {
		f.alpha = 1
		f.Done = true
	}
}

// Alpha returns the current scene alpha in [0, 1].
func (f *SceneFade) Alpha() float64 {
	if f == nil || f.Done {
		return 1
	}
	return f.alpha
}

var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-out-sine":  ease.InOutSine,
	"in-out-quad":  ease.InOutQuad,
	"out-quad":     ease.OutQuad,
	"in-out-cubic": ease.InOutCubic,
}

// EasingByName resolves an easing function name such as "in-out-sine".
func EasingByName(name string) (ease.TweenFunc, bool) {
	fn, ok := easings[strings.ToLower(name)]
	return fn, ok
}
