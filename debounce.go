package mosaic

import "time"

// DefaultResizeDebounce is how long the window size must stay unchanged
// before the mosaic is regenerated.
const DefaultResizeDebounce = 200 * time.Millisecond

// Debouncer collapses a burst of triggers into one firing Delay after the
// last trigger. It is driven by frame timestamps rather than timers, so it
// never fires concurrently with a frame. At most one deadline is pending;
// each Trigger replaces it.
type Debouncer struct {
	Delay time.Duration

	deadline time.Duration
	pending  bool
}

// Trigger (re)starts the quiet period at now.
func (d *Debouncer) Trigger(now time.Duration) {
	d.deadline = now + d.Delay
	d.pending = true
}

// Ready reports whether the quiet period has elapsed, consuming the pending
// trigger when it has.
func (d *Debouncer) Ready(now time.Duration) bool {
	if !d.pending || now < d.deadline {
		return false
	}
	d.pending = false
	return true
}

// Pending reports whether a trigger is waiting to fire.
func (d *Debouncer) Pending() bool {
	return d.pending
}

// Cancel drops any pending trigger.
func (d *Debouncer) Cancel() {
	d.pending = false
}
