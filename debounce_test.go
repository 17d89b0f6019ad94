package mosaic

import (
	"testing"
	"time"
)

func TestDebouncerFiresOnceAfterQuiet(t *testing.T) {
	d := Debouncer{Delay: 200 * time.Millisecond}
	if d.Ready(time.Hour) {
		t.Fatal("idle debouncer fired")
	}

	d.Trigger(0)
	d.Trigger(100 * time.Millisecond)
	d.Trigger(150 * time.Millisecond)
	if d.Ready(300 * time.Millisecond) {
		t.Fatal("fired before the last trigger settled")
	}
	if !d.Pending() {
		t.Fatal("should still be pending")
	}
	if !d.Ready(350 * time.Millisecond) {
		t.Fatal("did not fire after the quiet period")
	}
	if d.Ready(400*time.Millisecond) || d.Pending() {
		t.Error("fired twice for one burst")
	}
}

func TestDebouncerCancel(t *testing.T) {
	d := Debouncer{Delay: 50 * time.Millisecond}
	d.Trigger(0)
	d.Cancel()
	if d.Pending() || d.Ready(time.Second) {
		t.Error("cancelled trigger fired")
	}
}

func TestDebouncerZeroDelay(t *testing.T) {
	var d Debouncer
	d.Trigger(10 * time.Millisecond)
	if !d.Ready(10 * time.Millisecond) {
		t.Error("zero delay should fire on the same timestamp")
	}
}
