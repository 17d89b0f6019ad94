package mosaic

// EventSink is the interface for optional ECS integration. When set on a
// Controller, lifecycle events are forwarded to it.
type EventSink interface {
	EmitEvent(event Event)
}

// EventType identifies a controller lifecycle event.
type EventType uint8

const (
	// EventRegenerated fires after the mosaic is rebuilt for a new viewport.
	EventRegenerated EventType = iota
	// EventResizeRequested fires when a debounced resize starts waiting.
	EventResizeRequested
	// EventStopped fires once when the controller is stopped.
	EventStopped
)

func (t EventType) String() string {
	switch t {
	case EventRegenerated:
		return "regenerated"
	case EventResizeRequested:
		return "resize-requested"
	case EventStopped:
		return "stopped"
	}
	return "unknown"
}

// Event carries lifecycle data for the ECS bridge.
type Event struct {
	Type    EventType
	Variant string
	// Viewport is the current viewport, or the requested one for
	// EventResizeRequested.
	Viewport Rect
	Tiles    int
	Frame    uint64
}

func (c *Controller) emit(t EventType, vp Rect) {
	if c.events == nil {
		return
	}
	c.events.EmitEvent(Event{
		Type:     t,
		Variant:  c.variant.Name(),
		Viewport: vp,
		Tiles:    len(c.variant.Tiles()),
		Frame:    c.frame.Count,
	})
}
