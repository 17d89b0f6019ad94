package mosaic

// resizeEvent is a synthetic window size change.
type resizeEvent struct {
	width, height int
}

// InjectResize queues a window size change. It is applied at the start of
// the next Update, exactly as if the window had been resized, and goes
// through the same debounce.
func (g *Game) InjectResize(w, h int) {
	g.injectQueue = append(g.injectQueue, resizeEvent{width: w, height: h})
}

// processInjected applies at most one queued resize per frame.
func (g *Game) processInjected() bool {
	if len(g.injectQueue) == 0 {
		return false
	}
	evt := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]

	if g.ResizeWindow != nil {
		g.ResizeWindow(evt.width, evt.height)
	}
	g.observeSize(evt.width, evt.height)
	return true
}
