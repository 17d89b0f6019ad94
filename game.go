package mosaic

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// GameConfig configures the ebiten host for a Controller.
type GameConfig struct {
	// ShowFPS draws an FPS/TPS/tile-count overlay in the top-left corner.
	ShowFPS bool
	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string
	// Background is the surface clear color; zero alpha clears to
	// transparent.
	Background Color
	// Logger receives screenshot and script events. Nil discards them.
	Logger *zerolog.Logger
}

// Game hosts a Controller inside ebiten's game loop. Update advances the
// animation at the tick rate, Draw paints it at the display rate and Layout
// reports window size changes as debounced resizes.
type Game struct {
	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string
	// ResizeWindow, when set, is called for injected resizes so the real
	// window follows the scripted size.
	ResizeWindow func(w, h int)

	ctrl    *Controller
	surface *EbitenSurface
	clock   func() time.Time
	start   time.Time
	log     zerolog.Logger

	width, height int
	laidOut       bool

	fps             *fpsOverlay
	screenshotQueue []string
	injectQueue     []resizeEvent
	runner          *ScriptRunner
}

// NewGame wraps ctrl in an ebiten.Game.
func NewGame(ctrl *Controller, cfg GameConfig) *Game {
	g := &Game{
		ScreenshotDir: cfg.ScreenshotDir,
		ctrl:          ctrl,
		surface:       NewEbitenSurface(nil),
		clock:         time.Now,
		log:           zerolog.Nop(),
	}
	g.surface.Background = cfg.Background
	if g.ScreenshotDir == "" {
		g.ScreenshotDir = "screenshots"
	}
	if cfg.Logger != nil {
		g.log = *cfg.Logger
	}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	g.start = g.clock()
	return g
}

// Controller returns the hosted controller.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// now returns the time elapsed since the game was created.
func (g *Game) now() time.Duration {
	return g.clock().Sub(g.start)
}

// Update runs the test script, applies injected resizes and advances the
// animation. It returns ebiten.Termination once the controller is stopped.
func (g *Game) Update() error {
	if g.runner != nil {
		g.runner.step(g)
	}
	g.processInjected()
	if g.ctrl.Stopped() {
		return ebiten.Termination
	}
	now := g.now()
	g.ctrl.Update(now)
	if g.fps != nil {
		g.fps.update(now, len(g.ctrl.Variant().Tiles()))
	}
	return nil
}

// Draw paints the current frame onto screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.SetTarget(screen)
	g.ctrl.Draw(g.surface)
	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout keeps the logical screen equal to the window and forwards size
// changes to the controller.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.observeSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// observeSize regenerates immediately for the first size seen and debounces
// every later change.
func (g *Game) observeSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if !g.laidOut {
		g.laidOut = true
		g.width, g.height = w, h
		g.ctrl.OnResize(w, h)
		return
	}
	if w == g.width && h == g.height {
		return
	}
	g.width, g.height = w, h
	g.ctrl.RequestResize(w, h, g.now())
}

// RunConfig configures Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS draws the debug overlay.
	ShowFPS bool
	// Background opens an undecorated, monitor-sized, transparent window
	// that lets pointer events pass through to whatever is underneath.
	Background bool
	// ClearColor fills the window before each frame; zero alpha clears to
	// transparent.
	ClearColor Color
	// Script, when set, drives the game from a scripted test run.
	Script *ScriptRunner
	// ScreenshotDir is where scripted screenshots are written.
	ScreenshotDir string
	Logger        *zerolog.Logger
}

// Run opens a window and drives ctrl until the window is closed or the
// controller is stopped. The controller is stopped on return.
func Run(ctrl *Controller, cfg RunConfig) error {
	g := NewGame(ctrl, GameConfig{
		ShowFPS:       cfg.ShowFPS,
		ScreenshotDir: cfg.ScreenshotDir,
		Background:    cfg.ClearColor,
		Logger:        cfg.Logger,
	})
	if cfg.Script != nil {
		g.SetScript(cfg.Script)
	}
	g.ResizeWindow = ebiten.SetWindowSize

	w, h := cfg.Width, cfg.Height
	if cfg.Background {
		w, h = ebiten.Monitor().Size()
		ebiten.SetWindowDecorated(false)
		ebiten.SetWindowMousePassthrough(true)
		ebiten.SetWindowPosition(0, 0)
	}
	if w <= 0 || h <= 0 {
		w, h = 800, 600
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	defer ctrl.Stop()
	err := ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{
		ScreenTransparent: cfg.Background,
	})
	if err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
