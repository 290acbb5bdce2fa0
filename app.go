package easel

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Windowed app runner. Run wires an editor to a window, camera, renderer,
// and input bridge so a board is interactive with one call. For full control
// implement [ebiten.Game] yourself and drive an InputBridge and Renderer
// directly.

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title         string
	Width, Height int

	// Background overrides the renderer's canvas color when non-nil.
	Background color.Color

	// Resizable allows the user to resize the window.
	Resizable bool
}

// App implements ebiten.Game around an editor, camera, renderer, and input
// bridge.
type App struct {
	Editor   *Editor
	Camera   *Camera
	Renderer *Renderer
	Input    *InputBridge
}

// NewApp assembles the game loop pieces for an editor over a viewport of the
// given size.
func NewApp(e *Editor, width, height int) *App {
	cam := NewCamera(Rect{Width: float64(width), Height: float64(height)})
	// Start centered on the viewport so world and screen origins coincide.
	cam.X = float64(width) / 2
	cam.Y = float64(height) / 2
	e.Camera = cam
	return &App{
		Editor:   e,
		Camera:   cam,
		Renderer: NewRenderer(e, cam),
		Input:    NewInputBridge(e, cam),
	}
}

// Update advances one tick: camera tweens, then input.
func (a *App) Update() error {
	a.Camera.Update(1.0 / 60.0)
	a.Input.Update()
	return nil
}

// Draw paints the frame and drains the coalesced redraw flag.
func (a *App) Draw(screen *ebiten.Image) {
	a.Editor.Board.TakeRedraw()
	a.Renderer.Draw(screen)
}

// Layout reports the logical screen size and keeps the camera viewport in
// sync with window resizes.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.Camera.Viewport.Width = float64(outsideWidth)
	a.Camera.Viewport.Height = float64(outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens a window and runs the editor until the window closes.
func Run(e *Editor, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	app := NewApp(e, cfg.Width, cfg.Height)
	if cfg.Background != nil {
		app.Renderer.Background = cfg.Background
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(app)
}
