package easel

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Ebiten input bridge. Polls mouse and keyboard each tick, converts screen
// coordinates to world space through the camera, and feeds the editor's
// pointer and keyboard entry points. The editor itself never touches ebiten,
// so gesture logic stays testable without a window.

const (
	doubleClickTicks = 30 // max ticks between clicks of a double-click
	doubleClickDist  = 5  // max cursor travel between clicks, screen px
	wheelZoomStep    = 1.1
	nudgeStep        = 1
	nudgeStepLarge   = 10
)

// InputBridge translates ebiten input state into editor calls.
type InputBridge struct {
	Editor *Editor
	Camera *Camera

	tick          int
	lastClickTick int
	lastClickX    float64
	lastClickY    float64

	panning  bool
	panLastX float64
	panLastY float64
}

// NewInputBridge wires a bridge to an editor and its camera.
func NewInputBridge(e *Editor, cam *Camera) *InputBridge {
	return &InputBridge{Editor: e, Camera: cam, lastClickTick: -doubleClickTicks}
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// commandPressed reports the platform command chord (ctrl or meta).
func commandPressed(mods KeyModifiers) bool {
	return mods&(ModCtrl|ModMeta) != 0
}

// Update polls input once per tick. Call from the game loop before drawing.
func (ib *InputBridge) Update() {
	ib.tick++
	mods := readModifiers()

	ib.processWheel()
	ib.processPan()
	if !ib.panning {
		ib.processMouse(mods)
	}
	ib.processKeyboard(mods)
}

func (ib *InputBridge) processWheel() {
	_, dy := ebiten.Wheel()
	if dy == 0 {
		return
	}
	mx, my := ebiten.CursorPosition()
	ib.Camera.ZoomAt(float64(mx), float64(my), math.Pow(wheelZoomStep, dy))
	ib.Editor.Board.RequestRedraw()
}

// processPan drags the camera with the middle button, or left button while
// space is held.
func (ib *InputBridge) processPan() {
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)

	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	spaceLeft := ebiten.IsKeyPressed(ebiten.KeySpace) && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	active := middle || spaceLeft

	if active && !ib.panning && ib.Editor.Mode() == ModeIdle {
		ib.panning = true
		ib.panLastX, ib.panLastY = sx, sy
		return
	}
	if !active {
		ib.panning = false
		return
	}
	if ib.panning && (sx != ib.panLastX || sy != ib.panLastY) {
		ib.Camera.Pan(sx-ib.panLastX, sy-ib.panLastY)
		ib.panLastX, ib.panLastY = sx, sy
		ib.Editor.Board.RequestRedraw()
	}
}

func (ib *InputBridge) processMouse(mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)
	wx, wy := ib.Camera.ScreenToWorld(sx, sy)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ib.isDoubleClick(sx, sy) {
			ib.Editor.DoubleClick(wx, wy)
		} else {
			ib.pointerDown(wx, wy, mods)
		}
		ib.lastClickTick = ib.tick
		ib.lastClickX, ib.lastClickY = sx, sy
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		ib.Editor.PointerMove(wx, wy, mods)
		return
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		ib.Editor.PointerUp(wx, wy, mods)
	}
}

// pointerDown routes a press to the editor, falling back to a marquee drag
// when the press lands on empty canvas with no tool and no modifier.
func (ib *InputBridge) pointerDown(wx, wy float64, mods KeyModifiers) {
	e := ib.Editor
	startMarquee := e.Mode() == ModeIdle && e.Tool() == ToolNone &&
		!mods.multiSelect() && e.Board.FindAtPoint(wx, wy) == nil &&
		!ib.onSoleHandle(wx, wy)
	e.PointerDown(wx, wy, mods)
	if startMarquee && e.Mode() == ModeIdle {
		e.BeginBoxSelect(wx, wy)
	}
}

func (ib *InputBridge) onSoleHandle(wx, wy float64) bool {
	sole := ib.Editor.Selection.Sole()
	if sole == nil {
		return false
	}
	zoom := ib.Camera.Zoom
	return rotationHandleAt(sole, wx, wy, zoom) ||
		ib.Editor.Board.FindResizeHandle(sole, wx, wy, zoom) != HandleNone
}

func (ib *InputBridge) isDoubleClick(sx, sy float64) bool {
	return ib.tick-ib.lastClickTick <= doubleClickTicks &&
		math.Hypot(sx-ib.lastClickX, sy-ib.lastClickY) <= doubleClickDist
}

func (ib *InputBridge) processKeyboard(mods KeyModifiers) {
	e := ib.Editor

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		// Escape commits an open text edit; edits are never discarded.
		e.CommitTextEdit()
		e.SetTool(ToolNone)
		return
	}

	// While a text edit is open, the editing surface owns the keyboard.
	if e.EditingText() != nil {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		e.DeleteSelection()
		return
	}

	if commandPressed(mods) {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyZ) && mods&ModShift != 0:
			e.Redo()
		case inpututil.IsKeyJustPressed(ebiten.KeyZ):
			e.Undo()
		case inpututil.IsKeyJustPressed(ebiten.KeyY):
			e.Redo()
		case inpututil.IsKeyJustPressed(ebiten.KeyC):
			e.CopySelection()
		case inpututil.IsKeyJustPressed(ebiten.KeyV):
			e.Paste()
		}
		return
	}

	step := float64(nudgeStep)
	if mods&ModShift != 0 {
		step = nudgeStepLarge
	}
	var dx, dy float64
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		dx -= step
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		dx += step
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		dy -= step
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		dy += step
	}
	if dx != 0 || dy != 0 {
		e.Nudge(dx, dy)
	}
}
