package easel

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Debug tooling: gated stderr logging of gesture commits and an on-screen
// HUD. Both are off unless explicitly enabled, so release builds pay nothing.

// SetDebug enables or disables stderr logging of committed gestures and
// history traffic.
func (e *Editor) SetDebug(enabled bool) {
	e.debug = enabled
}

// debugf logs to stderr when debug mode is on.
func (e *Editor) debugf(format string, args ...any) {
	if !e.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[easel] "+format+"\n", args...)
}

// actionName returns a readable name for HUD and debug output.
func actionName(t ActionType) string {
	switch t {
	case ActionAddObject:
		return "add_object"
	case ActionDeleteObjects:
		return "delete_objects"
	case ActionUpdateObject:
		return "update_object"
	case ActionMoveMultiple:
		return "move_multiple"
	case ActionReorderLayers:
		return "reorder_layers"
	case ActionPasteObjects:
		return "paste_objects"
	default:
		return "unknown"
	}
}

// modeName returns a readable name for the interaction mode.
func modeName(m Mode) string {
	switch m {
	case ModeDrawing:
		return "drawing"
	case ModeDragging:
		return "dragging"
	case ModeResizing:
		return "resizing"
	case ModeBoxSelecting:
		return "box-selecting"
	default:
		return "idle"
	}
}

// DrawHUD overlays FPS/TPS and editor state in the top-left corner. Enable
// with Renderer.ShowHUD.
func (r *Renderer) DrawHUD(dst *ebiten.Image) {
	e := r.Editor
	ebitenutil.DebugPrint(dst, fmt.Sprintf(
		"FPS: %.1f  TPS: %.1f\nmode: %s  zoom: %.2f\nobjects: %d  selected: %d  undo: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		modeName(e.Mode()), r.Camera.Zoom,
		e.Board.Len(), e.Selection.Len(), e.History.Len(),
	))
}
