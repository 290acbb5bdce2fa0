// boarddemo opens an editable board pre-populated with a few objects.
// Keys: S shape tool, T text tool, 1-5 shape kinds, ctrl+Z/Y undo/redo,
// ctrl+C/V copy/paste, delete removes the selection, arrows nudge,
// middle-drag pans, wheel zooms.
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/easel"
)

const (
	screenW = 1280
	screenH = 720
)

type game struct {
	app    *easel.App
	editor *easel.Editor
}

func (g *game) Update() error {
	g.pollToolKeys()
	return g.app.Update()
}

func (g *game) Draw(screen *ebiten.Image) { g.app.Draw(screen) }

func (g *game) Layout(w, h int) (int, int) { return g.app.Layout(w, h) }

// pollToolKeys maps plain letter/digit keys to tool and shape selection.
func (g *game) pollToolKeys() {
	if g.editor.EditingText() != nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.editor.SetTool(easel.ToolShape)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.editor.SetTool(easel.ToolText)
	}
	kinds := map[ebiten.Key]easel.ShapeKind{
		ebiten.KeyDigit1: easel.ShapeSquare,
		ebiten.KeyDigit2: easel.ShapeCircle,
		ebiten.KeyDigit3: easel.ShapeTriangle,
		ebiten.KeyDigit4: easel.ShapeLine,
		ebiten.KeyDigit5: easel.ShapeArrow,
	}
	for key, kind := range kinds {
		if inpututil.IsKeyJustPressed(key) {
			style := g.editor.ShapeStyle()
			style.Kind = kind
			if style.FillColor == "" {
				style.FillColor = "#60a5fa"
			}
			style.HasStroke = true
			if style.StrokeColor == "" {
				style.StrokeColor = "#1e3a8a"
			}
			if style.StrokeWidth == 0 {
				style.StrokeWidth = 2
			}
			g.editor.SetShapeStyle(style)
			g.editor.SetTool(easel.ToolShape)
		}
	}
}

func main() {
	board := easel.NewBoard()
	editor := easel.NewEditor(board)

	// Seed content so there is something to grab right away.
	blue := easel.ShapeStyle{Kind: easel.ShapeSquare, FillColor: "#60a5fa", HasStroke: true, StrokeColor: "#1e3a8a", StrokeWidth: 2, CornerRadius: 12}
	board.Add(easel.NewShape(blue, 180, 140, 220, 160))

	amber := easel.ShapeStyle{Kind: easel.ShapeCircle, FillColor: "#fbbf24", HasStroke: true, StrokeColor: "#92400e", StrokeWidth: 2}
	board.Add(easel.NewShape(amber, 520, 220, 180, 180))

	arrow := easel.ShapeStyle{Kind: easel.ShapeArrow, StrokeColor: "#334155", StrokeWidth: 3}
	board.Add(easel.NewLine(arrow, 420, 230, 510, 290))

	note := easel.NewTextBox(easel.DefaultTextStyle, 220, 420, 280, 90)
	easel.SetTextContent(note, []easel.TextRun{{Text: "double-click to edit me", Style: easel.DefaultTextStyle}})
	board.Add(note)

	swatches := []easel.PaletteCell{
		{Hex: "#0f172a"},
		{Hex: "#ef4444"}, {Hex: "#f97316"}, {Hex: "#eab308"}, {Hex: "#22c55e"},
		{Hex: "#3b82f6"}, {Hex: "#8b5cf6"}, {Hex: "#ec4899"}, {Hex: "#64748b"},
	}
	board.Add(easel.NewPalette(760, 420, 40, 4, 2, true, swatches))

	app := easel.NewApp(editor, screenW, screenH)

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("easel board demo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(&game{app: app, editor: editor}); err != nil {
		log.Fatal(err)
	}
}
