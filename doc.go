// Package easel is the interactive scene-editing engine of a visual board
// editor for [Ebitengine].
//
// Easel owns the editable object model (shapes, rich text boxes, color
// palettes), pointer-driven interaction (select, drag, resize, rotate, draw,
// box-select), selection management, and command-based undo/redo. Rendering
// and raw input live in thin adapters so the engine itself stays free of any
// window dependency and fully unit-testable.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	board := easel.NewBoard()
//	editor := easel.NewEditor(board)
//	easel.Run(editor, easel.RunConfig{
//		Title: "My Board", Width: 1280, Height: 720,
//	})
//
// For full control, implement [ebiten.Game] yourself and drive an
// [InputBridge] and [Renderer] around the editor.
//
// # Object model
//
// Every element on a board is an [Object]: a flat record whose [ObjectKind]
// selects which fields are meaningful. Create objects with the typed
// constructors [NewShape], [NewLine], [NewTextBox], and [NewPalette], then
// add them to a [Board]:
//
//	style := easel.ShapeStyle{Kind: easel.ShapeSquare, FillColor: "#60a5fa"}
//	box := easel.NewShape(style, 100, 100, 200, 150)
//	board.Add(box)
//
// All mutation flows through the board, the editor, or undo/redo; external
// collaborators observe changes through [Board.OnObjectsChanged] and read
// the object list in paint order with [Board.Objects].
//
// # Interaction
//
// The [Editor] consumes pointer events in world coordinates and moves
// between interaction modes (idle, drawing, dragging, resizing,
// box-selecting). Activate a creation tool with [Editor.SetTool], then feed
// [Editor.PointerDown], [Editor.PointerMove], and [Editor.PointerUp]. The
// [InputBridge] does this wiring for you when running under Ebitengine.
//
// # History
//
// Every committed gesture records one self-contained [Action]. Undo and redo
// replay snapshots, so they stay correct regardless of what changed in
// between:
//
//	editor.Undo()
//	editor.Redo()
//
// # Single-threaded model
//
// Like the rendering layer it serves, easel is single-threaded by design:
// drive it only from the game loop goroutine. There are no locks and no
// internal goroutines.
//
// [Ebitengine]: https://ebitengine.org
package easel
