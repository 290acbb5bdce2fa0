package easel

import "testing"

func newTestEditor() *Editor {
	e := NewEditor(NewBoard())
	// Snapping off by default so position assertions stay exact.
	e.SnapEnabled = false
	return e
}

func TestHistoryPushClearsRedo(t *testing.T) {
	e := newTestEditor()
	o := newTestShape(0, 0, 50, 50)
	e.Board.Add(o)
	e.History.Push(Action{Type: ActionAddObject, Data: AddObjectData{Object: o.Clone()}})

	if !e.Undo() {
		t.Fatal("undo failed")
	}
	if !e.History.CanRedo() {
		t.Fatal("redo should be available after undo")
	}

	o2 := newTestShape(0, 0, 50, 50)
	e.Board.Add(o2)
	e.History.Push(Action{Type: ActionAddObject, Data: AddObjectData{Object: o2.Clone()}})
	if e.History.CanRedo() {
		t.Error("a fresh push must clear the redo stack")
	}
}

func TestHistoryTruncatesOldest(t *testing.T) {
	h := NewHistory()
	h.MaxHistory = 3
	for i := 0; i < 5; i++ {
		h.Push(Action{Type: ActionMoveMultiple, Data: MoveMultipleData{}})
	}
	if h.Len() != 3 {
		t.Errorf("len = %d, want 3", h.Len())
	}
}

func TestUndoRedoAddObject(t *testing.T) {
	e := newTestEditor()
	o := newTestShape(10, 10, 50, 50)
	e.Board.Add(o)
	e.History.Push(Action{Type: ActionAddObject, Data: AddObjectData{Object: o.Clone()}})

	if !e.Undo() {
		t.Fatal("undo failed")
	}
	if e.Board.ByID(o.ID) != nil {
		t.Error("undo of a create should remove the object")
	}

	if !e.Redo() {
		t.Fatal("redo failed")
	}
	got := e.Board.ByID(o.ID)
	if got == nil {
		t.Fatal("redo should reconstruct the object")
	}
	if got.ZIndex != o.ZIndex || got.X != 10 {
		t.Error("reconstructed object must keep id, z-index, and geometry")
	}
}

func TestUndoRedoDeleteObjects(t *testing.T) {
	e := newTestEditor()
	a := newTestShape(0, 0, 50, 50)
	c := newTestShape(100, 0, 50, 50)
	e.Board.Add(a)
	e.Board.Add(c)

	e.Selection.ReplaceAll([]*Object{a, c})
	e.DeleteSelection()
	if e.Board.Len() != 0 {
		t.Fatal("delete should remove both objects")
	}
	if e.Selection.Len() != 0 {
		t.Error("deletion must clear the selection")
	}

	if !e.Undo() {
		t.Fatal("undo failed")
	}
	if e.Board.Len() != 2 {
		t.Fatalf("board len = %d, want 2", e.Board.Len())
	}
	ra := e.Board.ByID(a.ID)
	if ra == nil || ra.ZIndex != 1 {
		t.Error("undo must restore original ids and z-indices")
	}

	if !e.Redo() {
		t.Fatal("redo failed")
	}
	if e.Board.Len() != 0 {
		t.Error("redo should delete again")
	}
}

func TestUndoUpdateKeepsPointerStable(t *testing.T) {
	e := newTestEditor()
	o := newTestShape(0, 0, 100, 100)
	e.Board.Add(o)
	e.Selection.Replace(o)

	before := o.Clone()
	o.Width = 200
	e.History.Push(Action{Type: ActionUpdateObject, Data: UpdateObjectData{ID: o.ID, Before: before, After: o.Clone()}})

	if !e.Undo() {
		t.Fatal("undo failed")
	}
	if o.Width != 100 {
		t.Errorf("width = %v, want 100", o.Width)
	}
	// The selection still points at the same live object.
	if e.Selection.Sole() != o {
		t.Error("selection reference must survive the restore")
	}

	if !e.Redo() {
		t.Fatal("redo failed")
	}
	if o.Width != 200 {
		t.Errorf("width after redo = %v, want 200", o.Width)
	}
}

func TestUndoRedoMoveMultiple(t *testing.T) {
	e := newTestEditor()
	box := newTestShape(0, 0, 50, 50)
	line := NewLine(ShapeStyle{Kind: ShapeLine}, 0, 0, 100, 0)
	e.Board.Add(box)
	e.Board.Add(line)

	e.History.Push(Action{Type: ActionMoveMultiple, Data: MoveMultipleData{Items: []MoveItem{
		{ID: box.ID, OldX: 0, OldY: 0, NewX: 30, NewY: 40},
		{ID: line.ID, OldX: 0, OldY: 0, NewX: 10, NewY: 10, OldX2: 100, OldY2: 0, NewX2: 110, NewY2: 10, Endpoints: true},
	}}})
	box.X, box.Y = 30, 40
	line.X, line.Y, line.X2, line.Y2 = 10, 10, 110, 10

	if !e.Undo() {
		t.Fatal("undo failed")
	}
	if box.X != 0 || box.Y != 0 {
		t.Errorf("box at (%v, %v), want origin", box.X, box.Y)
	}
	if line.X2 != 100 || line.Y2 != 0 {
		t.Error("undo must restore line endpoints")
	}

	if !e.Redo() {
		t.Fatal("redo failed")
	}
	if box.X != 30 || line.X2 != 110 {
		t.Error("redo must re-apply the move")
	}
}

func TestUndoReorderSurvivesInterleavedDeletes(t *testing.T) {
	e := newTestEditor()
	a := newTestShape(0, 0, 50, 50)
	c := newTestShape(0, 0, 50, 50)
	e.Board.Add(a)
	e.Board.Add(c)

	e.Selection.Replace(a)
	e.BringToFront()
	if a.ZIndex <= c.ZIndex {
		t.Fatal("bring to front failed")
	}

	// An object deleted after the reorder makes a delta-based record stale;
	// full before/after maps shrug it off.
	extra := newTestShape(0, 0, 50, 50)
	e.Board.Add(extra)
	e.Board.Delete(extra.ID)

	if !e.Undo() {
		t.Fatal("undo failed")
	}
	if a.ZIndex != 1 || c.ZIndex != 2 {
		t.Errorf("z after undo = (%d, %d), want (1, 2)", a.ZIndex, c.ZIndex)
	}
}

func TestUndoRedoPaste(t *testing.T) {
	e := newTestEditor()
	src := newTestShape(0, 0, 50, 50)
	e.PasteObjects([]*Object{src})

	if e.Board.Len() != 1 {
		t.Fatal("paste should insert one object")
	}
	pasted := e.Selection.Sole()
	if pasted == nil {
		t.Fatal("paste should select the inserted object")
	}
	if pasted.ID == src.ID {
		t.Error("paste must mint a fresh id")
	}
	if pasted.X != PasteOffset || pasted.Y != PasteOffset {
		t.Errorf("pasted at (%v, %v), want offset by %v", pasted.X, pasted.Y, float64(PasteOffset))
	}

	if !e.Undo() {
		t.Fatal("undo failed")
	}
	if e.Board.Len() != 0 {
		t.Error("undo of a paste removes the pasted objects")
	}
	if !e.Redo() {
		t.Fatal("redo failed")
	}
	if e.Board.ByID(pasted.ID) == nil {
		t.Error("redo restores the pasted objects with the same ids")
	}
}

func TestUndoDoesNotRestoreSelection(t *testing.T) {
	e := newTestEditor()
	a := newTestShape(0, 0, 50, 50)
	e.Board.Add(a)
	e.Selection.Replace(a)

	// Selection is transient UI state: deleting and undoing brings the
	// object back, never its selected state.
	e.DeleteSelection()
	if !e.Undo() {
		t.Fatal("undo failed")
	}
	if e.Board.ByID(a.ID) == nil {
		t.Fatal("undo should restore the object")
	}
	if e.Selection.Len() != 0 {
		t.Error("restored objects come back unselected")
	}

	// Undoing a create drops the object from the selection and leaves the
	// selection otherwise untouched.
	c := newTestShape(100, 0, 50, 50)
	e.Board.Add(c)
	e.History.Push(Action{Type: ActionAddObject, Data: AddObjectData{Object: c.Clone()}})
	e.Selection.Replace(c)
	if !e.Undo() {
		t.Fatal("undo failed")
	}
	if e.Selection.Contains(c) || e.Selection.Len() != 0 {
		t.Error("undo of a create must not leave the removed object selected")
	}
}

func TestUndoEmptyAndMalformed(t *testing.T) {
	e := newTestEditor()
	if e.Undo() {
		t.Error("undo on empty history should return false")
	}
	if e.Redo() {
		t.Error("redo on empty history should return false")
	}

	e.History.Push(Action{Type: ActionAddObject, Data: "garbage"})
	if e.Undo() {
		t.Error("malformed action should not undo")
	}
	if e.History.CanRedo() {
		t.Error("malformed action is discarded, not moved to redo")
	}
}

func TestUndoStaleUpdateIsNoOp(t *testing.T) {
	e := newTestEditor()
	o := newTestShape(0, 0, 50, 50)
	e.Board.Add(o)
	before := o.Clone()
	o.X = 40
	e.History.Push(Action{Type: ActionUpdateObject, Data: UpdateObjectData{ID: o.ID, Before: before, After: o.Clone()}})
	e.Board.Delete(o.ID)

	// The target is gone; undo completes without touching anything.
	if !e.Undo() {
		t.Fatal("undo should still succeed")
	}
	if e.Board.Len() != 0 {
		t.Error("stale update restore must not resurrect the object")
	}
}
