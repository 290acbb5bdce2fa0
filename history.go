package easel

import "time"

// DefaultMaxHistory is the default undo stack depth.
const DefaultMaxHistory = 50

// ActionType identifies a kind of reversible mutation.
type ActionType uint8

const (
	ActionAddObject     ActionType = iota // one object created by a draw gesture
	ActionDeleteObjects                   // the selection deleted in one atomic step
	ActionUpdateObject                    // geometry/style/content change of one object
	ActionMoveMultiple                    // a drag or nudge of one or more objects
	ActionReorderLayers                   // z-order change
	ActionPasteObjects                    // objects pasted from the clipboard
)

// Action is a self-contained, reversible record of one mutation. Data carries
// full snapshots, not diffs against current state, because current state may
// have changed by the time undo runs.
type Action struct {
	Type ActionType
	Data any
	Time time.Time
}

// AddObjectData captures the created object verbatim.
type AddObjectData struct {
	Object *Object
}

// DeleteObjectsData captures a deep copy of every removed object's full
// state, so undo reconstructs each one with its original id and z-index.
type DeleteObjectsData struct {
	Objects []*Object
}

// UpdateObjectData captures complete before/after snapshots of one object.
type UpdateObjectData struct {
	ID            string
	Before, After *Object
}

// MoveItem records one object's positions before and after a move. Endpoints
// is set for line/arrow objects, whose second endpoint moves too.
type MoveItem struct {
	ID           string
	OldX, OldY   float64
	NewX, NewY   float64
	OldX2, OldY2 float64
	NewX2, NewY2 float64
	Endpoints    bool
}

// MoveMultipleData captures a multi-object move.
type MoveMultipleData struct {
	Items []MoveItem
}

// ReorderLayersData captures the full before/after z-order maps. Full maps,
// not deltas: restoration must stay correct even when creates and deletes
// interleave with the reorder on the history timeline.
type ReorderLayersData struct {
	Before, After map[string]int
}

// PasteObjectsData captures the pasted objects verbatim.
type PasteObjectsData struct {
	Objects []*Object
}

// History holds the undo and redo stacks. Undoing or redoing never records a
// new action; only fresh mutations push.
type History struct {
	undo []Action
	redo []Action

	// MaxHistory bounds the undo stack; the oldest entries are dropped.
	MaxHistory int
}

// NewHistory creates a history log with the default depth.
func NewHistory() *History {
	return &History{MaxHistory: DefaultMaxHistory}
}

// Push stamps the action with the current time, appends it to the undo
// stack, and clears the redo stack unconditionally: redo is only valid
// immediately after an undo with no intervening new action.
func (h *History) Push(a Action) {
	a.Time = time.Now()
	h.undo = append(h.undo, a)
	if n := len(h.undo) - h.MaxHistory; n > 0 && h.MaxHistory > 0 {
		h.undo = append(h.undo[:0], h.undo[n:]...)
	}
	h.redo = h.redo[:0]
}

// CanUndo reports whether an action is available to undo.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether an undone action is available to redo.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Len returns the undo stack depth.
func (h *History) Len() int { return len(h.undo) }

// Clear drops both stacks.
func (h *History) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

// pop removes and returns the top undo action.
func (h *History) pop() (Action, bool) {
	if len(h.undo) == 0 {
		return Action{}, false
	}
	a := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	return a, true
}

// popRedo removes and returns the top redo action.
func (h *History) popRedo() (Action, bool) {
	if len(h.redo) == 0 {
		return Action{}, false
	}
	a := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	return a, true
}

// --- Editor-level undo/redo ---

// Undo pops the most recent action and applies its inverse effect, then
// moves the action to the redo stack. Returns false if there was nothing to
// undo. A malformed action record is discarded without touching the board.
func (e *Editor) Undo() bool {
	a, ok := e.History.pop()
	if !ok {
		return false
	}
	if !e.applyInverse(a) {
		return false
	}
	e.debugf("undo %s", actionName(a.Type))
	e.History.redo = append(e.History.redo, a)
	e.Board.RequestRedraw()
	return true
}

// Redo pops the most recently undone action and re-applies its forward
// effect, then moves it back to the undo stack. Returns false if there was
// nothing to redo.
func (e *Editor) Redo() bool {
	a, ok := e.History.popRedo()
	if !ok {
		return false
	}
	if !e.applyForward(a) {
		return false
	}
	e.debugf("redo %s", actionName(a.Type))
	e.History.undo = append(e.History.undo, a)
	e.Board.RequestRedraw()
	return true
}

// applyInverse dispatches on the action type and applies the inverse
// mutation. Returns false for malformed records, which are dropped.
func (e *Editor) applyInverse(a Action) bool {
	switch a.Type {
	case ActionAddObject:
		data, ok := a.Data.(AddObjectData)
		if !ok || data.Object == nil {
			return false
		}
		e.Board.Delete(data.Object.ID)
	case ActionDeleteObjects:
		data, ok := a.Data.(DeleteObjectsData)
		if !ok {
			return false
		}
		for _, o := range data.Objects {
			e.Board.Restore(o.Clone())
		}
	case ActionUpdateObject:
		data, ok := a.Data.(UpdateObjectData)
		if !ok || data.Before == nil {
			return false
		}
		e.restoreSnapshot(data.ID, data.Before)
	case ActionMoveMultiple:
		data, ok := a.Data.(MoveMultipleData)
		if !ok {
			return false
		}
		e.applyMove(data.Items, false)
	case ActionReorderLayers:
		data, ok := a.Data.(ReorderLayersData)
		if !ok {
			return false
		}
		e.Board.ApplyZOrder(data.Before)
	case ActionPasteObjects:
		data, ok := a.Data.(PasteObjectsData)
		if !ok {
			return false
		}
		ids := make([]string, len(data.Objects))
		for i, o := range data.Objects {
			ids[i] = o.ID
		}
		e.Board.Delete(ids...)
	default:
		return false
	}
	return true
}

// applyForward dispatches on the action type and applies the forward
// mutation.
func (e *Editor) applyForward(a Action) bool {
	switch a.Type {
	case ActionAddObject:
		data, ok := a.Data.(AddObjectData)
		if !ok || data.Object == nil {
			return false
		}
		e.Board.Restore(data.Object.Clone())
	case ActionDeleteObjects:
		data, ok := a.Data.(DeleteObjectsData)
		if !ok {
			return false
		}
		ids := make([]string, len(data.Objects))
		for i, o := range data.Objects {
			ids[i] = o.ID
		}
		e.Board.Delete(ids...)
	case ActionUpdateObject:
		data, ok := a.Data.(UpdateObjectData)
		if !ok || data.After == nil {
			return false
		}
		e.restoreSnapshot(data.ID, data.After)
	case ActionMoveMultiple:
		data, ok := a.Data.(MoveMultipleData)
		if !ok {
			return false
		}
		e.applyMove(data.Items, true)
	case ActionReorderLayers:
		data, ok := a.Data.(ReorderLayersData)
		if !ok {
			return false
		}
		e.Board.ApplyZOrder(data.After)
	case ActionPasteObjects:
		data, ok := a.Data.(PasteObjectsData)
		if !ok {
			return false
		}
		for _, o := range data.Objects {
			e.Board.Restore(o.Clone())
		}
	default:
		return false
	}
	return true
}

// restoreSnapshot copies a stored snapshot onto the live object, keeping its
// pointer stable so selection references survive. A stale id is a no-op.
func (e *Editor) restoreSnapshot(id string, snap *Object) {
	o := e.Board.ByID(id)
	if o == nil {
		return
	}
	o.CopyFrom(snap)
	e.Board.NotifyUpdated()
}

// applyMove sets each item's position to its old or new coordinates.
// Stale ids are no-ops.
func (e *Editor) applyMove(items []MoveItem, forward bool) {
	moved := false
	for _, it := range items {
		o := e.Board.ByID(it.ID)
		if o == nil {
			continue
		}
		if forward {
			o.X, o.Y = it.NewX, it.NewY
			if it.Endpoints {
				o.X2, o.Y2 = it.NewX2, it.NewY2
			}
		} else {
			o.X, o.Y = it.OldX, it.OldY
			if it.Endpoints {
				o.X2, o.Y2 = it.OldX2, it.OldY2
			}
		}
		moved = true
	}
	if moved {
		e.Board.NotifyUpdated()
	}
}
