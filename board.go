package easel

import "sort"

// Board owns the canonical object collection. All mutation flows through the
// Board, the Editor, or the history apply paths; external collaborators
// (render adapter, persistence) may read the object list but never mutate it
// directly. Single-threaded: no locking, like the rest of the package.
type Board struct {
	objects []*Object
	byID    map[string]*Object

	sorted   []*Object // reused z-ascending buffer
	zOrdered bool

	// externalZ reports the max z-index of externally-owned image layers,
	// so NextZIndex stacks new objects above them. Nil when none exist.
	externalZ func() int

	handlers    boardHandlers
	needsRedraw bool
}

// --- Change notification ---

type boardHandler struct {
	id uint32
	fn func()
}

type removalHandler struct {
	id uint32
	fn func(removed []*Object)
}

type boardHandlers struct {
	changed []boardHandler
	removed []removalHandler
	nextID  uint32
}

// BoardHandle allows removing a registered board callback.
type BoardHandle struct {
	id    uint32
	board *Board
	// removal distinguishes the two registries.
	removal bool
}

// Remove unregisters this callback so it no longer fires.
func (h BoardHandle) Remove() {
	if h.board == nil {
		return
	}
	if h.removal {
		s := h.board.handlers.removed
		for i := range s {
			if s[i].id == h.id {
				copy(s[i:], s[i+1:])
				s[len(s)-1] = removalHandler{}
				h.board.handlers.removed = s[:len(s)-1]
				return
			}
		}
		return
	}
	s := h.board.handlers.changed
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = boardHandler{}
			h.board.handlers.changed = s[:len(s)-1]
			return
		}
	}
}

// OnObjectsChanged registers a callback fired once after any mutation
// (add, delete, update, reorder). Consumed by persistence/autosave and
// layer-panel collaborators; no granular per-field events are emitted.
func (b *Board) OnObjectsChanged(fn func()) BoardHandle {
	b.handlers.nextID++
	id := b.handlers.nextID
	b.handlers.changed = append(b.handlers.changed, boardHandler{id: id, fn: fn})
	return BoardHandle{id: id, board: b}
}

// OnObjectsRemoved registers a callback fired with the removed objects on
// every deletion path, including history undo of a create. The Editor uses it
// to clear dangling selection and editing references.
func (b *Board) OnObjectsRemoved(fn func(removed []*Object)) BoardHandle {
	b.handlers.nextID++
	id := b.handlers.nextID
	b.handlers.removed = append(b.handlers.removed, removalHandler{id: id, fn: fn})
	return BoardHandle{id: id, board: b, removal: true}
}

// emitChanged fires the objects-changed callbacks and marks redraw needed.
func (b *Board) emitChanged() {
	b.needsRedraw = true
	for _, h := range b.handlers.changed {
		h.fn()
	}
}

// --- Redraw coalescing ---

// RequestRedraw marks the board as needing a repaint. Requests coalesce into
// a single dirty flag; a gesture may mutate state many times per input tick
// without forcing a repaint each time.
func (b *Board) RequestRedraw() {
	b.needsRedraw = true
}

// TakeRedraw consumes the dirty flag, returning whether a repaint is due.
func (b *Board) TakeRedraw() bool {
	dirty := b.needsRedraw
	b.needsRedraw = false
	return dirty
}

// --- Construction and collection access ---

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{byID: make(map[string]*Object)}
}

// Len returns the number of objects on the board.
func (b *Board) Len() int {
	return len(b.objects)
}

// ByID returns the object with the given id, or nil.
func (b *Board) ByID(id string) *Object {
	return b.byID[id]
}

// Objects returns the objects in ascending z-index (paint) order.
// The returned slice is reused between calls and MUST NOT be mutated.
func (b *Board) Objects() []*Object {
	if !b.zOrdered {
		b.sorted = append(b.sorted[:0], b.objects...)
		sort.SliceStable(b.sorted, func(i, j int) bool {
			return b.sorted[i].ZIndex < b.sorted[j].ZIndex
		})
		b.zOrdered = true
	}
	return b.sorted
}

// NextZIndex returns 1 + the max z-index over all objects and all
// externally-owned image layers, so creation order stacks strictly upward.
func (b *Board) NextZIndex() int {
	maxZ := 0
	for _, o := range b.objects {
		if o.ZIndex > maxZ {
			maxZ = o.ZIndex
		}
	}
	if b.externalZ != nil {
		if z := b.externalZ(); z > maxZ {
			maxZ = z
		}
	}
	return maxZ + 1
}

// SetExternalZSource registers a provider for the max z-index of layers owned
// outside the board (e.g. raster image layers). Pass nil to clear.
func (b *Board) SetExternalZSource(fn func() int) {
	b.externalZ = fn
}

// --- Mutation ---

// Add appends an object, assigning it the next z-index, and emits a change.
// Panics if o is nil (programmer error).
func (b *Board) Add(o *Object) {
	if o == nil {
		panic("easel: cannot add nil object")
	}
	o.ZIndex = b.NextZIndex()
	b.insert(o)
	b.emitChanged()
}

// Restore re-inserts an object verbatim, keeping its id and z-index. Used by
// history to reconstruct deleted objects and by bulk loads. No-op if an
// object with the same id is already present.
func (b *Board) Restore(o *Object) {
	if o == nil || b.byID[o.ID] != nil {
		return
	}
	b.insert(o)
	b.emitChanged()
}

func (b *Board) insert(o *Object) {
	b.objects = append(b.objects, o)
	b.byID[o.ID] = o
	b.zOrdered = false
}

// Load bulk-inserts restored objects, migrating legacy text records, and
// emits a single change.
func (b *Board) Load(objs []*Object) {
	for _, o := range objs {
		if o == nil || b.byID[o.ID] != nil {
			continue
		}
		MigrateLegacyText(o)
		b.insert(o)
	}
	b.emitChanged()
}

// Delete removes every object whose id is in ids, fires the removal hook,
// and emits a single change. Unknown ids are silent no-ops; if nothing was
// removed, no change is emitted.
func (b *Board) Delete(ids ...string) []*Object {
	if len(ids) == 0 {
		return nil
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var removed []*Object
	kept := b.objects[:0]
	for _, o := range b.objects {
		if want[o.ID] {
			removed = append(removed, o)
			delete(b.byID, o.ID)
			continue
		}
		kept = append(kept, o)
	}
	// Clear the tail so dropped pointers are not retained.
	for i := len(kept); i < len(b.objects); i++ {
		b.objects[i] = nil
	}
	b.objects = kept
	if len(removed) == 0 {
		return nil
	}
	b.zOrdered = false
	for _, h := range b.handlers.removed {
		h.fn(removed)
	}
	b.emitChanged()
	return removed
}

// NotifyUpdated emits the change signal after in-place mutation of object
// geometry or style (the Editor calls this when a gesture commits).
func (b *Board) NotifyUpdated() {
	b.emitChanged()
}

// --- Hit testing ---

// FindAtPoint returns the topmost visible object containing the world point
// (x, y): a box test for box-like objects, a segment-distance test for
// line/arrow. Returns nil if nothing is hit.
func (b *Board) FindAtPoint(x, y float64) *Object {
	objs := b.Objects()
	for i := len(objs) - 1; i >= 0; i-- {
		o := objs[i]
		if !o.Visible {
			continue
		}
		if objectContains(o, x, y) {
			return o
		}
	}
	return nil
}

// FindResizeHandle returns the resize handle of o under the world point
// (x, y) at the given zoom, or HandleNone. Rotated objects inverse-map the
// point into their unrotated frame first. Only meaningful when o is the sole
// selected object; a nil object degrades to HandleNone.
func (b *Board) FindResizeHandle(o *Object, x, y, zoom float64) Handle {
	if o == nil {
		return HandleNone
	}
	return handleAt(o, x, y, zoom)
}

// --- Z-order ---

// ZOrderSnapshot captures the full id → z-index map. Reorder history actions
// store complete before/after snapshots rather than deltas so restoration
// stays correct under interleaved creates and deletes.
func (b *Board) ZOrderSnapshot() map[string]int {
	m := make(map[string]int, len(b.objects))
	for _, o := range b.objects {
		m[o.ID] = o.ZIndex
	}
	return m
}

// ApplyZOrder restores z-indices from a snapshot. Ids no longer present are
// silently skipped; objects absent from the snapshot keep their z-index.
func (b *Board) ApplyZOrder(order map[string]int) {
	changed := false
	for id, z := range order {
		if o := b.byID[id]; o != nil && o.ZIndex != z {
			o.ZIndex = z
			changed = true
		}
	}
	if changed {
		b.zOrdered = false
		b.emitChanged()
	}
}

// bringToFront assigns the object the next z-index above everything.
func (b *Board) bringToFront(o *Object) {
	o.ZIndex = b.NextZIndex()
	b.zOrdered = false
	b.emitChanged()
}

// sendToBack shifts every other object up and puts o at z-index 1, keeping
// relative order and z uniqueness.
func (b *Board) sendToBack(o *Object) {
	for _, other := range b.objects {
		if other != o {
			other.ZIndex++
		}
	}
	o.ZIndex = 1
	b.zOrdered = false
	b.emitChanged()
}
