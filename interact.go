package easel

import "math"

// Mode identifies the interaction state. At most one is active at a time;
// the priority-ordered dispatch in PointerDown guards every entry, so an
// out-of-order event degrades to a no-op instead of an error.
type Mode uint8

const (
	ModeIdle         Mode = iota // nothing in progress
	ModeDrawing                  // a creation tool is dragging out a preview
	ModeDragging                 // the selection follows the pointer
	ModeResizing                 // one object tracks a resize/rotate handle
	ModeBoxSelecting             // a marquee is being dragged over the canvas
)

type toolHandler struct {
	id uint32
	fn func(ToolKind)
}

// EditorHandle allows removing a registered editor callback.
type EditorHandle struct {
	id     uint32
	editor *Editor
}

// Remove unregisters this callback so it no longer fires.
func (h EditorHandle) Remove() {
	if h.editor == nil {
		return
	}
	s := h.editor.toolHandlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = toolHandler{}
			h.editor.toolHandlers = s[:len(s)-1]
			return
		}
	}
}

// Editor is the interaction controller: it consumes pointer events, queries
// the board and geometry helpers, and drives transitions between interaction
// modes, mutating object geometry directly during gestures and recording a
// history action when each gesture commits.
//
// Construct one per board with NewEditor and pass it by reference to the
// event layer; there are no package-level singletons.
type Editor struct {
	Board     *Board
	Selection *Selection
	History   *History

	// Camera supplies the zoom used for handle hit radii and, through the
	// input bridge, screen/world conversion. Nil means zoom 1.
	Camera *Camera

	// Snap, when non-nil and SnapEnabled, adjusts single-selection drags.
	Snap        SnapResolver
	SnapEnabled bool

	mode         Mode
	resizeHandle Handle

	tool       ToolKind
	shapeStyle ShapeStyle
	textStyle  TextStyle

	toolHandlers []toolHandler
	nextToolID   uint32

	// Drawing state
	anchorX, anchorY float64
	preview          *Object

	// Dragging state
	dragOffsets map[*Object]Vec2
	dragStarts  map[*Object]MoveItem
	guides      []GuideLine

	// Resizing state
	resizeTarget   *Object
	resizeBaseline *Object

	// Box selection state
	marquee Rect

	// Inline text editing state
	editing      *Object
	editBaseline *Object

	debug bool
}

// NewEditor wires an editor to a board with a fresh selection and history.
func NewEditor(b *Board) *Editor {
	e := &Editor{
		Board:       b,
		Selection:   NewSelection(),
		History:     NewHistory(),
		Snap:        NewEdgeSnapper(b),
		SnapEnabled: true,
		textStyle:   DefaultTextStyle,
	}
	// Any deletion path must clear dangling selection and editing
	// references before the removed objects become unreachable.
	b.OnObjectsRemoved(func(removed []*Object) {
		e.Selection.Drop(removed)
		for _, o := range removed {
			if e.editing == o {
				o.Editing = false
				e.editing = nil
				e.editBaseline = nil
			}
			if e.resizeTarget == o {
				e.abortResize()
			}
			delete(e.dragOffsets, o)
			delete(e.dragStarts, o)
		}
	})
	return e
}

// Mode returns the current interaction mode.
func (e *Editor) Mode() Mode { return e.mode }

// Guides returns the alignment guide lines produced by the last snapped drag
// step, for the render adapter to draw. Empty outside snapping drags.
func (e *Editor) Guides() []GuideLine { return e.guides }

// Preview returns the transient not-yet-committed object of an in-progress
// draw gesture, or nil.
func (e *Editor) Preview() *Object { return e.preview }

// Marquee returns the current box-selection rectangle. Only meaningful in
// ModeBoxSelecting.
func (e *Editor) Marquee() Rect { return e.marquee }

func (e *Editor) zoom() float64 {
	if e.Camera != nil && e.Camera.Zoom > 0 {
		return e.Camera.Zoom
	}
	return 1
}

// --- Tool selection ---

// Tool returns the active creation tool.
func (e *Editor) Tool() ToolKind { return e.tool }

// SetTool activates a creation tool (or ToolNone) and notifies listeners.
func (e *Editor) SetTool(t ToolKind) {
	if e.tool == t {
		return
	}
	e.tool = t
	for _, h := range e.toolHandlers {
		h.fn(t)
	}
}

// SetShapeStyle sets the style bag used for the next shape draw.
func (e *Editor) SetShapeStyle(s ShapeStyle) { e.shapeStyle = s }

// ShapeStyle returns the pending shape style bag.
func (e *Editor) ShapeStyle() ShapeStyle { return e.shapeStyle }

// SetTextStyle sets the default run style for the next text draw.
func (e *Editor) SetTextStyle(s TextStyle) { e.textStyle = s }

// OnToolChanged registers a callback fired when the tool changes, including
// the automatic deactivation (ToolNone) after a successful creation.
func (e *Editor) OnToolChanged(fn func(ToolKind)) EditorHandle {
	e.nextToolID++
	id := e.nextToolID
	e.toolHandlers = append(e.toolHandlers, toolHandler{id: id, fn: fn})
	return EditorHandle{id: id, editor: e}
}

// --- Pointer gestures ---

// PointerDown starts a gesture at the world point (x, y). Dispatch follows a
// fixed priority: resize handle of a sole selection, then object hit, then
// empty-canvas behavior, then tool drawing. Events arriving while another
// gesture is active are ignored.
func (e *Editor) PointerDown(x, y float64, mods KeyModifiers) {
	if e.mode != ModeIdle {
		return
	}

	// 1. Resize/rotate handle of the sole selected object, selection tool only.
	if sole := e.Selection.Sole(); sole != nil && e.tool == ToolNone {
		if rotationHandleAt(sole, x, y, e.zoom()) {
			e.beginResize(sole, HandleRotate)
			return
		}
		if h := e.Board.FindResizeHandle(sole, x, y, e.zoom()); h != HandleNone {
			e.beginResize(sole, h)
			return
		}
	}

	// 2. An existing object under the pointer.
	if hit := e.Board.FindAtPoint(x, y); hit != nil {
		if e.tool != ToolNone {
			// Creation tools do not also select.
			return
		}
		if e.Selection.Contains(hit) && e.Selection.Len() > 1 && !mods.multiSelect() {
			// Grabbing any member moves the whole multi-selection.
		} else if mods.multiSelect() {
			e.Selection.Toggle(hit)
		} else {
			e.Selection.Replace(hit)
		}
		if e.Selection.Len() > 0 && e.Selection.Contains(hit) {
			e.beginDrag(x, y)
		}
		return
	}

	// 3. Empty canvas with no tool: plain click clears the selection; a
	// modifier-held click is a no-op. Box selection is initiated by the
	// unified-selection collaborator via BeginBoxSelect.
	if e.tool == ToolNone {
		if !mods.multiSelect() {
			e.Selection.Clear()
			e.Board.RequestRedraw()
		}
		return
	}

	// 4. A draw-capable tool on empty canvas: start a preview.
	e.beginDraw(x, y)
}

// PointerMove advances the active gesture to the world point (x, y).
func (e *Editor) PointerMove(x, y float64, mods KeyModifiers) {
	switch e.mode {
	case ModeDrawing:
		e.updatePreview(x, y)
		e.Board.RequestRedraw()
	case ModeDragging:
		e.updateDrag(x, y)
		e.Board.RequestRedraw()
	case ModeResizing:
		if e.resizeHandle == HandleRotate {
			e.updateRotate(x, y)
		} else {
			resizeObject(e.resizeTarget, e.resizeHandle, x, y)
		}
		e.Board.RequestRedraw()
	case ModeBoxSelecting:
		e.marquee = spanRect(e.anchorX, e.anchorY, x, y)
		e.Board.RequestRedraw()
	}
}

// PointerUp completes the active gesture at the world point (x, y),
// committing its history action when the gesture mutated anything.
func (e *Editor) PointerUp(x, y float64, mods KeyModifiers) {
	switch e.mode {
	case ModeDrawing:
		e.finishDraw(x, y)
	case ModeDragging:
		e.finishDrag()
	case ModeResizing:
		e.finishResize()
	case ModeBoxSelecting:
		e.finishBoxSelect()
	}
	e.mode = ModeIdle
}

// DoubleClick starts inline editing when a text object is double-clicked
// outside of any active gesture.
func (e *Editor) DoubleClick(x, y float64) {
	if e.mode != ModeIdle || e.tool != ToolNone {
		return
	}
	hit := e.Board.FindAtPoint(x, y)
	if hit != nil && hit.Kind == KindText {
		e.BeginTextEdit(hit)
	}
}

// --- Drawing ---

func (e *Editor) beginDraw(x, y float64) {
	e.anchorX, e.anchorY = x, y
	switch e.tool {
	case ToolText:
		e.preview = &Object{Kind: KindText, X: x, Y: y, Visible: true, DefaultStyle: e.textStyle}
	case ToolShape:
		if e.shapeStyle.Kind.IsLinear() {
			// Lines keep literal start/current endpoints, unnormalized.
			e.preview = &Object{Kind: KindShape, X: x, Y: y, X2: x, Y2: y, Visible: true, Shape: e.shapeStyle}
		} else {
			e.preview = &Object{Kind: KindShape, X: x, Y: y, Visible: true, Shape: e.shapeStyle}
		}
	default:
		return
	}
	e.mode = ModeDrawing
}

func (e *Editor) updatePreview(x, y float64) {
	p := e.preview
	if p == nil {
		return
	}
	if p.IsLinear() {
		p.X2, p.Y2 = x, y
		return
	}
	r := spanRect(e.anchorX, e.anchorY, x, y)
	p.X, p.Y, p.Width, p.Height = r.X, r.Y, r.Width, r.Height
}

func (e *Editor) finishDraw(x, y float64) {
	// Fold the release position in before dropping the preview field;
	// updatePreview is a no-op once it is cleared.
	e.updatePreview(x, y)
	p := e.preview
	e.preview = nil
	if p == nil {
		return
	}

	// Below-threshold drags discard the preview: no object, no history.
	switch {
	case p.Kind == KindText:
		if p.Width < minTextDrawWidth || p.Height < minTextDrawHeight {
			e.Board.RequestRedraw()
			return
		}
	case p.IsLinear():
		if math.Hypot(p.X2-p.X, p.Y2-p.Y) < minShapeDrawDist {
			e.Board.RequestRedraw()
			return
		}
	default:
		if math.Hypot(x-e.anchorX, y-e.anchorY) < minShapeDrawDist {
			e.Board.RequestRedraw()
			return
		}
	}

	var o *Object
	switch p.Kind {
	case KindText:
		o = NewTextBox(p.DefaultStyle, p.X, p.Y, p.Width, p.Height)
		o.Content = []TextRun{}
	case KindShape:
		if p.IsLinear() {
			o = NewLine(p.Shape, p.X, p.Y, p.X2, p.Y2)
		} else {
			o = NewShape(p.Shape, p.X, p.Y, p.Width, p.Height)
		}
	default:
		return
	}
	e.Board.Add(o)
	e.Selection.Replace(o)
	e.History.Push(Action{Type: ActionAddObject, Data: AddObjectData{Object: o.Clone()}})
	e.debugf("draw committed: %s at (%.0f, %.0f)", o.ID, o.X, o.Y)
	// Creation tools are one-shot: deactivate and notify.
	e.SetTool(ToolNone)
}

// --- Dragging ---

func (e *Editor) beginDrag(x, y float64) {
	e.mode = ModeDragging
	e.dragOffsets = make(map[*Object]Vec2, e.Selection.Len())
	e.dragStarts = make(map[*Object]MoveItem, e.Selection.Len())
	for _, o := range e.Selection.Objects() {
		e.dragOffsets[o] = Vec2{X: x - o.X, Y: y - o.Y}
		e.dragStarts[o] = MoveItem{
			ID:   o.ID,
			OldX: o.X, OldY: o.Y,
			OldX2: o.X2, OldY2: o.Y2,
			Endpoints: o.IsLinear(),
		}
	}
}

func (e *Editor) updateDrag(x, y float64) {
	e.guides = e.guides[:0]
	sole := e.Selection.Sole()
	for _, o := range e.Selection.Objects() {
		off := e.dragOffsets[o]
		nx := x - off.X
		ny := y - off.Y
		if o == sole && e.SnapEnabled && e.Snap != nil {
			var guides []GuideLine
			nx, ny, guides = e.Snap.Resolve(nx, ny, o)
			e.guides = append(e.guides, guides...)
		}
		// Translate via delta so line endpoints shift together.
		o.MoveBy(nx-o.X, ny-o.Y)
	}
}

func (e *Editor) finishDrag() {
	var items []MoveItem
	for _, o := range e.Selection.Objects() {
		start, ok := e.dragStarts[o]
		if !ok {
			continue
		}
		if start.OldX == o.X && start.OldY == o.Y &&
			(!start.Endpoints || (start.OldX2 == o.X2 && start.OldY2 == o.Y2)) {
			continue
		}
		start.NewX, start.NewY = o.X, o.Y
		start.NewX2, start.NewY2 = o.X2, o.Y2
		items = append(items, start)
	}
	e.dragOffsets = nil
	e.dragStarts = nil
	e.guides = e.guides[:0]
	if len(items) == 0 {
		return
	}
	e.History.Push(Action{Type: ActionMoveMultiple, Data: MoveMultipleData{Items: items}})
	e.debugf("drag committed: %d object(s)", len(items))
	e.Board.NotifyUpdated()
}

// Nudge moves the whole selection by (dx, dy) in one step, recording a
// single move action. Used by arrow-key movement.
func (e *Editor) Nudge(dx, dy float64) {
	if e.Selection.Len() == 0 || (dx == 0 && dy == 0) {
		return
	}
	items := make([]MoveItem, 0, e.Selection.Len())
	for _, o := range e.Selection.Objects() {
		it := MoveItem{
			ID:   o.ID,
			OldX: o.X, OldY: o.Y,
			OldX2: o.X2, OldY2: o.Y2,
			Endpoints: o.IsLinear(),
		}
		o.MoveBy(dx, dy)
		it.NewX, it.NewY = o.X, o.Y
		it.NewX2, it.NewY2 = o.X2, o.Y2
		items = append(items, it)
	}
	e.History.Push(Action{Type: ActionMoveMultiple, Data: MoveMultipleData{Items: items}})
	e.Board.NotifyUpdated()
}

// --- Resizing and rotating ---

func (e *Editor) beginResize(o *Object, h Handle) {
	e.mode = ModeResizing
	e.resizeHandle = h
	e.resizeTarget = o
	e.resizeBaseline = o.Clone()
}

func (e *Editor) abortResize() {
	e.resizeTarget = nil
	e.resizeBaseline = nil
	e.resizeHandle = HandleNone
	if e.mode == ModeResizing {
		e.mode = ModeIdle
	}
}

func (e *Editor) updateRotate(x, y float64) {
	o := e.resizeTarget
	if o == nil {
		return
	}
	cx, cy := o.Center()
	// The handle rests above the center, so straight up means 0 degrees.
	deg := math.Atan2(y-cy, x-cx)*180/math.Pi + 90
	if deg < 0 {
		deg += 360
	}
	o.Rotation = deg
}

func (e *Editor) finishResize() {
	o := e.resizeTarget
	base := e.resizeBaseline
	e.resizeTarget = nil
	e.resizeBaseline = nil
	e.resizeHandle = HandleNone
	if o == nil || base == nil {
		return
	}
	if base.X == o.X && base.Y == o.Y &&
		base.Width == o.Width && base.Height == o.Height &&
		base.X2 == o.X2 && base.Y2 == o.Y2 &&
		base.Rotation == o.Rotation && base.CellSize == o.CellSize {
		return
	}
	e.History.Push(Action{Type: ActionUpdateObject, Data: UpdateObjectData{
		ID:     o.ID,
		Before: base,
		After:  o.Clone(),
	}})
	e.Board.NotifyUpdated()
}

// resizeObject maps the pointer through the given handle onto the object's
// geometry. Box-likes clamp to MinObjectSize and anchor the opposite
// edge/corner; line endpoints are overwritten directly with no minimum;
// palettes scale their cell size and re-derive the box from the grid.
// (mx, my) is in world space and is inverse-mapped into the object's
// unrotated frame first, so the resize math always runs in local space.
func resizeObject(o *Object, h Handle, mx, my float64) {
	if o == nil || h == HandleNone {
		return
	}
	if o.Rotation != 0 {
		cx, cy := o.Center()
		mx, my = RotatePoint(mx, my, cx, cy, -o.Rotation)
	}

	if o.IsLinear() {
		switch h {
		case HandleStart:
			o.X, o.Y = mx, my
		case HandleEnd:
			o.X2, o.Y2 = mx, my
		}
		return
	}

	if o.Kind == KindPalette {
		resizePalette(o, h, mx, my)
		return
	}

	right := o.X + o.Width
	bottom := o.Y + o.Height
	switch h {
	case HandleSE:
		o.Width = max(mx-o.X, MinObjectSize)
		o.Height = max(my-o.Y, MinObjectSize)
	case HandleE:
		o.Width = max(mx-o.X, MinObjectSize)
	case HandleS:
		o.Height = max(my-o.Y, MinObjectSize)
	case HandleNW:
		o.Width = max(right-mx, MinObjectSize)
		o.Height = max(bottom-my, MinObjectSize)
		o.X = right - o.Width
		o.Y = bottom - o.Height
	case HandleN:
		o.Height = max(bottom-my, MinObjectSize)
		o.Y = bottom - o.Height
	case HandleW:
		o.Width = max(right-mx, MinObjectSize)
		o.X = right - o.Width
	case HandleNE:
		o.Width = max(mx-o.X, MinObjectSize)
		o.Height = max(bottom-my, MinObjectSize)
		o.Y = bottom - o.Height
	case HandleSW:
		o.Width = max(right-mx, MinObjectSize)
		o.X = right - o.Width
		o.Height = max(my-o.Y, MinObjectSize)
	}
}

// --- Box selection ---

// BeginBoxSelect starts a marquee drag at the world point (x, y). Called by
// the unified-selection collaborator that owns selection across objects and
// image layers; requires the editor to be idle with no tool active.
func (e *Editor) BeginBoxSelect(x, y float64) {
	if e.mode != ModeIdle || e.tool != ToolNone {
		return
	}
	e.mode = ModeBoxSelecting
	e.anchorX, e.anchorY = x, y
	e.marquee = Rect{X: x, Y: y}
}

func (e *Editor) finishBoxSelect() {
	var hit []*Object
	for _, o := range e.Board.Objects() {
		if o.Visible && e.marquee.Intersects(o.Bounds()) {
			hit = append(hit, o)
		}
	}
	e.Selection.ReplaceAll(hit)
	e.marquee = Rect{}
	e.Board.RequestRedraw()
}

// --- Inline text editing ---

// EditingText returns the object currently in inline text editing, or nil.
// At most one object is ever in editing state.
func (e *Editor) EditingText() *Object { return e.editing }

// BeginTextEdit puts a text object into inline editing, committing any other
// object's open edit first, and makes it the exclusive selection. While
// editing, the render path suppresses the object's own glyphs; the external
// editing surface owns them.
func (e *Editor) BeginTextEdit(o *Object) {
	if o == nil || o.Kind != KindText {
		return
	}
	if e.editing == o {
		return
	}
	e.CommitTextEdit()
	MigrateLegacyText(o)
	o.Editing = true
	e.editing = o
	e.editBaseline = o.Clone()
	e.Selection.Replace(o)
	e.Board.RequestRedraw()
}

// SyncTextEdit writes the editing surface's runs back into the object.
// Called on every edit; adjacent runs with identical styles collapse.
func (e *Editor) SyncTextEdit(runs []TextRun) {
	if e.editing == nil {
		return
	}
	SetTextContent(e.editing, runs)
	e.Board.RequestRedraw()
}

// CommitTextEdit finalizes the open inline edit, recording one update action
// if the content changed. Escape and focus loss both land here: edits are
// always committed, never discarded.
func (e *Editor) CommitTextEdit() {
	o := e.editing
	if o == nil {
		return
	}
	base := e.editBaseline
	e.editing = nil
	e.editBaseline = nil
	o.Editing = false
	if base != nil && !runsEqual(base.Content, o.Content) {
		after := o.Clone()
		e.History.Push(Action{Type: ActionUpdateObject, Data: UpdateObjectData{
			ID:     o.ID,
			Before: base,
			After:  after,
		}})
	}
	e.Board.NotifyUpdated()
}

func runsEqual(a, b []TextRun) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// --- Deletion ---

// DeleteSelection removes every selected object in one atomic step,
// producing a single delete action carrying deep copies of the removed
// objects. A currently-edited text object is finalized first. No-op when
// nothing is selected.
func (e *Editor) DeleteSelection() {
	if e.Selection.Len() == 0 {
		return
	}
	if e.editing != nil && e.Selection.Contains(e.editing) {
		e.CommitTextEdit()
	}
	sel := e.Selection.Objects()
	clones := make([]*Object, len(sel))
	ids := make([]string, len(sel))
	for i, o := range sel {
		clones[i] = o.Clone()
		ids[i] = o.ID
	}
	if removed := e.Board.Delete(ids...); len(removed) == 0 {
		return
	}
	e.History.Push(Action{Type: ActionDeleteObjects, Data: DeleteObjectsData{Objects: clones}})
}

// --- Z-order commands ---

// BringToFront raises the primary selected object above everything,
// recording a reorder action with full before/after z-order maps.
func (e *Editor) BringToFront() {
	o := e.Selection.Primary()
	if o == nil {
		return
	}
	before := e.Board.ZOrderSnapshot()
	e.Board.bringToFront(o)
	e.History.Push(Action{Type: ActionReorderLayers, Data: ReorderLayersData{
		Before: before,
		After:  e.Board.ZOrderSnapshot(),
	}})
}

// SendToBack lowers the primary selected object below everything,
// recording a reorder action with full before/after z-order maps.
func (e *Editor) SendToBack() {
	o := e.Selection.Primary()
	if o == nil {
		return
	}
	before := e.Board.ZOrderSnapshot()
	e.Board.sendToBack(o)
	e.History.Push(Action{Type: ActionReorderLayers, Data: ReorderLayersData{
		Before: before,
		After:  e.Board.ZOrderSnapshot(),
	}})
}

// spanRect returns the axis-aligned rectangle between two points.
func spanRect(x1, y1, x2, y2 float64) Rect {
	return Rect{
		X:      min(x1, x2),
		Y:      min(y1, y2),
		Width:  math.Abs(x2 - x1),
		Height: math.Abs(y2 - y1),
	}
}
