package easel

// Selection tracks the set of selected objects and the primary
// (last-touched) one. Invariants: the set never contains duplicates, and
// Primary is always a member of the set, or nil iff the set is empty.
type Selection struct {
	objects []*Object
	primary *Object

	handlers selectionHandlers
}

type selectionHandlers struct {
	changed []boardHandler
	nextID  uint32
}

// SelectionHandle allows removing a registered selection callback.
type SelectionHandle struct {
	id  uint32
	sel *Selection
}

// Remove unregisters this callback so it no longer fires.
func (h SelectionHandle) Remove() {
	if h.sel == nil {
		return
	}
	s := h.sel.handlers.changed
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = boardHandler{}
			h.sel.handlers.changed = s[:len(s)-1]
			return
		}
	}
}

// OnChanged registers a callback fired whenever the selection set or primary
// changes. Consumed by the properties panel collaborator.
func (s *Selection) OnChanged(fn func()) SelectionHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.changed = append(s.handlers.changed, boardHandler{id: id, fn: fn})
	return SelectionHandle{id: id, sel: s}
}

func (s *Selection) emit() {
	for _, h := range s.handlers.changed {
		h.fn()
	}
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Objects returns the selected objects in selection order.
// The returned slice MUST NOT be mutated by the caller.
func (s *Selection) Objects() []*Object {
	return s.objects
}

// Primary returns the primary (last-touched) selected object, or nil.
func (s *Selection) Primary() *Object {
	return s.primary
}

// Len returns the number of selected objects.
func (s *Selection) Len() int {
	return len(s.objects)
}

// Contains reports whether o is selected.
func (s *Selection) Contains(o *Object) bool {
	for _, m := range s.objects {
		if m == o {
			return true
		}
	}
	return false
}

// Sole returns the object if exactly one is selected, else nil.
func (s *Selection) Sole() *Object {
	if len(s.objects) == 1 {
		return s.objects[0]
	}
	return nil
}

// Replace makes o the only selected object. Replace(nil) clears.
func (s *Selection) Replace(o *Object) {
	if o == nil {
		s.Clear()
		return
	}
	if len(s.objects) == 1 && s.objects[0] == o {
		return
	}
	s.objects = append(s.objects[:0], o)
	s.primary = o
	s.emit()
}

// ReplaceAll selects exactly the given objects, deduplicated, with the last
// one primary. Used by box selection.
func (s *Selection) ReplaceAll(objs []*Object) {
	s.objects = s.objects[:0]
	for _, o := range objs {
		if o != nil && !s.Contains(o) {
			s.objects = append(s.objects, o)
		}
	}
	if n := len(s.objects); n > 0 {
		s.primary = s.objects[n-1]
	} else {
		s.primary = nil
	}
	s.emit()
}

// Add adds o to the selection and makes it primary. No-op if already
// selected (o still becomes primary).
func (s *Selection) Add(o *Object) {
	if o == nil {
		return
	}
	if !s.Contains(o) {
		s.objects = append(s.objects, o)
	}
	s.primary = o
	s.emit()
}

// Toggle flips o's membership (multi-select modifier semantics). When adding,
// o becomes primary; when removing, the most recently added member does.
func (s *Selection) Toggle(o *Object) {
	if o == nil {
		return
	}
	if s.Contains(o) {
		s.remove(o)
	} else {
		s.objects = append(s.objects, o)
		s.primary = o
	}
	s.emit()
}

// Drop removes the given objects from the selection without emitting unless
// something changed. Called when objects are deleted from the board.
func (s *Selection) Drop(removed []*Object) {
	changed := false
	for _, o := range removed {
		if s.Contains(o) {
			s.remove(o)
			changed = true
		}
	}
	if changed {
		s.emit()
	}
}

// remove deletes o from the set, fixing up primary.
func (s *Selection) remove(o *Object) {
	for i, m := range s.objects {
		if m == o {
			copy(s.objects[i:], s.objects[i+1:])
			s.objects[len(s.objects)-1] = nil
			s.objects = s.objects[:len(s.objects)-1]
			break
		}
	}
	if s.primary == o {
		if n := len(s.objects); n > 0 {
			s.primary = s.objects[n-1]
		} else {
			s.primary = nil
		}
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	if len(s.objects) == 0 {
		return
	}
	for i := range s.objects {
		s.objects[i] = nil
	}
	s.objects = s.objects[:0]
	s.primary = nil
	s.emit()
}
