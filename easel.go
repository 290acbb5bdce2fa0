package easel

// Vec2 is a 2D vector in world units, used for positions, offsets, and
// deltas throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in world units. The coordinate system has
// its origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	minX := min(r.X, other.X)
	minY := min(r.Y, other.Y)
	maxX := max(r.X+r.Width, other.X+other.Width)
	maxY := max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (cx, cy float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// multiSelect reports whether the modifier state extends the selection
// instead of replacing it.
func (m KeyModifiers) multiSelect() bool {
	return m&(ModShift|ModCtrl|ModMeta) != 0
}

// TextAlign controls horizontal text alignment within a text object.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align text to the left edge (default)
	TextAlignCenter                  // center text horizontally
	TextAlignRight                   // align text to the right edge
)

// ToolKind identifies the active creation tool. ToolNone means no tool is
// active and pointer gestures select/move/resize existing objects.
type ToolKind uint8

const (
	ToolNone  ToolKind = iota // selection/manipulation, no creation
	ToolText                  // drag out a new text box
	ToolShape                 // drag out a new shape (style from ShapeStyle bag)
)

// Geometry constants. All values are world units unless noted.
const (
	// MinObjectSize is the minimum width and height of box-like objects.
	// Draw and resize gestures clamp to it rather than rejecting input.
	MinObjectSize = 50.0

	// MinPaletteCell and MaxPaletteCell bound a color palette's cell size.
	MinPaletteCell = 20.0
	MaxPaletteCell = 60.0

	// handleScreenRadius is the hit radius of a resize handle in screen
	// pixels. Divide by the camera zoom for the world-space radius so the
	// on-screen target stays constant.
	handleScreenRadius = 8.0

	// rotationHandleOffset is the screen-pixel distance of the rotation
	// handle above an object's top-center.
	rotationHandleOffset = 30.0

	// minTextDrawWidth/Height is the smallest drag extent that commits a
	// new text object; smaller drags discard the preview.
	minTextDrawWidth  = 30.0
	minTextDrawHeight = 20.0

	// minShapeDrawDist is the Euclidean drag distance that commits a new
	// shape; smaller drags discard the preview.
	minShapeDrawDist = 10.0

	// lineHitSlack widens line/arrow hit testing beyond the stroke width.
	lineHitSlack = 5.0
	// minLineHitDist is the floor of the line/arrow hit threshold.
	minLineHitDist = 10.0
)
