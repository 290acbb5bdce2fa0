package easel

import "math"

// Pure geometry helpers. Everything here is stateless; interaction and
// hit-testing code builds on these.

// PointToSegmentDistance returns the distance from (px, py) to the segment
// (x1, y1)-(x2, y2), clamping the projection to the segment ends.
func PointToSegmentDistance(px, py, x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		// Degenerate segment: distance to the single point.
		return math.Hypot(px-x1, py-y1)
	}
	t := ((px-x1)*dx + (py-y1)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(px-(x1+t*dx), py-(y1+t*dy))
}

// RotatePoint rotates (px, py) around (cx, cy) by angleDeg degrees.
func RotatePoint(px, py, cx, cy, angleDeg float64) (x, y float64) {
	sin, cos := math.Sincos(angleDeg * math.Pi / 180)
	dx := px - cx
	dy := py - cy
	return cx + dx*cos - dy*sin, cy + dx*sin + dy*cos
}

// Handle names a resize or rotation control point on a selected object.
type Handle uint8

const (
	HandleNone Handle = iota
	HandleNW
	HandleN
	HandleNE
	HandleE
	HandleSE
	HandleS
	HandleSW
	HandleW
	HandleStart // line/arrow start endpoint
	HandleEnd   // line/arrow end endpoint
	HandleRotate
)

// String returns the conventional short handle name.
func (h Handle) String() string {
	switch h {
	case HandleNW:
		return "nw"
	case HandleN:
		return "n"
	case HandleNE:
		return "ne"
	case HandleE:
		return "e"
	case HandleSE:
		return "se"
	case HandleS:
		return "s"
	case HandleSW:
		return "sw"
	case HandleW:
		return "w"
	case HandleStart:
		return "start"
	case HandleEnd:
		return "end"
	case HandleRotate:
		return "rotate"
	default:
		return "none"
	}
}

// opposite returns the handle anchored (kept fixed) while h is dragged.
func (h Handle) opposite() Handle {
	switch h {
	case HandleNW:
		return HandleSE
	case HandleN:
		return HandleS
	case HandleNE:
		return HandleSW
	case HandleE:
		return HandleW
	case HandleSE:
		return HandleNW
	case HandleS:
		return HandleN
	case HandleSW:
		return HandleNE
	case HandleW:
		return HandleE
	case HandleStart:
		return HandleEnd
	case HandleEnd:
		return HandleStart
	default:
		return HandleNone
	}
}

// HandlePoint pairs a handle with its world-space position in the object's
// unrotated frame.
type HandlePoint struct {
	Handle Handle
	X, Y   float64
}

// HandlePositions returns the handle control points for an object: the 8
// corner/midpoint handles for box-like objects, or the 2 endpoint handles
// for line/arrow. Positions are in the object's unrotated frame; callers
// rotate them around the object center for display, and inverse-rotate the
// pointer for hit tests.
func HandlePositions(o *Object) []HandlePoint {
	if o.IsLinear() {
		return []HandlePoint{
			{HandleStart, o.X, o.Y},
			{HandleEnd, o.X2, o.Y2},
		}
	}
	x, y, w, h := o.X, o.Y, o.Width, o.Height
	return []HandlePoint{
		{HandleNW, x, y},
		{HandleN, x + w/2, y},
		{HandleNE, x + w, y},
		{HandleE, x + w, y + h/2},
		{HandleSE, x + w, y + h},
		{HandleS, x + w/2, y + h},
		{HandleSW, x, y + h},
		{HandleW, x, y + h/2},
	}
}

// HandleRadius returns the world-space hit radius for handles at the given
// zoom. The radius shrinks in world space as zoom increases, keeping a
// constant screen-space target.
func HandleRadius(zoom float64) float64 {
	if zoom <= 0 {
		zoom = 1
	}
	return handleScreenRadius / zoom
}

// RotationHandlePosition returns the world-space position of the rotation
// handle: a fixed screen offset above the object's top-center (or above the
// line/arrow bounding box), rotated with the object.
func RotationHandlePosition(o *Object, zoom float64) (x, y float64) {
	if zoom <= 0 {
		zoom = 1
	}
	b := o.Bounds()
	hx := b.X + b.Width/2
	hy := b.Y - rotationHandleOffset/zoom
	if o.Rotation != 0 {
		cx, cy := o.Center()
		return RotatePoint(hx, hy, cx, cy, o.Rotation)
	}
	return hx, hy
}

// handleAt returns the handle under (x, y) for the object, or HandleNone.
// (x, y) is in world space; for rotated objects it is first inverse-mapped
// into the unrotated frame so the comparison happens in local space.
func handleAt(o *Object, x, y, zoom float64) Handle {
	if o.Rotation != 0 {
		cx, cy := o.Center()
		x, y = RotatePoint(x, y, cx, cy, -o.Rotation)
	}
	r := HandleRadius(zoom)
	for _, hp := range HandlePositions(o) {
		if math.Hypot(x-hp.X, y-hp.Y) <= r {
			return hp.Handle
		}
	}
	return HandleNone
}

// rotationHandleAt reports whether (x, y) hits the object's rotation handle.
// Line/arrow objects have no rotation handle; their orientation comes from
// the endpoints.
func rotationHandleAt(o *Object, x, y, zoom float64) bool {
	if o.IsLinear() {
		return false
	}
	hx, hy := RotationHandlePosition(o, zoom)
	return math.Hypot(x-hx, y-hy) <= HandleRadius(zoom)
}

// lineHitThreshold is the hit-test distance for a line/arrow object.
func lineHitThreshold(strokeWidth float64) float64 {
	return math.Max(minLineHitDist, strokeWidth+lineHitSlack)
}

// objectContains reports whether the world point (x, y) lies on the object:
// an inclusive box test for box-like objects, a segment-distance test for
// line/arrow. Rotated box-likes inverse-map the point into local space first.
func objectContains(o *Object, x, y float64) bool {
	if o.IsLinear() {
		// Line rotation pivots around the midpoint; un-rotate the probe.
		if o.Rotation != 0 {
			cx, cy := o.Center()
			x, y = RotatePoint(x, y, cx, cy, -o.Rotation)
		}
		return PointToSegmentDistance(x, y, o.X, o.Y, o.X2, o.Y2) <= lineHitThreshold(o.Shape.StrokeWidth)
	}
	if o.Rotation != 0 {
		cx, cy := o.Center()
		x, y = RotatePoint(x, y, cx, cy, -o.Rotation)
	}
	return o.Bounds().Contains(x, y)
}
