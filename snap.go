package easel

import "math"

// Alignment snapping for drags. UI-agnostic and deterministic so the logic
// can be unit tested without a window. Snapping applies only to a drag of a
// single selected object; multi-object drags move freely.

// GuideOrientation tells the render adapter which way a guide line runs.
type GuideOrientation uint8

const (
	GuideVertical GuideOrientation = iota
	GuideHorizontal
)

// GuideKind indicates which features aligned.
type GuideKind uint8

const (
	GuideEdge GuideKind = iota
	GuideCenter
)

// GuideLine describes a visual alignment guide produced by a snap step.
// Position is the x (vertical) or y (horizontal) coordinate; From and To are
// the rendered extents.
type GuideLine struct {
	Orientation GuideOrientation
	Kind        GuideKind
	Position    float64
	From, To    Vec2
}

// SnapResolver adjusts the tentative top-left position of a dragged object.
// Implementations return the resolved position plus any guide lines to draw.
type SnapResolver interface {
	Resolve(x, y float64, moving *Object) (rx, ry float64, guides []GuideLine)
}

// EdgeSnapper snaps a dragged object's edges and center to those of every
// other visible board object. X and Y snap independently; the nearest
// candidate within Threshold wins per axis.
type EdgeSnapper struct {
	board *Board

	// Threshold is the maximum world-space distance at which snapping
	// engages.
	Threshold float64
	// SnapToEdges aligns left/right/top/bottom, including abutting pairs.
	SnapToEdges bool
	// SnapToCenters aligns horizontal and vertical centers.
	SnapToCenters bool
}

// NewEdgeSnapper creates a snapper over the board with edge and center
// snapping enabled at an 8-unit threshold.
func NewEdgeSnapper(b *Board) *EdgeSnapper {
	return &EdgeSnapper{
		board:         b,
		Threshold:     8,
		SnapToEdges:   true,
		SnapToCenters: true,
	}
}

type axisBest struct {
	delta float64
	dist  float64
	guide GuideLine
	found bool
}

func (b *axisBest) consider(delta, threshold float64, g GuideLine) {
	dist := math.Abs(delta)
	if dist > threshold {
		return
	}
	if !b.found || dist < b.dist {
		b.found = true
		b.dist = dist
		b.delta = delta
		b.guide = g
	}
}

// Resolve snaps the tentative top-left (x, y) of the moving object against
// the bounds of every other visible object. Line objects snap by the bounding
// box of their endpoints.
func (e *EdgeSnapper) Resolve(x, y float64, moving *Object) (float64, float64, []GuideLine) {
	if moving == nil || (!e.SnapToEdges && !e.SnapToCenters) {
		return x, y, nil
	}

	// Bounds of the moving object at its tentative position.
	mr := moving.Bounds()
	mr.X += x - moving.X
	mr.Y += y - moving.Y

	var bestX, bestY axisBest
	for _, a := range e.board.Objects() {
		if a == moving || !a.Visible {
			continue
		}
		ar := a.Bounds()

		if e.SnapToEdges {
			bestX.consider(mr.X-ar.X, e.Threshold, verticalGuide(ar.X, mr, ar, GuideEdge))
			bestX.consider((mr.X+mr.Width)-(ar.X+ar.Width), e.Threshold, verticalGuide(ar.X+ar.Width, mr, ar, GuideEdge))
			bestX.consider(mr.X-(ar.X+ar.Width), e.Threshold, verticalGuide(ar.X+ar.Width, mr, ar, GuideEdge))
			bestX.consider((mr.X+mr.Width)-ar.X, e.Threshold, verticalGuide(ar.X, mr, ar, GuideEdge))

			bestY.consider(mr.Y-ar.Y, e.Threshold, horizontalGuide(ar.Y, mr, ar, GuideEdge))
			bestY.consider((mr.Y+mr.Height)-(ar.Y+ar.Height), e.Threshold, horizontalGuide(ar.Y+ar.Height, mr, ar, GuideEdge))
			bestY.consider(mr.Y-(ar.Y+ar.Height), e.Threshold, horizontalGuide(ar.Y+ar.Height, mr, ar, GuideEdge))
			bestY.consider((mr.Y+mr.Height)-ar.Y, e.Threshold, horizontalGuide(ar.Y, mr, ar, GuideEdge))
		}
		if e.SnapToCenters {
			mcx, mcy := mr.X+mr.Width/2, mr.Y+mr.Height/2
			acx, acy := ar.X+ar.Width/2, ar.Y+ar.Height/2
			bestX.consider(mcx-acx, e.Threshold, verticalGuide(acx, mr, ar, GuideCenter))
			bestY.consider(mcy-acy, e.Threshold, horizontalGuide(acy, mr, ar, GuideCenter))
		}
	}

	var guides []GuideLine
	if bestX.found {
		x -= bestX.delta
		guides = append(guides, bestX.guide)
	}
	if bestY.found {
		y -= bestY.delta
		guides = append(guides, bestY.guide)
	}
	return x, y, guides
}

func verticalGuide(x float64, a, b Rect, kind GuideKind) GuideLine {
	minY := min(a.Y, b.Y)
	maxY := max(a.Y+a.Height, b.Y+b.Height)
	return GuideLine{
		Orientation: GuideVertical,
		Kind:        kind,
		Position:    x,
		From:        Vec2{X: x, Y: minY},
		To:          Vec2{X: x, Y: maxY},
	}
}

func horizontalGuide(y float64, a, b Rect, kind GuideKind) GuideLine {
	minX := min(a.X, b.X)
	maxX := max(a.X+a.Width, b.X+b.Width)
	return GuideLine{
		Orientation: GuideHorizontal,
		Kind:        kind,
		Position:    y,
		From:        Vec2{X: minX, Y: y},
		To:          Vec2{X: maxX, Y: y},
	}
}
