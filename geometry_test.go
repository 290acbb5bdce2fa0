package easel

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPointToSegmentDistance(t *testing.T) {
	tests := []struct {
		name                   string
		px, py, x1, y1, x2, y2 float64
		want                   float64
	}{
		{"perpendicular to middle", 5, 5, 0, 0, 10, 0, 5},
		{"beyond start clamps", -3, 4, 0, 0, 10, 0, 5},
		{"beyond end clamps", 13, 4, 0, 0, 10, 0, 5},
		{"on the segment", 5, 0, 0, 0, 10, 0, 0},
		{"degenerate segment", 3, 4, 0, 0, 0, 0, 5},
		{"diagonal", 0, 10, 0, 0, 10, 10, math.Sqrt(50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointToSegmentDistance(tt.px, tt.py, tt.x1, tt.y1, tt.x2, tt.y2)
			if !almostEqual(got, tt.want) {
				t.Errorf("PointToSegmentDistance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotatePoint(t *testing.T) {
	x, y := RotatePoint(10, 0, 0, 0, 90)
	if !almostEqual(x, 0) || !almostEqual(y, 10) {
		t.Errorf("90 degree rotation = (%v, %v), want (0, 10)", x, y)
	}

	x, y = RotatePoint(5, 5, 5, 5, 123)
	if !almostEqual(x, 5) || !almostEqual(y, 5) {
		t.Errorf("rotating the pivot moved it to (%v, %v)", x, y)
	}

	// Rotating forward then back is the identity.
	x, y = RotatePoint(3, 7, 1, 2, 37)
	x, y = RotatePoint(x, y, 1, 2, -37)
	if !almostEqual(x, 3) || !almostEqual(y, 7) {
		t.Errorf("round trip = (%v, %v), want (3, 7)", x, y)
	}
}

func TestHandlePositionsBox(t *testing.T) {
	o := NewShape(ShapeStyle{Kind: ShapeSquare}, 10, 20, 100, 60)
	hps := HandlePositions(o)
	if len(hps) != 8 {
		t.Fatalf("len = %d, want 8", len(hps))
	}
	want := map[Handle][2]float64{
		HandleNW: {10, 20},
		HandleN:  {60, 20},
		HandleNE: {110, 20},
		HandleE:  {110, 50},
		HandleSE: {110, 80},
		HandleS:  {60, 80},
		HandleSW: {10, 80},
		HandleW:  {10, 50},
	}
	for _, hp := range hps {
		w, ok := want[hp.Handle]
		if !ok {
			t.Errorf("unexpected handle %v", hp.Handle)
			continue
		}
		if hp.X != w[0] || hp.Y != w[1] {
			t.Errorf("%v at (%v, %v), want (%v, %v)", hp.Handle, hp.X, hp.Y, w[0], w[1])
		}
	}
}

func TestHandlePositionsLine(t *testing.T) {
	o := NewLine(ShapeStyle{Kind: ShapeLine}, 1, 2, 30, 40)
	hps := HandlePositions(o)
	if len(hps) != 2 {
		t.Fatalf("len = %d, want 2", len(hps))
	}
	if hps[0].Handle != HandleStart || hps[0].X != 1 || hps[0].Y != 2 {
		t.Errorf("start handle = %+v", hps[0])
	}
	if hps[1].Handle != HandleEnd || hps[1].X != 30 || hps[1].Y != 40 {
		t.Errorf("end handle = %+v", hps[1])
	}
}

func TestHandleRadiusScalesWithZoom(t *testing.T) {
	if got := HandleRadius(1); got != 8 {
		t.Errorf("HandleRadius(1) = %v, want 8", got)
	}
	if got := HandleRadius(2); got != 4 {
		t.Errorf("HandleRadius(2) = %v, want 4", got)
	}
	if got := HandleRadius(0); got != 8 {
		t.Errorf("HandleRadius(0) = %v, want 8", got)
	}
}

func TestRotationHandlePosition(t *testing.T) {
	o := NewShape(ShapeStyle{Kind: ShapeSquare}, 0, 0, 100, 100)
	x, y := RotationHandlePosition(o, 1)
	if !almostEqual(x, 50) || !almostEqual(y, -30) {
		t.Errorf("unrotated = (%v, %v), want (50, -30)", x, y)
	}

	// Doubling the zoom halves the world-space offset.
	_, y = RotationHandlePosition(o, 2)
	if !almostEqual(y, -15) {
		t.Errorf("y at zoom 2 = %v, want -15", y)
	}

	// A 180 degree rotation places the handle below the object.
	o.Rotation = 180
	x, y = RotationHandlePosition(o, 1)
	if !almostEqual(x, 50) || !almostEqual(y, 130) {
		t.Errorf("rotated = (%v, %v), want (50, 130)", x, y)
	}
}

func TestHandleAtRotatedObject(t *testing.T) {
	o := NewShape(ShapeStyle{Kind: ShapeSquare}, 0, 0, 100, 100)
	o.Rotation = 90

	// The unrotated NW corner (0, 0) maps to world (100, 0) after a 90
	// degree rotation around (50, 50).
	if got := handleAt(o, 100, 0, 1); got != HandleNW {
		t.Errorf("handleAt rotated corner = %v, want HandleNW", got)
	}
	// The world-space (0, 0) no longer hits the NW handle.
	if got := handleAt(o, 0, 0, 1); got == HandleNW {
		t.Error("world corner should not map to HandleNW after rotation")
	}
}

func TestLineHitThreshold(t *testing.T) {
	if got := lineHitThreshold(0); got != 10 {
		t.Errorf("threshold at 0 stroke = %v, want 10", got)
	}
	if got := lineHitThreshold(3); got != 10 {
		t.Errorf("threshold at 3 stroke = %v, want 10", got)
	}
	if got := lineHitThreshold(12); got != 17 {
		t.Errorf("threshold at 12 stroke = %v, want 17", got)
	}
}

func TestObjectContains(t *testing.T) {
	box := NewShape(ShapeStyle{Kind: ShapeSquare}, 0, 0, 100, 50)
	if !objectContains(box, 0, 0) {
		t.Error("corner point should be inside")
	}
	if !objectContains(box, 100, 50) {
		t.Error("far corner should be inside")
	}
	if objectContains(box, 101, 25) {
		t.Error("point outside should miss")
	}

	line := NewLine(ShapeStyle{Kind: ShapeLine, StrokeWidth: 2}, 0, 0, 100, 0)
	if !objectContains(line, 50, 9) {
		t.Error("point within threshold should hit the line")
	}
	if objectContains(line, 50, 11) {
		t.Error("point beyond threshold should miss the line")
	}

	thick := NewLine(ShapeStyle{Kind: ShapeLine, StrokeWidth: 20}, 0, 0, 100, 0)
	if !objectContains(thick, 50, 24) {
		t.Error("thick stroke widens the hit threshold")
	}
}

func TestObjectContainsRotatedBox(t *testing.T) {
	o := NewShape(ShapeStyle{Kind: ShapeRectangle}, 0, 0, 100, 50)
	o.Rotation = 90

	// After rotating around (50, 25) the box occupies roughly x 25..75,
	// y -25..75 in world space.
	if !objectContains(o, 50, -20) {
		t.Error("point inside the rotated box should hit")
	}
	if objectContains(o, 95, 25) {
		t.Error("point inside the unrotated box but outside the rotated one should miss")
	}
}
