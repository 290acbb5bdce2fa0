package easel

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#ff0000", color.RGBA{R: 0xff, A: 0xff}, true},
		{"00ff00", color.RGBA{G: 0xff, A: 0xff}, true},
		{"#3b82f6", color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}, true},
		{"#abc", color.RGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff}, true},
		{"#FFFFFF80", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}, true},
		{"", color.RGBA{}, false},
		{"#12345", color.RGBA{}, false},
		{"#gggggg", color.RGBA{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if (err == nil) != tt.ok {
				t.Fatalf("err = %v, want ok = %v", err, tt.ok)
			}
			if tt.ok && got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMustColorFallback(t *testing.T) {
	fb := color.RGBA{R: 1, G: 2, B: 3, A: 0xff}
	if mustColor("", fb) != fb {
		t.Error("empty string should fall back")
	}
	if mustColor("#nope", fb) != fb {
		t.Error("malformed string should fall back")
	}
	if mustColor("#102030", fb) == fb {
		t.Error("a valid string should parse")
	}
}

func TestEllipsePoints(t *testing.T) {
	pts := ellipsePoints(0, 0, 100, 60, 48)
	if len(pts) != 48 {
		t.Fatalf("len = %d, want 48", len(pts))
	}
	// First point sits at the right extreme of the ellipse.
	if !almostEqual(pts[0].X, 100) || !almostEqual(pts[0].Y, 30) {
		t.Errorf("pts[0] = %+v, want (100, 30)", pts[0])
	}
	// Every point lies on the ellipse.
	for _, p := range pts {
		dx, dy := (p.X-50)/50, (p.Y-30)/30
		if !almostEqual(dx*dx+dy*dy, 1) {
			t.Fatalf("point %+v off the ellipse", p)
		}
	}
}

func TestRegularPolygonPoints(t *testing.T) {
	pts := regularPolygonPoints(0, 0, 100, 100, 6)
	if len(pts) != 6 {
		t.Fatalf("len = %d, want 6", len(pts))
	}
	// The first vertex points straight up.
	if !almostEqual(pts[0].X, 50) || !almostEqual(pts[0].Y, 0) {
		t.Errorf("pts[0] = %+v, want apex (50, 0)", pts[0])
	}
}

func TestRoundedRectPoints(t *testing.T) {
	pts := roundedRectPoints(0, 0, 100, 60, 10)
	if len(pts) != 36 {
		t.Fatalf("len = %d, want 4 corners of 9 points", len(pts))
	}
	for _, p := range pts {
		if p.X < 0 || p.X > 100 || p.Y < 0 || p.Y > 60 {
			t.Fatalf("point %+v outside the rect", p)
		}
	}

	// An oversized radius clamps to half the short side.
	pts = roundedRectPoints(0, 0, 100, 40, 500)
	for _, p := range pts {
		if p.X < 0 || p.X > 100 || p.Y < 0 || p.Y > 40 {
			t.Fatalf("clamped radius point %+v outside the rect", p)
		}
	}
}

func TestSpanRect(t *testing.T) {
	r := spanRect(100, 80, 20, 200)
	want := Rect{X: 20, Y: 80, Width: 80, Height: 120}
	if r != want {
		t.Errorf("got %+v, want %+v", r, want)
	}
}
