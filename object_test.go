package easel

import "testing"

func TestNewShapeClampsMinimumSize(t *testing.T) {
	o := NewShape(ShapeStyle{Kind: ShapeSquare}, 10, 10, 12, 5)
	if o.Width != MinObjectSize || o.Height != MinObjectSize {
		t.Errorf("size = (%v, %v), want (%v, %v)", o.Width, o.Height, MinObjectSize, MinObjectSize)
	}
	if o.ID == "" {
		t.Error("object should get an id")
	}
	if !o.Visible {
		t.Error("new objects are visible")
	}
}

func TestNewLineHasNoMinimum(t *testing.T) {
	o := NewLine(ShapeStyle{Kind: ShapeArrow}, 0, 0, 3, 4)
	if o.X2 != 3 || o.Y2 != 4 {
		t.Errorf("endpoints = (%v, %v), want (3, 4)", o.X2, o.Y2)
	}
	if !o.IsLinear() {
		t.Error("arrow should be linear")
	}
}

func TestObjectIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		o := NewShape(ShapeStyle{Kind: ShapeSquare}, 0, 0, 50, 50)
		if seen[o.ID] {
			t.Fatalf("duplicate id %q", o.ID)
		}
		seen[o.ID] = true
	}
}

func TestBoundsLinear(t *testing.T) {
	o := NewLine(ShapeStyle{Kind: ShapeLine}, 100, 20, 10, 80)
	b := o.Bounds()
	want := Rect{X: 10, Y: 20, Width: 90, Height: 60}
	if b != want {
		t.Errorf("Bounds = %+v, want %+v", b, want)
	}
}

func TestCenter(t *testing.T) {
	box := NewShape(ShapeStyle{Kind: ShapeSquare}, 0, 0, 100, 60)
	cx, cy := box.Center()
	if cx != 50 || cy != 30 {
		t.Errorf("box center = (%v, %v), want (50, 30)", cx, cy)
	}

	line := NewLine(ShapeStyle{Kind: ShapeLine}, 0, 0, 100, 40)
	cx, cy = line.Center()
	if cx != 50 || cy != 20 {
		t.Errorf("line center = (%v, %v), want (50, 20)", cx, cy)
	}
}

func TestMoveByShiftsLineEndpoints(t *testing.T) {
	line := NewLine(ShapeStyle{Kind: ShapeLine}, 0, 0, 100, 40)
	line.MoveBy(10, -5)
	if line.X != 10 || line.Y != -5 || line.X2 != 110 || line.Y2 != 35 {
		t.Errorf("after MoveBy: (%v, %v)-(%v, %v)", line.X, line.Y, line.X2, line.Y2)
	}
}

func TestCloneIsDeep(t *testing.T) {
	o := NewTextBox(DefaultTextStyle, 0, 0, 100, 60)
	SetTextContent(o, []TextRun{{Text: "hello", Style: DefaultTextStyle}})
	o.ZIndex = 7

	c := o.Clone()
	if c.ID != o.ID || c.ZIndex != 7 {
		t.Error("clone should keep id and z-index")
	}
	c.Content[0].Text = "changed"
	if o.Content[0].Text != "hello" {
		t.Error("mutating the clone's runs leaked into the original")
	}

	p := NewPalette(0, 0, 30, 2, 2, false, []PaletteCell{{Hex: "#fff"}})
	pc := p.Clone()
	pc.Colors[0].Hex = "#000"
	if p.Colors[0].Hex != "#fff" {
		t.Error("mutating the clone's colors leaked into the original")
	}
}

func TestCopyFromKeepsPointerStable(t *testing.T) {
	o := NewShape(ShapeStyle{Kind: ShapeSquare}, 0, 0, 50, 50)
	snap := o.Clone()
	snap.X = 99

	ref := o
	o.CopyFrom(snap)
	if ref.X != 99 {
		t.Errorf("ref.X = %v, want 99", ref.X)
	}
	if ref != o {
		t.Error("CopyFrom must not change the pointer")
	}
}
