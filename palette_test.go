package easel

import "testing"

func TestClampPaletteCell(t *testing.T) {
	if got := clampPaletteCell(5); got != MinPaletteCell {
		t.Errorf("clamp(5) = %v, want %v", got, MinPaletteCell)
	}
	if got := clampPaletteCell(100); got != MaxPaletteCell {
		t.Errorf("clamp(100) = %v, want %v", got, MaxPaletteCell)
	}
	if got := clampPaletteCell(35); got != 35 {
		t.Errorf("clamp(35) = %v, want 35", got)
	}
}

func TestNewPaletteDerivesSize(t *testing.T) {
	p := NewPalette(0, 0, 30, 4, 2, false, nil)
	if p.Width != 120 || p.Height != 60 {
		t.Errorf("size = (%v, %v), want (120, 60)", p.Width, p.Height)
	}

	// The wide cell adds one full-width row of cell height.
	wide := NewPalette(0, 0, 30, 4, 2, true, nil)
	if wide.Height != 90 {
		t.Errorf("height with wide cell = %v, want 90", wide.Height)
	}
}

func TestResizePaletteScalesCell(t *testing.T) {
	p := NewPalette(0, 0, 30, 4, 2, false, nil)

	// Dragging the east handle to x=160 implies cell 160/4 = 40.
	resizePalette(p, HandleE, 160, 30)
	if p.CellSize != 40 {
		t.Errorf("cell = %v, want 40", p.CellSize)
	}
	if p.Width != 160 || p.Height != 80 {
		t.Errorf("size = (%v, %v), want (160, 80)", p.Width, p.Height)
	}
	if p.X != 0 || p.Y != 0 {
		t.Errorf("east drag must keep the origin, got (%v, %v)", p.X, p.Y)
	}
}

func TestResizePaletteClampsCell(t *testing.T) {
	p := NewPalette(0, 0, 30, 4, 2, false, nil)
	resizePalette(p, HandleE, 1000, 30)
	if p.CellSize != MaxPaletteCell {
		t.Errorf("cell = %v, want %v", p.CellSize, MaxPaletteCell)
	}
	resizePalette(p, HandleE, 1, 30)
	if p.CellSize != MinPaletteCell {
		t.Errorf("cell = %v, want %v", p.CellSize, MinPaletteCell)
	}
}

func TestResizePaletteAnchorsOppositeCorner(t *testing.T) {
	p := NewPalette(100, 100, 30, 2, 2, false, nil)
	right := p.X + p.Width   // 160
	bottom := p.Y + p.Height // 160

	// Dragging NW to imply cell (160-80)/2 = 40 keeps the SE corner fixed.
	resizePalette(p, HandleNW, 80, 80)
	if p.CellSize != 40 {
		t.Errorf("cell = %v, want 40", p.CellSize)
	}
	if p.X+p.Width != right || p.Y+p.Height != bottom {
		t.Errorf("SE corner moved to (%v, %v), want (%v, %v)",
			p.X+p.Width, p.Y+p.Height, right, bottom)
	}
}

func TestResizePaletteVerticalHandleUsesRows(t *testing.T) {
	p := NewPalette(0, 0, 30, 4, 2, true, nil)
	// With the wide cell the palette is 3 rows tall. Dragging south to
	// y=120 implies cell 120/3 = 40.
	resizePalette(p, HandleS, 60, 120)
	if p.CellSize != 40 {
		t.Errorf("cell = %v, want 40", p.CellSize)
	}
	if p.Height != 120 {
		t.Errorf("height = %v, want 120", p.Height)
	}
}
