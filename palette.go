package easel

// Color palette geometry. Palette width and height are derived from the cell
// grid, never set independently; resizing scales the cell size and re-derives
// the box.

// clampPaletteCell bounds a palette cell size to its allowed range.
func clampPaletteCell(size float64) float64 {
	if size < MinPaletteCell {
		return MinPaletteCell
	}
	if size > MaxPaletteCell {
		return MaxPaletteCell
	}
	return size
}

// derivePaletteSize recomputes Width/Height from the grid geometry.
// A wide cell adds one full-width row of cell height above the grid.
func derivePaletteSize(o *Object) {
	if o.Kind != KindPalette {
		return
	}
	cols := max(o.GridCols, 1)
	rows := max(o.GridRows, 1)
	o.Width = o.CellSize * float64(cols)
	o.Height = o.CellSize * float64(rows)
	if o.HasWideCell {
		o.Height += o.CellSize
	}
}

// resizePalette scales the palette's cell size proportionally to the width
// the pointer implies through the given handle, re-derives Width/Height from
// the grid, and repositions the object so the opposite anchor corner/edge
// stays fixed. mx, my are in the object's unrotated frame.
func resizePalette(o *Object, h Handle, mx, my float64) {
	right := o.X + o.Width
	bottom := o.Y + o.Height

	// Desired width along the dragged axis. Corner and horizontal handles
	// track X; pure vertical handles track the height and convert back
	// through the grid aspect.
	cols := float64(max(o.GridCols, 1))
	rows := float64(max(o.GridRows, 1))
	if o.HasWideCell {
		rows++
	}

	var cell float64
	switch h {
	case HandleE, HandleNE, HandleSE:
		cell = (mx - o.X) / cols
	case HandleW, HandleNW, HandleSW:
		cell = (right - mx) / cols
	case HandleN:
		cell = (bottom - my) / rows
	case HandleS:
		cell = (my - o.Y) / rows
	default:
		return
	}
	o.CellSize = clampPaletteCell(cell)
	derivePaletteSize(o)

	// Anchor the opposite corner/edge, symmetric to the box case.
	switch h {
	case HandleNW:
		o.X = right - o.Width
		o.Y = bottom - o.Height
	case HandleN:
		o.Y = bottom - o.Height
	case HandleNE:
		o.Y = bottom - o.Height
	case HandleW:
		o.X = right - o.Width
	case HandleSW:
		o.X = right - o.Width
	}
	// HandleE, HandleSE, HandleS keep the top-left anchored already.
}
