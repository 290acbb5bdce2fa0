package easel

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ObjectKind distinguishes the closed set of object variants. Every dispatch
// on kind is an exhaustive switch; there is no stringly-typed branching.
type ObjectKind uint8

const (
	KindShape   ObjectKind = iota // geometric shape, including line/arrow
	KindText                      // rich-text box with styled runs
	KindPalette                   // color palette with grid-derived geometry
)

var objectKindNames = map[ObjectKind]string{
	KindShape:   "shape",
	KindText:    "text",
	KindPalette: "colorPalette",
}

// MarshalJSON writes the variant tag as a string so documents stay readable.
func (k ObjectKind) MarshalJSON() ([]byte, error) {
	name, ok := objectKindNames[k]
	if !ok {
		return nil, fmt.Errorf("easel: unknown object kind %d", k)
	}
	return json.Marshal(name)
}

func (k *ObjectKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for kind, n := range objectKindNames {
		if n == name {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("easel: unknown object kind %q", name)
}

var textAlignNames = map[TextAlign]string{
	TextAlignLeft:   "left",
	TextAlignCenter: "center",
	TextAlignRight:  "right",
}

func (a TextAlign) MarshalJSON() ([]byte, error) {
	name, ok := textAlignNames[a]
	if !ok {
		return nil, fmt.Errorf("easel: unknown text align %d", a)
	}
	return json.Marshal(name)
}

func (a *TextAlign) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for align, n := range textAlignNames {
		if n == name {
			*a = align
			return nil
		}
	}
	return fmt.Errorf("easel: unknown text align %q", name)
}

// ShapeKind identifies a shape variant.
type ShapeKind uint8

const (
	ShapeSquare ShapeKind = iota
	ShapeRectangle
	ShapeCircle
	ShapeTriangle
	ShapeLine
	ShapeArrow
	ShapePolygon
)

var shapeKindNames = map[ShapeKind]string{
	ShapeSquare:    "square",
	ShapeRectangle: "rectangle",
	ShapeCircle:    "circle",
	ShapeTriangle:  "triangle",
	ShapeLine:      "line",
	ShapeArrow:     "arrow",
	ShapePolygon:   "polygon",
}

func (k ShapeKind) MarshalJSON() ([]byte, error) {
	name, ok := shapeKindNames[k]
	if !ok {
		return nil, fmt.Errorf("easel: unknown shape kind %d", k)
	}
	return json.Marshal(name)
}

func (k *ShapeKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for kind, n := range shapeKindNames {
		if n == name {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("easel: unknown shape kind %q", name)
}

// IsLinear reports whether the shape is a line or arrow, i.e. geometry is an
// endpoint pair rather than a box.
func (k ShapeKind) IsLinear() bool {
	return k == ShapeLine || k == ShapeArrow
}

// ShapeStyle is the fill/stroke style bag carried by shape objects and by the
// shape tool while drawing.
type ShapeStyle struct {
	Kind         ShapeKind `json:"shapeType"`
	FillColor    string    `json:"fillColor"`
	HasStroke    bool      `json:"hasStroke"`
	StrokeColor  string    `json:"strokeColor"`
	StrokeWidth  float64   `json:"strokeWidth"`
	CornerRadius float64   `json:"cornerRadius,omitempty"`
	Sides        int       `json:"sides,omitempty"` // polygon only
}

// PaletteCell is one color swatch in a palette object.
type PaletteCell struct {
	Hex string `json:"hex"`
}

// Object is a single placed board object. A flat struct covers all variants
// to avoid interface dispatch on the hot path; Kind selects which variant
// fields are meaningful.
type Object struct {
	// Identity
	ID   string     `json:"id"`
	Kind ObjectKind `json:"kind"`

	// Geometry (world units). For line/arrow, X/Y is the start point and
	// X2/Y2 the end point; Width/Height are unused placeholders.
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	X2     float64 `json:"x2,omitempty"`
	Y2     float64 `json:"y2,omitempty"`

	// Rotation in degrees. The pivot is the geometric center (segment
	// midpoint for line/arrow).
	Rotation float64 `json:"rotation,omitempty"`

	// Ordering and visibility
	ZIndex  int  `json:"zIndex"`
	Visible bool `json:"visible"`

	// Shape fields (KindShape)
	Shape ShapeStyle `json:"shape,omitempty"`

	// Text fields (KindText)
	Content      []TextRun `json:"content,omitempty"`
	DefaultStyle TextStyle `json:"defaultStyle,omitempty"`
	TextAlign    TextAlign `json:"textAlign,omitempty"`
	// Editing is transient: true while an inline editing surface owns the
	// object's glyphs. Never persisted.
	Editing bool `json:"-"`

	// Legacy flat text fields, populated only when decoding old records.
	// MigrateLegacyText folds them into Content exactly once.
	LegacyText     string  `json:"text,omitempty"`
	LegacyFontSize float64 `json:"fontSize,omitempty"`
	LegacyColor    string  `json:"color,omitempty"`

	// Palette fields (KindPalette). Width/Height are derived from the grid
	// by derivePaletteSize, never set independently.
	CellSize    float64       `json:"cellSize,omitempty"`
	GridCols    int           `json:"gridCols,omitempty"`
	GridRows    int           `json:"gridRows,omitempty"`
	HasWideCell bool          `json:"hasWideCell,omitempty"`
	Colors      []PaletteCell `json:"colors,omitempty"`
}

// newObjectID returns an opaque unique id. UUIDs keep the collision
// probability negligible across a whole session.
func newObjectID() string {
	return uuid.NewString()
}

// NewShape creates a shape object with the given style. Box-like shapes are
// clamped to MinObjectSize; line/arrow geometry is taken verbatim from the
// start/end points stored in x,y / w,h by the caller (see NewLine).
func NewShape(style ShapeStyle, x, y, w, h float64) *Object {
	if !style.Kind.IsLinear() {
		w = max(w, MinObjectSize)
		h = max(h, MinObjectSize)
	}
	return &Object{
		ID:      newObjectID(),
		Kind:    KindShape,
		X:       x,
		Y:       y,
		Width:   w,
		Height:  h,
		Visible: true,
		Shape:   style,
	}
}

// NewLine creates a line or arrow object with explicit endpoints.
// No minimum-size constraint applies.
func NewLine(style ShapeStyle, x1, y1, x2, y2 float64) *Object {
	return &Object{
		ID:      newObjectID(),
		Kind:    KindShape,
		X:       x1,
		Y:       y1,
		X2:      x2,
		Y2:      y2,
		Visible: true,
		Shape:   style,
	}
}

// NewTextBox creates an empty text object with the given default run style.
func NewTextBox(style TextStyle, x, y, w, h float64) *Object {
	return &Object{
		ID:           newObjectID(),
		Kind:         KindText,
		X:            x,
		Y:            y,
		Width:        max(w, MinObjectSize),
		Height:       max(h, MinObjectSize),
		Visible:      true,
		DefaultStyle: style,
	}
}

// NewPalette creates a color palette object. Width and height are derived
// from the grid geometry.
func NewPalette(x, y, cellSize float64, cols, rows int, wideCell bool, colors []PaletteCell) *Object {
	o := &Object{
		ID:          newObjectID(),
		Kind:        KindPalette,
		X:           x,
		Y:           y,
		Visible:     true,
		CellSize:    clampPaletteCell(cellSize),
		GridCols:    cols,
		GridRows:    rows,
		HasWideCell: wideCell,
		Colors:      colors,
	}
	derivePaletteSize(o)
	return o
}

// IsLinear reports whether the object is a line or arrow shape.
func (o *Object) IsLinear() bool {
	return o.Kind == KindShape && o.Shape.Kind.IsLinear()
}

// Bounds returns the object's axis-aligned bounding box, ignoring rotation.
// For line/arrow objects this is the box spanned by the endpoints.
func (o *Object) Bounds() Rect {
	if o.IsLinear() {
		minX := min(o.X, o.X2)
		minY := min(o.Y, o.Y2)
		return Rect{X: minX, Y: minY, Width: max(o.X, o.X2) - minX, Height: max(o.Y, o.Y2) - minY}
	}
	return Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}

// Center returns the rotation pivot: the geometric center, or the segment
// midpoint for line/arrow.
func (o *Object) Center() (cx, cy float64) {
	if o.IsLinear() {
		return (o.X + o.X2) / 2, (o.Y + o.Y2) / 2
	}
	return o.X + o.Width/2, o.Y + o.Height/2
}

// MoveBy translates the object by (dx, dy). Line/arrow objects shift both
// endpoints so segment length and orientation are preserved.
func (o *Object) MoveBy(dx, dy float64) {
	o.X += dx
	o.Y += dy
	if o.IsLinear() {
		o.X2 += dx
		o.Y2 += dy
	}
}

// Clone returns a deep copy of the object, including its id and z-index.
// History actions store clones so that undo can reconstruct an object
// indistinguishable from the original.
func (o *Object) Clone() *Object {
	c := *o
	if o.Content != nil {
		c.Content = make([]TextRun, len(o.Content))
		copy(c.Content, o.Content)
	}
	if o.Colors != nil {
		c.Colors = make([]PaletteCell, len(o.Colors))
		copy(c.Colors, o.Colors)
	}
	return &c
}

// CopyFrom overwrites every field of o with a deep copy of src, keeping the
// receiver pointer stable so live references (selection, drag state) survive
// a history restore.
func (o *Object) CopyFrom(src *Object) {
	*o = *src.Clone()
}
