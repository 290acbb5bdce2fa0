package easel

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Ebiten render adapter. The adapter reads board, selection, and gesture
// state and paints; it never mutates any of them. Solid shapes are filled by
// fan-triangulating their outline polygon onto a white pixel, outlines and
// lines go through the vector helpers.

// whiteSub is a 1x1 white region inside a 3x3 image, inset so sampling at
// triangle edges cannot bleed transparent texels.
var whiteSub *ebiten.Image

func whitePixel() *ebiten.Image {
	if whiteSub == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSub = img.SubImage(img.Bounds().Inset(1)).(*ebiten.Image)
	}
	return whiteSub
}

// Renderer paints a board through a camera onto an ebiten image.
type Renderer struct {
	Editor *Editor
	Camera *Camera

	// Background fills the canvas each frame.
	Background color.Color
	// SelectionColor tints selection chrome and the marquee.
	SelectionColor color.Color
	// GuideColor tints snap alignment guides.
	GuideColor color.Color
	// ShowHUD overlays FPS and editor state in the corner.
	ShowHUD bool
}

// NewRenderer creates a renderer with the stock chrome colors.
func NewRenderer(e *Editor, cam *Camera) *Renderer {
	return &Renderer{
		Editor:         e,
		Camera:         cam,
		Background:     color.RGBA{R: 0xf5, G: 0xf5, B: 0xf4, A: 0xff},
		SelectionColor: color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff},
		GuideColor:     color.RGBA{R: 0xec, G: 0x48, B: 0x99, A: 0xff},
	}
}

// Draw paints the full frame: objects in ascending z-order, then the
// in-progress preview, then selection chrome, guides, and the marquee.
func (r *Renderer) Draw(dst *ebiten.Image) {
	dst.Fill(r.Background)

	for _, o := range r.Editor.Board.Objects() {
		if !o.Visible {
			continue
		}
		r.drawObject(dst, o)
	}
	if p := r.Editor.Preview(); p != nil {
		r.drawObject(dst, p)
	}

	for _, o := range r.Editor.Selection.Objects() {
		r.drawSelectionChrome(dst, o)
	}
	for _, g := range r.Editor.Guides() {
		r.drawGuide(dst, g)
	}
	if r.Editor.Mode() == ModeBoxSelecting {
		r.drawMarquee(dst, r.Editor.Marquee())
	}
	if r.ShowHUD {
		r.DrawHUD(dst)
	}
}

func (r *Renderer) drawObject(dst *ebiten.Image, o *Object) {
	switch o.Kind {
	case KindShape:
		r.drawShape(dst, o)
	case KindText:
		r.drawText(dst, o)
	case KindPalette:
		r.drawPalette(dst, o)
	}
}

// --- Shapes ---

func (r *Renderer) drawShape(dst *ebiten.Image, o *Object) {
	stroke := float32(o.Shape.StrokeWidth * r.Camera.Zoom)
	strokeColor := mustColor(o.Shape.StrokeColor, color.Black)

	if o.IsLinear() {
		x1, y1 := r.Camera.WorldToScreen(o.X, o.Y)
		x2, y2 := r.Camera.WorldToScreen(o.X2, o.Y2)
		if stroke <= 0 {
			stroke = float32(2 * r.Camera.Zoom)
		}
		vector.StrokeLine(dst, float32(x1), float32(y1), float32(x2), float32(y2), stroke, strokeColor, true)
		if o.Shape.Kind == ShapeArrow {
			r.drawArrowHead(dst, x1, y1, x2, y2, float64(stroke), strokeColor)
		}
		return
	}

	pts := r.shapeOutline(o)
	if len(pts) < 3 {
		return
	}
	fillPolygon(dst, pts, mustColor(o.Shape.FillColor, color.RGBA{A: 0xff}))
	if o.Shape.HasStroke && stroke > 0 {
		strokePolygon(dst, pts, stroke, strokeColor)
	}
}

// drawArrowHead paints a filled triangular head at the (x2, y2) end,
// scaled with the stroke width.
func (r *Renderer) drawArrowHead(dst *ebiten.Image, x1, y1, x2, y2, stroke float64, clr color.Color) {
	angle := math.Atan2(y2-y1, x2-x1)
	size := math.Max(10*r.Camera.Zoom, stroke*3)
	spread := math.Pi / 7
	pts := []Vec2{
		{X: x2, Y: y2},
		{X: x2 - size*math.Cos(angle-spread), Y: y2 - size*math.Sin(angle-spread)},
		{X: x2 - size*math.Cos(angle+spread), Y: y2 - size*math.Sin(angle+spread)},
	}
	fillPolygon(dst, pts, clr)
}

// shapeOutline returns the shape's outline polygon in screen space, with
// object rotation and the camera transform applied.
func (r *Renderer) shapeOutline(o *Object) []Vec2 {
	var pts []Vec2
	switch o.Shape.Kind {
	case ShapeCircle:
		pts = ellipsePoints(o.X, o.Y, o.Width, o.Height, 48)
	case ShapeTriangle:
		pts = []Vec2{
			{X: o.X + o.Width/2, Y: o.Y},
			{X: o.X + o.Width, Y: o.Y + o.Height},
			{X: o.X, Y: o.Y + o.Height},
		}
	case ShapePolygon:
		pts = regularPolygonPoints(o.X, o.Y, o.Width, o.Height, max(o.Shape.Sides, 3))
	default:
		// Square/rectangle, with optional corner rounding.
		if o.Shape.CornerRadius > 0 {
			pts = roundedRectPoints(o.X, o.Y, o.Width, o.Height, o.Shape.CornerRadius)
		} else {
			pts = []Vec2{
				{X: o.X, Y: o.Y},
				{X: o.X + o.Width, Y: o.Y},
				{X: o.X + o.Width, Y: o.Y + o.Height},
				{X: o.X, Y: o.Y + o.Height},
			}
		}
	}

	cx, cy := o.Center()
	for i, p := range pts {
		wx, wy := p.X, p.Y
		if o.Rotation != 0 {
			wx, wy = RotatePoint(wx, wy, cx, cy, o.Rotation)
		}
		sx, sy := r.Camera.WorldToScreen(wx, wy)
		pts[i] = Vec2{X: sx, Y: sy}
	}
	return pts
}

func ellipsePoints(x, y, w, h float64, segments int) []Vec2 {
	cx, cy := x+w/2, y+h/2
	pts := make([]Vec2, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = Vec2{X: cx + w/2*math.Cos(a), Y: cy + h/2*math.Sin(a)}
	}
	return pts
}

func regularPolygonPoints(x, y, w, h float64, sides int) []Vec2 {
	cx, cy := x+w/2, y+h/2
	pts := make([]Vec2, sides)
	for i := range pts {
		a := 2*math.Pi*float64(i)/float64(sides) - math.Pi/2
		pts[i] = Vec2{X: cx + w/2*math.Cos(a), Y: cy + h/2*math.Sin(a)}
	}
	return pts
}

func roundedRectPoints(x, y, w, h, radius float64) []Vec2 {
	r := math.Min(radius, math.Min(w, h)/2)
	const segs = 8
	corners := [4]struct {
		cx, cy, start float64
	}{
		{x + w - r, y + r, -math.Pi / 2},
		{x + w - r, y + h - r, 0},
		{x + r, y + h - r, math.Pi / 2},
		{x + r, y + r, math.Pi},
	}
	pts := make([]Vec2, 0, 4*(segs+1))
	for _, c := range corners {
		for i := 0; i <= segs; i++ {
			a := c.start + math.Pi/2*float64(i)/segs
			pts = append(pts, Vec2{X: c.cx + r*math.Cos(a), Y: c.cy + r*math.Sin(a)})
		}
	}
	return pts
}

// fillPolygon fan-triangulates pts around their centroid and draws the
// triangles over the white pixel. Valid for convex and star-shaped outlines,
// which covers every shape kind here.
func fillPolygon(dst *ebiten.Image, pts []Vec2, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	var cx, cy float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(pts))
	cy /= float64(len(pts))

	cr, cg, cb, ca := clr.RGBA()
	fr := float32(cr) / 0xffff
	fg := float32(cg) / 0xffff
	fb := float32(cb) / 0xffff
	fa := float32(ca) / 0xffff
	src := whitePixel()
	sx := float32(src.Bounds().Min.X) + 0.5
	sy := float32(src.Bounds().Min.Y) + 0.5

	vtx := func(x, y float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: sx, SrcY: sy,
			ColorR: fr, ColorG: fg, ColorB: fb, ColorA: fa,
		}
	}

	vs := make([]ebiten.Vertex, 0, len(pts)+1)
	vs = append(vs, vtx(cx, cy))
	for _, p := range pts {
		vs = append(vs, vtx(p.X, p.Y))
	}
	is := make([]uint16, 0, len(pts)*3)
	for i := 0; i < len(pts); i++ {
		next := (i + 1) % len(pts)
		is = append(is, 0, uint16(i+1), uint16(next+1))
	}
	dst.DrawTriangles(vs, is, src, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func strokePolygon(dst *ebiten.Image, pts []Vec2, width float32, clr color.Color) {
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
	}
}

// --- Text ---

// drawText paints the rich-text runs of a text object. While the object is
// in inline editing the external editing surface owns the glyphs, so only
// the box is painted.
func (r *Renderer) drawText(dst *ebiten.Image, o *Object) {
	if o.Editing {
		return
	}
	face := basicfont.Face7x13
	lineH := float64(face.Metrics().Height.Ceil())
	x, y := r.Camera.WorldToScreen(o.X, o.Y)
	penX := x
	penY := y + float64(face.Metrics().Ascent.Ceil())

	for _, run := range o.Content {
		clr := mustColor(run.Style.Color, color.Black)
		for i, line := range strings.Split(run.Text, "\n") {
			if i > 0 {
				penX = x
				penY += lineH
			}
			if line == "" {
				continue
			}
			text.Draw(dst, line, face, int(penX), int(penY), clr)
			penX += float64(text.BoundString(face, line).Dx())
		}
	}
}

// --- Palette ---

func (r *Renderer) drawPalette(dst *ebiten.Image, o *Object) {
	cell := o.CellSize * r.Camera.Zoom
	cols := max(o.GridCols, 1)
	x, y := r.Camera.WorldToScreen(o.X, o.Y)

	idx := 0
	// The wide cell spans the full width as its own top row.
	if o.HasWideCell && len(o.Colors) > 0 {
		w := cell * float64(cols)
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(cell), mustColor(o.Colors[0].Hex, color.White), false)
		y += cell
		idx = 1
	}
	for ; idx < len(o.Colors); idx++ {
		gi := idx
		if o.HasWideCell {
			gi = idx - 1
		}
		col := gi % cols
		row := gi / cols
		cx := x + float64(col)*cell
		cy := y + float64(row)*cell
		vector.DrawFilledRect(dst, float32(cx), float32(cy), float32(cell), float32(cell), mustColor(o.Colors[idx].Hex, color.White), false)
	}

	// Hairline frame.
	sx, sy := r.Camera.WorldToScreen(o.X, o.Y)
	vector.StrokeRect(dst, float32(sx), float32(sy),
		float32(o.Width*r.Camera.Zoom), float32(o.Height*r.Camera.Zoom),
		1, color.RGBA{A: 0x40}, false)
}

// --- Selection chrome, guides, marquee ---

func (r *Renderer) drawSelectionChrome(dst *ebiten.Image, o *Object) {
	clr := r.SelectionColor

	// Outline: endpoint-to-endpoint for lines, rotated bounds otherwise.
	if o.IsLinear() {
		x1, y1 := r.Camera.WorldToScreen(o.X, o.Y)
		x2, y2 := r.Camera.WorldToScreen(o.X2, o.Y2)
		vector.StrokeLine(dst, float32(x1), float32(y1), float32(x2), float32(y2), 1, clr, true)
	} else {
		corners := []Vec2{
			{X: o.X, Y: o.Y},
			{X: o.X + o.Width, Y: o.Y},
			{X: o.X + o.Width, Y: o.Y + o.Height},
			{X: o.X, Y: o.Y + o.Height},
		}
		cx, cy := o.Center()
		for i, p := range corners {
			wx, wy := p.X, p.Y
			if o.Rotation != 0 {
				wx, wy = RotatePoint(wx, wy, cx, cy, o.Rotation)
			}
			sx, sy := r.Camera.WorldToScreen(wx, wy)
			corners[i] = Vec2{X: sx, Y: sy}
		}
		strokePolygon(dst, corners, 1, clr)
	}

	// Handles only on the sole selection; multi-selections drag as a group.
	if r.Editor.Selection.Sole() != o {
		return
	}
	const handlePx = 8
	cx, cy := o.Center()
	for _, hp := range HandlePositions(o) {
		wx, wy := hp.X, hp.Y
		if o.Rotation != 0 {
			wx, wy = RotatePoint(wx, wy, cx, cy, o.Rotation)
		}
		sx, sy := r.Camera.WorldToScreen(wx, wy)
		vector.DrawFilledRect(dst, float32(sx)-handlePx/2, float32(sy)-handlePx/2, handlePx, handlePx, color.White, true)
		vector.StrokeRect(dst, float32(sx)-handlePx/2, float32(sy)-handlePx/2, handlePx, handlePx, 1, clr, true)
	}
	if !o.IsLinear() {
		rx, ry := RotationHandlePosition(o, r.Camera.Zoom)
		sx, sy := r.Camera.WorldToScreen(rx, ry)
		topX, topY := o.X+o.Width/2, o.Y
		if o.Rotation != 0 {
			topX, topY = RotatePoint(topX, topY, cx, cy, o.Rotation)
		}
		tx, ty := r.Camera.WorldToScreen(topX, topY)
		vector.StrokeLine(dst, float32(tx), float32(ty), float32(sx), float32(sy), 1, clr, true)
		vector.DrawFilledCircle(dst, float32(sx), float32(sy), handlePx/2, color.White, true)
		vector.StrokeCircle(dst, float32(sx), float32(sy), handlePx/2, 1, clr, true)
	}
}

func (r *Renderer) drawGuide(dst *ebiten.Image, g GuideLine) {
	x1, y1 := r.Camera.WorldToScreen(g.From.X, g.From.Y)
	x2, y2 := r.Camera.WorldToScreen(g.To.X, g.To.Y)
	vector.StrokeLine(dst, float32(x1), float32(y1), float32(x2), float32(y2), 1, r.GuideColor, true)
}

func (r *Renderer) drawMarquee(dst *ebiten.Image, m Rect) {
	x, y := r.Camera.WorldToScreen(m.X, m.Y)
	w := m.Width * r.Camera.Zoom
	h := m.Height * r.Camera.Zoom
	cr, cg, cb, _ := r.SelectionColor.RGBA()
	fill := color.RGBA{R: uint8(cr >> 8), G: uint8(cg >> 8), B: uint8(cb >> 8), A: 0x30}
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), fill, false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1, r.SelectionColor, false)
}

// --- Colors ---

// ParseHexColor parses #RGB, #RRGGBB, and #RRGGBBAA color strings.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	hex := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}
	pair := func(i int) (uint8, bool) {
		hi, ok1 := hex(s[i])
		lo, ok2 := hex(s[i+1])
		return hi<<4 | lo, ok1 && ok2
	}
	var c color.RGBA
	c.A = 0xff
	switch len(s) {
	case 3:
		for i, dst := range []*uint8{&c.R, &c.G, &c.B} {
			v, ok := hex(s[i])
			if !ok {
				return color.RGBA{}, fmt.Errorf("easel: invalid hex color %q", s)
			}
			*dst = v<<4 | v
		}
	case 8:
		v, ok := pair(6)
		if !ok {
			return color.RGBA{}, fmt.Errorf("easel: invalid hex color %q", s)
		}
		c.A = v
		fallthrough
	case 6:
		for i, dst := range []*uint8{&c.R, &c.G, &c.B} {
			v, ok := pair(i * 2)
			if !ok {
				return color.RGBA{}, fmt.Errorf("easel: invalid hex color %q", s)
			}
			*dst = v
		}
	default:
		return color.RGBA{}, fmt.Errorf("easel: invalid hex color %q", s)
	}
	return c, nil
}

// mustColor parses a hex color, falling back when empty or malformed.
func mustColor(s string, fallback color.Color) color.Color {
	if s == "" {
		return fallback
	}
	c, err := ParseHexColor(s)
	if err != nil {
		return fallback
	}
	return c
}
