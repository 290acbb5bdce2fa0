package easel

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Zoom limits for interactive zooming.
const (
	MinZoom = 0.1
	MaxZoom = 8.0
)

// camAnim holds active tweens for camera position and zoom.
type camAnim struct {
	tweenX   *gween.Tween
	tweenY   *gween.Tween
	tweenZ   *gween.Tween
	doneX    bool
	doneY    bool
	doneZoom bool
}

// Camera controls the view into the board: position, zoom, and viewport.
// There is no camera rotation; only objects rotate.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to when
	// BoundsEnabled is true.
	Bounds Rect

	anim *camAnim
}

// NewCamera creates a Camera at zoom 1 with the given viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{Zoom: 1.0, Viewport: viewport}
}

// Pan moves the camera by a screen-space delta, converted through the zoom.
func (c *Camera) Pan(dxScreen, dyScreen float64) {
	c.X -= dxScreen / c.Zoom
	c.Y -= dyScreen / c.Zoom
	c.ClampToBounds()
}

// ZoomAt multiplies the zoom by factor while keeping the world point under
// the given screen position fixed, so wheel zoom pivots around the cursor.
func (c *Camera) ZoomAt(sx, sy, factor float64) {
	wx, wy := c.ScreenToWorld(sx, sy)
	c.Zoom = clampZoom(c.Zoom * factor)
	// Re-center so (wx, wy) maps back to (sx, sy) at the new zoom.
	nx, ny := c.ScreenToWorld(sx, sy)
	c.X += wx - nx
	c.Y += wy - ny
	c.ClampToBounds()
}

// ScrollTo animates the camera to the given world position over duration
// seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.anim = &camAnim{
		tweenX:   gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY:   gween.New(float32(c.Y), float32(y), duration, easeFn),
		doneZoom: true,
	}
}

// ZoomTo animates the zoom to the given factor over duration seconds,
// keeping the current center.
func (c *Camera) ZoomTo(zoom float64, duration float32, easeFn ease.TweenFunc) {
	c.anim = &camAnim{
		tweenZ: gween.New(float32(c.Zoom), float32(clampZoom(zoom)), duration, easeFn),
		doneX:  true,
		doneY:  true,
	}
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// ClampToBounds immediately clamps the camera position so the visible area
// stays within Bounds. Call this after modifying X/Y directly to prevent a
// single frame where the camera sees outside the bounds. No-op if
// BoundsEnabled is false.
func (c *Camera) ClampToBounds() {
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// Update advances scroll/zoom animations and bounds clamping. Called once
// per tick by the app runner.
func (c *Camera) Update(dt float32) {
	if c.anim != nil {
		a := c.anim
		if !a.doneX {
			val, done := a.tweenX.Update(dt)
			c.X = float64(val)
			a.doneX = done
		}
		if !a.doneY {
			val, done := a.tweenY.Update(dt)
			c.Y = float64(val)
			a.doneY = done
		}
		if !a.doneZoom {
			val, done := a.tweenZ.Update(dt)
			c.Zoom = float64(val)
			a.doneZoom = done
		}
		if a.doneX && a.doneY && a.doneZoom {
			c.anim = nil
		}
	}
	c.ClampToBounds()
}

// clampToBounds restricts camera position so the visible area stays within
// Bounds. If bounds are smaller than the visible area, the camera centers.
func (c *Camera) clampToBounds() {
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	if minX > maxX {
		c.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	return (wx-c.X)*c.Zoom + cx, (wy-c.Y)*c.Zoom + cy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	return (sx-cx)/c.Zoom + c.X, (sy-cy)/c.Zoom + c.Y
}

// VisibleBounds returns the world-space rectangle the camera can see.
func (c *Camera) VisibleBounds() Rect {
	x0, y0 := c.ScreenToWorld(c.Viewport.X, c.Viewport.Y)
	x1, y1 := c.ScreenToWorld(c.Viewport.X+c.Viewport.Width, c.Viewport.Y+c.Viewport.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}
