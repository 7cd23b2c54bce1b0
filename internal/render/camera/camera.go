// Package camera maps between window pixels and world coordinates.
//
// The world origin sits at the window centre with y pointing up. The
// scale is picked so at least MinWidth x MinHeight world units are always
// visible, whatever the window's aspect ratio.
package camera

import "chosenoffset.com/lightcast/internal/core/shadows"

// Camera is an auto-min orthographic projection
type Camera struct {
	MinWidth  float64
	MinHeight float64

	viewW, viewH int
	scale        float64 // World units per pixel
}

// New creates a camera for a viewport of the given pixel size
func New(minWidth, minHeight float64, viewW, viewH int) *Camera {
	c := &Camera{MinWidth: minWidth, MinHeight: minHeight}
	c.Resize(viewW, viewH)
	return c
}

// Resize updates the viewport size and recomputes the scale
func (c *Camera) Resize(viewW, viewH int) {
	c.viewW, c.viewH = viewW, viewH
	if viewW <= 0 || viewH <= 0 {
		c.scale = 0
		return
	}
	c.scale = max(c.MinWidth/float64(viewW), c.MinHeight/float64(viewH))
}

// Viewport returns the viewport size in pixels
func (c *Camera) Viewport() (w, h int) {
	return c.viewW, c.viewH
}

// Scale returns the number of world units per pixel
func (c *Camera) Scale() float64 {
	return c.scale
}

// ScreenToWorld maps a pixel position to world space. It reports false
// when the position lies outside the viewport or the viewport is empty.
func (c *Camera) ScreenToWorld(x, y float64) (shadows.Point, bool) {
	if c.scale == 0 {
		return shadows.Point{}, false
	}
	if x < 0 || y < 0 || x >= float64(c.viewW) || y >= float64(c.viewH) {
		return shadows.Point{}, false
	}
	return shadows.Point{
		X: (x - float64(c.viewW)/2) * c.scale,
		Y: (float64(c.viewH)/2 - y) * c.scale,
	}, true
}

// WorldToScreen maps a world point to pixel coordinates
func (c *Camera) WorldToScreen(p shadows.Point) (x, y float32) {
	if c.scale == 0 {
		return 0, 0
	}
	x = float32(p.X/c.scale + float64(c.viewW)/2)
	y = float32(float64(c.viewH)/2 - p.Y/c.scale)
	return x, y
}

// WorldLength converts a length in world units to pixels
func (c *Camera) WorldLength(l float64) float32 {
	if c.scale == 0 {
		return 0
	}
	return float32(l / c.scale)
}
