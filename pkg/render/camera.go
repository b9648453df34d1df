// Package render draws placement results with gio: symbol outlines,
// designator text and the debug overlay rectangles. It carries no
// layout logic; everything it draws comes from a layout.Result.
package render

import (
	"github.com/OpenTraceLab/schlayout/pkg/geometry"
)

// Camera represents a viewport onto the layout canvas
type Camera struct {
	// Center position in world coordinates (mm)
	CenterX float64
	CenterY float64

	// Zoom level (pixels per mm)
	Zoom float64

	// Screen dimensions (pixels)
	ScreenWidth  int
	ScreenHeight int
}

// NewCamera creates a camera with default settings
func NewCamera(screenWidth, screenHeight int) *Camera {
	return &Camera{
		Zoom:         10.0, // 10 pixels per mm is a reasonable default
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// WorldToScreen converts world coordinates (mm) to screen coordinates
// (pixels). World Y increases downward, matching screen space, so no
// axis flip is applied.
func (c *Camera) WorldToScreen(pos geometry.Position) (float64, float64) {
	x := (pos.X - c.CenterX) * c.Zoom
	y := (pos.Y - c.CenterY) * c.Zoom

	x += float64(c.ScreenWidth) / 2.0
	y += float64(c.ScreenHeight) / 2.0

	return x, y
}

// ScreenToWorld converts screen coordinates (pixels) to world coordinates (mm)
func (c *Camera) ScreenToWorld(screenX, screenY float64) geometry.Position {
	x := screenX - float64(c.ScreenWidth)/2.0
	y := screenY - float64(c.ScreenHeight)/2.0

	x /= c.Zoom
	y /= c.Zoom

	return geometry.Position{X: x + c.CenterX, Y: y + c.CenterY}
}

// Pan moves the camera by screen pixel offsets
func (c *Camera) Pan(deltaX, deltaY float64) {
	c.CenterX -= deltaX / c.Zoom
	c.CenterY -= deltaY / c.Zoom
}

// ZoomAt zooms in/out at a specific screen position.
// factor > 1 zooms in, factor < 1 zooms out.
func (c *Camera) ZoomAt(screenX, screenY, factor float64) {
	worldPos := c.ScreenToWorld(screenX, screenY)

	c.Zoom *= factor

	if c.Zoom < 0.1 {
		c.Zoom = 0.1
	}
	if c.Zoom > 1000.0 {
		c.Zoom = 1000.0
	}

	// Adjust center to keep the point under cursor stationary
	newWorldPos := c.ScreenToWorld(screenX, screenY)
	c.CenterX += worldPos.X - newWorldPos.X
	c.CenterY += worldPos.Y - newWorldPos.Y
}

// Fit adjusts the camera to fit the entire content in view
func (c *Camera) Fit(bbox geometry.BoundingBox) {
	width := bbox.Max.X - bbox.Min.X
	height := bbox.Max.Y - bbox.Min.Y

	if width <= 0 || height <= 0 {
		return
	}

	c.CenterX = (bbox.Min.X + bbox.Max.X) / 2.0
	c.CenterY = (bbox.Min.Y + bbox.Max.Y) / 2.0

	// Fit with some padding (90% of screen)
	zoomX := float64(c.ScreenWidth) * 0.9 / width
	zoomY := float64(c.ScreenHeight) * 0.9 / height

	if zoomX < zoomY {
		c.Zoom = zoomX
	} else {
		c.Zoom = zoomY
	}
}

// UpdateScreenSize updates the camera when the window is resized
func (c *Camera) UpdateScreenSize(width, height int) {
	c.ScreenWidth = width
	c.ScreenHeight = height
}
