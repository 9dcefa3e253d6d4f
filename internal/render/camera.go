package render

import (
	"math"

	"sweepbox/internal/geom"
)

// Camera is a window onto the world measured in map cells. Each cell is
// two terminal columns wide because emoji occupy two columns.
type Camera struct {
	View  geom.Rect[int] // visible cells; X, Y is the top-left cell
	Scale float64        // world units per cell
}

// NewCamera creates a camera viewW columns by viewH rows at the origin.
func NewCamera(viewW, viewH int, scale float64) *Camera {
	c := &Camera{Scale: scale}
	c.Resize(viewW, viewH)
	return c
}

// Resize changes the viewport to viewW columns by viewH rows, keeping the
// top-left cell.
func (c *Camera) Resize(viewW, viewH int) {
	c.View.W = max(0, viewW/2)
	c.View.H = max(0, viewH)
}

// Center repositions the camera so that world point (wx, wy) is in the middle.
func (c *Camera) Center(wx, wy float64) {
	cx, cy := c.cell(wx, wy)
	c.View.X = cx - c.View.W/2
	c.View.Y = cy - c.View.H/2
}

// PanTo moves the camera the least distance that keeps box inside the
// focus region, the middle third of the view on each axis. Nothing moves
// while the box stays inside it.
func (c *Camera) PanTo(box geom.Box) {
	focusW, focusH := c.View.W/3, c.View.H/3
	offX, offY := (c.View.W-focusW)/2, (c.View.H-focusH)/2

	left, right := float64(offX), float64(c.View.W-offX)
	top, bottom := float64(offY), float64(c.View.H-offY)

	boxLeft := box.X/c.Scale - float64(c.View.X)
	boxRight := boxLeft + box.W/c.Scale
	boxTop := box.Y/c.Scale - float64(c.View.Y)
	boxBottom := boxTop + box.H/c.Scale

	if boxLeft < left {
		c.View.X -= int(left - boxLeft)
	}
	if boxRight > right {
		c.View.X += int(boxRight - right)
	}
	if boxTop < top {
		c.View.Y -= int(top - boxTop)
	}
	if boxBottom > bottom {
		c.View.Y += int(boxBottom - bottom)
	}
}

// CellToScreen converts map cell (x, y) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) CellToScreen(x, y int) (sx, sy int, visible bool) {
	sx = (x - c.View.X) * 2
	sy = y - c.View.Y
	visible = x >= c.View.X && x < c.View.Right() && y >= c.View.Y && y < c.View.Bottom()
	return
}

// WorldToScreen converts world point (wx, wy) to the screen position of the
// cell containing it.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy int, visible bool) {
	return c.CellToScreen(c.cell(wx, wy))
}

func (c *Camera) cell(wx, wy float64) (int, int) {
	return int(math.Floor(wx / c.Scale)), int(math.Floor(wy / c.Scale))
}
