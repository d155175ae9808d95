// Package viewport maps between the visible window and absolute grid cells.
package viewport

import "github.com/san-kum/golife/internal/life"

// Viewport is a window of a given size, offset into grid-space.
// Offsets always satisfy 0 <= offset <= gridSize - size on each axis, and are
// zero on any axis where the window is at least as large as the grid.
type Viewport struct {
	xOffset, yOffset int
	size             life.Size
}

// New returns a viewport of size centred inside a grid of gridSize.
func New(gridSize, size life.Size) *Viewport {
	return &Viewport{
		xOffset: life.SaturatingSub(gridSize.Width, size.Width) / 2,
		yOffset: life.SaturatingSub(gridSize.Height, size.Height) / 2,
		size:    size,
	}
}

// Offset returns the grid-space position of the window's top-left cell.
func (v *Viewport) Offset() life.Coordinates {
	return life.Coordinates{X: v.xOffset, Y: v.yOffset}
}

func (v *Viewport) Size() life.Size { return v.size }

// ViewToGrid adds the current offset to a view-space coordinate. Negative
// inputs are treated as zero.
func (v *Viewport) ViewToGrid(c life.Coordinates) life.Coordinates {
	return life.Coordinates{
		X: v.xOffset + max(c.X, 0),
		Y: v.yOffset + max(c.Y, 0),
	}
}

// GridToView is the inverse of ViewToGrid. It reports false when c is outside
// the visible window.
func (v *Viewport) GridToView(c life.Coordinates) (life.Coordinates, bool) {
	if !v.Contains(c) {
		return life.Coordinates{}, false
	}
	return life.Coordinates{X: c.X - v.xOffset, Y: c.Y - v.yOffset}, true
}

// Contains reports whether grid-space c is inside the visible window.
func (v *Viewport) Contains(c life.Coordinates) bool {
	return c.X >= v.xOffset && c.X < v.xOffset+v.size.Width &&
		c.Y >= v.yOffset && c.Y < v.yOffset+v.size.Height
}

func (v *Viewport) PanLeft(amount int, gridSize life.Size) {
	v.xOffset = life.Clamp(v.xOffset-amount, 0, maxOffset(gridSize.Width, v.size.Width))
}

func (v *Viewport) PanRight(amount int, gridSize life.Size) {
	v.xOffset = life.Clamp(v.xOffset+amount, 0, maxOffset(gridSize.Width, v.size.Width))
}

func (v *Viewport) PanUp(amount int, gridSize life.Size) {
	v.yOffset = life.Clamp(v.yOffset-amount, 0, maxOffset(gridSize.Height, v.size.Height))
}

func (v *Viewport) PanDown(amount int, gridSize life.Size) {
	v.yOffset = life.Clamp(v.yOffset+amount, 0, maxOffset(gridSize.Height, v.size.Height))
}

// UpdateSize replaces the window size, e.g. after a terminal resize, and
// pulls the offsets back inside the grid.
func (v *Viewport) UpdateSize(size, gridSize life.Size) {
	v.size = size
	v.xOffset = life.Clamp(v.xOffset, 0, maxOffset(gridSize.Width, size.Width))
	v.yOffset = life.Clamp(v.yOffset, 0, maxOffset(gridSize.Height, size.Height))
}

func maxOffset(grid, view int) int {
	return life.SaturatingSub(grid, view)
}
