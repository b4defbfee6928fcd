// Package canvas provides the paint surface: a bounded grid of glyph+color
// cells with bulk rasterization primitives. Rasterizers compute edit lists
// without mutating the grid so that the history layer can apply a whole
// shape as one reversible step.
package canvas

import (
	"errors"
	"fmt"
)

// Errors returned by canvas operations.
var (
	// ErrOutOfBounds indicates a coordinate outside the canvas extent.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrInvalidSize indicates non-positive canvas dimensions.
	ErrInvalidSize = errors.New("invalid canvas size")
)

// Point is a canvas coordinate, 0-indexed, row-major.
type Point struct {
	Row int
	Col int
}

// Pt creates a point.
func Pt(row, col int) Point {
	return Point{Row: row, Col: col}
}

// Equals returns true if two points are the same.
func (p Point) Equals(other Point) bool {
	return p.Row == other.Row && p.Col == other.Col
}

// String returns "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Edit records one cell change: the coordinate, the cell it held before,
// and the cell it holds after.
type Edit struct {
	At  Point
	Old Cell
	New Cell
}

// Canvas is a rectangular grid of cells with bounds [0,height) x [0,width).
// Every coordinate within bounds always has a defined cell; the default is
// Blank(). Out-of-bounds access is rejected, never clamped.
type Canvas struct {
	width  int
	height int
	cells  []Cell
}

// New creates a blank canvas with the given dimensions.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	c := &Canvas{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	blank := Blank()
	for i := range c.cells {
		c.cells[i] = blank
	}
	return c, nil
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Width returns the canvas width in columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in rows.
func (c *Canvas) Height() int { return c.height }

// Contains returns true if p is within the canvas bounds.
func (c *Canvas) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < c.height && p.Col >= 0 && p.Col < c.width
}

// Clamp returns p moved to the nearest in-bounds coordinate.
func (c *Canvas) Clamp(p Point) Point {
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Row >= c.height {
		p.Row = c.height - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if p.Col >= c.width {
		p.Col = c.width - 1
	}
	return p
}

// Get returns the cell at p.
func (c *Canvas) Get(p Point) (Cell, error) {
	if !c.Contains(p) {
		return Cell{}, fmt.Errorf("get %s: %w", p, ErrOutOfBounds)
	}
	return c.cells[p.Row*c.width+p.Col], nil
}

// Set overwrites the cell at p unconditionally.
func (c *Canvas) Set(p Point, cell Cell) error {
	if !c.Contains(p) {
		return fmt.Errorf("set %s: %w", p, ErrOutOfBounds)
	}
	c.cells[p.Row*c.width+p.Col] = cell
	return nil
}

// Fill overwrites every cell on the canvas.
func (c *Canvas) Fill(cell Cell) {
	for i := range c.cells {
		c.cells[i] = cell
	}
}

// Clear resets every cell to blank.
func (c *Canvas) Clear() {
	c.Fill(Blank())
}

// Clone returns a deep copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	dup := &Canvas{
		width:  c.width,
		height: c.height,
		cells:  make([]Cell, len(c.cells)),
	}
	copy(dup.cells, c.cells)
	return dup
}

// Equal returns true if two canvases have identical dimensions and cells.
func (c *Canvas) Equal(other *Canvas) bool {
	if other == nil || c.width != other.width || c.height != other.height {
		return false
	}
	for i := range c.cells {
		if !c.cells[i].Equals(other.cells[i]) {
			return false
		}
	}
	return true
}

// Apply sets the New cell of every edit, in order.
// Edits are expected to be in-bounds; the first out-of-bounds edit aborts.
func (c *Canvas) Apply(edits []Edit) error {
	for _, e := range edits {
		if err := c.Set(e.At, e.New); err != nil {
			return err
		}
	}
	return nil
}

// Revert restores the Old cell of every edit, in reverse order.
func (c *Canvas) Revert(edits []Edit) error {
	for i := len(edits) - 1; i >= 0; i-- {
		if err := c.Set(edits[i].At, edits[i].Old); err != nil {
			return err
		}
	}
	return nil
}
