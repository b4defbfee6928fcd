// Package render converts canvas snapshots into a minimal ordered stream of
// draw instructions. The renderer retains its own copy of the last emitted
// state (the frame buffer) purely to compute deltas; it never consults
// history or tool state, so it can be tested against bare snapshots.
package render

import "github.com/dshills/painterm/internal/canvas"

// Instruction is one abstract draw operation: move to the cell position,
// set its colors, write its glyph. The output sink owns turning this into
// actual escape sequences.
type Instruction struct {
	Pos  canvas.Point
	Cell canvas.Cell
}

// Renderer computes cell-level diffs between successive canvas snapshots.
type Renderer struct {
	// frame is the last fully-emitted snapshot. Nil until the first render,
	// which therefore paints every cell.
	frame *canvas.Canvas
}

// New creates a renderer with an empty frame buffer.
func New() *Renderer {
	return &Renderer{}
}

// Render diffs current against the retained frame buffer and returns the
// draw instructions for every changed cell, in row-major order so the sink
// can coalesce cursor movement along rows. Identical frames produce an
// empty sequence. The column after a double-width glyph is its continuation
// and is never emitted; writing it would truncate the glyph on the terminal.
// The frame buffer is replaced with a copy of current, so later mutation of
// current cannot corrupt the diff baseline.
func (r *Renderer) Render(current *canvas.Canvas) []Instruction {
	width, height := current.Size()

	full := r.frame == nil
	if !full {
		fw, fh := r.frame.Size()
		full = fw != width || fh != height
	}

	var out []Instruction
	for row := 0; row < height; row++ {
		for col := 0; col < width; {
			p := canvas.Pt(row, col)
			cell, err := current.Get(p)
			if err != nil {
				col++
				continue
			}
			step := cell.Width()
			if step < 1 {
				step = 1
			}

			changed := full
			if !changed {
				prev, err := r.frame.Get(p)
				changed = err != nil || !prev.Equals(cell)
			}
			if changed {
				out = append(out, Instruction{Pos: p, Cell: cell})
			}
			col += step
		}
	}

	r.frame = current.Clone()
	return out
}

// Invalidate drops the frame buffer so the next render is a full paint.
// Needed after anything outside the renderer touches the display.
func (r *Renderer) Invalidate() {
	r.frame = nil
}
