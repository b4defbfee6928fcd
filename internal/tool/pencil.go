package tool

import "github.com/dshills/painterm/internal/canvas"

// Pencil is the freehand tool. It commits as it goes: every movement chunk
// is rasterized immediately and handed back for incremental application, and
// the history layer merges the chunks into one undo unit at end-of-stroke.
// With erase set it paints blank cells instead of the brush cell.
type Pencil struct {
	kind  Kind
	erase bool

	active bool
	last   canvas.Point
}

// NewPencil creates the freehand pencil tool.
func NewPencil() *Pencil {
	return &Pencil{kind: KindPencil}
}

// NewEraser creates the eraser: a pencil that paints blank cells.
func NewEraser() *Pencil {
	return &Pencil{kind: KindEraser, erase: true}
}

func (t *Pencil) Kind() Kind    { return t.kind }
func (t *Pencil) Instant() bool { return false }

func (t *Pencil) cell(br *Brush) canvas.Cell {
	if t.erase {
		return canvas.Blank()
	}
	return br.Cell()
}

// Begin paints the starting point.
func (t *Pencil) Begin(cv *canvas.Canvas, br *Brush, p canvas.Point) ([]canvas.Edit, error) {
	t.active = true
	t.last = p
	return cv.DrawLine(p, p, t.cell(br))
}

// Continue paints the segment from the previous position to p.
func (t *Pencil) Continue(cv *canvas.Canvas, br *Brush, p canvas.Point) ([]canvas.Edit, error) {
	if !t.active {
		return nil, ErrInvalidToolTransition
	}
	if p.Equals(t.last) {
		return nil, nil
	}
	edits, err := cv.DrawLine(t.last, p, t.cell(br))
	if err != nil {
		return nil, err
	}
	t.last = p
	return edits, nil
}

// End paints any final segment and closes the stroke.
func (t *Pencil) End(cv *canvas.Canvas, br *Brush, p canvas.Point) ([]canvas.Edit, error) {
	if !t.active {
		return nil, ErrInvalidToolTransition
	}
	edits, err := t.Continue(cv, br, p)
	t.Reset()
	return edits, err
}

// Preview returns nil: freehand strokes are already on the canvas.
func (t *Pencil) Preview(*canvas.Canvas, *Brush) ([]canvas.Edit, error) {
	return nil, nil
}

// Reset discards the stroke position.
func (t *Pencil) Reset() {
	t.active = false
	t.last = canvas.Point{}
}
