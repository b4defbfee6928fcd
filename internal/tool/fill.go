package tool

import "github.com/dshills/painterm/internal/canvas"

// Fill is the flood-fill tool. It is instant: begin and end fire on the
// same pointer press, with no stroke phase.
type Fill struct{}

// NewFill creates the flood-fill tool.
func NewFill() *Fill { return &Fill{} }

func (t *Fill) Kind() Kind    { return KindFill }
func (t *Fill) Instant() bool { return true }

// Begin floods the 4-connected region around p with the brush cell.
// Returns an empty edit list when the region already matches.
func (t *Fill) Begin(cv *canvas.Canvas, br *Brush, p canvas.Point) ([]canvas.Edit, error) {
	return cv.FloodFill(p, br.Cell())
}

func (t *Fill) Continue(*canvas.Canvas, *Brush, canvas.Point) ([]canvas.Edit, error) {
	return nil, ErrInvalidToolTransition
}

func (t *Fill) End(*canvas.Canvas, *Brush, canvas.Point) ([]canvas.Edit, error) {
	return nil, ErrInvalidToolTransition
}

func (t *Fill) Preview(*canvas.Canvas, *Brush) ([]canvas.Edit, error) {
	return nil, nil
}

func (t *Fill) Reset() {}

// Picker is the color-picker tool, also instant. It samples the cell under
// the pointer into the brush and produces no canvas edits.
type Picker struct{}

// NewPicker creates the color-picker tool.
func NewPicker() *Picker { return &Picker{} }

func (t *Picker) Kind() Kind    { return KindPicker }
func (t *Picker) Instant() bool { return true }

// Begin copies the glyph and colors at p into the brush.
func (t *Picker) Begin(cv *canvas.Canvas, br *Brush, p canvas.Point) ([]canvas.Edit, error) {
	cell, err := cv.Get(p)
	if err != nil {
		return nil, err
	}
	br.Glyph = cell.Rune
	br.Fg = cell.Fg
	br.Bg = cell.Bg
	return nil, nil
}

func (t *Picker) Continue(*canvas.Canvas, *Brush, canvas.Point) ([]canvas.Edit, error) {
	return nil, ErrInvalidToolTransition
}

func (t *Picker) End(*canvas.Canvas, *Brush, canvas.Point) ([]canvas.Edit, error) {
	return nil, ErrInvalidToolTransition
}

func (t *Picker) Preview(*canvas.Canvas, *Brush) ([]canvas.Edit, error) {
	return nil, nil
}

func (t *Picker) Reset() {}
