package tool

import "github.com/dshills/painterm/internal/canvas"

// rasterFunc rasterizes a shape between the stroke anchor and endpoint.
type rasterFunc func(cv *canvas.Canvas, anchor, end canvas.Point, cell canvas.Cell, filled bool) ([]canvas.Edit, error)

// Shape covers the two-point tools: line, rectangle, ellipse. Between begin
// and end the tool holds only the anchor and the moving endpoint; nothing
// touches the canvas until End rasterizes the final shape, so cancel always
// leaves zero edits.
type Shape struct {
	kind   Kind
	raster rasterFunc

	active bool
	anchor canvas.Point
	end    canvas.Point
}

// NewLine creates the straight-line tool.
func NewLine() *Shape {
	return &Shape{
		kind: KindLine,
		raster: func(cv *canvas.Canvas, a, e canvas.Point, cell canvas.Cell, _ bool) ([]canvas.Edit, error) {
			return cv.DrawLine(a, e, cell)
		},
	}
}

// NewRect creates the rectangle tool.
func NewRect() *Shape {
	return &Shape{
		kind: KindRect,
		raster: func(cv *canvas.Canvas, a, e canvas.Point, cell canvas.Cell, filled bool) ([]canvas.Edit, error) {
			return cv.DrawRect(a, e, cell, filled)
		},
	}
}

// NewEllipse creates the ellipse tool.
func NewEllipse() *Shape {
	return &Shape{
		kind: KindEllipse,
		raster: func(cv *canvas.Canvas, a, e canvas.Point, cell canvas.Cell, filled bool) ([]canvas.Edit, error) {
			return cv.DrawEllipse(a, e, cell, filled)
		},
	}
}

func (t *Shape) Kind() Kind    { return t.kind }
func (t *Shape) Instant() bool { return false }

// Begin captures the anchor.
func (t *Shape) Begin(_ *canvas.Canvas, _ *Brush, p canvas.Point) ([]canvas.Edit, error) {
	t.active = true
	t.anchor = p
	t.end = p
	return nil, nil
}

// Continue moves the preview endpoint. The canvas is not mutated.
func (t *Shape) Continue(_ *canvas.Canvas, _ *Brush, p canvas.Point) ([]canvas.Edit, error) {
	if !t.active {
		return nil, ErrInvalidToolTransition
	}
	t.end = p
	return nil, nil
}

// End rasterizes the final shape between the anchor and p.
func (t *Shape) End(cv *canvas.Canvas, br *Brush, p canvas.Point) ([]canvas.Edit, error) {
	if !t.active {
		return nil, ErrInvalidToolTransition
	}
	anchor := t.anchor
	t.Reset()
	return t.raster(cv, anchor, p, br.Cell(), br.Fill)
}

// Preview rasterizes the in-progress shape between the anchor and the
// current endpoint.
func (t *Shape) Preview(cv *canvas.Canvas, br *Brush) ([]canvas.Edit, error) {
	if !t.active {
		return nil, nil
	}
	return t.raster(cv, t.anchor, t.end, br.Cell(), br.Fill)
}

// Reset discards the anchor and endpoint.
func (t *Shape) Reset() {
	t.active = false
	t.anchor = canvas.Point{}
	t.end = canvas.Point{}
}
