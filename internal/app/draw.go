package app

import (
	"fmt"

	"github.com/dshills/painterm/internal/canvas"
)

// previewDim is how far preview foregrounds are pulled toward gray so an
// in-progress shape reads as tentative.
const previewDim = 0.35

// draw composes the canvas, the stroke preview, and the status line into
// one screen snapshot, diffs it through the renderer, and flushes the
// changed cells to the backend.
func (a *Application) draw() {
	w, h := a.canvas.Size()
	screen, err := canvas.New(w, h+1)
	if err != nil {
		return
	}

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			p := canvas.Pt(row, col)
			cell, err := a.canvas.Get(p)
			if err != nil {
				continue
			}
			_ = screen.Set(p, cell)
		}
	}

	for _, e := range a.machine.Preview() {
		cell := e.New
		cell.Fg = cell.Fg.Blend(canvas.ColorGray, previewDim)
		_ = screen.Set(e.At, cell)
	}

	a.drawStatus(screen, h)

	for _, in := range a.renderer.Render(screen) {
		a.backend.SetCell(in.Pos.Col, in.Pos.Row, in.Cell)
	}
	a.backend.Show()
}

// drawStatus renders the status line onto the given screen row.
func (a *Application) drawStatus(screen *canvas.Canvas, row int) {
	mode := "outline"
	if a.brush.Fill {
		mode = "filled"
	}
	text := fmt.Sprintf(" %s | %s | %c %s | %s ",
		a.machine.Active(), mode, a.brush.Glyph, a.brush.Fg, a.history)

	// Advance by display width: a double-width brush glyph occupies its
	// continuation column, which stays unset so the renderer skips it.
	fg := canvas.ColorBlack
	bg := canvas.ColorGray
	w := screen.Width()
	col := 0
	for _, r := range text {
		cell := canvas.NewCell(r, fg, bg)
		width := cell.Width()
		if width < 1 {
			width = 1
		}
		if col+width > w {
			break
		}
		_ = screen.Set(canvas.Pt(row, col), cell)
		col += width
	}
	for ; col < w; col++ {
		_ = screen.Set(canvas.Pt(row, col), canvas.NewCell(' ', fg, bg))
	}
}
