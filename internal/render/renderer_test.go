package render

import (
	"testing"

	"github.com/dshills/painterm/internal/canvas"
)

func testCanvas(t *testing.T, w, h int) *canvas.Canvas {
	t.Helper()
	cv, err := canvas.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return cv
}

func TestFirstRenderPaintsEveryCell(t *testing.T) {
	cv := testCanvas(t, 4, 3)
	r := New()

	out := r.Render(cv)
	if len(out) != 4*3 {
		t.Fatalf("got %d instructions, want %d", len(out), 4*3)
	}
}

func TestIdenticalFrameProducesNothing(t *testing.T) {
	cv := testCanvas(t, 5, 5)
	r := New()

	r.Render(cv)
	out := r.Render(cv)
	if len(out) != 0 {
		t.Errorf("unchanged frame produced %d instructions, want 0", len(out))
	}
}

func TestDiffEmitsOnlyChangedCells(t *testing.T) {
	cv := testCanvas(t, 5, 5)
	r := New()
	r.Render(cv)

	mark := canvas.NewCell('#', canvas.ColorWhite, canvas.ColorDefault)
	if err := cv.Set(canvas.Pt(1, 2), mark); err != nil {
		t.Fatal(err)
	}
	if err := cv.Set(canvas.Pt(3, 4), mark); err != nil {
		t.Fatal(err)
	}

	out := r.Render(cv)
	if len(out) != 2 {
		t.Fatalf("got %d instructions, want 2", len(out))
	}
	if !out[0].Pos.Equals(canvas.Pt(1, 2)) || !out[1].Pos.Equals(canvas.Pt(3, 4)) {
		t.Errorf("positions = %s, %s", out[0].Pos, out[1].Pos)
	}
	if out[0].Cell.Rune != '#' {
		t.Errorf("instruction cell rune = %q, want '#'", out[0].Cell.Rune)
	}
}

func TestInstructionsAreRowMajor(t *testing.T) {
	cv := testCanvas(t, 6, 6)
	r := New()
	r.Render(cv)

	mark := canvas.NewCell('x', canvas.ColorWhite, canvas.ColorDefault)
	// Scatter changes in reverse order of emission.
	for _, p := range []canvas.Point{canvas.Pt(4, 1), canvas.Pt(2, 5), canvas.Pt(2, 0), canvas.Pt(0, 3)} {
		if err := cv.Set(p, mark); err != nil {
			t.Fatal(err)
		}
	}

	out := r.Render(cv)
	if len(out) != 4 {
		t.Fatalf("got %d instructions, want 4", len(out))
	}
	for i := 1; i < len(out); i++ {
		prev, cur := out[i-1].Pos, out[i].Pos
		if cur.Row < prev.Row || (cur.Row == prev.Row && cur.Col <= prev.Col) {
			t.Errorf("instruction %d at %s out of row-major order after %s", i, cur, prev)
		}
	}
}

func TestRevertedChangeStillEmits(t *testing.T) {
	// Render sees snapshots, not edits: change a cell, render, change it
	// back, render. The second diff must repaint the cell.
	cv := testCanvas(t, 3, 3)
	r := New()
	r.Render(cv)

	mark := canvas.NewCell('#', canvas.ColorWhite, canvas.ColorDefault)
	if err := cv.Set(canvas.Pt(1, 1), mark); err != nil {
		t.Fatal(err)
	}
	r.Render(cv)

	if err := cv.Set(canvas.Pt(1, 1), canvas.Blank()); err != nil {
		t.Fatal(err)
	}
	out := r.Render(cv)
	if len(out) != 1 {
		t.Fatalf("got %d instructions, want 1", len(out))
	}
	if !out[0].Cell.IsBlank() {
		t.Error("repaint cell is not blank")
	}
}

func TestInvalidateForcesFullPaint(t *testing.T) {
	cv := testCanvas(t, 4, 4)
	r := New()
	r.Render(cv)

	r.Invalidate()
	out := r.Render(cv)
	if len(out) != 4*4 {
		t.Fatalf("got %d instructions after invalidate, want %d", len(out), 4*4)
	}
}

func TestSizeChangeForcesFullPaint(t *testing.T) {
	r := New()
	r.Render(testCanvas(t, 4, 4))

	wide := testCanvas(t, 6, 4)
	out := r.Render(wide)
	if len(out) != 6*4 {
		t.Fatalf("got %d instructions after resize, want %d", len(out), 6*4)
	}
}

func TestWideGlyphSkipsContinuationColumn(t *testing.T) {
	cv := testCanvas(t, 4, 2)
	wide := canvas.NewCell('漢', canvas.ColorWhite, canvas.ColorDefault)
	if err := cv.Set(canvas.Pt(0, 0), wide); err != nil {
		t.Fatal(err)
	}

	r := New()
	out := r.Render(cv)

	// Full paint, minus the continuation column of the wide glyph.
	if len(out) != 4*2-1 {
		t.Fatalf("got %d instructions, want %d", len(out), 4*2-1)
	}
	for _, in := range out {
		if in.Pos.Equals(canvas.Pt(0, 1)) {
			t.Fatal("continuation column was emitted")
		}
	}
	if !out[0].Pos.Equals(canvas.Pt(0, 0)) || out[0].Cell.Rune != '漢' {
		t.Errorf("first instruction = %+v, want the wide glyph at (0,0)", out[0])
	}
	if !out[1].Pos.Equals(canvas.Pt(0, 2)) {
		t.Errorf("second instruction at %s, want (0,2)", out[1].Pos)
	}
}

func TestWideGlyphDiffSkipsContinuation(t *testing.T) {
	cv := testCanvas(t, 5, 1)
	r := New()
	r.Render(cv)

	wide := canvas.NewCell('漢', canvas.ColorWhite, canvas.ColorDefault)
	if err := cv.Set(canvas.Pt(0, 2), wide); err != nil {
		t.Fatal(err)
	}

	out := r.Render(cv)
	if len(out) != 1 {
		t.Fatalf("got %d instructions, want 1", len(out))
	}
	if !out[0].Pos.Equals(canvas.Pt(0, 2)) {
		t.Errorf("instruction at %s, want (0,2)", out[0].Pos)
	}
}

func TestFrameBufferIsIndependentCopy(t *testing.T) {
	cv := testCanvas(t, 3, 3)
	r := New()
	r.Render(cv)

	// Mutating the caller's canvas must not silently update the baseline.
	mark := canvas.NewCell('#', canvas.ColorWhite, canvas.ColorDefault)
	if err := cv.Set(canvas.Pt(0, 0), mark); err != nil {
		t.Fatal(err)
	}
	out := r.Render(cv)
	if len(out) != 1 {
		t.Fatalf("got %d instructions, want 1", len(out))
	}
}
