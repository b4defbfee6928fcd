package tool

import (
	"errors"
	"testing"

	"github.com/dshills/painterm/internal/canvas"
	"github.com/dshills/painterm/internal/history"
)

func newFixture(t *testing.T) (*Machine, *canvas.Canvas, *history.History) {
	t.Helper()
	cv, err := canvas.New(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	hist := history.New(cv, 0)
	return NewMachine(cv, hist, DefaultBrush()), cv, hist
}

func TestRectStrokeIsOneCommand(t *testing.T) {
	m, cv, hist := newFixture(t)
	if err := m.Select(KindRect); err != nil {
		t.Fatal(err)
	}

	if err := m.PointerDown(canvas.Pt(1, 1)); err != nil {
		t.Fatal(err)
	}
	if m.State() != StateStrokeActive {
		t.Fatalf("state = %s, want stroke-active", m.State())
	}
	// Dragging moves the preview endpoint without touching the canvas.
	if err := m.PointerMove(canvas.Pt(2, 3)); err != nil {
		t.Fatal(err)
	}
	blank, _ := canvas.New(10, 10)
	if !cv.Equal(blank) {
		t.Error("canvas mutated before pointer up")
	}
	if err := m.PointerUp(canvas.Pt(4, 4)); err != nil {
		t.Fatal(err)
	}

	if m.State() != StateIdle {
		t.Fatalf("state = %s, want idle", m.State())
	}
	if hist.UndoCount() != 1 {
		t.Fatalf("undo count = %d, want 1", hist.UndoCount())
	}

	// Outline of the 4x4 box.
	painted := 0
	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			c, _ := cv.Get(canvas.Pt(row, col))
			if !c.IsBlank() {
				painted++
			}
		}
	}
	if painted != 12 {
		t.Errorf("painted %d cells, want 12", painted)
	}

	if !hist.Undo() {
		t.Fatal("Undo returned false")
	}
	if !cv.Equal(blank) {
		t.Error("single undo did not erase the whole rectangle")
	}
}

func TestCancelShapeLeavesNoTrace(t *testing.T) {
	m, cv, hist := newFixture(t)
	if err := m.Select(KindRect); err != nil {
		t.Fatal(err)
	}
	blank := cv.Clone()

	if err := m.PointerDown(canvas.Pt(2, 2)); err != nil {
		t.Fatal(err)
	}
	if err := m.PointerMove(canvas.Pt(5, 5)); err != nil {
		t.Fatal(err)
	}
	m.Cancel()

	if m.State() != StateIdle {
		t.Fatalf("state = %s, want idle", m.State())
	}
	if !cv.Equal(blank) {
		t.Error("cancelled shape left marks on the canvas")
	}
	if hist.UndoCount() != 0 {
		t.Errorf("undo count = %d, want 0", hist.UndoCount())
	}
	if m.Preview() != nil {
		t.Error("preview still live after cancel")
	}
}

func TestCancelWhileIdleIsNoOp(t *testing.T) {
	m, _, hist := newFixture(t)
	m.Cancel()
	if m.State() != StateIdle || hist.UndoCount() != 0 {
		t.Error("idle cancel changed state")
	}
}

func TestPencilStrokeIsOneUndoUnit(t *testing.T) {
	m, cv, hist := newFixture(t)
	blank := cv.Clone()

	if err := m.PointerDown(canvas.Pt(0, 0)); err != nil {
		t.Fatal(err)
	}
	// Freehand chunks land on the canvas as the pointer moves.
	if err := m.PointerMove(canvas.Pt(0, 3)); err != nil {
		t.Fatal(err)
	}
	c, _ := cv.Get(canvas.Pt(0, 2))
	if c.IsBlank() {
		t.Error("freehand chunk not committed mid-stroke")
	}
	if err := m.PointerMove(canvas.Pt(3, 3)); err != nil {
		t.Fatal(err)
	}
	if err := m.PointerUp(canvas.Pt(3, 3)); err != nil {
		t.Fatal(err)
	}

	if hist.UndoCount() != 1 {
		t.Fatalf("undo count = %d, want 1", hist.UndoCount())
	}
	if !hist.Undo() {
		t.Fatal("Undo returned false")
	}
	if !cv.Equal(blank) {
		t.Error("single undo did not erase the whole freehand stroke")
	}
}

func TestCancelPencilKeepsCommittedChunks(t *testing.T) {
	m, cv, hist := newFixture(t)
	blank := cv.Clone()

	if err := m.PointerDown(canvas.Pt(0, 0)); err != nil {
		t.Fatal(err)
	}
	if err := m.PointerMove(canvas.Pt(0, 4)); err != nil {
		t.Fatal(err)
	}
	m.Cancel()

	if cv.Equal(blank) {
		t.Fatal("committed freehand chunks were lost on cancel")
	}
	// The partial stroke is still one undo unit.
	if hist.UndoCount() != 1 {
		t.Fatalf("undo count = %d, want 1", hist.UndoCount())
	}
	hist.Undo()
	if !cv.Equal(blank) {
		t.Error("undo did not erase the partial stroke")
	}
}

func TestEraserPaintsBlank(t *testing.T) {
	m, cv, hist := newFixture(t)

	if err := m.PointerDown(canvas.Pt(0, 0)); err != nil {
		t.Fatal(err)
	}
	if err := m.PointerUp(canvas.Pt(0, 4)); err != nil {
		t.Fatal(err)
	}
	if hist.UndoCount() != 1 {
		t.Fatal("pencil stroke missing")
	}

	if err := m.Select(KindEraser); err != nil {
		t.Fatal(err)
	}
	if err := m.PointerDown(canvas.Pt(0, 0)); err != nil {
		t.Fatal(err)
	}
	if err := m.PointerUp(canvas.Pt(0, 4)); err != nil {
		t.Fatal(err)
	}

	c, _ := cv.Get(canvas.Pt(0, 2))
	if !c.IsBlank() {
		t.Error("eraser did not blank the cell")
	}
	if hist.UndoCount() != 2 {
		t.Errorf("undo count = %d, want 2", hist.UndoCount())
	}
}

func TestInstantFill(t *testing.T) {
	m, cv, hist := newFixture(t)
	if err := m.Select(KindFill); err != nil {
		t.Fatal(err)
	}

	if err := m.PointerDown(canvas.Pt(4, 4)); err != nil {
		t.Fatal(err)
	}
	// Instant tools complete on press and never enter a stroke.
	if m.State() != StateIdle {
		t.Fatalf("state = %s, want idle", m.State())
	}
	if hist.UndoCount() != 1 {
		t.Fatalf("undo count = %d, want 1", hist.UndoCount())
	}
	c, _ := cv.Get(canvas.Pt(0, 0))
	if c.IsBlank() {
		t.Error("fill on blank canvas did not reach the corner")
	}
}

func TestInstantFillNoOpPushesNothing(t *testing.T) {
	m, cv, hist := newFixture(t)

	// Paint a cell with the brush, then fill its region with the same cell.
	_ = cv.Set(canvas.Pt(4, 4), m.Brush().Cell())
	if err := m.Select(KindFill); err != nil {
		t.Fatal(err)
	}
	if err := m.PointerDown(canvas.Pt(4, 4)); err != nil {
		t.Fatal(err)
	}
	if hist.UndoCount() != 0 {
		t.Errorf("no-op fill pushed a command: undo count = %d", hist.UndoCount())
	}
	if m.State() != StateIdle {
		t.Errorf("state = %s, want idle", m.State())
	}
}

func TestPickerSamplesBrush(t *testing.T) {
	m, cv, hist := newFixture(t)

	sample := canvas.NewCell('@', canvas.ColorRed, canvas.ColorBlue)
	_ = cv.Set(canvas.Pt(3, 3), sample)

	if err := m.Select(KindPicker); err != nil {
		t.Fatal(err)
	}
	if err := m.PointerDown(canvas.Pt(3, 3)); err != nil {
		t.Fatal(err)
	}

	br := m.Brush()
	if br.Glyph != '@' || !br.Fg.Equals(canvas.ColorRed) || !br.Bg.Equals(canvas.ColorBlue) {
		t.Errorf("brush after pick = %+v", br)
	}
	if hist.UndoCount() != 0 {
		t.Error("picker pushed a command")
	}
	if m.State() != StateIdle {
		t.Errorf("state = %s, want idle", m.State())
	}
}

func TestSelectRejectedMidStroke(t *testing.T) {
	m, _, _ := newFixture(t)
	if err := m.PointerDown(canvas.Pt(0, 0)); err != nil {
		t.Fatal(err)
	}
	if err := m.Select(KindLine); !errors.Is(err, ErrInvalidToolTransition) {
		t.Errorf("error = %v, want ErrInvalidToolTransition", err)
	}
	if m.Active() != KindPencil {
		t.Error("active tool changed mid-stroke")
	}
}

func TestTransitionErrors(t *testing.T) {
	m, _, _ := newFixture(t)

	if err := m.PointerMove(canvas.Pt(0, 0)); !errors.Is(err, ErrInvalidToolTransition) {
		t.Errorf("move while idle: %v, want ErrInvalidToolTransition", err)
	}
	if err := m.PointerUp(canvas.Pt(0, 0)); !errors.Is(err, ErrInvalidToolTransition) {
		t.Errorf("up while idle: %v, want ErrInvalidToolTransition", err)
	}

	if err := m.PointerDown(canvas.Pt(0, 0)); err != nil {
		t.Fatal(err)
	}
	if err := m.PointerDown(canvas.Pt(1, 1)); !errors.Is(err, ErrInvalidToolTransition) {
		t.Errorf("down while active: %v, want ErrInvalidToolTransition", err)
	}
}

func TestPointerDownOutsideCanvasIgnored(t *testing.T) {
	m, _, hist := newFixture(t)
	if err := m.PointerDown(canvas.Pt(50, 50)); err != nil {
		t.Fatalf("out-of-bounds press returned error: %v", err)
	}
	if m.State() != StateIdle {
		t.Error("out-of-bounds press started a stroke")
	}
	if hist.UndoCount() != 0 {
		t.Error("out-of-bounds press pushed a command")
	}
}

func TestStrokeClampsOutOfBoundsDrag(t *testing.T) {
	m, cv, _ := newFixture(t)
	if err := m.Select(KindLine); err != nil {
		t.Fatal(err)
	}

	if err := m.PointerDown(canvas.Pt(5, 5)); err != nil {
		t.Fatal(err)
	}
	if err := m.PointerMove(canvas.Pt(5, 50)); err != nil {
		t.Fatalf("out-of-bounds drag returned error: %v", err)
	}
	if err := m.PointerUp(canvas.Pt(5, 50)); err != nil {
		t.Fatal(err)
	}

	// Endpoint clamped to the right edge.
	c, _ := cv.Get(canvas.Pt(5, 9))
	if c.IsBlank() {
		t.Error("clamped endpoint not painted")
	}
}

func TestPreviewTracksShapeDrag(t *testing.T) {
	m, _, _ := newFixture(t)
	if err := m.Select(KindEllipse); err != nil {
		t.Fatal(err)
	}

	if m.Preview() != nil {
		t.Error("preview while idle should be nil")
	}

	if err := m.PointerDown(canvas.Pt(0, 0)); err != nil {
		t.Fatal(err)
	}
	if err := m.PointerMove(canvas.Pt(4, 4)); err != nil {
		t.Fatal(err)
	}
	pv := m.Preview()
	if len(pv) == 0 {
		t.Fatal("no preview during shape drag")
	}
	for _, e := range pv {
		if e.At.Row < 0 || e.At.Row > 4 || e.At.Col < 0 || e.At.Col > 4 {
			t.Errorf("preview edit outside the drag box at %s", e.At)
		}
	}
	m.Cancel()
}

func TestParseKindRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Errorf("ParseKind(%q): %v", k, err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k, got, k)
		}
	}
	if _, err := ParseKind("chalk"); !errors.Is(err, ErrUnknownTool) {
		t.Errorf("unknown kind error = %v, want ErrUnknownTool", err)
	}
}
