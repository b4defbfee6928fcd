package tool

import (
	"fmt"

	"github.com/dshills/painterm/internal/canvas"
	"github.com/dshills/painterm/internal/history"
)

// State is the machine's interaction state.
type State int

const (
	// StateIdle means no stroke is in progress.
	StateIdle State = iota
	// StateStrokeActive means a stroke is in progress and the active tool
	// holds transient anchor/path data.
	StateStrokeActive
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStrokeActive:
		return "stroke-active"
	default:
		return "unknown"
	}
}

// Machine drives the tool state machine: it translates pointer transitions
// into tool phases and hands the resulting edits to history. Every stroke,
// freehand or shape, lands on the undo stack as a single command.
type Machine struct {
	canvas  *canvas.Canvas
	history *history.History
	brush   *Brush

	tools  map[Kind]Tool
	active Kind
	state  State
}

// NewMachine creates a machine with the full tool set, starting on the
// pencil in the idle state.
func NewMachine(cv *canvas.Canvas, hist *history.History, br *Brush) *Machine {
	tools := map[Kind]Tool{
		KindPencil:  NewPencil(),
		KindEraser:  NewEraser(),
		KindLine:    NewLine(),
		KindRect:    NewRect(),
		KindEllipse: NewEllipse(),
		KindFill:    NewFill(),
		KindPicker:  NewPicker(),
	}
	return &Machine{
		canvas:  cv,
		history: hist,
		brush:   br,
		tools:   tools,
		active:  KindPencil,
	}
}

// State returns the current interaction state.
func (m *Machine) State() State { return m.state }

// Active returns the selected tool kind.
func (m *Machine) Active() Kind { return m.active }

// Brush returns the shared paint state.
func (m *Machine) Brush() *Brush { return m.brush }

// Select switches the active tool. Switching mid-stroke is rejected; the
// current stroke must finish or cancel first.
func (m *Machine) Select(k Kind) error {
	if m.state != StateIdle {
		return fmt.Errorf("select %s while %s: %w", k, m.state, ErrInvalidToolTransition)
	}
	t, ok := m.tools[k]
	if !ok {
		return fmt.Errorf("select: %w: %d", ErrUnknownTool, k)
	}
	t.Reset()
	m.active = k
	return nil
}

// PointerDown begins a stroke at p. Presses outside the canvas while idle
// are ignored. Instant tools (flood fill, color picker) complete here.
func (m *Machine) PointerDown(p canvas.Point) error {
	if m.state != StateIdle {
		return fmt.Errorf("pointer down while %s: %w", m.state, ErrInvalidToolTransition)
	}
	if !m.canvas.Contains(p) {
		return nil
	}

	t := m.tools[m.active]
	if t.Instant() {
		edits, err := t.Begin(m.canvas, m.brush, p)
		if err != nil {
			return err
		}
		if len(edits) == 0 {
			return nil
		}
		_, err = m.history.Apply(t.Kind().String(), edits)
		return err
	}

	m.history.BeginGroup(t.Kind().String())
	edits, err := t.Begin(m.canvas, m.brush, p)
	if err != nil {
		t.Reset()
		m.history.EndGroup()
		return err
	}
	m.state = StateStrokeActive
	return m.commitChunk(edits)
}

// PointerMove continues the active stroke. Positions outside the canvas are
// clamped to the nearest in-bounds coordinate, for the preview and for the
// committed edits alike, so the final shape matches what was previewed.
func (m *Machine) PointerMove(p canvas.Point) error {
	if m.state != StateStrokeActive {
		return fmt.Errorf("pointer move while %s: %w", m.state, ErrInvalidToolTransition)
	}

	t := m.tools[m.active]
	edits, err := t.Continue(m.canvas, m.brush, m.canvas.Clamp(p))
	if err != nil {
		return err
	}
	return m.commitChunk(edits)
}

// PointerUp finalizes the active stroke at p and returns to idle. The
// stroke's accumulated edits become one undo step.
func (m *Machine) PointerUp(p canvas.Point) error {
	if m.state != StateStrokeActive {
		return fmt.Errorf("pointer up while %s: %w", m.state, ErrInvalidToolTransition)
	}

	t := m.tools[m.active]
	edits, err := t.End(m.canvas, m.brush, m.canvas.Clamp(p))
	if err != nil {
		t.Reset()
		m.history.EndGroup()
		m.state = StateIdle
		return err
	}

	commitErr := m.commitChunk(edits)
	m.history.EndGroup()
	m.state = StateIdle
	return commitErr
}

// Cancel aborts the active stroke. Shape tools return to idle with zero
// edits; freehand chunks already on the canvas stay, merged as one undo
// step. Cancel while idle is a no-op.
func (m *Machine) Cancel() {
	if m.state != StateStrokeActive {
		return
	}
	m.tools[m.active].Reset()
	m.history.EndGroup()
	m.state = StateIdle
}

// Preview returns the overlay edits for the in-progress stroke, or nil when
// idle or when the active tool has nothing to preview.
func (m *Machine) Preview() []canvas.Edit {
	if m.state != StateStrokeActive {
		return nil
	}
	edits, err := m.tools[m.active].Preview(m.canvas, m.brush)
	if err != nil {
		return nil
	}
	return edits
}

// commitChunk applies an incremental edit batch through history. Empty
// chunks are fine mid-stroke and are skipped.
func (m *Machine) commitChunk(edits []canvas.Edit) error {
	if len(edits) == 0 {
		return nil
	}
	_, err := m.history.Apply(m.active.String(), edits)
	return err
}
