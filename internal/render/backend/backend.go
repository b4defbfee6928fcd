// Package backend abstracts the terminal surface behind the renderer: a
// cell-addressable output sink plus a raw event source. The core only ever
// sees the types in this package, never a concrete terminal library.
package backend

import "github.com/dshills/painterm/internal/canvas"

// EventKind identifies the type of terminal event.
type EventKind int

const (
	EventNone EventKind = iota
	EventKey
	EventMouse
	EventResize
	// EventWakeup is a synthetic event used to break PollEvent out of its
	// wait, e.g. when a config reload is pending.
	EventWakeup
)

// Event is a raw terminal event. Key identity is carried as a logical name
// ("a", "escape", "ctrl+z") so the rest of the program never depends on a
// terminal library's key codes.
type Event struct {
	Kind EventKind

	// Key event fields.
	Key string

	// Mouse event fields: screen position plus whether the primary button
	// is held. Press/drag/release are derived by the event loop from the
	// held-state transitions.
	MouseX, MouseY int
	MouseHeld      bool

	// Resize event fields.
	Width, Height int
}

// Backend is a terminal/display surface.
type Backend interface {
	// Init takes over the terminal. Must be called before anything else.
	Init() error

	// Fini restores the terminal state.
	Fini()

	// Size returns the surface dimensions in cells.
	Size() (width, height int)

	// SetCell writes one cell at (x, y); out-of-surface positions are
	// silently ignored.
	SetCell(x, y int, cell canvas.Cell)

	// Show flushes pending cell writes to the display.
	Show()

	// Clear blanks the surface.
	Clear()

	// HideCursor hides the hardware cursor.
	HideCursor()

	// EnableMouse turns on mouse reporting.
	EnableMouse()

	// PollEvent blocks until the next event is available.
	PollEvent() Event

	// PostEvent injects a synthetic event into the queue.
	PostEvent(ev Event)
}

// Null is an in-memory backend for tests: it records cells and serves
// queued events.
type Null struct {
	width, height int
	cells         [][]canvas.Cell
	events        chan Event
	showCount     int
}

// NewNull creates a null backend with the given dimensions.
func NewNull(width, height int) *Null {
	return &Null{
		width:  width,
		height: height,
		events: make(chan Event, 256),
	}
}

func (b *Null) Init() error {
	b.cells = make([][]canvas.Cell, b.height)
	for y := range b.cells {
		b.cells[y] = make([]canvas.Cell, b.width)
		for x := range b.cells[y] {
			b.cells[y][x] = canvas.Blank()
		}
	}
	return nil
}

func (b *Null) Fini()            {}
func (b *Null) Size() (int, int) { return b.width, b.height }
func (b *Null) HideCursor()      {}
func (b *Null) EnableMouse()     {}
func (b *Null) Show()            { b.showCount++ }

func (b *Null) SetCell(x, y int, cell canvas.Cell) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y][x] = cell
}

func (b *Null) Clear() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = canvas.Blank()
		}
	}
}

func (b *Null) PollEvent() Event {
	return <-b.events
}

func (b *Null) PostEvent(ev Event) {
	select {
	case b.events <- ev:
	default:
		// Queue full; drop. Only reachable in tests that flood events.
	}
}

// CellAt returns the last cell written at (x, y), for assertions.
func (b *Null) CellAt(x, y int) canvas.Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return canvas.Blank()
	}
	return b.cells[y][x]
}

// ShowCount returns how many times Show has been called.
func (b *Null) ShowCount() int { return b.showCount }
