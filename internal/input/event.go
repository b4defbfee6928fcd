// Package input defines the discrete events the core consumes and the
// keymap that binds logical keys to actions. The core is agnostic to how
// events are captured; the application layer converts raw terminal events
// into these.
package input

import "github.com/dshills/painterm/internal/canvas"

// EventKind tags a core input event.
type EventKind int

const (
	// PointerDown is a primary-button press at a cell coordinate.
	PointerDown EventKind = iota
	// PointerMove is pointer movement with the button held.
	PointerMove
	// PointerUp is the button release.
	PointerUp
	// KeyPress is a logical key press.
	KeyPress
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "pointer-down"
	case PointerMove:
		return "pointer-move"
	case PointerUp:
		return "pointer-up"
	case KeyPress:
		return "key-press"
	default:
		return "unknown"
	}
}

// Event is one discrete input event.
type Event struct {
	Kind EventKind

	// Pos is the cell coordinate for pointer events.
	Pos canvas.Point

	// Key is the logical key identifier for key events,
	// e.g. "p", "escape", "ctrl+z".
	Key string
}

// Pointer creates a pointer event.
func Pointer(kind EventKind, p canvas.Point) Event {
	return Event{Kind: kind, Pos: p}
}

// Press creates a key-press event.
func Press(key string) Event {
	return Event{Kind: KeyPress, Key: key}
}
