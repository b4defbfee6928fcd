// Package history wraps canvas mutations in reversible commands and keeps
// bounded undo/redo stacks over them. It is the only path through which the
// canvas is mutated once a stroke is finalized, which is what makes undo
// exact: every command carries the old and new cell for each coordinate it
// touched.
//
// History is owned by the event-loop goroutine and is not safe for
// concurrent use.
package history

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/painterm/internal/canvas"
)

// Errors returned by history operations.
var (
	// ErrEmptyEdit indicates an edit batch with zero changes.
	ErrEmptyEdit = errors.New("empty edit batch")
)

// DefaultMaxDepth bounds the undo stack when no depth is configured.
const DefaultMaxDepth = 1000

// History manages undo/redo state for one canvas.
type History struct {
	canvas *canvas.Canvas

	undoStack []*Command
	redoStack []*Command

	// Grouping state: commands pushed while grouping are merged into a
	// single undo unit on EndGroup.
	grouping   bool
	groupName  string
	groupEdits []canvas.Edit

	maxDepth int
}

// New creates a history manager for the given canvas.
func New(cv *canvas.Canvas, maxDepth int) *History {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &History{
		canvas:   cv,
		maxDepth: maxDepth,
	}
}

// Apply wraps edits as a command, applies it to the canvas, and pushes it to
// the undo stack. The redo stack is cleared: branching edit history is not
// supported. Returns ErrEmptyEdit for a zero-length batch so no-op strokes
// never pollute history.
func (h *History) Apply(name string, edits []canvas.Edit) (uuid.UUID, error) {
	if len(edits) == 0 {
		return uuid.Nil, ErrEmptyEdit
	}

	cmd := NewCommand(name, edits)
	if err := cmd.Apply(h.canvas); err != nil {
		return uuid.Nil, err
	}

	if h.grouping {
		h.groupEdits = append(h.groupEdits, cmd.edits...)
		return cmd.ID(), nil
	}

	h.push(cmd)
	return cmd.ID(), nil
}

// push adds a command to the undo stack, evicting the oldest entry when the
// configured depth is exceeded.
func (h *History) push(cmd *Command) {
	h.undoStack = append(h.undoStack, cmd)
	h.redoStack = nil

	if len(h.undoStack) > h.maxDepth {
		excess := len(h.undoStack) - h.maxDepth
		h.undoStack = h.undoStack[excess:]
	}
}

// Undo reverts the most recent command and moves it to the redo stack.
// Returns false if there is nothing to undo.
func (h *History) Undo() bool {
	if len(h.undoStack) == 0 {
		return false
	}

	cmd := h.undoStack[len(h.undoStack)-1]
	if err := cmd.Revert(h.canvas); err != nil {
		// Edits were validated when first applied; a revert failure means
		// the canvas was replaced out from under us. Drop the command.
		h.undoStack = h.undoStack[:len(h.undoStack)-1]
		return false
	}

	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, cmd)
	return true
}

// Redo re-applies the most recently undone command and moves it back to the
// undo stack. Returns false if there is nothing to redo.
func (h *History) Redo() bool {
	if len(h.redoStack) == 0 {
		return false
	}

	cmd := h.redoStack[len(h.redoStack)-1]
	if err := cmd.Apply(h.canvas); err != nil {
		h.redoStack = h.redoStack[:len(h.redoStack)-1]
		return false
	}

	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, cmd)
	return true
}

// BeginGroup starts a stroke group. Edits applied while grouping are
// committed to the canvas immediately but merged into a single undo unit on
// EndGroup. Nested calls are ignored.
func (h *History) BeginGroup(name string) {
	if h.grouping {
		return
	}
	h.grouping = true
	h.groupName = name
	h.groupEdits = nil
}

// EndGroup finishes the current stroke group. All edits applied since
// BeginGroup become one command on the undo stack. An empty group pushes
// nothing.
func (h *History) EndGroup() {
	if !h.grouping {
		return
	}
	h.grouping = false

	if len(h.groupEdits) == 0 {
		h.groupEdits = nil
		return
	}

	h.push(NewCommand(h.groupName, h.groupEdits))
	h.groupEdits = nil
}

// IsGrouping returns true if a stroke group is open.
func (h *History) IsGrouping() bool {
	return h.grouping
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

// UndoCount returns the number of undo steps available.
func (h *History) UndoCount() int { return len(h.undoStack) }

// RedoCount returns the number of redo steps available.
func (h *History) RedoCount() int { return len(h.redoStack) }

// MaxDepth returns the configured undo depth bound.
func (h *History) MaxDepth() int { return h.maxDepth }

// Clear removes all undo/redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
	h.grouping = false
	h.groupEdits = nil
}

// PeekUndo returns the description of the next undo step.
func (h *History) PeekUndo() (string, bool) {
	if len(h.undoStack) == 0 {
		return "", false
	}
	return h.undoStack[len(h.undoStack)-1].Description(), true
}

// PeekRedo returns the description of the next redo step.
func (h *History) PeekRedo() (string, bool) {
	if len(h.redoStack) == 0 {
		return "", false
	}
	return h.redoStack[len(h.redoStack)-1].Description(), true
}

// String summarizes the stack depths, for the status line.
func (h *History) String() string {
	return fmt.Sprintf("undo:%d redo:%d", len(h.undoStack), len(h.redoStack))
}
