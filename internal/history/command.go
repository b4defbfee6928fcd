package history

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/painterm/internal/canvas"
)

// Command is a reversible, atomic group of cell edits. Commands are
// immutable once constructed; the canvas is the only entity they mutate.
type Command struct {
	id    uuid.UUID
	name  string
	edits []canvas.Edit
}

// NewCommand creates a command from an ordered edit list.
// The edit slice is copied so later mutation by the caller cannot reach it.
func NewCommand(name string, edits []canvas.Edit) *Command {
	owned := make([]canvas.Edit, len(edits))
	copy(owned, edits)
	return &Command{
		id:    uuid.New(),
		name:  name,
		edits: owned,
	}
}

// ID returns the command's unique identifier.
func (c *Command) ID() uuid.UUID { return c.id }

// Len returns the number of edits in the command.
func (c *Command) Len() int { return len(c.edits) }

// Apply sets every edit's new cell on the canvas, in order.
func (c *Command) Apply(cv *canvas.Canvas) error {
	if err := cv.Apply(c.edits); err != nil {
		return fmt.Errorf("apply %q: %w", c.name, err)
	}
	return nil
}

// Revert restores every edit's old cell, in reverse order.
func (c *Command) Revert(cv *canvas.Canvas) error {
	if err := cv.Revert(c.edits); err != nil {
		return fmt.Errorf("revert %q: %w", c.name, err)
	}
	return nil
}

// Description returns a human-readable description of the command.
func (c *Command) Description() string {
	if c.name != "" {
		return c.name
	}
	return fmt.Sprintf("%d cell edits", len(c.edits))
}
