package input

import (
	"fmt"
	"strings"
)

// Action is a logical operation a key can trigger.
type Action int

const (
	// ActionNone means the key is unbound.
	ActionNone Action = iota
	// ActionSelectTool switches the active tool; Binding.Tool names it.
	ActionSelectTool
	// ActionUndo reverts the most recent command.
	ActionUndo
	// ActionRedo re-applies the most recently undone command.
	ActionRedo
	// ActionCancel aborts the in-progress stroke.
	ActionCancel
	// ActionToggleFill flips filled mode for the rectangle and ellipse tools.
	ActionToggleFill
	// ActionNextColor advances the brush foreground through the palette.
	ActionNextColor
	// ActionPrevColor steps the brush foreground back through the palette.
	ActionPrevColor
	// ActionClear erases the whole canvas as one undoable command.
	ActionClear
	// ActionRedraw forces a full repaint.
	ActionRedraw
	// ActionQuit exits the application.
	ActionQuit
)

// Binding is the resolved target of a key.
type Binding struct {
	Action Action
	// Tool names the tool for ActionSelectTool bindings.
	Tool string
}

// Keymap maps logical key names to bindings.
type Keymap map[string]Binding

// DefaultKeymap returns the built-in bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		"p":      {Action: ActionSelectTool, Tool: "pencil"},
		"e":      {Action: ActionSelectTool, Tool: "eraser"},
		"l":      {Action: ActionSelectTool, Tool: "line"},
		"r":      {Action: ActionSelectTool, Tool: "rect"},
		"o":      {Action: ActionSelectTool, Tool: "ellipse"},
		"g":      {Action: ActionSelectTool, Tool: "fill"},
		"k":      {Action: ActionSelectTool, Tool: "picker"},
		"u":      {Action: ActionUndo},
		"ctrl+z": {Action: ActionUndo},
		"y":      {Action: ActionRedo},
		"ctrl+y": {Action: ActionRedo},
		"escape": {Action: ActionCancel},
		"f":      {Action: ActionToggleFill},
		"]":      {Action: ActionNextColor},
		"[":      {Action: ActionPrevColor},
		"c":      {Action: ActionClear},
		"ctrl+l": {Action: ActionRedraw},
		"q":      {Action: ActionQuit},
		"ctrl+c": {Action: ActionQuit},
	}
}

// Resolve returns the binding for a key, or an ActionNone binding when the
// key is unbound.
func (km Keymap) Resolve(key string) Binding {
	if b, ok := km[key]; ok {
		return b
	}
	return Binding{Action: ActionNone}
}

// Bind sets a binding from an action spec: "undo", "redo", "cancel",
// "fill-toggle", "color.next", "color.prev", "clear", "redraw", "quit",
// "none", or "tool.<name>". Used for configuration overrides.
func (km Keymap) Bind(key, spec string) error {
	if key == "" {
		return fmt.Errorf("empty key in binding %q", spec)
	}

	if name, ok := strings.CutPrefix(spec, "tool."); ok {
		if name == "" {
			return fmt.Errorf("binding %q: missing tool name", spec)
		}
		km[key] = Binding{Action: ActionSelectTool, Tool: name}
		return nil
	}

	switch spec {
	case "undo":
		km[key] = Binding{Action: ActionUndo}
	case "redo":
		km[key] = Binding{Action: ActionRedo}
	case "cancel":
		km[key] = Binding{Action: ActionCancel}
	case "fill-toggle":
		km[key] = Binding{Action: ActionToggleFill}
	case "color.next":
		km[key] = Binding{Action: ActionNextColor}
	case "color.prev":
		km[key] = Binding{Action: ActionPrevColor}
	case "clear":
		km[key] = Binding{Action: ActionClear}
	case "redraw":
		km[key] = Binding{Action: ActionRedraw}
	case "quit":
		km[key] = Binding{Action: ActionQuit}
	case "none":
		delete(km, key)
	default:
		return fmt.Errorf("unknown action %q for key %q", spec, key)
	}
	return nil
}
