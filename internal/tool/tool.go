// Package tool interprets pointer and key events against the currently
// selected drawing tool, producing canvas edits wrapped as history commands.
// Interaction is modeled as an explicit finite-state machine (Idle,
// StrokeActive) so cancel/finish semantics and illegal transitions are
// testable without any real input source.
package tool

import (
	"errors"
	"fmt"

	"github.com/dshills/painterm/internal/canvas"
)

// Errors returned by tool operations.
var (
	// ErrInvalidToolTransition indicates an event that is not legal in the
	// machine's current state, such as switching tools mid-stroke.
	ErrInvalidToolTransition = errors.New("invalid tool transition")

	// ErrUnknownTool indicates an unrecognized tool name.
	ErrUnknownTool = errors.New("unknown tool")
)

// Kind identifies a tool variant. The set is closed: each variant carries
// different transient stroke state, dispatched by type rather than by an
// open-ended registry.
type Kind int

const (
	KindPencil Kind = iota
	KindEraser
	KindLine
	KindRect
	KindEllipse
	KindFill
	KindPicker
)

// String returns the tool name.
func (k Kind) String() string {
	switch k {
	case KindPencil:
		return "pencil"
	case KindEraser:
		return "eraser"
	case KindLine:
		return "line"
	case KindRect:
		return "rect"
	case KindEllipse:
		return "ellipse"
	case KindFill:
		return "fill"
	case KindPicker:
		return "picker"
	default:
		return "unknown"
	}
}

// ParseKind resolves a tool name to its Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "pencil":
		return KindPencil, nil
	case "eraser":
		return KindEraser, nil
	case "line":
		return KindLine, nil
	case "rect", "rectangle":
		return KindRect, nil
	case "ellipse":
		return KindEllipse, nil
	case "fill", "flood":
		return KindFill, nil
	case "picker", "colorpicker":
		return KindPicker, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
}

// Kinds lists every tool variant.
func Kinds() []Kind {
	return []Kind{KindPencil, KindEraser, KindLine, KindRect, KindEllipse, KindFill, KindPicker}
}

// Brush is the shared paint state: the glyph and colors every painting tool
// stamps into cells. The color picker writes into it; nothing else mutates
// it during a stroke.
type Brush struct {
	Glyph rune
	Fg    canvas.Color
	Bg    canvas.Color

	// Fill selects filled mode for the rectangle and ellipse tools.
	Fill bool
}

// DefaultBrush returns the starting brush.
func DefaultBrush() *Brush {
	return &Brush{
		Glyph: '█',
		Fg:    canvas.ColorWhite,
		Bg:    canvas.ColorDefault,
	}
}

// Cell returns the cell the brush currently paints.
func (b *Brush) Cell() canvas.Cell {
	return canvas.NewCell(b.Glyph, b.Fg, b.Bg)
}

// Tool is one drawing tool variant. A stroke runs begin -> continue* -> end;
// instant tools complete on begin and never see the other phases. Begin,
// Continue, and End return the incremental edits to commit for that phase
// (freehand tools), or nil when the tool only updates transient preview
// state (shape tools, which commit everything from End).
type Tool interface {
	Kind() Kind

	// Instant reports whether the tool completes on a single press with no
	// stroke phase (flood fill, color picker).
	Instant() bool

	// Begin starts a stroke at p.
	Begin(cv *canvas.Canvas, br *Brush, p canvas.Point) ([]canvas.Edit, error)

	// Continue extends the stroke to p.
	Continue(cv *canvas.Canvas, br *Brush, p canvas.Point) ([]canvas.Edit, error)

	// End finalizes the stroke at p.
	End(cv *canvas.Canvas, br *Brush, p canvas.Point) ([]canvas.Edit, error)

	// Preview returns the overlay edits for the in-progress stroke, or nil
	// if the tool has nothing to preview.
	Preview(cv *canvas.Canvas, br *Brush) ([]canvas.Edit, error)

	// Reset discards all transient stroke state.
	Reset()
}
