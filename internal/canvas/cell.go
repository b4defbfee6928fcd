package canvas

import "github.com/mattn/go-runewidth"

// Cell is one addressable unit of the canvas: a glyph plus foreground and
// background colors. Cells are immutable values; the canvas owns them by value.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// Blank returns the blank cell used for unpainted canvas positions.
func Blank() Cell {
	return Cell{
		Rune: ' ',
		Fg:   ColorDefault,
		Bg:   ColorDefault,
	}
}

// NewCell creates a cell with the given glyph and colors.
func NewCell(r rune, fg, bg Color) Cell {
	return Cell{Rune: r, Fg: fg, Bg: bg}
}

// WithRune returns a copy of the cell with the glyph replaced.
func (c Cell) WithRune(r rune) Cell {
	c.Rune = r
	return c
}

// WithColors returns a copy of the cell with both colors replaced.
func (c Cell) WithColors(fg, bg Color) Cell {
	c.Fg = fg
	c.Bg = bg
	return c
}

// Width returns the display width of the cell's glyph.
func (c Cell) Width() int {
	return runewidth.RuneWidth(c.Rune)
}

// IsBlank returns true if the cell is visually empty.
func (c Cell) IsBlank() bool {
	return (c.Rune == ' ' || c.Rune == 0) && c.Fg.IsDefault() && c.Bg.IsDefault()
}

// Equals returns true if two cells are identical.
func (c Cell) Equals(other Cell) bool {
	return c.Rune == other.Rune && c.Fg.Equals(other.Fg) && c.Bg.Equals(other.Bg)
}
