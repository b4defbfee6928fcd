package backend

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/painterm/internal/canvas"
)

// Terminal implements Backend on a real terminal via tcell.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal creates a terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return &Terminal{screen: screen}, nil
}

// Init enters the alternate screen in raw mode with the cursor hidden and
// mouse reporting on. Fini restores all of it.
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	t.screen.EnableMouse()
	t.screen.HideCursor()
	return nil
}

func (t *Terminal) Fini() {
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell canvas.Cell) {
	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell))
}

func (t *Terminal) Show() {
	t.screen.Show()
}

func (t *Terminal) Clear() {
	t.screen.Clear()
}

func (t *Terminal) HideCursor() {
	t.screen.HideCursor()
}

func (t *Terminal) EnableMouse() {
	t.screen.EnableMouse()
}

// PollEvent blocks for the next terminal event and converts it to the
// backend's event type. Unrecognized events come back as EventNone.
func (t *Terminal) PollEvent() Event {
	switch ev := t.screen.PollEvent().(type) {
	case *tcell.EventKey:
		return Event{Kind: EventKey, Key: keyName(ev)}
	case *tcell.EventMouse:
		x, y := ev.Position()
		return Event{
			Kind:      EventMouse,
			MouseX:    x,
			MouseY:    y,
			MouseHeld: ev.Buttons()&tcell.Button1 != 0,
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Kind: EventResize, Width: w, Height: h}
	case *tcell.EventInterrupt:
		return Event{Kind: EventWakeup}
	default:
		return Event{Kind: EventNone}
	}
}

func (t *Terminal) PostEvent(ev Event) {
	// Only wakeups are posted from outside the terminal; everything else
	// originates in tcell itself.
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(ev))
}

// keyName maps a tcell key event to its logical name.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		return string(ev.Rune())
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyDelete:
		return "delete"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyCtrlL:
		return "ctrl+l"
	case tcell.KeyCtrlR:
		return "ctrl+r"
	case tcell.KeyCtrlY:
		return "ctrl+y"
	case tcell.KeyCtrlZ:
		return "ctrl+z"
	default:
		return ""
	}
}

// convertStyle maps a canvas cell's colors onto a tcell style.
func convertStyle(cell canvas.Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(convertColor(cell.Fg)).
		Background(convertColor(cell.Bg))
}

// convertColor maps a canvas color onto a tcell color.
func convertColor(c canvas.Color) tcell.Color {
	switch {
	case c.Default:
		return tcell.ColorDefault
	case c.Indexed:
		return tcell.PaletteColor(int(c.R))
	default:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
}
