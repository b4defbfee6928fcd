package app

import (
	"errors"

	"github.com/dshills/painterm/internal/canvas"
	"github.com/dshills/painterm/internal/history"
	"github.com/dshills/painterm/internal/input"
	"github.com/dshills/painterm/internal/render/backend"
	"github.com/dshills/painterm/internal/tool"
)

// Run drives the session: one goroutine receives events, advances the tool
// machine, applies commands through history, and renders after every
// processed event. Returns when a quit action is handled.
func (a *Application) Run() error {
	if err := a.backend.Init(); err != nil {
		return err
	}

	w, h := a.canvas.Size()
	a.log.Info("session start, canvas %dx%d", w, h)

	a.draw()
	for !a.quit {
		ev := a.backend.PollEvent()
		a.handleEvent(ev)
		a.maybeApplyReload()
		a.draw()
	}

	a.log.Info("session end")
	return nil
}

func (a *Application) handleEvent(ev backend.Event) {
	switch ev.Kind {
	case backend.EventKey:
		a.handleKey(ev.Key)
	case backend.EventMouse:
		a.handleMouse(ev)
	case backend.EventResize:
		a.renderer.Invalidate()
		a.backend.Clear()
	case backend.EventWakeup:
		if a.watcher != nil {
			if cfg, ok := a.watcher.Latest(); ok {
				a.pendingReload = &cfg
			}
		}
	}
}

// handleMouse derives pointer transitions from the primary-button state and
// forwards them to the tool machine. Rejected transitions are dropped at
// this boundary; the most recent valid state stands.
func (a *Application) handleMouse(ev backend.Event) {
	p := canvas.Pt(ev.MouseY, ev.MouseX)

	held := ev.MouseHeld
	wasHeld := a.pointerHeld
	a.pointerHeld = held

	var err error
	switch {
	case held && !wasHeld:
		err = a.machine.PointerDown(p)
	case held && wasHeld:
		err = a.machine.PointerMove(p)
	case !held && wasHeld:
		err = a.machine.PointerUp(p)
	default:
		return // hover
	}

	if err != nil && !errors.Is(err, history.ErrEmptyEdit) {
		a.log.Debug("pointer %s rejected: %v", p, err)
	}
}

func (a *Application) handleKey(key string) {
	binding := a.keymap.Resolve(key)
	switch binding.Action {
	case input.ActionSelectTool:
		kind, err := tool.ParseKind(binding.Tool)
		if err != nil {
			a.log.Warn("keymap: %v", err)
			return
		}
		if err := a.machine.Select(kind); err != nil {
			a.log.Debug("tool select rejected: %v", err)
		}

	case input.ActionUndo:
		if a.machine.State() == tool.StateIdle {
			a.history.Undo()
		}

	case input.ActionRedo:
		if a.machine.State() == tool.StateIdle {
			a.history.Redo()
		}

	case input.ActionCancel:
		a.machine.Cancel()

	case input.ActionToggleFill:
		a.brush.Fill = !a.brush.Fill

	case input.ActionNextColor:
		a.cycleColor(1)

	case input.ActionPrevColor:
		a.cycleColor(-1)

	case input.ActionClear:
		a.clearCanvas()

	case input.ActionRedraw:
		a.renderer.Invalidate()
		a.backend.Clear()

	case input.ActionQuit:
		a.quit = true
	}
}

// cycleColor steps the brush foreground through the palette.
func (a *Application) cycleColor(step int) {
	n := len(a.palette)
	a.paletteIdx = ((a.paletteIdx+step)%n + n) % n
	a.brush.Fg = a.palette[a.paletteIdx]
}

// clearCanvas erases every painted cell as one undoable command.
func (a *Application) clearCanvas() {
	if a.machine.State() != tool.StateIdle {
		return
	}

	blank := canvas.Blank()
	var edits []canvas.Edit
	w, h := a.canvas.Size()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			p := canvas.Pt(row, col)
			old, err := a.canvas.Get(p)
			if err != nil || old.Equals(blank) {
				continue
			}
			edits = append(edits, canvas.Edit{At: p, Old: old, New: blank})
		}
	}

	if _, err := a.history.Apply("clear", edits); err != nil && !errors.Is(err, history.ErrEmptyEdit) {
		a.log.Warn("clear: %v", err)
	}
}

// maybeApplyReload folds in a reloaded config once no stroke is active.
func (a *Application) maybeApplyReload() {
	if a.pendingReload == nil || a.machine.State() != tool.StateIdle {
		return
	}
	cfg := *a.pendingReload
	a.pendingReload = nil
	a.applyReload(cfg)
}
