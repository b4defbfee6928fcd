package app

import (
	"fmt"
	"io"

	"github.com/dshills/painterm/internal/canvas"
	"github.com/dshills/painterm/internal/config"
	"github.com/dshills/painterm/internal/history"
	"github.com/dshills/painterm/internal/input"
	"github.com/dshills/painterm/internal/render"
	"github.com/dshills/painterm/internal/render/backend"
	"github.com/dshills/painterm/internal/tool"
)

// Options configures application startup.
type Options struct {
	// ConfigPath is the TOML configuration file; empty uses defaults.
	ConfigPath string

	// Width and Height override the configured canvas dimensions when
	// positive.
	Width  int
	Height int

	// Backend supplies the display surface. Nil selects the real terminal.
	Backend backend.Backend

	// Watch enables live reload of the configuration file.
	Watch bool
}

// Application owns the session: one canvas, its history, the tool machine,
// and the renderer, all driven from a single event-loop goroutine.
type Application struct {
	cfg config.Config
	log *Logger

	backend  backend.Backend
	canvas   *canvas.Canvas
	history  *history.History
	brush    *tool.Brush
	machine  *tool.Machine
	renderer *render.Renderer
	keymap   input.Keymap

	palette    []canvas.Color
	paletteIdx int

	watcher       *config.Watcher
	pendingReload *config.Config
	logClose      io.Closer

	// pointerHeld tracks the primary button between mouse events so the
	// loop can derive press/drag/release transitions.
	pointerHeld bool

	quit bool
}

// New creates an application from options.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Width > 0 {
		cfg.Canvas.Width = opts.Width
	}
	if opts.Height > 0 {
		cfg.Canvas.Height = opts.Height
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Application{cfg: cfg, log: NopLogger()}

	if cfg.Log.File != "" {
		f, err := OpenLogFile(cfg.Log.File)
		if err != nil {
			return nil, err
		}
		a.logClose = f
		a.log = NewLogger(f, ParseLogLevel(cfg.Log.Level), "painterm")
	}

	a.canvas, err = canvas.New(cfg.Canvas.Width, cfg.Canvas.Height)
	if err != nil {
		return nil, err
	}
	a.history = history.New(a.canvas, cfg.History.MaxDepth)

	a.palette, err = cfg.PaletteColors()
	if err != nil {
		return nil, err
	}
	glyph, err := cfg.BrushGlyph()
	if err != nil {
		return nil, err
	}
	a.brush = &tool.Brush{Glyph: glyph, Fg: a.palette[0], Bg: canvas.ColorDefault}
	a.machine = tool.NewMachine(a.canvas, a.history, a.brush)
	a.renderer = render.New()

	a.keymap = input.DefaultKeymap()
	for key, spec := range cfg.Keys {
		if err := a.keymap.Bind(key, spec); err != nil {
			return nil, fmt.Errorf("keymap: %w", err)
		}
	}

	a.backend = opts.Backend
	if a.backend == nil {
		term, err := backend.NewTerminal()
		if err != nil {
			return nil, err
		}
		a.backend = term
	}

	if opts.Watch && opts.ConfigPath != "" {
		w, err := config.Watch(opts.ConfigPath, func() {
			a.backend.PostEvent(backend.Event{Kind: backend.EventWakeup})
		})
		if err != nil {
			a.log.Warn("config watch disabled: %v", err)
		} else {
			a.watcher = w
		}
	}

	return a, nil
}

// Shutdown releases the terminal and every resource. Safe on all exit paths.
func (a *Application) Shutdown() {
	if a.watcher != nil {
		a.watcher.Close()
		a.watcher = nil
	}
	if a.backend != nil {
		a.backend.Fini()
	}
	if a.logClose != nil {
		_ = a.logClose.Close()
		a.logClose = nil
	}
}

// Canvas returns the session canvas.
func (a *Application) Canvas() *canvas.Canvas { return a.canvas }

// History returns the session history.
func (a *Application) History() *history.History { return a.history }

// Machine returns the tool machine.
func (a *Application) Machine() *tool.Machine { return a.machine }

// applyReload folds a reloaded configuration into the running session.
// Canvas dimensions and history depth are fixed for the session; palette,
// brush glyph, keymap, and log level take effect immediately.
func (a *Application) applyReload(cfg config.Config) {
	colors, err := cfg.PaletteColors()
	if err != nil {
		a.log.Warn("reload: %v", err)
		return
	}
	keymap := input.DefaultKeymap()
	for key, spec := range cfg.Keys {
		if err := keymap.Bind(key, spec); err != nil {
			a.log.Warn("reload: %v", err)
			return
		}
	}

	a.palette = colors
	if a.paletteIdx >= len(a.palette) {
		a.paletteIdx = 0
	}
	a.keymap = keymap
	a.log.SetLevel(ParseLogLevel(cfg.Log.Level))
	a.cfg.Palette = cfg.Palette
	a.cfg.Keys = cfg.Keys
	a.cfg.Log.Level = cfg.Log.Level
	a.log.Info("configuration reloaded")
}
