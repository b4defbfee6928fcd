package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the configuration when its file changes on disk, so
// palette and keymap edits land without restarting. Reloads are debounced;
// the latest valid config is held until the event loop collects it.
type Watcher struct {
	mu      sync.Mutex
	path    string
	watcher *fsnotify.Watcher
	pending *Config
	notify  func()
	closed  chan struct{}
	wg      sync.WaitGroup

	debounce time.Duration
}

// Watch starts watching the config file at path. notify is called (from the
// watcher goroutine) whenever a reloaded config becomes available; the
// owner then collects it with Latest.
func Watch(path string, notify func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory: editors replace files on save, which drops the
	// watch if it is attached to the file itself.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	w := &Watcher{
		path:     path,
		watcher:  fsw,
		notify:   notify,
		closed:   make(chan struct{}),
		debounce: 100 * time.Millisecond,
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Latest returns the most recently reloaded config, if one is pending.
func (w *Watcher) Latest() (Config, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending == nil {
		return Config{}, false
	}
	cfg := *w.pending
	w.pending = nil
	return cfg, true
}

// Close stops watching.
func (w *Watcher) Close() {
	close(w.closed)
	w.watcher.Close()
	w.wg.Wait()
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.closed:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			w.reload()

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are not fatal; the next write may still arrive.
		}
	}
}

// reload parses the file and stages it for collection. Invalid configs are
// dropped: the running config stays in effect.
func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		return
	}

	w.mu.Lock()
	w.pending = &cfg
	notify := w.notify
	w.mu.Unlock()

	if notify != nil {
		notify()
	}
}
