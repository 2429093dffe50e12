// Package watcher reloads the config file when it changes on disk.
//
// The directory is watched rather than the file itself so that editors that
// replace the file through a rename are still noticed.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/texel-architect/texel_architect/pkg/debuglog"
)

// Watcher calls onChange after the watched file settles following a write,
// create, rename or remove.
type Watcher struct {
	path     string
	fsw      *fsnotify.Watcher
	debounce *Debouncer
	done     chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// New starts watching path. onChange runs on a timer goroutine; callers that
// touch UI state must hand off (for example via tea.Program.Send).
func New(path string, onChange func()) (*Watcher, error) {
	return NewWithWindow(path, DefaultDebounceDuration, onChange)
}

// NewWithWindow is New with a custom settle window.
func NewWithWindow(path string, window time.Duration, onChange func()) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		fsw:      fsw,
		debounce: NewDebouncer(window, onChange),
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

func (w *Watcher) loop() {
	defer w.wg.Done()
	log := debuglog.Logger()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove) {
				log.Debug("config changed", "path", ev.Name, "op", ev.Op.String())
				w.debounce.Trigger()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Warn("config watcher error", "err", err)
		}
	}
}

// Close stops watching and drops any pending callback.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
		w.debounce.Cancel()
	})
	return err
}
