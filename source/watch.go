package source

import (
	"fmt"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/fsnotify/fsnotify"

	"github.com/miosa/osa-wheel/msg"
)

// DefaultDebounce is how long the watcher waits for a burst of writes to a
// column file to end before reporting it.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reports changes to one column file. Editors often replace a file
// rather than write it in place, so the parent directory is watched and
// events are filtered by name.
type Watcher struct {
	path     string
	fw       *fsnotify.Watcher
	done     chan struct{}
	debounce time.Duration
}

// Watch starts watching path.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{
		path:     abs,
		fw:       fw,
		done:     make(chan struct{}),
		debounce: DefaultDebounce,
	}, nil
}

// Path is the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
		close(w.done)
	}
	return w.fw.Close()
}

// IsClosed reports whether Close has been called.
func (w *Watcher) IsClosed() bool {
	select {
	case <-w.done:
		return true
	default:
		return false
	}
}

// WaitCmd blocks until the file changes and returns msg.SourceChanged, or
// msg.SourceError on a watcher error. Issue it again after each message to
// keep watching. It returns nil once the watcher is closed.
func (w *Watcher) WaitCmd() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case <-w.done:
				return nil

			case event, ok := <-w.fw.Events:
				if !ok {
					return nil
				}
				if !w.relevant(event) {
					continue
				}
				w.quiet()
				if w.IsClosed() {
					return nil
				}
				return msg.SourceChanged{Path: w.path}

			case err, ok := <-w.fw.Errors:
				if !ok {
					return nil
				}
				return msg.SourceError{Path: w.path, Err: err}
			}
		}
	}
}

func (w *Watcher) relevant(e fsnotify.Event) bool {
	if filepath.Clean(e.Name) != w.path {
		return false
	}
	return e.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// quiet swallows further events until none arrive for the debounce period.
func (w *Watcher) quiet() {
	timer := time.NewTimer(w.debounce)
	defer timer.Stop()
	for {
		select {
		case <-timer.C:
			return
		case <-w.done:
			return
		case _, ok := <-w.fw.Events:
			if !ok {
				return
			}
			timer.Reset(w.debounce)
		}
	}
}
