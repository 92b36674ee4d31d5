package fileio

import (
	"fmt"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watcher observes the graph data files and invokes callbacks when either
// changes on disk, letting a long-running process pick up edits made by
// external tools (spreadsheets, the visualization front-end) without a
// restart.
type Watcher struct {
	paths    []string
	onChange []func(path string)
	fsw      *fsnotify.Watcher
}

// NewWatcher prepares a watcher over the given file paths. Watch must be
// called to start delivery.
func NewWatcher(paths ...string) *Watcher {
	return &Watcher{paths: paths}
}

// OnChange registers a callback invoked with the changed path after any
// watched file is written or replaced. Callbacks run on the watcher
// goroutine; keep them short.
func (w *Watcher) OnChange(fn func(path string)) {
	w.onChange = append(w.onChange, fn)
}

// Watch starts a background goroutine delivering change notifications.
// Call the returned stop function to clean up.
func (w *Watcher) Watch() (stop func(), err error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fileio: watcher: %w", err)
	}
	for _, p := range w.paths {
		if err := fsw.Add(p); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("fileio: watch %s: %w", p, err)
		}
	}
	w.fsw = fsw

	done := make(chan struct{})
	go func() {
		for {
			select {
			case ev, ok := <-fsw.Events:
				if !ok {
					return
				}
				// Editors and exporters commonly replace files wholesale,
				// so Create and Rename count as changes too.
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					for _, fn := range w.onChange {
						fn(ev.Name)
					}
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				slog.Warn("data file watcher error", "err", err)
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		_ = fsw.Close()
	}, nil
}
