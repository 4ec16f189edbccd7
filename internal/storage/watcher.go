package storage

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce window for bursts of write events from editors that save in
// multiple steps (truncate + write, or temp + rename).
const watchDebounce = 250 * time.Millisecond

// Watcher reloads the board when the board file changes on disk outside the
// app, e.g. the user hand-edits it or syncs it from another machine. The
// app's own saves are suppressed via Suppress so they do not echo back.
type Watcher struct {
	file     *BoardFile
	onChange func()

	fsWatcher *fsnotify.Watcher

	mu        sync.Mutex
	suppress  bool
	lastEvent time.Time
	done      chan struct{}
}

// NewWatcher creates a watcher for the given board file. onChange is called
// from a background goroutine; callers marshal onto the UI loop themselves.
func NewWatcher(file *BoardFile, onChange func()) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: rename-based saves replace the
	// inode and a file watch would silently go stale.
	if err := fsWatcher.Add(filepath.Dir(file.Path())); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w := &Watcher{
		file:      file,
		onChange:  onChange,
		fsWatcher: fsWatcher,
		done:      make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Suppress toggles ignoring of events, used around the app's own saves
func (w *Watcher) Suppress(on bool) {
	w.mu.Lock()
	w.suppress = on
	if !on {
		// The save's own events may still be in flight; swallow them
		w.lastEvent = time.Now()
	}
	w.mu.Unlock()
}

// Close stops the watcher
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsWatcher.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != BoardFileName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.handleEvent()
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("Board file watcher error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent() {
	w.mu.Lock()
	if w.suppress || time.Since(w.lastEvent) < watchDebounce {
		w.mu.Unlock()
		return
	}
	w.lastEvent = time.Now()
	w.mu.Unlock()

	log.Printf("Board file changed on disk, reloading")
	if w.onChange != nil {
		w.onChange()
	}
}
