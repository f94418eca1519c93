package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// TuningWatcher reports the contents of the watched file whenever it changes.
// Parsing reads the active tuning, so the caller decodes Updates with
// ParseTuning on the game loop, between frames.
type TuningWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Updates chan []byte
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// WatchTuning watches the directory holding path, since editors often replace
// files instead of writing them in place.
func WatchTuning(path string) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	tw := &TuningWatcher{
		watcher: w,
		path:    abs,
		Updates: make(chan []byte, 4),
		Errors:  make(chan error, 4),
		closeCh: make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

func (w *TuningWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *TuningWatcher) run() {
	defer close(w.Updates)
	defer close(w.Errors)

	// A save arrives as a burst of events, and the file may be empty after
	// the first one. Read only once the burst has been quiet for watchDebounce.
	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()
	var settled <-chan time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if name, err := filepath.Abs(event.Name); err != nil || name != w.path {
				continue
			}
			timer.Reset(watchDebounce)
			settled = timer.C
		case <-settled:
			settled = nil
			data, err := os.ReadFile(w.path)
			if err != nil {
				w.send(nil, fmt.Errorf("failed to read tuning %s: %w", w.path, err))
				continue
			}
			w.send(data, nil)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(nil, err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *TuningWatcher) send(data []byte, err error) {
	if err == nil {
		select {
		case w.Updates <- data:
		case <-w.closeCh:
		}
		return
	}
	select {
	case w.Errors <- err:
	case <-w.closeCh:
	}
}
