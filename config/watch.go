package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Reload identifies which watched file changed.
type Reload int

const (
	ReloadConfig Reload = iota
	ReloadTour
)

const debounceWindow = 100 * time.Millisecond

// Watcher reports edits to the viewer's two reloadable files: the config
// itself and the tour script it names. Editors that save by replace or
// rename still get caught because the parent directories are watched and
// events are matched against the exact file paths. Rapid successive events
// for the same file are coalesced.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan Reload
	Errors  chan error

	mu         sync.Mutex
	configPath string
	tourPath   string

	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches configPath and, when non-empty, tourScript.
func NewWatcher(configPath, tourScript string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:    fw,
		Events:     make(chan Reload, 4),
		Errors:     make(chan error, 1),
		configPath: filepath.Clean(configPath),
		closeCh:    make(chan struct{}),
		done:       make(chan struct{}),
	}
	if err := fw.Add(filepath.Dir(configPath)); err != nil {
		_ = fw.Close()
		return nil, err
	}
	if tourScript != "" {
		if err := w.watchTour(tourScript); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	go w.run()
	return w, nil
}

// SetTourScript retargets the tour watch after a config edit moves the
// script path. An empty path stops tour reloads.
func (w *Watcher) SetTourScript(path string) error {
	if path == "" {
		w.mu.Lock()
		w.tourPath = ""
		w.mu.Unlock()
		return nil
	}
	return w.watchTour(path)
}

func (w *Watcher) watchTour(path string) error {
	if err := w.watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}
	w.mu.Lock()
	w.tourPath = filepath.Clean(path)
	w.mu.Unlock()
	return nil
}

// Close stops the watcher. The run goroutine owns the outgoing channels, so
// Close waits for it to exit before closing them; a send can never race a
// close.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	last := make(map[Reload]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			r, matched := w.classify(event.Name)
			if !matched {
				continue
			}
			now := time.Now()
			if t, seen := last[r]; seen && now.Sub(t) < debounceWindow {
				continue
			}
			last[r] = now
			select {
			case w.Events <- r:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			}
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) classify(name string) (Reload, bool) {
	name = filepath.Clean(name)
	w.mu.Lock()
	defer w.mu.Unlock()
	switch name {
	case w.configPath:
		return ReloadConfig, true
	case w.tourPath:
		return ReloadTour, true
	}
	return 0, false
}
