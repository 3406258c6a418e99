package settings

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/go-kit/log"
)

// Watcher reapplies the persisted enabled flag to live Settings when the
// settings file changes on disk, so an external toggle reaches a running
// process.
type Watcher struct {
	watcher  *fsnotify.Watcher
	settings *Settings
	path     string
	logger   log.Logger
	done     chan struct{}
	mu       sync.Mutex
	running  bool
}

// NewWatcher creates a watcher for the settings file at path
func NewWatcher(settings *Settings, path string, logger log.Logger) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher:  watcher,
		settings: settings,
		path:     path,
		logger:   logger,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching the settings file for changes.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	// Watch the directory containing the file (more reliable for writes)
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	go w.watch()
	return nil
}

// watch is the main watch loop.
func (w *Watcher) watch() {
	filename := filepath.Base(w.path)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != filename {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				file, err := Load(w.path)
				if err != nil {
					w.logger.Log("msg", "settings file changed but reload failed", "error", err)
					continue
				}
				w.settings.SetEnabled(file.Enabled)
				w.logger.Log("msg", "settings reloaded", "enabled", file.Enabled)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Log("msg", "settings watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	w.running = false
	close(w.done)
	return w.watcher.Close()
}
