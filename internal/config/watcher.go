package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/restmode/restmode/internal/events"
	"github.com/restmode/restmode/internal/logging"
)

// debounceWindow absorbs the write bursts editors and the settings window
// produce when saving (truncate + write + chmod arrive as separate events).
const debounceWindow = 250 * time.Millisecond

// Watcher reloads the configuration when the file changes on disk and
// publishes a config-changed event.
type Watcher struct {
	path    string
	store   *Store
	bus     *events.EventBus
	logger  *logging.Logger
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewWatcher creates a watcher for the given config path.
// The parent directory is watched rather than the file itself so that
// atomic-rename saves keep being observed.
func NewWatcher(path string, store *Store, bus *events.EventBus, logger *logging.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch config directory: %w", err)
	}
	return &Watcher{
		path:    path,
		store:   store,
		bus:     bus,
		logger:  logger,
		watcher: fw,
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	go w.loop()
}

// Stop stops watching. Safe to call once.
func (w *Watcher) Stop() {
	close(w.done)
	w.watcher.Close()
}

func (w *Watcher) loop() {
	var pending *time.Timer
	for {
		select {
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
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(debounceWindow, w.reload)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("Config watcher error")
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.logger.Warn().Err(err).Str("path", w.path).Msg("Failed to reload config after change, keeping current values")
		return
	}
	if err := cfg.Validate(); err != nil {
		w.logger.Warn().Err(err).Msg("Reloaded config is invalid, clamping")
		cfg.Clamp()
	}
	w.store.Replace(cfg)
	w.logger.Info().Str("path", w.path).Msg("Configuration reloaded from disk")
	if w.bus != nil {
		w.bus.Publish(events.NewConfigChanged("file_watch"))
	}
}
