package plugin

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// ListWatcher signals when the persisted plugin list is rewritten by
// another process, so a holder can reload its in-memory copy. The parent
// directory is watched rather than the file itself: saves replace the file
// by rename, which would otherwise drop the watch.
type ListWatcher struct {
	watcher  *fsnotify.Watcher
	logger   zerolog.Logger
	file     string
	onChange func()
	debounce time.Duration
	timer    *time.Timer
	stopCh   chan struct{}
}

// NewListWatcher starts watching the plugin list at path. onChange fires,
// debounced, after the file is created, rewritten, or removed.
func NewListWatcher(logger zerolog.Logger, path string, onChange func()) (*ListWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	lw := &ListWatcher{
		watcher:  watcher,
		logger:   logger.With().Str("component", "list-watcher").Logger(),
		file:     filepath.Clean(path),
		onChange: onChange,
		debounce: 500 * time.Millisecond,
		stopCh:   make(chan struct{}),
	}

	if err := watcher.Add(filepath.Dir(lw.file)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(lw.file), err)
	}

	go lw.run()

	return lw, nil
}

// Stop stops the watcher and cancels any debounced callback that has not
// fired yet.
func (lw *ListWatcher) Stop() error {
	close(lw.stopCh)
	return lw.watcher.Close()
}

// run processes file system events. The debounce timer is only ever touched
// here, so shutdown can cancel it without locking.
func (lw *ListWatcher) run() {
	defer func() {
		if lw.timer != nil {
			lw.timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-lw.watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != lw.file {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				lw.logger.Debug().
					Str("op", event.Op.String()).
					Msg("Plugin list change detected")

				lw.scheduleChange()
			}

		case err, ok := <-lw.watcher.Errors:
			if !ok {
				return
			}
			lw.logger.Error().Err(err).Msg("Plugin list watcher error")

		case <-lw.stopCh:
			return
		}
	}
}

// scheduleChange debounces the change callback
func (lw *ListWatcher) scheduleChange() {
	if lw.timer != nil {
		lw.timer.Stop()
	}

	lw.timer = time.AfterFunc(lw.debounce, lw.onChange)
}
