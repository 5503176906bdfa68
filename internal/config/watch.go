package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 500 * time.Millisecond

// Watch reloads the config whenever the file at path is written and calls
// onChange with the fresh config. Editors often emit bursts of events, so
// reloads are debounced. Returns a stop function; errors creating the
// watcher are returned, reload errors are logged and skipped.
func Watch(ctx context.Context, path string, onChange func(Config)) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, err
	}
	// Watch the directory: editors that rename-and-replace drop the watch
	// on the file itself.
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, err
	}

	watchCtx, cancel := context.WithCancel(ctx)

	go func() {
		var timer *time.Timer
		for {
			select {
			case <-watchCtx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				eventPath, _ := filepath.Abs(event.Name)
				if eventPath != absPath {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(reloadDebounce, func() {
					c, err := Load(absPath)
					if err != nil {
						slog.Error("config reload failed", "path", absPath, "error", err)
						return
					}
					slog.Info("config reloaded", "path", absPath)
					onChange(c)
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("config watcher error", "error", err)
			}
		}
	}()

	return func() {
		cancel()
		watcher.Close()
	}, nil
}
