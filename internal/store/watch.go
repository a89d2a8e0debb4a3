package store

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Watch calls onChange whenever a file in dir is created, written, removed
// or renamed. It returns once the watcher is running; the watch stops when
// ctx is done. Watcher errors go to logf.
func Watch(ctx context.Context, dir string, onChange func(name string), logf func(string, ...any)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("unable to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("unable to watch %s: %w", dir, err)
	}
	go func() {
		defer watcher.Close()
		const interesting = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&interesting != 0 {
					onChange(event.Name)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				if logf != nil {
					logf("watch %s: %v", dir, err)
				}
			}
		}
	}()
	return nil
}
