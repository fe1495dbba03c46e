package world

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay coalesces the bursts of events editors emit for one save.
const reloadDelay = 100 * time.Millisecond

// Watch reloads the scene at path whenever it changes and passes the result
// to fn until ctx is done. The containing directory is watched so that
// editors which save by rename are followed.
func Watch(ctx context.Context, path string, fn func(*SceneFile, error)) error {
	if _, err := FormatOf(path); err != nil {
		return err
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch scene: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch scene: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch scene: %w", err)
	}

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.After(reloadDelay)
			}
		case <-pending:
			pending = nil
			log.Printf("world: %s changed, reloading", path)
			fn(LoadScene(path))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("world: watch %s: %v", path, err)
		}
	}
}
