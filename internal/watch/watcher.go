package watch

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Invalidator is anything holding a cached dataset that can be dropped.
type Invalidator interface {
	Invalidate()
}

// Watch observes the data directory and invalidates the given caches
// whenever the input file set changes, so dashboards pick up freshly
// dropped exports without a manual reload. Returns a stop function.
func Watch(dataDir string, targets ...Invalidator) (func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create data directory watcher: %w", err)
	}

	if err := watcher.Add(dataDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %q: %w", dataDir, err)
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				fmt.Printf("👀 Data directory changed (%s), dropping caches\n", event.Name)
				for _, t := range targets {
					t.Invalidate()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Printf("❌ Watcher error: %v\n", err)
			}
		}
	}()

	return watcher.Close, nil
}
