package clipboard

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event signals that another process changed the local store (for example a
// `copy` or a schedule load refreshing the cache) and cached views should be
// re-read.
type Event struct {
	Key string
}

// Watch streams change events until ctx is cancelled. Rapid bursts of
// filesystem events for the same key are coalesced. Callers should drain
// the channel to avoid blocking the watcher; it is closed when ctx is done.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("clipboard: ensure base path: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("clipboard: create watcher: %w", err)
	}
	if err := watcher.Add(s.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("clipboard: watch base path: %w", err)
	}

	events := make(chan Event, 8)
	go func() {
		defer close(events)
		defer func() { _ = watcher.Close() }()

		var mu sync.Mutex
		pending := map[string]*time.Timer{}

		emit := func(key string) {
			mu.Lock()
			defer mu.Unlock()
			if t, ok := pending[key]; ok {
				t.Stop()
			}
			pending[key] = time.AfterFunc(100*time.Millisecond, func() {
				select {
				case events <- Event{Key: key}:
				case <-ctx.Done():
				}
			})
		}

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
					emit(filepath.Base(ev.Name))
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return events, nil
}
