// Package file feeds a reactor.Queue[[]byte] from a filesystem path,
// pushing the file's contents on every write. The fsnotify watch loop
// drives a Queue directly instead of handing back a channel for a caller
// to drain.
package file

import (
	"context"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/driftwave/reactor"
	"github.com/driftwave/reactor/source"
)

// Start watches path and pushes its contents into q on every write,
// emitting the current contents immediately so q has an initial value
// without waiting for the first change. It returns once the watcher is
// established; feeding continues in the background until ctx is canceled.
func Start(ctx context.Context, path string, q *reactor.Queue[[]byte], opts ...source.Option) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("file: failed to create fsnotify watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return fmt.Errorf("file: failed to watch %s: %w", path, err)
	}

	raw := make(chan []byte)

	go func() {
		defer close(raw)
		defer watcher.Close()

		if data, err := os.ReadFile(path); err == nil {
			select {
			case raw <- data:
			case <-ctx.Done():
				return
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				data, err := os.ReadFile(path)
				if err != nil {
					continue
				}
				select {
				case raw <- data:
				case <-ctx.Done():
					return
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	source.Drain(ctx, raw, q, opts...)
	return nil
}
