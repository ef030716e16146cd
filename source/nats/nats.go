// Package nats feeds a reactor.Queue[[]byte] from a NATS JetStream KV key
// using the native Watch API, driving a Queue directly from the watch
// loop.
package nats

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/driftwave/reactor"
	"github.com/driftwave/reactor/source"
)

// Start watches key in kv and pushes its value into q on every update,
// skipping deletes and purges.
func Start(ctx context.Context, kv jetstream.KeyValue, key string, q *reactor.Queue[[]byte], opts ...source.Option) error {
	watcher, err := kv.Watch(ctx, key)
	if err != nil {
		return fmt.Errorf("nats: failed to watch key: %w", err)
	}

	raw := make(chan []byte)

	go func() {
		defer close(raw)
		defer watcher.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case entry, ok := <-watcher.Updates():
				if !ok {
					return
				}
				if entry == nil {
					continue
				}
				if entry.Operation() == jetstream.KeyValueDelete || entry.Operation() == jetstream.KeyValuePurge {
					continue
				}
				select {
				case raw <- entry.Value():
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	source.Drain(ctx, raw, q, opts...)
	return nil
}
