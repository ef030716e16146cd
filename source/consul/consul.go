// Package consul feeds a reactor.Queue[[]byte] from a Consul KV key using
// blocking queries, driving a Queue directly from the blocking-query loop.
package consul

import (
	"context"
	"fmt"

	"github.com/hashicorp/consul/api"

	"github.com/driftwave/reactor"
	"github.com/driftwave/reactor/source"
)

// Start watches key on client and pushes its value into q on every change,
// emitting the current value immediately.
func Start(ctx context.Context, client *api.Client, key string, q *reactor.Queue[[]byte], opts ...source.Option) error {
	kv := client.KV()

	pair, meta, err := kv.Get(key, nil)
	if err != nil {
		return fmt.Errorf("consul: failed to get initial value: %w", err)
	}

	raw := make(chan []byte)

	go func() {
		defer close(raw)

		lastIndex := meta.LastIndex
		if pair != nil {
			select {
			case raw <- pair.Value:
			case <-ctx.Done():
				return
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			queryOpts := (&api.QueryOptions{WaitIndex: lastIndex}).WithContext(ctx)
			pair, meta, err := kv.Get(key, queryOpts)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				continue
			}

			if meta.LastIndex > lastIndex && pair != nil {
				lastIndex = meta.LastIndex
				select {
				case raw <- pair.Value:
				case <-ctx.Done():
					return
				}
			} else if meta.LastIndex > lastIndex {
				lastIndex = meta.LastIndex
			}
		}
	}()

	source.Drain(ctx, raw, q, opts...)
	return nil
}
