// Package etcd feeds a reactor.Queue[[]byte] from an etcd key using the
// native Watch API, driving a Queue directly from the watch loop.
package etcd

import (
	"context"
	"fmt"

	clientv3 "go.etcd.io/etcd/client/v3"

	"github.com/driftwave/reactor"
	"github.com/driftwave/reactor/source"
)

// Start watches key on client and pushes its value into q on every PUT,
// emitting the current value immediately.
func Start(ctx context.Context, client *clientv3.Client, key string, q *reactor.Queue[[]byte], opts ...source.Option) error {
	resp, err := client.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("etcd: failed to get initial value: %w", err)
	}

	raw := make(chan []byte)

	go func() {
		defer close(raw)

		if len(resp.Kvs) > 0 {
			select {
			case raw <- resp.Kvs[0].Value:
			case <-ctx.Done():
				return
			}
		}

		watchChan := client.Watch(ctx, key, clientv3.WithRev(resp.Header.Revision+1))
		for {
			select {
			case <-ctx.Done():
				return
			case watchResp, ok := <-watchChan:
				if !ok {
					return
				}
				if watchResp.Err() != nil {
					continue
				}
				for _, event := range watchResp.Events {
					if event.Type == clientv3.EventTypePut {
						select {
						case raw <- event.Kv.Value:
						case <-ctx.Done():
							return
						}
					}
				}
			}
		}
	}()

	source.Drain(ctx, raw, q, opts...)
	return nil
}
