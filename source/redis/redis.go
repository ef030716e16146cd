// Package redis feeds a reactor.Queue[[]byte] from a Redis key's keyspace
// notifications, via a subscribe-and-poll loop that drives a Queue
// directly.
//
// Requires keyspace notifications enabled on the server:
//
//	CONFIG SET notify-keyspace-events KEA
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/driftwave/reactor"
	"github.com/driftwave/reactor/source"
)

// Start watches key on client and pushes its value into q whenever a
// keyspace notification reports a write, emitting the current value
// immediately.
func Start(ctx context.Context, client *redis.Client, key string, q *reactor.Queue[[]byte], opts ...source.Option) error {
	channel := fmt.Sprintf("__keyspace@0__:%s", key)
	pubsub := client.Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return fmt.Errorf("redis: failed to subscribe: %w", err)
	}

	raw := make(chan []byte)

	go func() {
		defer close(raw)
		defer pubsub.Close()

		val, err := client.Get(ctx, key).Bytes()
		if err != nil && err != redis.Nil {
			return
		}
		if err != redis.Nil {
			select {
			case raw <- val:
			case <-ctx.Done():
				return
			}
		}

		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				switch msg.Payload {
				case "set", "hset", "mset", "setex", "psetex", "setnx":
					val, err := client.Get(ctx, key).Bytes()
					if err != nil {
						continue
					}
					select {
					case raw <- val:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()

	source.Drain(ctx, raw, q, opts...)
	return nil
}
