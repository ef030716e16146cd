// Package source adapts external watch-style APIs — filesystem, Redis,
// Consul, etcd, NATS JetStream KV — into feeders for reactor.Queue, the one
// externally-mutable leaf the engine's commit chain exposes. A source
// never calls Commit itself; it only Pushes and, on permanent failure or
// context cancellation, SetCompletes, leaving every commit to the host's
// driver loop.
package source

import (
	"context"

	"github.com/zoobzio/streamz"

	"github.com/driftwave/reactor"
)

// Option configures how a source feeds its Queue.
type Option func(*config)

type config struct {
	throttleHz float64
}

// WithThrottle caps the feed rate at eventsPerSecond, smoothing a bursty
// upstream (many rapid file writes, a flood of keyspace notifications)
// before it reaches the Queue.
func WithThrottle(eventsPerSecond float64) Option {
	return func(c *config) { c.throttleHz = eventsPerSecond }
}

// Drain pushes every value read from raw into q, in order, until raw
// closes or ctx is canceled, then calls q.SetComplete. It is the shared
// tail every adapter in this package and its subpackages funnels through.
func Drain(ctx context.Context, raw <-chan []byte, q *reactor.Queue[[]byte], opts ...Option) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	in := raw
	if cfg.throttleHz > 0 {
		in = streamz.NewThrottle[[]byte](cfg.throttleHz).Process(ctx, raw)
	}

	go func() {
		defer q.SetComplete()
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}
				q.Push(v)
			}
		}
	}()
}
