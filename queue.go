package reactor

// Queue is the external-input leaf: a mutator (typically a goroutine
// outside the commit chain, e.g. one of the source adapters) calls Push to
// enqueue values and SetComplete to signal no more are coming. The reactor
// emits pushed values in order, one per commit.
//
// Queue is one of only two components (the other being Shared) that may
// be mutated from outside the commit call chain; Push and SetComplete are
// safe to call concurrently with Commit.
type Queue[T any] struct {
	mu        chan struct{} // binary semaphore; avoids pulling in sync for one field
	pending   []T
	completed bool
	evaluated bool
	hasPeeked bool
	value     T
	observer  Observer
}

// QueueOption configures a Queue.
type QueueOption func(*queueConfig)

type queueConfig struct {
	observer Observer
}

// WithObserver attaches an Observer to receive overflow notifications.
func WithObserver(o Observer) QueueOption {
	return func(c *queueConfig) { c.observer = o }
}

// NewQueue returns an empty Queue.
func NewQueue[T any](opts ...QueueOption) *Queue[T] {
	cfg := queueConfig{observer: NoOpObserver{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	q := &Queue[T]{mu: make(chan struct{}, 1), observer: cfg.observer}
	q.mu <- struct{}{}
	return q
}

func (q *Queue[T]) lock() {
	<-q.mu
}

func (q *Queue[T]) unlock() {
	q.mu <- struct{}{}
}

// Push enqueues v to be emitted by a future commit. Pushing after
// SetComplete is tolerated, not panicked on, but notifies the Queue's
// Observer since it almost always indicates a source adapter that kept
// producing after it should have stopped.
func (q *Queue[T]) Push(v T) {
	q.lock()
	defer q.unlock()
	if q.completed {
		q.observer.OnQueueOverflow()
		return
	}
	q.pending = append(q.pending, v)
}

// SetComplete marks the queue as closed: once its pending values are
// drained, the reactor completes instead of waiting for more.
func (q *Queue[T]) SetComplete() {
	q.lock()
	defer q.unlock()
	q.completed = true
}

// Commit pops the head of the pending queue, if any, into the value slot.
func (q *Queue[T]) Commit(int) State {
	q.lock()
	defer q.unlock()

	if len(q.pending) > 0 {
		q.value = q.pending[0]
		q.pending = q.pending[1:]
		q.hasPeeked = true
		q.evaluated = true
		switch {
		case q.completed && len(q.pending) == 0:
			return CompleteEvaluated
		case len(q.pending) > 0:
			return ContinueEvaluated
		default:
			return Evaluated
		}
	}

	if q.completed {
		if q.evaluated {
			return Complete
		}
		return CompleteEmpty
	}
	if q.evaluated {
		return None
	}
	return Empty
}

// Eval returns the most recently popped value.
func (q *Queue[T]) Eval() (T, error) {
	q.lock()
	defer q.unlock()
	return evalOrPanic(q.hasPeeked, Ok(q.value))
}
