package reactor

import "github.com/zoobzio/capitan"

// Core engine signals, emitted by SignalObserver.
var (
	// ErrorCaptured is emitted when a Lift's function result carries a
	// deferred error (including a recovered panic).
	ErrorCaptured = capitan.NewSignal(
		"reactor.error.captured",
		"a lifted function's result carried a deferred error",
	)

	// BoxConstructed is emitted when hostbind.Box successfully boxes a
	// host value.
	BoxConstructed = capitan.NewSignal(
		"reactor.box.constructed",
		"a reactor was boxed",
	)

	// QueueOverflow is emitted when Queue.Push is called after SetComplete.
	QueueOverflow = capitan.NewSignal(
		"reactor.queue.overflow",
		"a value was pushed to a queue after it was marked complete",
	)
)
