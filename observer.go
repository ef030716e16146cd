package reactor

// Observer lets a host application integrate this package's internals
// with its own metrics or logging. Implement it to receive callbacks on
// the events the core engine itself cannot usefully log (it has no logger
// dependency), but a host almost always wants visibility into.
type Observer interface {
	// OnErrorCaptured is called when a Lifted function's FunctionResult
	// carries a deferred error, or when safeInvoke recovers a panic.
	OnErrorCaptured(err error)

	// OnBoxConstructed is called when hostbind.Box successfully boxes a
	// host value. NewBox and NewSharedBox take no Observer and do not
	// call it.
	OnBoxConstructed()

	// OnQueueOverflow is called when Queue.Push is called after
	// SetComplete, a misuse the Queue tolerates rather than panics on.
	OnQueueOverflow()
}

// NoOpObserver implements Observer with no-op methods. Embed it to
// implement only the methods a particular Observer cares about.
type NoOpObserver struct{}

func (NoOpObserver) OnErrorCaptured(error) {}
func (NoOpObserver) OnBoxConstructed()     {}
func (NoOpObserver) OnQueueOverflow()      {}
