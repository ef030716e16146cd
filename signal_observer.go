package reactor

import (
	"context"

	"github.com/zoobzio/capitan"
)

// SignalObserver implements Observer by emitting capitan signals for
// structured-logging integration.
type SignalObserver struct {
	ctx context.Context
}

// NewSignalObserver returns an Observer that emits capitan signals against
// ctx.
func NewSignalObserver(ctx context.Context) SignalObserver {
	return SignalObserver{ctx: ctx}
}

func (o SignalObserver) OnErrorCaptured(err error) {
	capitan.Emit(o.ctx, ErrorCaptured, KeyError.Field(err.Error()))
}

func (o SignalObserver) OnBoxConstructed() {
	capitan.Emit(o.ctx, BoxConstructed)
}

func (o SignalObserver) OnQueueOverflow() {
	capitan.Emit(o.ctx, QueueOverflow)
}
