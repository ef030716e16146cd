// Package driver provides a reference executor loop for a reactor graph.
// This engine deliberately has no opinion on scheduling — the specific
// executor that drives commit in a loop is an external collaborator — so
// this package is a reference, not the only valid one, offered because a
// library with no runnable example is not a complete Go module.
package driver

import (
	"context"
	"fmt"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"

	"github.com/driftwave/reactor"
)

// Started is emitted when Drive or DriveContext begins.
var Started = capitan.NewSignal("reactor.driver.started", "driver began running a reactor graph")

// Stopped is emitted when the graph completes and the driver returns.
var Stopped = capitan.NewSignal("reactor.driver.stopped", "driver's reactor graph completed")

// SequenceAdvanced is emitted on every commit.
var SequenceAdvanced = capitan.NewSignal("reactor.driver.sequence.advanced", "driver advanced the commit sequence")

// KeyCommitLatency is the wall-clock time spent between the start of one
// commit and the start of the next, carried on SequenceAdvanced.
var KeyCommitLatency = capitan.NewDurationKey("commit_latency")

// Option configures a driver run.
type Option func(*config)

type config struct {
	clock       clockz.Clock
	onEval      func(sequence int)
	startSeq    int
	emitCapitan bool
}

// WithClock sets the clock used to timestamp commits, primarily so tests
// can substitute clockz.FakeClock for deterministic timing.
func WithClock(clock clockz.Clock) Option {
	return func(c *config) { c.clock = clock }
}

// WithStartSequence overrides the sequence Drive begins at (default 0).
func WithStartSequence(seq int) Option {
	return func(c *config) { c.startSeq = seq }
}

// WithOnSequence registers a callback invoked with each sequence number
// right after its commit, regardless of whether it evaluated.
func WithOnSequence(f func(sequence int)) Option {
	return func(c *config) { c.onEval = f }
}

// WithSignals enables capitan signal emission for lifecycle events.
func WithSignals() Option {
	return func(c *config) { c.emitCapitan = true }
}

func resolve(opts []Option) config {
	cfg := config{clock: clockz.RealClock, startSeq: 0}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Drive runs root to completion or until it returns control without
// requesting a continuation, whichever comes first:
//
//  1. Starts at the configured start sequence (0 by default).
//  2. Calls root.Commit(sequence).
//  3. If the result has the evaluation bit, calls onEval with root.Eval().
//  4. If the result has the continuation bit, increments sequence and
//     repeats immediately, without returning to the caller.
//  5. If the result is complete, stops and returns.
//  6. Otherwise returns control to the caller — a real host calls Drive
//     again with a larger sequence once it has new external input ready
//     (for instance after a Queue.Push).
//
// Drive never suspends inside a single Commit call; any wait happens
// strictly between sequences, in the caller, keeping the engine itself
// coroutine-free.
func Drive[T any](ctx context.Context, root reactor.Reactor[T], onEval func(T), opts ...Option) (nextSequence int, complete bool, err error) {
	cfg := resolve(opts)
	if cfg.emitCapitan {
		capitan.Emit(ctx, Started)
	}

	sequence := cfg.startSeq
	last := cfg.clock.Now()
	for {
		if err := ctx.Err(); err != nil {
			return sequence, false, fmt.Errorf("driver: %w", err)
		}

		now := cfg.clock.Now()
		latency := now.Sub(last)
		last = now
		state := root.Commit(sequence)

		if reactor.HasEvaluation(state) && onEval != nil {
			v, err := root.Eval()
			if err != nil {
				return sequence, false, fmt.Errorf("driver: eval failed at sequence %d: %w", sequence, err)
			}
			onEval(v)
		}
		if cfg.onEval != nil {
			cfg.onEval(sequence)
		}
		if cfg.emitCapitan {
			capitan.Emit(ctx, SequenceAdvanced, reactor.KeySequence.Field(sequence), KeyCommitLatency.Field(latency))
		}

		if reactor.IsComplete(state) {
			if cfg.emitCapitan {
				capitan.Emit(ctx, Stopped)
			}
			return sequence + 1, true, nil
		}
		if !reactor.HasContinuation(state) {
			return sequence + 1, false, nil
		}
		sequence++
	}
}

// DriveContext runs Drive repeatedly, blocking on trigger between calls,
// for hosts that want one blocking call instead of managing their own
// re-entry after external input arrives. It returns when root completes,
// ctx is canceled, or trigger is closed.
func DriveContext[T any](ctx context.Context, root reactor.Reactor[T], onEval func(T), trigger <-chan struct{}, opts ...Option) error {
	cfg := resolve(opts)
	sequence := cfg.startSeq
	for {
		next, complete, err := Drive(ctx, root, onEval, append(opts, WithStartSequence(sequence))...)
		if err != nil {
			return err
		}
		if complete {
			return nil
		}
		sequence = next

		select {
		case <-ctx.Done():
			return fmt.Errorf("driver: %w", ctx.Err())
		case _, ok := <-trigger:
			if !ok {
				return nil
			}
		}
	}
}
