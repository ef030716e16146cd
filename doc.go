/*
Package reactor provides a synchronous, pull-based reactive-dataflow engine:
a library for composing time-varying computations ("reactors") that are
driven forward in discrete commit sequences.

A reactor denotes a lazy sequence of values of some element type T, produced
one-per-sequence in response to upstream reactors. Reactors are composed by
lifting pure functions over them (Lift), by control combinators (Chain,
Until, Range, First, Unconsecutive, Concur), by leaves (Constant, None,
Throw, Perpetual, Queue), and by type-erased wrappers (Box, SharedBox) for
dynamic composition.

# The protocol

A driver repeatedly calls Commit(sequence) on a root reactor with
monotonically increasing sequence numbers. Each reactor in turn commits its
children at the same sequence, aggregates their State, and optionally
recomputes its own value. The driver inspects the returned State and, when
it carries the evaluation bit, reads Eval. The driver stops once the root
reports a complete State.

	c := Constant(10)
	state := c.Commit(0)
	if HasEvaluation(state) {
	    v, err := c.Eval()
	}

See the driver subpackage for a minimal reference executor loop; it is a
reference, not the only valid one.

# Single-threaded, cooperative

There is no internal concurrency inside Commit: a reactor that wants to wait
returns a non-evaluating, non-complete State rather than blocking. The only
mutable state reachable from outside a commit chain is Queue and Shared;
both document their own re-entrancy contract.

# Errors

Commit never fails: an error raised by a lifted function, or propagated
from a child's Eval, is captured into the reactor's value slot as a
deferred error and only surfaces when a consumer calls Eval. Calling Eval
before any evaluation has occurred is a programming error; Queue, None and
the combinators panic on it. Commit does not check that sequence numbers
never decrease.

# Composition surface

	Lift0..Lift4, BoxedLift   — apply a pure function to N children
	Chain                     — emit A until complete, then emit B
	Until                     — emit Series until Condition is truthy
	Range                     — count from start to stop by step
	First                     — emit the first value, then complete
	Unconsecutive             — suppress consecutive duplicate values
	Concur                    — commit several same-typed reactors together
	Constant, None, Throw     — trivial leaves
	Perpetual, StateReactor   — pulse and state-mirroring leaves
	Queue                     — external-input leaf
	Shared                    — aliasing wrapper, at most one commit/sequence
	Box, SharedBox            — type-erased handles

The driver, hostbind, debug, and source subpackages wire the core protocol
into a runnable host: a reference executor loop, a host-language binding
registry, a diagnostic snapshot dump, and adapters that feed external
change notifications (files, Redis, Consul, etcd, NATS) into a Queue.
*/
package reactor
