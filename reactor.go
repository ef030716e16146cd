package reactor

// Reactor is the contract every component in this package satisfies: a
// lazy, pull-driven, discretely-clocked producer of values of type T.
//
// Commit is total and non-failing: errors produced by user-supplied
// functions are captured into the value slot, not propagated here. Eval
// may fail — it either returns the most recently evaluated value or
// re-raises a deferred error captured during the commit that produced it.
// Eval is only meaningful to call when the last Commit returned a State
// with the evaluation bit, or after any prior evaluation (a reactor must
// retain its last value through subsequent non-evaluating commits). Eval
// before any evaluation has ever occurred is a protocol violation rather
// than a recoverable error: Queue, None and the combinators panic on it,
// while Constant, Throw, Perpetual and StateReactor return their fixed or
// current value without checking.
type Reactor[T any] interface {
	// Commit advances this reactor to sequence, returning its new State.
	// sequence must be greater than or equal to any sequence previously
	// passed to Commit.
	Commit(sequence int) State

	// Eval returns the reactor's current value, or the deferred error
	// captured in its place.
	Eval() (T, error)
}

// Pointer is satisfied by a Reactor held by reference rather than by
// value — *Shared[T] and *Box[T] both implement it via their own Commit and
// Eval, so Deref below treats every reactor uniformly regardless of how
// the caller holds it.
type Pointer[T any] interface {
	Reactor[T]
}

// ToReactor adapts a concrete value so it can be used uniformly wherever a
// Reactor[T] is expected. For types that are already Reactor[T] it is the
// identity; it exists so combinator constructors can accept either a bare
// reactor or one wrapped in Shared/Box without the caller needing to care.
func ToReactor[T any](r Reactor[T]) Reactor[T] {
	return r
}

// Deref adapts a reactor held by reference — *Shared[T] or *Box[T], both of
// which satisfy Pointer[T] — back into a plain Reactor[T], so a combinator
// constructor can accept either a bare reactor or one wrapped for sharing
// without the caller needing a separate call site for each.
func Deref[T any](p Pointer[T]) Reactor[T] {
	return p
}

// evalOrPanic reads r's value, panicking if r has never produced one. It
// backs the protocol-violation panic described on Reactor.Eval for leaf
// implementations that have no other way to detect "called before any
// evaluation."
func evalOrPanic[T any](hasEvaluated bool, m Maybe[T]) (T, error) {
	if !hasEvaluated {
		panic("reactor: Eval called before any evaluation")
	}
	return m.Get()
}
