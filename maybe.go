package reactor

// Maybe is a value-or-deferred-error slot. A reactor stores its current
// value as a Maybe[T]; reading Eval on an error-carrying slot re-raises the
// captured error instead of returning a value. It treats errors as
// ordinary data crossing the graph — a tagged union of value and error —
// letting Commit stay infallible while errors still reach a consumer
// through the normal Eval call.
type Maybe[T any] struct {
	value T
	err   error
	set   bool
}

// Ok wraps a value in a successful Maybe.
func Ok[T any](value T) Maybe[T] {
	return Maybe[T]{value: value, set: true}
}

// Err wraps a deferred error in a Maybe. Get on this value returns err.
func Err[T any](err error) Maybe[T] {
	return Maybe[T]{err: err, set: true}
}

// IsSet reports whether m holds either a value or an error, i.e. whether it
// has ever been assigned.
func (m Maybe[T]) IsSet() bool {
	return m.set
}

// IsError reports whether m holds a deferred error.
func (m Maybe[T]) IsError() bool {
	return m.set && m.err != nil
}

// Get returns the held value, or the held error. Calling Get on an unset
// Maybe returns the zero value and a nil error; callers that need to
// distinguish "never evaluated" from "evaluated to zero" should consult
// the reactor's State instead.
func (m Maybe[T]) Get() (T, error) {
	return m.value, m.err
}

// MustGet returns the held value, panicking if m holds an error. It exists
// for combinators that have already proven m cannot be an error (e.g. a
// Lift whose function parameter type is Maybe[U] and has already branched
// on IsError).
func (m Maybe[T]) MustGet() T {
	if m.err != nil {
		panic(m.err)
	}
	return m.value
}

// mapMaybe transforms the value inside an ok Maybe, passing an error
// through unchanged.
func mapMaybe[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if m.err != nil {
		return Err[U](m.err)
	}
	return Ok(f(m.value))
}
