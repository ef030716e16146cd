package reactor

import "fmt"

// panicToError converts a recovered panic value into an error, so a
// lifted function that panics instead of returning an error is still
// captured as a deferred value rather than crashing the commit chain.
// Panicking is not the intended way to signal a user-function error in
// idiomatic Go — returning an error, or a Maybe.Err FunctionResult, is —
// but Commit must stay total regardless of how the function misbehaves.
func panicToError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("reactor: lifted function panicked: %w", err)
	}
	return fmt.Errorf("reactor: lifted function panicked: %v", r)
}

// Eval before any evaluation, the one protocol violation this package
// detects, is raised directly at the call site as a panic (evalOrPanic)
// rather than routed through an error value: it is an unrecoverable
// programming error, not a user-function error. Commit with a decreasing
// sequence is not detected.
