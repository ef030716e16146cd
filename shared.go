package reactor

// Shared wraps a reactor R so it can appear in multiple positions within
// one graph while being committed at most once per sequence, no matter how
// many holders delegate to it. It memoizes (sequence, state) on the
// shared cell: within one sequence, Shared's Commit must be invoked at
// most once; all holders observe the same returned State, and re-entrant
// calls (a holder calling back into the same Shared cell while already
// inside its Commit) are forbidden by contract, not guarded at runtime,
// matching the single-threaded cooperative model.
type Shared[T any] struct {
	child            Reactor[T]
	previousSequence int
	state            State
	started          bool
}

// NewShared wraps child in a Shared cell.
func NewShared[T any](child Reactor[T]) *Shared[T] {
	return &Shared[T]{child: child}
}

// Commit delegates to the wrapped reactor at most once per sequence.
func (s *Shared[T]) Commit(sequence int) State {
	if s.started && (sequence == s.previousSequence || IsComplete(s.state)) {
		return s.state
	}
	s.state = s.child.Commit(sequence)
	s.previousSequence = sequence
	s.started = true
	return s.state
}

// Eval returns the wrapped reactor's current value.
func (s *Shared[T]) Eval() (T, error) {
	return s.child.Eval()
}
