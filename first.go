package reactor

// First commits every child until one of them evaluates, then completes
// with that child's value (CompleteEvaluated); when several evaluate on
// the same commit, the first in argument order wins. No child is
// committed after that. If every child completes without any of them
// ever evaluating, First completes empty.
type First[T any] struct {
	children  []Reactor[T]
	winner    int // -1 until decided
	value     Maybe[T]
	evaluated bool
	done      bool
}

// NewFirst returns a reactor that races children and completes with the
// value of whichever evaluates first.
func NewFirst[T any](children ...Reactor[T]) Reactor[T] {
	return &First[T]{children: children, winner: -1}
}

func (f *First[T]) Commit(sequence int) State {
	if f.done {
		if f.evaluated {
			return CompleteEvaluated
		}
		return CompleteEmpty
	}

	if f.winner >= 0 {
		state := f.children[f.winner].Commit(sequence)
		if HasEvaluation(state) {
			f.value = tryEval(f.children[f.winner])
			f.evaluated = true
		}
		if IsComplete(state) {
			f.done = true
		}
		return state
	}

	allComplete := true
	for i, child := range f.children {
		state := child.Commit(sequence)
		if !IsComplete(state) {
			allComplete = false
		}
		if f.winner < 0 && HasEvaluation(state) {
			f.winner = i
		}
	}

	if f.winner >= 0 {
		f.value = tryEval(f.children[f.winner])
		f.evaluated = true
		f.done = true
		return CompleteEvaluated
	}

	if allComplete {
		f.done = true
		return CompleteEmpty
	}
	return Empty
}

func (f *First[T]) Eval() (T, error) {
	return evalOrPanic(f.evaluated, f.value)
}
