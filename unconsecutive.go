package reactor

// Unconsecutive passes child's state through unchanged except that it
// strips the evaluation bit (and withholds the value) when child evaluates
// to a value equal to the last one it emitted, so two identical values in a
// row collapse into one. Completion and continuation bits are always
// passed through untouched.
type Unconsecutive[T comparable] struct {
	child     Reactor[T]
	value     Maybe[T]
	evaluated bool
}

// NewUnconsecutive wraps child, suppressing repeated consecutive values.
func NewUnconsecutive[T comparable](child Reactor[T]) Reactor[T] {
	return &Unconsecutive[T]{child: child}
}

func (u *Unconsecutive[T]) Commit(sequence int) State {
	state := u.child.Commit(sequence)
	if !HasEvaluation(state) {
		return state
	}

	m := tryEval(u.child)
	v, err := m.Get()
	if err != nil {
		u.value = m
		u.evaluated = true
		return state
	}

	if u.evaluated {
		prev, prevErr := u.value.Get()
		if prevErr == nil && prev == v {
			return state &^ bitEvaluation
		}
	}

	u.value = m
	u.evaluated = true
	return state
}

func (u *Unconsecutive[T]) Eval() (T, error) {
	return evalOrPanic(u.evaluated, u.value)
}
