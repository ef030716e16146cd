package reactor

// Concur commits N same-typed children at one sequence, reporting the
// aggregate state — evaluation bit if any child evaluated, continuation if
// any child requests it, complete only once every child is complete — while
// surfacing the value of whichever child most recently evaluated, last
// writer wins in argument order. Every child gets a vote in the aggregate
// state every commit, unlike First, which stops committing non-winning
// children once one evaluates.
type Concur[T any] struct {
	children  []Reactor[T]
	completed []bool
	value     Maybe[T]
	evaluated bool
}

// NewConcur returns a reactor that commits all children every sequence,
// aggregating their states and surfacing the latest value.
func NewConcur[T any](children ...Reactor[T]) Reactor[T] {
	return &Concur[T]{
		children:  children,
		completed: make([]bool, len(children)),
	}
}

func (c *Concur[T]) Commit(sequence int) State {
	var combined State
	combined |= bitEmpty
	allComplete := len(c.children) > 0

	for i, child := range c.children {
		if c.completed[i] {
			continue
		}
		state := child.Commit(sequence)
		if IsComplete(state) {
			c.completed[i] = true
		} else {
			allComplete = false
		}
		if HasEvaluation(state) {
			c.value = tryEval(child)
			c.evaluated = true
		}
		combined = combineChild(combined, state)
	}

	if allComplete {
		combined |= bitCompletion
	} else {
		combined &^= bitCompletion
	}
	if c.evaluated {
		combined &^= bitEmpty
	}
	return combined
}

func (c *Concur[T]) Eval() (T, error) {
	return evalOrPanic(c.evaluated, c.value)
}
