package reactor

// Chain emits A's values until A completes, then emits B's.
//
// If A completes without evaluating this commit (it reports Complete or
// CompleteEmpty), the transition to B happens in this same commit: B is
// committed immediately and the two states are combined, A's complete bit
// dropped and B's kept. If A completes while also evaluating
// (CompleteEvaluated), the transition is deferred to the next commit —
// this one reports the evaluation with the complete bit stripped, so the
// value surfaces on its own commit before the chain moves on to B.
type Chain[T any] struct {
	a, b      Reactor[T]
	onB       bool
	aDone     bool
	value     Maybe[T]
	evaluated bool
}

// NewChain returns a reactor that emits a's values until a completes, then
// b's.
func NewChain[T any](a, b Reactor[T]) Reactor[T] {
	return &Chain[T]{a: a, b: b}
}

func (c *Chain[T]) Commit(sequence int) State {
	if c.onB {
		return c.stamp(c.commitB(sequence))
	}
	if c.aDone {
		c.onB = true
		return c.stamp(c.commitB(sequence))
	}

	state := c.a.Commit(sequence)
	if HasEvaluation(state) {
		c.value = tryEval(c.a)
		c.evaluated = true
	}

	if !IsComplete(state) {
		return c.stamp(state)
	}
	if HasEvaluation(state) {
		c.aDone = true
		return c.stamp(state &^ bitCompletion)
	}

	// A completed without evaluating (Complete or CompleteEmpty): transition
	// now, within this same commit.
	c.onB = true
	bState := c.commitB(sequence)
	remainder := state &^ bitCompletion
	return c.stamp(Combine(remainder, bState))
}

func (c *Chain[T]) commitB(sequence int) State {
	state := c.b.Commit(sequence)
	if HasEvaluation(state) {
		c.value = tryEval(c.b)
		c.evaluated = true
	}
	return state
}

// stamp enforces that the empty bit reflects whether the chain as a whole
// has ever evaluated, not merely whichever child was just committed — a
// later phase's own emptiness is not the chain's emptiness once an
// earlier phase has already produced a value.
func (c *Chain[T]) stamp(state State) State {
	if HasEvaluation(state) || c.evaluated {
		return state &^ bitEmpty
	}
	return state | bitEmpty
}

func (c *Chain[T]) Eval() (T, error) {
	return evalOrPanic(c.evaluated, c.value)
}
