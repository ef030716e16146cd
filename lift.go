package reactor

// FunctionResult is the resolved outcome of one invocation of a lifted
// function. Build one with the constructors below; each resolves the
// invocation State up front so Lift's commit loop only has to dispatch on
// the result, never recompute it.
type FunctionResult[T any] struct {
	value           Maybe[T]
	hasValue        bool
	invocationState State
}

// Value wraps a plain return value: the invocation evaluated.
func Value[T any](v T) FunctionResult[T] {
	return FunctionResult[T]{value: Ok(v), hasValue: true, invocationState: Evaluated}
}

// ValueErr wraps a value-or-deferred-error: the invocation evaluated
// regardless of which branch m holds — the error only surfaces on Eval.
func ValueErr[T any](m Maybe[T]) FunctionResult[T] {
	return FunctionResult[T]{value: m, hasValue: true, invocationState: Evaluated}
}

// ValueWithState wraps a value together with a state to resolve against:
// complete resolves to CompleteEvaluated, continuation to
// ContinueEvaluated, otherwise plain Evaluated.
func ValueWithState[T any](v T, state State) FunctionResult[T] {
	return ValueErrWithState(Ok(v), state)
}

// ValueErrWithState is ValueWithState for a value-or-error.
func ValueErrWithState[T any](m Maybe[T], state State) FunctionResult[T] {
	return FunctionResult[T]{value: m, hasValue: true, invocationState: mergeEvaluated(state)}
}

// NoValue produces no value this commit; state resolves to Complete,
// Continue, or None depending on the bits carried by state.
func NoValue[T any](state State) FunctionResult[T] {
	var invocation State
	switch {
	case IsComplete(state):
		invocation = Complete
	case HasContinuation(state):
		invocation = Continue
	default:
		invocation = None
	}
	return FunctionResult[T]{invocationState: invocation}
}

func mergeEvaluated(state State) State {
	switch {
	case IsComplete(state):
		return CompleteEvaluated
	case HasContinuation(state):
		return ContinueEvaluated
	default:
		return Evaluated
	}
}

// LiftOption configures a Lift reactor's ambient behavior.
type LiftOption func(*liftConfig)

type liftConfig struct {
	observer Observer
}

// WithLiftObserver attaches an Observer notified when a Lift's invocation
// captures a deferred error.
func WithLiftObserver(o Observer) LiftOption {
	return func(c *liftConfig) { c.observer = o }
}

func resolveLiftConfig(opts []LiftOption) liftConfig {
	cfg := liftConfig{observer: NoOpObserver{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Lift1 applies f to the current value of a single child reactor, lifted
// over the State lattice: f is only invoked when the child evaluated,
// when a previous commit requested a continuation, or when the child just
// became complete-but-not-empty.
func Lift1[A, T any](f func(Maybe[A]) FunctionResult[T], a Reactor[A], opts ...LiftOption) Reactor[T] {
	return &liftN[T]{
		handler: NewCommitHandler(a),
		invoke: func() FunctionResult[T] {
			return f(tryEval(a))
		},
		observer: resolveLiftConfig(opts).observer,
	}
}

// Lift2 applies f to the current values of two child reactors.
func Lift2[A, B, T any](f func(Maybe[A], Maybe[B]) FunctionResult[T], a Reactor[A], b Reactor[B], opts ...LiftOption) Reactor[T] {
	return &liftN[T]{
		handler: NewCommitHandler(a, b),
		invoke: func() FunctionResult[T] {
			return f(tryEval(a), tryEval(b))
		},
		observer: resolveLiftConfig(opts).observer,
	}
}

// Lift3 applies f to the current values of three child reactors.
func Lift3[A, B, C, T any](f func(Maybe[A], Maybe[B], Maybe[C]) FunctionResult[T], a Reactor[A], b Reactor[B], c Reactor[C], opts ...LiftOption) Reactor[T] {
	return &liftN[T]{
		handler: NewCommitHandler(a, b, c),
		invoke: func() FunctionResult[T] {
			return f(tryEval(a), tryEval(b), tryEval(c))
		},
		observer: resolveLiftConfig(opts).observer,
	}
}

// Lift4 applies f to the current values of four child reactors.
func Lift4[A, B, C, D, T any](f func(Maybe[A], Maybe[B], Maybe[C], Maybe[D]) FunctionResult[T], a Reactor[A], b Reactor[B], c Reactor[C], d Reactor[D], opts ...LiftOption) Reactor[T] {
	return &liftN[T]{
		handler: NewCommitHandler(a, b, c, d),
		invoke: func() FunctionResult[T] {
			return f(tryEval(a), tryEval(b), tryEval(c), tryEval(d))
		},
		observer: resolveLiftConfig(opts).observer,
	}
}

// Lift0 specializes the zero-argument case: f is invoked exactly once, on
// the first commit, and the result is memoized forever after.
func Lift0[T any](f func() FunctionResult[T], opts ...LiftOption) Reactor[T] {
	return &lift0[T]{invoke: f, observer: resolveLiftConfig(opts).observer}
}

// tryEval reads a child's value, converting a captured error into
// Maybe.Err rather than panicking here. The lifted function decides, via
// its parameter type, whether to observe Maybe[A] errors directly or call
// MustGet to let them short-circuit into its own FunctionResult.
func tryEval[A any](r Reactor[A]) Maybe[A] {
	v, err := r.Eval()
	if err != nil {
		return Err[A](err)
	}
	return Ok(v)
}

// liftN is the shared commit/invoke engine behind Lift1..Lift4.
type liftN[T any] struct {
	handler          *CommitHandler
	invoke           func() FunctionResult[T]
	value            Maybe[T]
	state            State
	previousSequence int
	started          bool
	hasContinuation  bool
	hadEvaluation    bool
	observer         Observer
}

func (l *liftN[T]) Commit(sequence int) State {
	if l.started && (sequence == l.previousSequence || IsComplete(l.state)) {
		return l.state
	}

	childState := l.handler.Commit(sequence)

	shouldInvoke := l.hasContinuation ||
		(l.handler.AllEvaluated() && HasEvaluation(childState)) ||
		(IsComplete(childState) && !IsEmpty(childState))

	if shouldInvoke {
		l.hasContinuation = false
		result := safeInvoke(l.invoke)
		if result.hasValue && result.value.IsError() {
			if _, err := result.value.Get(); err != nil {
				l.observer.OnErrorCaptured(err)
			}
		}
		l.state = l.resolve(result, childState)
	} else {
		// f was not invoked this commit, so any evaluation bit childState
		// carries (set by CommitHandler because a sibling evaluated while
		// another child still lags) must not be mistaken by a caller for
		// this Lift having produced a value: l.value was not touched.
		l.state = childState &^ bitEvaluation
	}

	l.previousSequence = sequence
	l.started = true
	l.hadEvaluation = l.hadEvaluation || HasEvaluation(l.state)
	return l.state
}

// safeInvoke recovers a panic raised by the user function and captures it
// as a deferred error: the commit itself still returns normally with the
// evaluation bit set.
func safeInvoke[T any](invoke func() FunctionResult[T]) FunctionResult[T] {
	var result FunctionResult[T]
	func() {
		defer func() {
			if r := recover(); r != nil {
				result = ValueErr[T](Err[T](panicToError(r)))
			}
		}()
		result = invoke()
	}()
	return result
}

// resolve implements the three-way dispatch: invocation == None,
// invocation is complete, or invocation carries evaluation/continuation
// to merge against the children's combined state.
func (l *liftN[T]) resolve(result FunctionResult[T], childState State) State {
	invocation := result.invocationState

	switch {
	case invocation == None:
		switch {
		case IsComplete(childState):
			if l.hadEvaluation {
				return Complete
			}
			return CompleteEmpty
		case HasContinuation(childState):
			return Continue
		default:
			return None
		}

	case IsComplete(invocation):
		if HasEvaluation(invocation) {
			l.value = result.value
			return CompleteEvaluated
		}
		if l.hadEvaluation {
			return Complete
		}
		return CompleteEmpty

	default:
		if result.hasValue {
			l.value = result.value
		}
		state := invocation
		l.hasContinuation = HasContinuation(invocation)
		if HasContinuation(childState) {
			state = Combine(state, Continue)
		} else if IsComplete(childState) && !l.hasContinuation {
			state = Combine(state, Complete)
		}
		return state
	}
}

func (l *liftN[T]) Eval() (T, error) {
	return evalOrPanic(l.hadEvaluation, l.value)
}

// lift0 is Lift's zero-argument specialization.
type lift0[T any] struct {
	invoke    func() FunctionResult[T]
	value     Maybe[T]
	done      bool
	evaluated bool
	observer  Observer
}

func (l *lift0[T]) Commit(int) State {
	if l.done {
		if l.evaluated {
			return CompleteEvaluated
		}
		return CompleteEmpty
	}
	result := safeInvoke(l.invoke)
	l.done = true
	if result.hasValue && result.value.IsError() {
		if _, err := result.value.Get(); err != nil && l.observer != nil {
			l.observer.OnErrorCaptured(err)
		}
	}
	if result.hasValue {
		l.value = result.value
		l.evaluated = true
		return CompleteEvaluated
	}
	return CompleteEmpty
}

func (l *lift0[T]) Eval() (T, error) {
	return evalOrPanic(l.evaluated, l.value)
}
