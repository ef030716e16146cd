package reactor

// BoxedLift is Lift's dynamic-arity extension point: where Lift1..Lift4
// take a fixed, compile-time parameter pack, BoxedLift takes a slice of
// type-erased *Box[any] children, for callers (notably hostbind) that
// assemble a child list at runtime and cannot know its length as a Go
// type parameter. f receives the children's boxed values in argument
// order and must do its own type assertions.
func BoxedLift[T any](f func([]Maybe[any]) FunctionResult[T], children []*Box[any], opts ...LiftOption) Reactor[T] {
	committers := make([]committer, len(children))
	for i, c := range children {
		committers[i] = c
	}
	return &liftN[T]{
		handler: NewCommitHandler(committers...),
		invoke: func() FunctionResult[T] {
			values := make([]Maybe[any], len(children))
			for i, c := range children {
				values[i] = tryEval(c)
			}
			return f(values)
		},
		observer: resolveLiftConfig(opts).observer,
	}
}
