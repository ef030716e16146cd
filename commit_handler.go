package reactor

// CommitHandler aggregates the commits of a fixed list of children,
// committed in argument order, into one composite State, implementing the
// rules of the Lift/Chain/etc. protocol that every higher-level combinator
// builds on:
//
//   - the aggregate has the evaluation bit iff any child's commit does.
//   - the aggregate has the continuation bit iff any child's commit does,
//     OR a child newly became non-empty this commit while another child
//     was still empty — giving the lagging child a chance to catch up.
//   - the aggregate's empty bit is set iff every live child is still
//     empty.
//   - the aggregate's complete bit is set iff every child is complete.
//
// Once a child reports complete, it is pruned from subsequent traversals;
// its last value remains reachable through the child reactor itself.
// Calling Commit again with the same sequence returns the cached composite
// without re-committing any child.
type CommitHandler struct {
	children         []committer
	wasEmpty         []bool
	completed        []bool
	state            State
	previousSequence int
	started          bool
	anyStillEmpty    bool
}

// committer is the minimal interface CommitHandler needs from a child: the
// Commit half of Reactor, independent of element type so children of
// differing T can share one handler (as Lift's heterogeneous arguments
// do).
type committer interface {
	Commit(sequence int) State
}

// NewCommitHandler constructs a handler over children, in the order they
// will be committed.
func NewCommitHandler(children ...committer) *CommitHandler {
	wasEmpty := make([]bool, len(children))
	for i := range wasEmpty {
		wasEmpty[i] = true
	}
	return &CommitHandler{
		children: children,
		wasEmpty: wasEmpty,
	}
}

// Commit advances every non-complete child to sequence and returns the
// combined State.
func (h *CommitHandler) Commit(sequence int) State {
	if h.started && sequence == h.previousSequence {
		return h.state
	}
	if IsComplete(h.state) {
		return h.state
	}

	var combined State
	combined |= bitEmpty
	allComplete := len(h.children) > 0
	anyBecameNonEmpty := false

	for i, child := range h.children {
		if i >= len(h.wasEmpty) {
			break
		}
		if h.started && h.childComplete(i) {
			continue
		}
		childState := child.Commit(sequence)
		if IsComplete(childState) {
			h.markComplete(i)
		} else {
			allComplete = false
		}

		becameNonEmpty := h.wasEmpty[i] && !IsEmpty(childState)
		if becameNonEmpty {
			h.wasEmpty[i] = false
			anyBecameNonEmpty = true
		} else if IsEmpty(childState) {
			h.wasEmpty[i] = true
		}

		combined = combineChild(combined, childState)
	}

	// A lagging child (still empty on a commit where a live sibling first
	// became non-empty) asks for a re-commit, so every child gets a chance
	// to produce its first value before a dependent (like Lift) reads any
	// of them.
	anyStillEmpty := false
	for i := range h.children {
		if h.childComplete(i) {
			continue
		}
		if h.wasEmpty[i] {
			anyStillEmpty = true
			break
		}
	}
	h.anyStillEmpty = anyStillEmpty
	if anyStillEmpty && anyBecameNonEmpty {
		combined |= bitContinuation
	}

	if allComplete {
		combined |= bitCompletion
	} else {
		combined &^= bitCompletion
	}

	h.state = combined
	h.previousSequence = sequence
	h.started = true
	return h.state
}

// AllEvaluated reports whether every live (non-complete) child has
// evaluated at least once as of the most recent Commit. Lift consults this
// before reading any child's value, since a child that has never evaluated
// panics on Eval.
func (h *CommitHandler) AllEvaluated() bool {
	return !h.anyStillEmpty
}

// childComplete reports, per child index, whether that child has completed
// and should be skipped on future commits.
func (h *CommitHandler) childComplete(i int) bool {
	if h.completed == nil {
		return false
	}
	return h.completed[i]
}

func (h *CommitHandler) markComplete(i int) {
	if h.completed == nil {
		h.completed = make([]bool, len(h.children))
	}
	h.completed[i] = true
}

func combineChild(acc, child State) State {
	result := acc | (child &^ bitEmpty)
	if !IsEmpty(acc) || !IsEmpty(child) {
		result &^= bitEmpty
	}
	return result
}
