// Package debug renders a reactor graph's last-known per-node states as
// YAML, for hosts that want to print "what does this graph look like
// right now" without instrumenting every node by hand. It follows the
// teacher's codec.go convention of reaching for gopkg.in/yaml.v3 rather
// than hand-rolling serialization.
package debug

import (
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/driftwave/reactor"
)

// Snapshot accumulates the most recent commit State recorded against each
// named node in a graph. It is safe for concurrent use: Track's wrapper
// calls Record from whatever goroutine drives the graph's commits, and a
// host can call YAML from another goroutine (for instance an HTTP debug
// endpoint) at any time.
type Snapshot struct {
	mu    sync.Mutex
	order []string
	nodes map[string]entry
}

type entry struct {
	Sequence     int  `yaml:"sequence"`
	Evaluated    bool `yaml:"evaluated"`
	Continuation bool `yaml:"continuation"`
	Complete     bool `yaml:"complete"`
	Empty        bool `yaml:"empty"`
}

// namedEntry flattens entry with its node name for ordered YAML output;
// a plain map loses the insertion order that makes a snapshot readable
// top-to-bottom in the order nodes were registered.
type namedEntry struct {
	Name  string `yaml:"name"`
	entry `yaml:",inline"`
}

// NewSnapshot returns an empty Snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{nodes: make(map[string]entry)}
}

// Record stores the State most recently observed for the node named
// name, committed at sequence. Calling Record again for the same name
// overwrites its prior entry.
func (s *Snapshot) Record(name string, sequence int, state reactor.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, seen := s.nodes[name]; !seen {
		s.order = append(s.order, name)
	}
	s.nodes[name] = entry{
		Sequence:     sequence,
		Evaluated:    reactor.HasEvaluation(state),
		Continuation: reactor.HasContinuation(state),
		Complete:     reactor.IsComplete(state),
		Empty:        reactor.IsEmpty(state),
	}
}

// YAML renders the snapshot's current nodes, in the order they were
// first recorded, as a YAML document.
func (s *Snapshot) YAML() ([]byte, error) {
	s.mu.Lock()
	ordered := make([]namedEntry, 0, len(s.order))
	for _, name := range s.order {
		ordered = append(ordered, namedEntry{Name: name, entry: s.nodes[name]})
	}
	s.mu.Unlock()

	return yaml.Marshal(ordered)
}

// Track wraps child so that every commit it performs is also recorded
// into snap under name, then returns the same state and value child
// would have produced on its own. Each call to its Commit commits child
// exactly once and adds no memoization of its own — a debug wrapper must
// never become a second, independent caller into a graph's commit chain,
// since several of this package's reactors (Queue in particular) are not
// safe to commit twice for the same sequence.
func Track[T any](snap *Snapshot, name string, child reactor.Reactor[T]) reactor.Reactor[T] {
	return &trackingReactor[T]{snap: snap, name: name, child: child}
}

type trackingReactor[T any] struct {
	snap  *Snapshot
	name  string
	child reactor.Reactor[T]
}

func (t *trackingReactor[T]) Commit(sequence int) reactor.State {
	state := t.child.Commit(sequence)
	t.snap.Record(t.name, sequence, state)
	return state
}

func (t *trackingReactor[T]) Eval() (T, error) {
	return t.child.Eval()
}

// TrackState composes Track with reactor.StateReactor: it records child's
// commits into snap the same way Track does, and also exposes child's
// running State as a value of its own, for graphs that want to react to
// a node's lifecycle (for instance, a Lift that only fires once some
// upstream node completes) rather than only inspect it from the outside.
func TrackState[T any](snap *Snapshot, name string, child reactor.Reactor[T]) reactor.Reactor[reactor.State] {
	return reactor.StateReactor(Track(snap, name, child))
}
