package debug

import (
	"strings"
	"testing"

	"github.com/driftwave/reactor"
)

func TestSnapshotRecordsLatestStatePerNode(t *testing.T) {
	snap := NewSnapshot()
	snap.Record("a", 0, reactor.Evaluated)
	snap.Record("a", 1, reactor.CompleteEvaluated)

	out, err := snap.YAML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := string(out)
	if !strings.Contains(text, "name: a") {
		t.Errorf("expected node name in output, got:\n%s", text)
	}
	if !strings.Contains(text, "sequence: 1") {
		t.Errorf("expected the most recent record to win, got:\n%s", text)
	}
	if !strings.Contains(text, "complete: true") {
		t.Errorf("expected complete: true from the overwritten entry, got:\n%s", text)
	}
}

func TestSnapshotPreservesFirstSeenOrder(t *testing.T) {
	snap := NewSnapshot()
	snap.Record("second", 0, reactor.Empty)
	snap.Record("first", 0, reactor.Empty)
	snap.Record("second", 1, reactor.Empty) // re-recording must not move it

	out, err := snap.YAML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := string(out)
	if strings.Index(text, "name: second") > strings.Index(text, "name: first") {
		t.Errorf("expected insertion order (second before first) preserved, got:\n%s", text)
	}
}

func TestTrackCommitsChildExactlyOnce(t *testing.T) {
	calls := 0
	child := &countingReactor{calls: &calls, value: 5}
	snap := NewSnapshot()
	tracked := Track[int](snap, "node", child)

	state := tracked.Commit(0)
	if state != reactor.CompleteEvaluated {
		t.Fatalf("commit 0 = %v, want CompleteEvaluated", state)
	}
	if calls != 1 {
		t.Errorf("expected the child to be committed exactly once, got %d calls", calls)
	}
	v, err := tracked.Eval()
	if err != nil || v != 5 {
		t.Fatalf("got (%d, %v), want (5, nil)", v, err)
	}

	out, err := snap.YAML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "name: node") {
		t.Errorf("expected the tracked node to appear in the snapshot, got:\n%s", out)
	}
}

func TestTrackStateExposesChildStateAsAValue(t *testing.T) {
	snap := NewSnapshot()
	tracked := TrackState[int](snap, "node", reactor.Constant(1))

	state := tracked.Commit(0)
	if state != reactor.CompleteEvaluated {
		t.Fatalf("commit 0 = %v, want CompleteEvaluated", state)
	}
	v, err := tracked.Eval()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != reactor.CompleteEvaluated {
		t.Errorf("exposed state = %v, want CompleteEvaluated", v)
	}
}

// countingReactor counts Commit invocations, mirroring the core package's
// helper of the same name, to verify Track never double-commits its child.
type countingReactor struct {
	calls *int
	value int
}

func (c *countingReactor) Commit(int) reactor.State {
	*c.calls++
	return reactor.CompleteEvaluated
}

func (c *countingReactor) Eval() (int, error) {
	return c.value, nil
}
