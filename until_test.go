package reactor

import (
	"errors"
	"testing"
)

func TestUntilTracksSeriesThenCompletesWhenConditionTrips(t *testing.T) {
	cond := NewQueue[bool]()
	cond.Push(false)
	cond.Push(false)
	cond.Push(true)
	cond.SetComplete()

	series := NewQueue[int]()
	series.Push(10)
	series.Push(20)
	series.Push(30)
	series.SetComplete()

	u := NewUntil[int](cond, series)

	state := u.Commit(0)
	if IsComplete(state) {
		t.Fatalf("commit 0 should not be complete yet, got %v", state)
	}
	if v, err := u.Eval(); err != nil || v != 10 {
		t.Fatalf("commit 0 value = (%d, %v), want (10, nil)", v, err)
	}

	state = u.Commit(1)
	if IsComplete(state) {
		t.Fatalf("commit 1 should not be complete yet, got %v", state)
	}
	if v, err := u.Eval(); err != nil || v != 20 {
		t.Fatalf("commit 1 value = (%d, %v), want (20, nil)", v, err)
	}

	state = u.Commit(2)
	if !IsComplete(state) {
		t.Fatalf("commit 2 should complete once condition trips true, got %v", state)
	}
	// series is not committed once the condition trips, so its pending 30
	// is never read and the last value stays 20.
	if v, err := u.Eval(); err != nil || v != 20 {
		t.Fatalf("commit 2 value = (%d, %v), want (20, nil)", v, err)
	}

	if state := u.Commit(3); state != CompleteEvaluated {
		t.Fatalf("commit 3 = %v, want CompleteEvaluated (done, evaluated)", state)
	}
}

func TestUntilCapturesConditionErrorAsItsOwnValue(t *testing.T) {
	wantErr := errors.New("condition boom")
	cond := Throw[bool](wantErr)
	series := Constant(1)

	u := NewUntil[int](cond, series)
	state := u.Commit(0)
	if !HasEvaluation(state) || !IsComplete(state) {
		t.Fatalf("commit 0 = %v, want CompleteEvaluated", state)
	}
	_, err := u.Eval()
	if err != wantErr {
		t.Fatalf("got %v, want %v", err, wantErr)
	}
}

func TestUntilConditionCompletionIsTerminal(t *testing.T) {
	cond := None[bool]() // completes immediately without ever evaluating true
	series := Constant(7)

	u := NewUntil[int](cond, series)
	state := u.Commit(0)
	if !IsComplete(state) {
		t.Fatalf("condition completing should be terminal, got %v", state)
	}
}
