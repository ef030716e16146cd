package reactor

import "testing"

func TestLift1AppliesFunctionOnceChildEvaluates(t *testing.T) {
	a := Constant(5)
	doubled := Lift1(func(m Maybe[int]) FunctionResult[int] {
		v, _ := m.Get()
		return Value(v * 2)
	}, a)

	state := doubled.Commit(0)
	if state != CompleteEvaluated {
		t.Fatalf("commit 0 = %v, want CompleteEvaluated", state)
	}
	v, err := doubled.Eval()
	if err != nil || v != 10 {
		t.Fatalf("got (%d, %v), want (10, nil)", v, err)
	}
}

func TestLift2CombinesTwoChildren(t *testing.T) {
	sum := Lift2(func(a, b Maybe[int]) FunctionResult[int] {
		av, _ := a.Get()
		bv, _ := b.Get()
		return Value(av + bv)
	}, Constant(3), Constant(4))

	state := sum.Commit(0)
	if state != CompleteEvaluated {
		t.Fatalf("commit 0 = %v, want CompleteEvaluated", state)
	}
	v, err := sum.Eval()
	if err != nil || v != 7 {
		t.Fatalf("got (%d, %v), want (7, nil)", v, err)
	}
}

func TestLift0InvokesOnceAndMemoizes(t *testing.T) {
	calls := 0
	l := Lift0(func() FunctionResult[int] {
		calls++
		return Value(99)
	})

	if state := l.Commit(0); state != CompleteEvaluated {
		t.Fatalf("commit 0 = %v, want CompleteEvaluated", state)
	}
	if state := l.Commit(1); state != CompleteEvaluated {
		t.Fatalf("commit 1 = %v, want CompleteEvaluated", state)
	}
	if calls != 1 {
		t.Errorf("expected the function to be invoked exactly once, got %d", calls)
	}
	v, err := l.Eval()
	if err != nil || v != 99 {
		t.Fatalf("got (%d, %v), want (99, nil)", v, err)
	}
}

func TestLift2WaitsForLaggingChildBeforeInvoking(t *testing.T) {
	ready := Constant(1)
	lagging := NewQueue[int]() // never pushed
	calls := 0

	l := Lift2(func(a, b Maybe[int]) FunctionResult[int] {
		calls++
		av, _ := a.Get()
		return Value(av)
	}, ready, lagging)

	state := l.Commit(0)
	if calls != 0 {
		t.Errorf("should not invoke while a child has never evaluated, got %d calls", calls)
	}
	if !HasContinuation(state) {
		t.Errorf("expected continuation while a child lags, got %v", state)
	}
	if HasEvaluation(state) {
		t.Errorf("f was never invoked, so the returned state must not carry the evaluation bit, got %v", state)
	}
}

func TestLift2DoesNotLeakChildEvaluationBitWhenNotInvoked(t *testing.T) {
	ready := Constant(1)
	lagging := NewQueue[int]() // never pushed, never completed
	l := Lift2(func(a, b Maybe[int]) FunctionResult[int] {
		av, _ := a.Get()
		return Value(av)
	}, ready, lagging)

	state := l.Commit(0)
	if HasEvaluation(state) {
		t.Fatalf("lift should not report evaluation when f was never invoked, got %v", state)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("Eval before any invocation should panic per the reactor protocol")
		}
	}()
	l.Eval()
}

func TestLift1CapturesPanicAsDeferredError(t *testing.T) {
	l := Lift1(func(m Maybe[int]) FunctionResult[int] {
		panic("boom")
	}, Constant(1))

	state := l.Commit(0)
	if !HasEvaluation(state) {
		t.Fatalf("expected evaluation bit even on panic, got %v", state)
	}
	_, err := l.Eval()
	if err == nil {
		t.Fatal("expected panic to surface as a deferred error on Eval")
	}
}
