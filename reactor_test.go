package reactor

import "testing"

func TestToReactorIsIdentity(t *testing.T) {
	c := Constant(5)
	if ToReactor(c) != c {
		t.Error("ToReactor should return the same reactor unchanged")
	}
}

func TestEvalOrPanicReturnsValue(t *testing.T) {
	v, err := evalOrPanic(true, Ok(9))
	if err != nil || v != 9 {
		t.Errorf("got (%d, %v), want (9, nil)", v, err)
	}
}

func TestDerefUnwrapsPointerHeldReactors(t *testing.T) {
	shared := NewShared[int](Constant(5))
	r := Deref[int](shared)
	if r != shared {
		t.Error("Deref should return the pointer itself, satisfying Reactor[T] directly")
	}
	if state := r.Commit(0); state != CompleteEvaluated {
		t.Fatalf("commit 0 = %v, want CompleteEvaluated", state)
	}

	boxed := NewBox[int](Constant(9))
	if b := Deref[int](boxed); b != boxed {
		t.Error("Deref should return the boxed pointer itself")
	}
}

func TestEvalOrPanicPanicsBeforeEvaluation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when hasEvaluated is false")
		}
	}()
	evalOrPanic(false, Ok(0))
}
