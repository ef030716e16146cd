package hostbind

import (
	"context"
	"testing"

	"github.com/driftwave/reactor"
)

func TestRegisterAndBoxRoundTrip(t *testing.T) {
	Register[int](func(v int) (reactor.Reactor[any], error) {
		return reactor.Constant[any](v), nil
	})

	boxed, err := Box(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state := boxed.Commit(0); state != reactor.CompleteEvaluated {
		t.Fatalf("commit 0 = %v, want CompleteEvaluated", state)
	}
	v, err := boxed.Eval()
	if err != nil || v != 7 {
		t.Fatalf("got (%v, %v), want (7, nil)", v, err)
	}
}

func TestBoxUnregisteredTypeErrors(t *testing.T) {
	type unregistered struct{ X int }
	_, err := Box(context.Background(), unregistered{X: 1})
	if err == nil {
		t.Fatal("expected an error for a type with no registered converter")
	}
}

type sampleStruct struct {
	Name string `validate:"required"`
}

func TestBoxValidatesStructTags(t *testing.T) {
	Register[sampleStruct](func(v sampleStruct) (reactor.Reactor[any], error) {
		return reactor.Constant[any](v.Name), nil
	})

	_, err := Box(context.Background(), sampleStruct{})
	if err == nil {
		t.Fatal("expected a validation error for a struct missing a required field")
	}

	boxed, err := Box(context.Background(), sampleStruct{Name: "ok"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	boxed.Commit(0)
	v, err := boxed.Eval()
	if err != nil || v != "ok" {
		t.Fatalf("got (%v, %v), want (\"ok\", nil)", v, err)
	}
}

func TestBoxConverterMismatchErrors(t *testing.T) {
	type onlyString string
	Register[onlyString](func(v onlyString) (reactor.Reactor[any], error) {
		return reactor.Constant[any](string(v)), nil
	})

	// Registering under a distinct named type and boxing a plain string
	// (a different dynamic type) must not find this converter.
	_, err := Box(context.Background(), "plain string")
	if err == nil {
		t.Fatal("expected an error since no converter is registered for a plain string")
	}
}

type observerSpy struct {
	reactor.NoOpObserver
	boxed int
}

func (o *observerSpy) OnBoxConstructed() { o.boxed++ }

func TestBoxNotifiesObserverOnSuccess(t *testing.T) {
	Register[int](func(v int) (reactor.Reactor[any], error) {
		return reactor.Constant[any](v), nil
	})

	spy := &observerSpy{}
	_, err := Box(context.Background(), 3, WithObserver(spy))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spy.boxed != 1 {
		t.Errorf("expected observer to be notified once, got %d", spy.boxed)
	}
}
