package reactor

import (
	"errors"
	"testing"
)

func TestMaybeOk(t *testing.T) {
	m := Ok(42)
	if !m.IsSet() {
		t.Fatal("expected IsSet")
	}
	if m.IsError() {
		t.Fatal("did not expect IsError")
	}
	v, err := m.Get()
	if err != nil || v != 42 {
		t.Errorf("got (%d, %v), want (42, nil)", v, err)
	}
}

func TestMaybeErr(t *testing.T) {
	wantErr := errors.New("boom")
	m := Err[int](wantErr)
	if !m.IsSet() {
		t.Fatal("expected IsSet")
	}
	if !m.IsError() {
		t.Fatal("expected IsError")
	}
	v, err := m.Get()
	if err != wantErr || v != 0 {
		t.Errorf("got (%d, %v), want (0, %v)", v, err, wantErr)
	}
}

func TestMaybeUnsetGetReturnsZeroAndNil(t *testing.T) {
	var m Maybe[string]
	if m.IsSet() {
		t.Fatal("zero Maybe should not be set")
	}
	v, err := m.Get()
	if err != nil || v != "" {
		t.Errorf("got (%q, %v), want (\"\", nil)", v, err)
	}
}

func TestMaybeMustGetPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustGet to panic on an error Maybe")
		}
	}()
	Err[int](errors.New("boom")).MustGet()
}

func TestMaybeMustGetReturnsValue(t *testing.T) {
	if got := Ok(7).MustGet(); got != 7 {
		t.Errorf("got %d, want 7", got)
	}
}

func TestMapMaybe(t *testing.T) {
	doubled := mapMaybe(Ok(3), func(v int) int { return v * 2 })
	if v, _ := doubled.Get(); v != 6 {
		t.Errorf("got %d, want 6", v)
	}

	wantErr := errors.New("boom")
	errored := mapMaybe(Err[int](wantErr), func(v int) int { return v * 2 })
	if _, err := errored.Get(); err != wantErr {
		t.Errorf("got %v, want %v", err, wantErr)
	}
}
