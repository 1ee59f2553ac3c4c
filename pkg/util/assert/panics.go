package assert

import (
	"errors"
	"testing"
)

// Panics errors if fn does not panic, otherwise it returns the recovered
// value.
func Panics(t *testing.T, fn func(), msg ...any) (recovered any) {
	t.Helper()
	//
	defer func() {
		recovered = recover()
		//
		if recovered == nil {
			t.Errorf("expected panic")

			if len(msg) != 0 {
				t.Errorf(msg[0].(string), msg[1:]...)
			}

			t.FailNow()
		}
	}()
	//
	fn()
	//
	return nil
}

// PanicsWith errors unless fn panics with an error matching target (in the
// sense of errors.Is).
func PanicsWith(t *testing.T, target error, fn func(), msg ...any) {
	t.Helper()
	//
	recovered := Panics(t, fn, msg...)
	//
	if err, ok := recovered.(error); !ok || !errors.Is(err, target) {
		t.Errorf("expected panic with %v, actual: %v", target, recovered)

		if len(msg) != 0 {
			t.Errorf(msg[0].(string), msg[1:]...)
		}

		t.FailNow()
	}
}

// ErrorIs errors unless err matches target (in the sense of errors.Is).
func ErrorIs(t *testing.T, err error, target error, msg ...any) {
	t.Helper()
	//
	if errors.Is(err, target) {
		return
	}

	t.Errorf("expected error: %v, actual: %v", target, err)

	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}

	t.FailNow()
}

// NoError errors if err is not nil.
func NoError(t *testing.T, err error, msg ...any) {
	t.Helper()
	//
	if err == nil {
		return
	}

	t.Errorf("unexpected error: %v", err)

	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}

	t.FailNow()
}
