package result

import (
	"testing"

	"github.com/wippyai/jvm-runtime/errors"
)

func TestResult_OK(t *testing.T) {
	r := OK(42)

	if !r.IsOK() {
		t.Fatal("OK result should report IsOK")
	}
	if r.IsErr() {
		t.Fatal("OK result should not report IsErr")
	}
	if got := r.Value(); got != 42 {
		t.Errorf("Value() = %d, want 42", got)
	}
	if r.Err() != nil {
		t.Errorf("Err() = %v, want nil", r.Err())
	}

	v, e := r.Get()
	if v != 42 || e != nil {
		t.Errorf("Get() = (%d, %v), want (42, nil)", v, e)
	}
}

func TestResult_Err(t *testing.T) {
	boundary := errors.ClassNotFound(nil, "com/example/Missing")
	r := Err[int](boundary)

	if r.IsOK() {
		t.Fatal("failed result should not report IsOK")
	}
	if !r.IsErr() {
		t.Fatal("failed result should report IsErr")
	}
	if r.Err() != boundary {
		t.Errorf("Err() = %v, want the exact owned error", r.Err())
	}
}

func TestResult_DefaultState(t *testing.T) {
	var r Result[int]

	if r.IsOK() {
		t.Error("default result should not report IsOK")
	}
	if r.IsErr() {
		t.Error("default result should not report IsErr")
	}
	if r.Err() != nil {
		t.Error("default result should hold no error")
	}
}

func TestResult_Take(t *testing.T) {
	boundary := errors.MethodNotFound(nil, "java/lang/Object", "notify", "()V")
	r := Err[string](boundary)

	moved := r.Take()

	if r.IsErr() || r.IsOK() {
		t.Error("source should be in the default state after Take")
	}
	if moved.Err() != boundary {
		t.Errorf("moved.Err() = %v, want the original error", moved.Err())
	}
}

func TestResult_TakeSuccess(t *testing.T) {
	r := OK("payload")
	moved := r.Take()

	if r.IsOK() {
		t.Error("source should be empty after Take")
	}
	if !moved.IsOK() || moved.Value() != "payload" {
		t.Errorf("moved = (%v, %v), want success holding payload", moved.Value(), moved.Err())
	}
}

func TestResult_Must(t *testing.T) {
	r := OK(7)
	if got := r.Must(); got != 7 {
		t.Errorf("Must() = %d, want 7", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Must on a failed result should panic")
		}
	}()
	f := Err[int](errors.ClassNotFound(nil, "x/Y"))
	f.Must()
}

func TestFailure_MoveSemantics(t *testing.T) {
	boundary := errors.ClassNotFound(nil, "com/example/Missing")
	f := Raise(boundary)

	if f.Empty() {
		t.Fatal("fresh failure should own its error")
	}

	r := FailAs[int](f)

	if !f.Empty() {
		t.Error("failure should be empty after conversion")
	}
	if !r.IsErr() || r.Err() != boundary {
		t.Errorf("converted result should own the error, got %v", r.Err())
	}
	if r.IsOK() {
		t.Error("conversion must never yield a success state")
	}
}

func TestFailure_TakeError(t *testing.T) {
	boundary := errors.UnsupportedType("uintptr")
	f := Raise(boundary)

	if got := f.TakeError(); got != boundary {
		t.Errorf("TakeError() = %v, want the owned error", got)
	}
	if got := f.TakeError(); got != nil {
		t.Errorf("second TakeError() = %v, want nil", got)
	}
}
