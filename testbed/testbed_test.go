package testbed

import (
	"strings"
	"testing"

	jvmruntime "github.com/wippyai/jvm-runtime"
	"github.com/wippyai/jvm-runtime/descriptor"
	"github.com/wippyai/jvm-runtime/runtime"
)

func TestFindClass_Missing(t *testing.T) {
	env := runtime.NewEnv(NewPreloaded())

	r := env.FindClass("com/example/Missing")
	if r.IsOK() {
		t.Fatal("lookup of an unknown class should fail")
	}

	e := r.Err()
	if e == nil {
		t.Fatal("failed lookup should carry an error")
	}
	if !strings.Contains(e.Error(), "com/example/Missing") {
		t.Errorf("error %q does not name the missing class", e.Error())
	}
}

func TestFindClass_GetMethod_CallVoid(t *testing.T) {
	vm := NewPreloaded()
	env := runtime.NewEnv(vm)

	cls := env.FindClass("java/lang/Object")
	if e := cls.Err(); e != nil {
		t.Fatalf("FindClass failed: %v", e)
	}

	m := cls.Value().GetMethod("notify", descriptor.Signature{Ret: descriptor.Void})
	if e := m.Err(); e != nil {
		t.Fatalf("GetMethod failed: %v", e)
	}
	if m.Value().Descriptor() != "()V" {
		t.Errorf("lookup descriptor = %q, want ()V", m.Value().Descriptor())
	}

	m.Value().CallVoid()

	calls := vm.Calls()
	if len(calls) != 1 {
		t.Fatalf("recorded %d boundary calls, want 1", len(calls))
	}
	call := calls[0]
	if call.Class != "java/lang/Object" || call.Method != "notify" {
		t.Errorf("call = %s.%s, want java/lang/Object.notify", call.Class, call.Method)
	}
	if call.Kind != "void" || len(call.Args) != 0 {
		t.Errorf("call kind=%s args=%v, want a zero-argument void call", call.Kind, call.Args)
	}
}

func TestGetMethod_WrongDescriptorFails(t *testing.T) {
	env := runtime.NewEnv(NewPreloaded())
	cls := env.FindClass("java/lang/Object").Must()

	// notify exists, but only as ()V; an int-returning lookup must miss.
	r := cls.GetMethod("notify", descriptor.Signature{Ret: descriptor.Int})
	if !r.IsErr() {
		t.Fatal("lookup keyed by a mismatched descriptor should fail")
	}
	if !strings.Contains(r.Err().Error(), "notify") {
		t.Errorf("error %q does not name the method", r.Err().Error())
	}
}

func TestGetMethodOf_ArgsAndReturn(t *testing.T) {
	vm := NewPreloaded()
	calc := vm.DefineClass("com/example/Calc")
	vm.DefineMethod(calc, "add", "(IJ)J", func(args ...jvmruntime.Value) jvmruntime.Value {
		return int64(args[0].(int32)) + args[1].(int64)
	})

	env := runtime.NewEnv(vm)
	cls := env.FindClass("com.example.Calc").Must()

	m := runtime.GetMethodOf[func(int32, int64) int64](cls, "add")
	if e := m.Err(); e != nil {
		t.Fatalf("GetMethodOf failed: %v", e)
	}

	if got := m.Value().CallLong(int32(2), int64(40)); got != 42 {
		t.Errorf("CallLong = %d, want 42", got)
	}
}

func TestTypedInvoke(t *testing.T) {
	env := runtime.NewEnv(NewPreloaded())
	cls := env.FindClass("java/lang/Object").Must()

	m := runtime.GetMethodOf[func() int32](cls, "hashCode").Must()
	hash := runtime.Typed[int32](m)

	if got := hash.Invoke(); got != 42 {
		t.Errorf("Invoke() = %d, want 42", got)
	}
}

func TestFatalError_Capture(t *testing.T) {
	vm := NewPreloaded()
	env := runtime.NewEnv(vm)

	e := env.FindClass("no/such/Thing").Err()
	if e == nil {
		t.Fatal("expected a lookup failure")
	}
	if !e.CanFatal() {
		t.Fatal("lookup failures should carry the VM's abort capability")
	}

	e.Fatal()
	fatals := vm.Fatals()
	if len(fatals) != 1 {
		t.Fatalf("recorded %d fatal reports, want 1", len(fatals))
	}
	if !strings.Contains(fatals[0], "no/such/Thing") {
		t.Errorf("fatal message %q does not name the class", fatals[0])
	}
}

func TestDefineClass_Idempotent(t *testing.T) {
	vm := New()
	a := vm.DefineClass("x/Y")
	b := vm.DefineClass("x/Y")
	if a != b {
		t.Errorf("redefining a class returned a new handle: %v vs %v", a, b)
	}
}
