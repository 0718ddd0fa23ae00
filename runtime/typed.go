package runtime

import (
	jvmruntime "github.com/wippyai/jvm-runtime"
)

// Ret constrains typed method returns to the boundary's native return
// types. char returns are uint16.
type Ret interface {
	bool | int8 | uint16 | int16 | int32 | int64 | float32 | float64
}

// TypedMethod binds a Method to its native return type R, chosen once at
// lookup. Invoke forwards to the entry point for R with no call-time
// checks; pairing a TypedMethod with a Method of a different return kind
// is a usage bug.
type TypedMethod[R Ret] struct {
	m *Method
}

// Typed wraps m as a TypedMethod returning R.
func Typed[R Ret](m *Method) TypedMethod[R] {
	return TypedMethod[R]{m: m}
}

// Invoke calls the method and returns its result as R.
func (t TypedMethod[R]) Invoke(args ...jvmruntime.Value) R {
	return t.m.Call(args...).(R)
}

// Method returns the underlying untyped handle.
func (t TypedMethod[R]) Method() *Method {
	return t.m
}
