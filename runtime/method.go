package runtime

import (
	"fmt"

	jvmruntime "github.com/wippyai/jvm-runtime"
	"github.com/wippyai/jvm-runtime/descriptor"
)

// Method is a handle to a resolved method identifier, specialized by the
// return kind recorded at lookup. It stays valid exactly as long as the
// Class and Env it was resolved against.
type Method struct {
	env        *Env
	class      jvmruntime.ClassID
	id         jvmruntime.MethodID
	name       string
	descriptor string
	ret        descriptor.Kind
}

// Name returns the method name the handle was resolved with.
func (m *Method) Name() string {
	return m.name
}

// Descriptor returns the descriptor the lookup was keyed by.
func (m *Method) Descriptor() string {
	return m.descriptor
}

// ReturnKind returns the return kind the handle is specialized to.
func (m *Method) ReturnKind() descriptor.Kind {
	return m.ret
}

// Per-return-kind entry points. Each forwards directly to the VM's native
// call entry for that kind; passing arguments that do not match the lookup
// signature is a usage bug, not a detected error.

func (m *Method) CallVoid(args ...jvmruntime.Value) {
	m.env.vm.CallVoidMethod(m.class, m.id, args...)
}

func (m *Method) CallBoolean(args ...jvmruntime.Value) bool {
	return m.env.vm.CallBooleanMethod(m.class, m.id, args...)
}

func (m *Method) CallByte(args ...jvmruntime.Value) int8 {
	return m.env.vm.CallByteMethod(m.class, m.id, args...)
}

func (m *Method) CallChar(args ...jvmruntime.Value) uint16 {
	return m.env.vm.CallCharMethod(m.class, m.id, args...)
}

func (m *Method) CallShort(args ...jvmruntime.Value) int16 {
	return m.env.vm.CallShortMethod(m.class, m.id, args...)
}

func (m *Method) CallInt(args ...jvmruntime.Value) int32 {
	return m.env.vm.CallIntMethod(m.class, m.id, args...)
}

func (m *Method) CallLong(args ...jvmruntime.Value) int64 {
	return m.env.vm.CallLongMethod(m.class, m.id, args...)
}

func (m *Method) CallFloat(args ...jvmruntime.Value) float32 {
	return m.env.vm.CallFloatMethod(m.class, m.id, args...)
}

func (m *Method) CallDouble(args ...jvmruntime.Value) float64 {
	return m.env.vm.CallDoubleMethod(m.class, m.id, args...)
}

// Call dispatches on the return kind recorded at lookup and forwards to
// the matching entry point. Void calls return nil. Calling a method whose
// return kind has no native entry point (object or array returns) panics;
// such methods must be invoked through kind-specific bindings.
func (m *Method) Call(args ...jvmruntime.Value) jvmruntime.Value {
	switch m.ret {
	case descriptor.KindVoid:
		m.CallVoid(args...)
		return nil
	case descriptor.KindBoolean:
		return m.CallBoolean(args...)
	case descriptor.KindByte:
		return m.CallByte(args...)
	case descriptor.KindChar:
		return m.CallChar(args...)
	case descriptor.KindShort:
		return m.CallShort(args...)
	case descriptor.KindInt:
		return m.CallInt(args...)
	case descriptor.KindLong:
		return m.CallLong(args...)
	case descriptor.KindFloat:
		return m.CallFloat(args...)
	case descriptor.KindDouble:
		return m.CallDouble(args...)
	}
	panic(fmt.Sprintf("jvm-runtime: no call entry point for %s return of %s %s", m.ret, m.name, m.descriptor))
}
