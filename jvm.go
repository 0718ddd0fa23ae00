package jvmruntime

// ClassID is an opaque handle to a VM-side class.
type ClassID uintptr

// MethodID is an opaque handle to a VM-side method identifier. It is valid
// only while the class and environment it was resolved against are alive,
// and only for calls matching the descriptor used at lookup.
type MethodID uintptr

// Value is an argument passed through the call boundary unchanged.
type Value any

// Caller is the set of native call entry points supplied by the VM,
// one per return kind.
type Caller interface {
	CallVoidMethod(class ClassID, method MethodID, args ...Value)
	CallBooleanMethod(class ClassID, method MethodID, args ...Value) bool
	CallByteMethod(class ClassID, method MethodID, args ...Value) int8
	CallCharMethod(class ClassID, method MethodID, args ...Value) uint16
	CallShortMethod(class ClassID, method MethodID, args ...Value) int16
	CallIntMethod(class ClassID, method MethodID, args ...Value) int32
	CallLongMethod(class ClassID, method MethodID, args ...Value) int64
	CallFloatMethod(class ClassID, method MethodID, args ...Value) float32
	CallDoubleMethod(class ClassID, method MethodID, args ...Value) float64
}

// VM is the boundary interface supplied by the hosting virtual machine.
// Implementations wrap a real JNIEnv or, for tests, an in-memory fake.
//
// Lookups are deterministic for a given (class, name, descriptor) key, and
// FatalError does not return.
type VM interface {
	Caller

	FindClass(name string) (ClassID, bool)
	GetMethodID(class ClassID, name, descriptor string) (MethodID, bool)
	FatalError(message string)
}
