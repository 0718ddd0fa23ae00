// Package testbed provides an in-memory stand-in for a JVM, implementing
// the jvmruntime.VM boundary interface for integration tests and tooling.
//
// The fake VM keeps classes and method identifiers in handle tables,
// records every call that crosses the boundary, and captures fatal-error
// reports instead of terminating, so tests can assert on them.
package testbed

import (
	"sync"

	jvmruntime "github.com/wippyai/jvm-runtime"
)

// MethodFunc computes a scripted method's result from its arguments.
// A nil MethodFunc yields the zero value of the return kind.
type MethodFunc func(args ...jvmruntime.Value) jvmruntime.Value

// Call records one invocation that crossed the fake boundary.
type Call struct {
	Result jvmruntime.Value
	Class  string
	Method string
	Kind   string
	Args   []jvmruntime.Value
}

type classEntry struct {
	name string
	// methods indexes method handles by "name" + descriptor.
	methods map[string]jvmruntime.MethodID
}

type methodEntry struct {
	fn         MethodFunc
	class      jvmruntime.ClassID
	name       string
	descriptor string
}

// VM is the in-memory fake. The zero value is not usable; construct with
// New or NewPreloaded.
type VM struct {
	byName  map[string]jvmruntime.ClassID
	classes []classEntry
	methods []methodEntry
	calls   []Call
	fatals  []string
	mu      sync.Mutex
}

var _ jvmruntime.VM = (*VM)(nil)

// New creates an empty fake VM.
func New() *VM {
	return &VM{
		byName: make(map[string]jvmruntime.ClassID),
	}
}

// NewPreloaded creates a fake VM with a minimal java/lang/Object: notify,
// notifyAll, wait(long) and hashCode.
func NewPreloaded() *VM {
	vm := New()
	obj := vm.DefineClass("java/lang/Object")
	vm.DefineMethod(obj, "notify", "()V", nil)
	vm.DefineMethod(obj, "notifyAll", "()V", nil)
	vm.DefineMethod(obj, "wait", "(J)V", nil)
	vm.DefineMethod(obj, "hashCode", "()I", func(args ...jvmruntime.Value) jvmruntime.Value {
		return int32(42)
	})
	return vm
}

// DefineClass registers a class and returns its handle. Defining the same
// name twice returns the existing handle.
func (vm *VM) DefineClass(name string) jvmruntime.ClassID {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if id, ok := vm.byName[name]; ok {
		return id
	}
	vm.classes = append(vm.classes, classEntry{
		name:    name,
		methods: make(map[string]jvmruntime.MethodID),
	})
	id := jvmruntime.ClassID(len(vm.classes))
	vm.byName[name] = id
	return id
}

// DefineMethod registers a method on class under (name, descriptor) and
// returns its handle. Redefinition replaces the scripted body.
func (vm *VM) DefineMethod(class jvmruntime.ClassID, name, descriptor string, fn MethodFunc) jvmruntime.MethodID {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	entry := vm.lookupClass(class)
	if entry == nil {
		return 0
	}

	key := name + descriptor
	if id, ok := entry.methods[key]; ok {
		vm.methods[id-1].fn = fn
		return id
	}

	vm.methods = append(vm.methods, methodEntry{
		class:      class,
		name:       name,
		descriptor: descriptor,
		fn:         fn,
	})
	id := jvmruntime.MethodID(len(vm.methods))
	entry.methods[key] = id
	return id
}

// lookupClass returns the table slot for a handle; callers hold vm.mu.
func (vm *VM) lookupClass(id jvmruntime.ClassID) *classEntry {
	if id == 0 || int(id) > len(vm.classes) {
		return nil
	}
	return &vm.classes[id-1]
}

// FindClass implements jvmruntime.VM.
func (vm *VM) FindClass(name string) (jvmruntime.ClassID, bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	id, ok := vm.byName[name]
	return id, ok
}

// GetMethodID implements jvmruntime.VM. Lookup is keyed by the exact
// (class, name, descriptor) triple, like the real boundary.
func (vm *VM) GetMethodID(class jvmruntime.ClassID, name, descriptor string) (jvmruntime.MethodID, bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	entry := vm.lookupClass(class)
	if entry == nil {
		return 0, false
	}
	id, ok := entry.methods[name+descriptor]
	return id, ok
}

// FatalError implements jvmruntime.VM. A real VM terminates here; the
// fake records the message and returns so tests can observe it.
func (vm *VM) FatalError(message string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.fatals = append(vm.fatals, message)
}

// Calls returns a copy of the recorded invocations, oldest first.
func (vm *VM) Calls() []Call {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return append([]Call(nil), vm.calls...)
}

// Fatals returns a copy of the recorded fatal-error messages.
func (vm *VM) Fatals() []string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return append([]string(nil), vm.fatals...)
}

// invoke runs the scripted body and records the crossing.
func (vm *VM) invoke(kind string, class jvmruntime.ClassID, method jvmruntime.MethodID, args []jvmruntime.Value) jvmruntime.Value {
	vm.mu.Lock()

	var fn MethodFunc
	call := Call{Kind: kind, Args: args}
	if method != 0 && int(method) <= len(vm.methods) {
		m := vm.methods[method-1]
		fn = m.fn
		call.Method = m.name
	}
	if entry := vm.lookupClass(class); entry != nil {
		call.Class = entry.name
	}
	vm.mu.Unlock()

	var out jvmruntime.Value
	if fn != nil {
		out = fn(args...)
	}

	vm.mu.Lock()
	call.Result = out
	vm.calls = append(vm.calls, call)
	vm.mu.Unlock()
	return out
}

// The per-return-kind call entry points. A scripted body returning the
// wrong dynamic type yields the zero value, mirroring an undefined-result
// mismatch without crashing the test process.

func (vm *VM) CallVoidMethod(class jvmruntime.ClassID, method jvmruntime.MethodID, args ...jvmruntime.Value) {
	vm.invoke("void", class, method, args)
}

func (vm *VM) CallBooleanMethod(class jvmruntime.ClassID, method jvmruntime.MethodID, args ...jvmruntime.Value) bool {
	out, _ := vm.invoke("boolean", class, method, args).(bool)
	return out
}

func (vm *VM) CallByteMethod(class jvmruntime.ClassID, method jvmruntime.MethodID, args ...jvmruntime.Value) int8 {
	out, _ := vm.invoke("byte", class, method, args).(int8)
	return out
}

func (vm *VM) CallCharMethod(class jvmruntime.ClassID, method jvmruntime.MethodID, args ...jvmruntime.Value) uint16 {
	out, _ := vm.invoke("char", class, method, args).(uint16)
	return out
}

func (vm *VM) CallShortMethod(class jvmruntime.ClassID, method jvmruntime.MethodID, args ...jvmruntime.Value) int16 {
	out, _ := vm.invoke("short", class, method, args).(int16)
	return out
}

func (vm *VM) CallIntMethod(class jvmruntime.ClassID, method jvmruntime.MethodID, args ...jvmruntime.Value) int32 {
	out, _ := vm.invoke("int", class, method, args).(int32)
	return out
}

func (vm *VM) CallLongMethod(class jvmruntime.ClassID, method jvmruntime.MethodID, args ...jvmruntime.Value) int64 {
	out, _ := vm.invoke("long", class, method, args).(int64)
	return out
}

func (vm *VM) CallFloatMethod(class jvmruntime.ClassID, method jvmruntime.MethodID, args ...jvmruntime.Value) float32 {
	out, _ := vm.invoke("float", class, method, args).(float32)
	return out
}

func (vm *VM) CallDoubleMethod(class jvmruntime.ClassID, method jvmruntime.MethodID, args ...jvmruntime.Value) float64 {
	out, _ := vm.invoke("double", class, method, args).(float64)
	return out
}
