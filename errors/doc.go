// Package errors provides structured error types for the jvm-runtime library.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type records the lookup key that failed:
// class name, method name and the synthesized descriptor, plus a cause
// chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLookup, errors.KindMethodNotFound).
//		Class("java/lang/Object").
//		Method("notify").
//		Descriptor("()V").
//		Detail("method %q not found", "notify").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.ClassNotFound(vm, "com/example/Missing")
//	err := errors.MethodNotFound(vm, "java/lang/Object", "notify", "()V")
//
// All errors implement the standard error interface and support errors.Is/As.
//
// # Fatal conditions
//
// Errors created against an environment carry the VM's abort capability.
// err.Fatal() hands the message to the VM's own fatal-error path; the
// binding layer never triggers this on its own.
package errors
