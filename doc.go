// Package jvmruntime provides a descriptor-checked binding layer for
// invoking Java Virtual Machine methods from Go hosts.
//
// The library sits between native Go code and a JVM reached through the
// JNI-style boundary interface declared in this package. Method lookups are
// keyed by synthesized type descriptors, so a successful lookup guarantees
// the handle matches the signature it was requested with; no validation
// happens at call time.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	jvmruntime/          Root package with the VM boundary interfaces
//	├── runtime/         Env, Class and Method handle wrappers
//	├── descriptor/      Type resolution and descriptor synthesis
//	├── result/          Fallible results and manual-lifetime storage
//	├── errors/          Structured error types for lookup failures
//	└── testbed/         In-memory fake VM for integration tests
//
// # Quick Start
//
// Bind to a VM and call a method:
//
//	env := runtime.NewEnv(vm)
//
//	cls := env.FindClass("java/lang/Object")
//	if e := cls.Err(); e != nil {
//	    log.Fatal(e)
//	}
//
//	m := cls.Value().GetMethod("notify", descriptor.Signature{Ret: descriptor.Void})
//	if e := m.Err(); e != nil {
//	    log.Fatal(e)
//	}
//	m.Value().CallVoid()
//
// Signatures can also be resolved from Go function types:
//
//	m := runtime.GetMethodOf[func(int64) int64](cls.Value(), "wait")
//
// # Descriptors
//
// The descriptor package implements the JVM descriptor grammar: primitives
// map to single reserved letters (bool -> Z, int32 -> I, ...), object types
// to L<qualified-name>;, arrays to [<element>, and method signatures to
// (<args>)<return>. Descriptors are synthesized deterministically and
// memoized per signature, so every logical signature has exactly one
// encoding.
//
// # Error Handling
//
// Every fallible boundary operation returns a result.Result rather than
// raising across the boundary. Failures carry a structured *errors.Error
// naming the missing class or method, and expose an explicit Fatal method
// that delegates to the VM's own abort path; nothing in this layer aborts
// implicitly.
//
// # Thread Model
//
// The layer is fully synchronous and adds no locking of its own. A JVM
// environment is valid on one native thread only; an Env and every Class
// and Method derived from it must stay on the thread that created them,
// and the underlying VM context must outlive all of them. These are caller
// obligations, not checked invariants.
package jvmruntime
