// Package runtime provides the Env, Class and Method handle wrappers that
// bind Go callers to VM-side classes and methods.
//
// Lookups flow through the descriptor package, so every method handle is
// obtained with a synthesized descriptor and is specialized to its return
// kind at lookup time. Calls forward straight to the VM's per-kind entry
// points with no re-validation.
//
//	env := runtime.NewEnv(vm)
//	cls := env.FindClass("java/lang/Object")
//	m := runtime.GetMethodOf[func()](cls.Value(), "notify")
//	m.Value().CallVoid()
//
// Every fallible operation returns a result.Result; no errors propagate by
// panic and nothing crosses the boundary as an exception.
package runtime
