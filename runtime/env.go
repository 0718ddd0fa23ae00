package runtime

import (
	"strings"

	"go.uber.org/zap"

	jvmruntime "github.com/wippyai/jvm-runtime"
	"github.com/wippyai/jvm-runtime/errors"
	"github.com/wippyai/jvm-runtime/result"
)

// Env wraps the VM boundary interface for one native thread.
//
// The underlying VM context must outlive every Class and Method derived
// from this Env, and none of them may migrate across threads. Both are
// caller obligations; the layer performs no tracking.
type Env struct {
	vm jvmruntime.VM
}

// NewEnv wraps vm. The Env does not own the VM context.
func NewEnv(vm jvmruntime.VM) *Env {
	return &Env{vm: vm}
}

// VM returns the underlying boundary interface.
func (e *Env) VM() jvmruntime.VM {
	return e.vm
}

// FindClass looks up a class by qualified name. Dot-separated names are
// accepted and normalized to the slash form. On failure the result's error
// names the missing class and carries this environment's abort capability.
func (e *Env) FindClass(name string) result.Result[*Class] {
	name = strings.ReplaceAll(name, ".", "/")

	id, ok := e.vm.FindClass(name)
	if !ok {
		Logger().Debug("class lookup failed", zap.String("class", name))
		return result.FailAs[*Class](result.Raise(errors.ClassNotFound(e.vm, name)))
	}

	Logger().Debug("class resolved", zap.String("class", name))
	return result.OK(&Class{env: e, id: id, name: name})
}

// FatalError reports an unrecoverable condition through the VM's own abort
// path. It never returns when the VM honors the JNI contract.
func (e *Env) FatalError(message string) {
	e.vm.FatalError(message)
}
