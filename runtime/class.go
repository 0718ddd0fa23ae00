package runtime

import (
	"go.uber.org/zap"

	jvmruntime "github.com/wippyai/jvm-runtime"
	"github.com/wippyai/jvm-runtime/descriptor"
	"github.com/wippyai/jvm-runtime/errors"
	"github.com/wippyai/jvm-runtime/result"
)

// Class is a handle to a resolved VM class, bound to the Env that produced
// it by non-owning back-reference.
type Class struct {
	env  *Env
	id   jvmruntime.ClassID
	name string
}

// Name returns the qualified class name the handle was resolved with.
func (c *Class) Name() string {
	return c.name
}

// ID returns the opaque VM class handle.
func (c *Class) ID() jvmruntime.ClassID {
	return c.id
}

// GetMethod synthesizes the descriptor for sig and looks up the method
// identifier keyed by (class, name, descriptor). The returned Method is
// specialized to sig's return kind and valid only for calls matching sig;
// no re-validation happens at call time.
func (c *Class) GetMethod(name string, sig descriptor.Signature) result.Result[*Method] {
	desc := sig.String()

	id, ok := c.env.vm.GetMethodID(c.id, name, desc)
	if !ok {
		Logger().Debug("method lookup failed",
			zap.String("class", c.name),
			zap.String("method", name),
			zap.String("descriptor", desc))
		return result.FailAs[*Method](result.Raise(errors.MethodNotFound(c.env.vm, c.name, name, desc)))
	}

	Logger().Debug("method resolved",
		zap.String("class", c.name),
		zap.String("method", name),
		zap.String("descriptor", desc))
	return result.OK(&Method{
		env:        c.env,
		class:      c.id,
		id:         id,
		name:       name,
		descriptor: desc,
		ret:        sig.Ret.Kind(),
	})
}

// GetMethodOf resolves the method signature from the Go function type F,
// then performs the descriptor-keyed lookup. Resolution failures surface
// as resolve-phase errors before the VM is consulted.
func GetMethodOf[F any](c *Class, name string) result.Result[*Method] {
	sig, err := descriptor.SignatureFor[F]()
	if err != nil {
		if structured, ok := err.(*errors.Error); ok {
			return result.Err[*Method](structured)
		}
		return result.Err[*Method](errors.Wrap(errors.PhaseResolve, errors.KindUnsupportedType, err, "resolve signature for "+name))
	}
	return c.GetMethod(name, sig)
}
