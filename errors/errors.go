package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where at the boundary the error occurred
type Phase string

const (
	PhaseResolve Phase = "resolve" // native type resolution
	PhaseLookup  Phase = "lookup"  // class and method lookup
	PhaseCall    Phase = "call"    // method invocation
)

// Kind categorizes the error
type Kind string

const (
	KindClassNotFound    Kind = "class_not_found"
	KindMethodNotFound   Kind = "method_not_found"
	KindUnsupportedType  Kind = "unsupported_type"
	KindInvalidSignature Kind = "invalid_signature"
	KindFatal            Kind = "fatal"
)

// Aborter is the VM's fatal-error entry point. An Error that carries one
// can be escalated through the VM's own abort path.
type Aborter interface {
	FatalError(message string)
}

// Error is the structured error type used throughout the binding layer.
// Errors are created once per failed boundary operation and owned by the
// result that carries them.
type Error struct {
	Cause      error
	abort      Aborter
	Phase      Phase
	Kind       Kind
	Class      string
	Method     string
	Descriptor string
	Detail     string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Class != "" {
		b.WriteString(": ")
		b.WriteString(e.Class)
		if e.Method != "" {
			b.WriteByte('.')
			b.WriteString(e.Method)
		}
		if e.Descriptor != "" {
			b.WriteByte(' ')
			b.WriteString(e.Descriptor)
		}
	}

	if e.Detail != "" {
		if e.Class != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// CanFatal reports whether the error carries the VM's abort capability.
func (e *Error) CanFatal() bool {
	return e.abort != nil
}

// Fatal reports the error through the VM's fatal-error path. It is only
// ever invoked explicitly by the caller; nothing in the binding layer
// escalates on its own. A call on an error without the capability is a
// no-op. When the VM honors the JNI contract, Fatal does not return.
func (e *Error) Fatal() {
	if e.abort != nil {
		e.abort.FatalError(e.Error())
	}
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Class sets the qualified class name
func (b *Builder) Class(name string) *Builder {
	b.err.Class = name
	return b
}

// Method sets the method name
func (b *Builder) Method(name string) *Builder {
	b.err.Method = name
	return b
}

// Descriptor sets the descriptor the lookup was keyed by
func (b *Builder) Descriptor(d string) *Builder {
	b.err.Descriptor = d
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Abort attaches the VM's fatal-error capability
func (b *Builder) Abort(a Aborter) *Builder {
	b.err.abort = a
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// ClassNotFound creates a failed class lookup error. The abort capability
// of the environment the lookup ran on travels with the error.
func ClassNotFound(abort Aborter, class string) *Error {
	return &Error{
		Phase:  PhaseLookup,
		Kind:   KindClassNotFound,
		Class:  class,
		Detail: fmt.Sprintf("class %q not found", class),
		abort:  abort,
	}
}

// MethodNotFound creates a failed method lookup error
func MethodNotFound(abort Aborter, class, method, descriptor string) *Error {
	return &Error{
		Phase:      PhaseLookup,
		Kind:       KindMethodNotFound,
		Class:      class,
		Method:     method,
		Descriptor: descriptor,
		Detail:     fmt.Sprintf("method %q not found", method),
		abort:      abort,
	}
}

// UnsupportedType creates a type resolution error for a Go type with no
// JVM primitive mapping
func UnsupportedType(goType string) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindUnsupportedType,
		Detail: fmt.Sprintf("no JVM primitive for Go type %s", goType),
	}
}

// InvalidSignature creates a signature parsing error
func InvalidSignature(format string, args ...any) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindInvalidSignature,
		Detail: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
