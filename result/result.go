package result

import (
	"github.com/wippyai/jvm-runtime/errors"
)

// Result carries either a success value of T or an owned *errors.Error,
// never both. The zero value is the default state: neither success nor
// failure, which is also what Take leaves behind. Results are produced at
// each boundary call and consumed immediately; they are not shared state.
type Result[T any] struct {
	cell Cell[T]
	err  *errors.Error
}

// OK returns a successful result holding v.
func OK[T any](v T) Result[T] {
	return Result[T]{cell: NewCell(v)}
}

// Err returns a failed result owning e.
func Err[T any](e *errors.Error) Result[T] {
	return Result[T]{err: e}
}

// IsOK reports whether the result holds a success value.
func (r Result[T]) IsOK() bool {
	return r.cell.Occupied()
}

// IsErr reports whether the result holds an error.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Value returns the success value. Unspecified unless IsOK.
func (r Result[T]) Value() T {
	return r.cell.Get()
}

// Err returns the held error, nil for success and default states.
func (r Result[T]) Err() *errors.Error {
	return r.err
}

// Get returns the success value and the error; exactly one is meaningful.
func (r Result[T]) Get() (T, *errors.Error) {
	return r.cell.Get(), r.err
}

// Must returns the success value or panics with the held error.
func (r Result[T]) Must() T {
	if !r.cell.Occupied() {
		if r.err != nil {
			panic(r.err)
		}
		panic("result: Must on default result")
	}
	return r.cell.Get()
}

// Take moves the state out, transferring error ownership to the returned
// result and leaving r in the default state. The held value, if any, is
// moved rather than destructed: no Drop hook runs on the source.
func (r *Result[T]) Take() Result[T] {
	out := Result[T]{cell: r.cell, err: r.err}
	r.cell = Cell[T]{}
	r.err = nil
	return out
}

// Failure carries one owned error awaiting conversion into a failed
// Result. It exists so lookup code can build the error before the result
// type it lands in is known. Conversion moves the error out; a Failure is
// not duplicated.
type Failure struct {
	err *errors.Error
}

// Raise wraps err into a Failure that owns it.
func Raise(err *errors.Error) *Failure {
	return &Failure{err: err}
}

// Empty reports whether the failure's error was already taken.
func (f *Failure) Empty() bool {
	return f.err == nil
}

// TakeError transfers ownership of the held error, leaving f empty.
func (f *Failure) TakeError() *errors.Error {
	e := f.err
	f.err = nil
	return e
}

// FailAs converts f into a failed Result of the requested type, moving the
// error in. The produced result is always a failure, never a partial
// success.
func FailAs[T any](f *Failure) Result[T] {
	return Result[T]{err: f.TakeError()}
}
