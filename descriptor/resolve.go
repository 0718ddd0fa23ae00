package descriptor

import (
	"reflect"
	"sync"

	"github.com/wippyai/jvm-runtime/errors"
)

// Native is the set of Go scalar types representable across the boundary.
type Native interface {
	~bool | ~int8 | ~uint8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Of resolves a native scalar type to its JVM primitive:
//
//	bool -> boolean, int8 -> byte, uint8 -> char, int16 -> short,
//	int32 -> int, int64 -> long, float32 -> float, float64 -> double
//
// Note the asymmetry: uint8 resolves to the 16-bit char primitive, not
// byte. This mirrors the historical unsigned-char mapping and is kept
// deliberately.
func Of[T Native]() Type {
	t, err := resolveScalar(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		// Unreachable: the Native constraint admits only resolvable kinds.
		panic(err)
	}
	return t
}

func resolveScalar(rt reflect.Type) (Type, error) {
	switch rt.Kind() {
	case reflect.Bool:
		return Boolean, nil
	case reflect.Int8:
		return Byte, nil
	case reflect.Uint8:
		return Char, nil
	case reflect.Int16:
		return Short, nil
	case reflect.Int32:
		return Int, nil
	case reflect.Int64:
		return Long, nil
	case reflect.Float32:
		return Float, nil
	case reflect.Float64:
		return Double, nil
	}
	return Type{}, errors.UnsupportedType(rt.String())
}

// sigCache memoizes resolved signatures per Go function type, giving one
// canonical Signature per distinct type identity.
var sigCache sync.Map // reflect.Type -> Signature

// SignatureFor resolves the Go function type F to a method signature,
// argument and return types independently. A function type with no result
// resolves to a void return. Resolution is memoized; repeated calls for
// the same F return the identical Signature.
func SignatureFor[F any]() (Signature, error) {
	return signatureOf(reflect.TypeOf((*F)(nil)).Elem())
}

func signatureOf(ft reflect.Type) (Signature, error) {
	if ft.Kind() != reflect.Func {
		return Signature{}, errors.UnsupportedType(ft.String())
	}
	if cached, ok := sigCache.Load(ft); ok {
		return cached.(Signature), nil
	}

	sig := Signature{Ret: Void}
	if ft.NumIn() > 0 {
		sig.Args = make([]Type, ft.NumIn())
		for i := range sig.Args {
			arg, err := resolveScalar(ft.In(i))
			if err != nil {
				return Signature{}, err
			}
			sig.Args[i] = arg
		}
	}
	switch ft.NumOut() {
	case 0:
	case 1:
		ret, err := resolveScalar(ft.Out(0))
		if err != nil {
			return Signature{}, err
		}
		sig.Ret = ret
	default:
		return Signature{}, errors.UnsupportedType(ft.String())
	}

	sigCache.Store(ft, sig)
	return sig, nil
}
