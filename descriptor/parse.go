package descriptor

import (
	"strings"

	"github.com/wippyai/jvm-runtime/errors"
)

// Type names accepted by Parse. Go scalar names and JVM primitive names
// are both valid, following the resolution table (uint8 and char alike
// name the 16-bit char primitive).
var typeNames = map[string]Type{
	"void":    Void,
	"bool":    Boolean,
	"boolean": Boolean,
	"int8":    Byte,
	"byte":    Byte,
	"uint8":   Char,
	"char":    Char,
	"int16":   Short,
	"short":   Short,
	"int32":   Int,
	"int":     Int,
	"int64":   Long,
	"long":    Long,
	"float32": Float,
	"float":   Float,
	"float64": Double,
	"double":  Double,
}

// ParseType parses a single type: a primitive name from the table above,
// "[]T" for an array of T, or a qualified class name such as
// java/lang/String or java.lang.String.
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	if elem, ok := strings.CutPrefix(s, "[]"); ok {
		t, err := ParseType(elem)
		if err != nil {
			return Type{}, err
		}
		return ArrayOf(t), nil
	}
	if t, ok := typeNames[s]; ok {
		return t, nil
	}
	if strings.ContainsAny(s, "/.") {
		return Object(s), nil
	}
	return Type{}, errors.InvalidSignature("unknown type %q", s)
}

// Parse parses a human-readable method signature of the form
// "(arg1,arg2)ret", e.g. "(int32,int64)bool" or "()void". An empty return
// position means void.
func Parse(s string) (Signature, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "(") {
		return Signature{}, errors.InvalidSignature("signature %q must start with '('", s)
	}
	argsStr, retStr, found := strings.Cut(s[1:], ")")
	if !found {
		return Signature{}, errors.InvalidSignature("signature %q missing ')'", s)
	}

	sig := Signature{Ret: Void}
	if argsStr = strings.TrimSpace(argsStr); argsStr != "" {
		for _, part := range strings.Split(argsStr, ",") {
			t, err := ParseType(part)
			if err != nil {
				return Signature{}, err
			}
			sig.Args = append(sig.Args, t)
		}
	}
	if retStr = strings.TrimSpace(retStr); retStr != "" {
		ret, err := ParseType(retStr)
		if err != nil {
			return Signature{}, err
		}
		sig.Ret = ret
	}
	return sig, nil
}
