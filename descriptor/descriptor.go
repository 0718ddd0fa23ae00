package descriptor

import "strings"

// Type is one node of the JVM type grammar: a primitive, void, a declared
// object type carrying its qualified name, or an array of another Type.
// The zero value is void.
type Type struct {
	elem *Type
	name string
	kind Kind
}

// Primitive types and void.
var (
	Boolean = Type{kind: KindBoolean}
	Byte    = Type{kind: KindByte}
	Char    = Type{kind: KindChar}
	Short   = Type{kind: KindShort}
	Int     = Type{kind: KindInt}
	Long    = Type{kind: KindLong}
	Float   = Type{kind: KindFloat}
	Double  = Type{kind: KindDouble}
	Void    = Type{kind: KindVoid}
)

// String is the declared java/lang/String type.
var String = Object("java/lang/String")

// Object returns the declared type with the given qualified name.
// Dot-separated names are normalized to the slash form used in descriptors.
func Object(qualified string) Type {
	return Type{kind: KindObject, name: strings.ReplaceAll(qualified, ".", "/")}
}

// ArrayOf returns the array type with element type elem.
func ArrayOf(elem Type) Type {
	e := elem
	return Type{kind: KindArray, elem: &e}
}

func (t Type) Kind() Kind { return t.kind }

// Name returns the qualified name for object types, empty otherwise.
func (t Type) Name() string { return t.name }

// Elem returns the element type of an array type.
func (t Type) Elem() Type {
	if t.elem == nil {
		return Type{}
	}
	return *t.elem
}

// String synthesizes the descriptor for t:
//
//	primitive   -> its reserved letter
//	object L    -> "L" + qualified-name + ";"
//	array of e  -> "[" + descriptor(e)
func (t Type) String() string {
	if t.kind.IsPrimitive() {
		return string(t.kind.Letter())
	}
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t Type) write(b *strings.Builder) {
	switch t.kind {
	case KindObject:
		b.WriteByte('L')
		b.WriteString(t.name)
		b.WriteByte(';')
	case KindArray:
		b.WriteByte('[')
		t.elem.write(b)
	default:
		b.WriteByte(t.kind.Letter())
	}
}

// Signature is an ordered argument list plus one return type. The zero
// value is the nullary void signature "()V".
type Signature struct {
	Args []Type
	Ret  Type
}

// String synthesizes the method descriptor "(" + args + ")" + return.
// Synthesis is a deterministic left-to-right join; every logical signature
// has exactly one encoding.
func (s Signature) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for _, a := range s.Args {
		a.write(&b)
	}
	b.WriteByte(')')
	s.Ret.write(&b)
	return b.String()
}
