package descriptor

// Kind identifies one node kind of the JVM type grammar.
type Kind uint8

// KindVoid is first so the zero Type is void.
const (
	KindVoid Kind = iota
	KindBoolean
	KindByte
	KindChar
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindObject
	KindArray
)

var kindNames = [...]string{
	KindVoid:    "void",
	KindBoolean: "boolean",
	KindByte:    "byte",
	KindChar:    "char",
	KindShort:   "short",
	KindInt:     "int",
	KindLong:    "long",
	KindFloat:   "float",
	KindDouble:  "double",
	KindObject:  "object",
	KindArray:   "array",
}

// Reserved descriptor letters, indexed by Kind. Object and array nodes have
// no single letter; they are synthesized structurally.
var kindLetters = [...]byte{
	KindVoid:    'V',
	KindBoolean: 'Z',
	KindByte:    'B',
	KindChar:    'C',
	KindShort:   'S',
	KindInt:     'I',
	KindLong:    'J',
	KindFloat:   'F',
	KindDouble:  'D',
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Letter returns the reserved descriptor letter for primitive kinds and
// void, or 0 for object and array kinds.
func (k Kind) Letter() byte {
	if int(k) < len(kindLetters) {
		return kindLetters[k]
	}
	return 0
}

// IsPrimitive reports whether k is a JVM primitive, void included.
func (k Kind) IsPrimitive() bool {
	return k <= KindDouble
}
