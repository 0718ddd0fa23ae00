// Package descriptor implements the JVM type-descriptor grammar and the
// resolution of Go native types onto JVM primitives.
//
// # Grammar
//
// Descriptors encode types as compact strings used for method lookup:
//
//	boolean  Z        float     F
//	byte     B        double    D
//	char     C        void      V
//	short    S        object    Ljava/lang/String;
//	int      I        array     [I
//	long     J        method    (IJ)Z
//
// Types compose as values:
//
//	descriptor.ArrayOf(descriptor.Int).String()          // "[I"
//	descriptor.Object("java/lang/String").String()       // "Ljava/lang/String;"
//	descriptor.Signature{
//	    Args: []descriptor.Type{descriptor.Int, descriptor.Long},
//	    Ret:  descriptor.Boolean,
//	}.String()                                           // "(IJ)Z"
//
// # Resolution
//
// Go native scalars resolve to JVM primitives through a fixed table, and
// whole Go function types resolve to signatures:
//
//	descriptor.Of[int32]()                               // int
//	descriptor.SignatureFor[func(int32, int64) bool]()   // (IJ)Z
//
// Signature resolution is memoized per Go type identity, so each distinct
// signature has exactly one canonical descriptor.
package descriptor
