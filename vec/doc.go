// Package vec implements fixed-size vectors over the scalar kinds of
// package kind.
//
// A [Vector] is parameterised by its component kind and its arity, so
// Vector[float32, Three] and Vector[int64, Two] are distinct types and
// mixing arities or kinds is a compile error. Arities are expressed with the
// marker types [Two], [Three] and [Four].
//
// Vectors are plain values: they are copied on assignment, compare with ==
// and can be used as map keys. Every operation is a pure function of its
// operands, so values can be shared freely between goroutines.
//
// Operations are package functions constrained on the kind family that
// defines them. Arithmetic needs [kind.Number], bitwise operations
// [kind.Bits], shifts [kind.Integer], refraction [kind.Float]; asking for an
// operation outside its family does not compile. Broadcasting a scalar is
// spelled [Splat], and the most common scalar shapes have ...Scalar
// variants (v op s) and Scalar... variants (s op v).
//
// Named field access (X, XY, [Fields]) reads and writes the vector itself.
// Arbitrary re-ordering with repeats lives in package swizzle, which works
// on a copy.
package vec
