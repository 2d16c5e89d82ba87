// Package kind describes the scalar kinds a vector or matrix can be built on.
//
// Seven kinds are supported: bool, int32, uint32, int64, uint64, float32 and
// float64. For each kind the package exposes
//
//   - constraint interfaces ([Scalar], [Number], [Integer], [Float], [Bits], ...)
//     that make illegal operations fail to compile, e.g. a bitwise XOR on a
//     float32 vector;
//   - a [Traits] value with identities, limits, the float-to-kind truncation
//     rule, ordering, absolute value and text conversion;
//   - a [BitOps] value for the bitwise family, where bool degrades to
//     logical operations;
//   - the [Kind] enumeration with its legality table and conversion lattice.
//
// Traits are stateless and safe for concurrent use.
package kind
