// Package swizzle provides read projections of vectors with arbitrary
// component selection.
//
// A [View] captures a copy of a vector when it is created; mutating the
// original afterwards does not change what the view returns. Selections may
// repeat components and may produce a vector of a different arity than the
// source ("xxyy" on a 2-component vector yields four components). Writing
// through a view with [View.Assign] never touches the captured vector: it
// returns a new one.
package swizzle
