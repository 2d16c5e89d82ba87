// Package kernel holds the small reduction kernels shared by the vector and
// matrix packages.
//
// Every kernel is generic over the numeric kinds. The float64 instantiation
// is routed through github.com/cwbudde/algo-vecmath, which selects the best
// block implementation for the current CPU; the other kinds use the pure Go
// loops in this package. Callers pass equal-length slices.
package kernel
