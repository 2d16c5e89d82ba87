package vec

import (
	"fmt"
	"hash/maphash"
	"iter"

	"github.com/cwbudde/algo-glm/kind"
)

// Vector is an N-component vector of kind T.
//
// Components beyond N are never set, which keeps == and hashing structural.
type Vector[T kind.Scalar, N Arity] struct {
	c [4]T
}

// Vec2 returns the vector (x, y).
func Vec2[T kind.Scalar](x, y T) Vector[T, Two] {
	return Vector[T, Two]{c: [4]T{x, y}}
}

// Vec3 returns the vector (x, y, z).
func Vec3[T kind.Scalar](x, y, z T) Vector[T, Three] {
	return Vector[T, Three]{c: [4]T{x, y, z}}
}

// Vec4 returns the vector (x, y, z, w).
func Vec4[T kind.Scalar](x, y, z, w T) Vector[T, Four] {
	return Vector[T, Four]{c: [4]T{x, y, z, w}}
}

// Extend3 appends z to a 2-component vector.
func Extend3[T kind.Scalar](xy Vector[T, Two], z T) Vector[T, Three] {
	return Vec3(xy.c[0], xy.c[1], z)
}

// Extend4 appends w to a 3-component vector.
func Extend4[T kind.Scalar](xyz Vector[T, Three], w T) Vector[T, Four] {
	return Vec4(xyz.c[0], xyz.c[1], xyz.c[2], w)
}

// Splat broadcasts s to every component.
func Splat[T kind.Scalar, N Arity](s T) Vector[T, N] {
	var v Vector[T, N]
	for i := 0; i < v.Len(); i++ {
		v.c[i] = s
	}
	return v
}

// Zero returns the vector with all components zero (false for bool).
func Zero[T kind.Scalar, N Arity]() Vector[T, N] {
	return Vector[T, N]{}
}

// Ones returns the vector with all components one (true for bool).
func Ones[T kind.Scalar, N Arity]() Vector[T, N] {
	return Splat[T, N](kind.Of[T]().One())
}

// MinValue returns the vector of the kind's smallest value.
func MinValue[T kind.Scalar, N Arity]() Vector[T, N] {
	return Splat[T, N](kind.Of[T]().Min())
}

// MaxValue returns the vector of the kind's largest value.
func MaxValue[T kind.Scalar, N Arity]() Vector[T, N] {
	return Splat[T, N](kind.Of[T]().Max())
}

// Unit returns the vector with one at axis and zero elsewhere.
// It panics if axis is outside [0, N).
func Unit[T kind.Scalar, N Arity](axis int) Vector[T, N] {
	var v Vector[T, N]
	v.SetAt(axis, kind.Of[T]().One())
	return v
}

// FromSlice fills a vector positionally from s. Missing components are
// zero and surplus elements are ignored.
func FromSlice[T kind.Scalar, N Arity](s []T) Vector[T, N] {
	var v Vector[T, N]
	copy(v.c[:v.Len()], s)
	return v
}

// FromSeq fills a vector positionally from seq with the same rule as
// FromSlice. The sequence is not consumed beyond N elements.
func FromSeq[T kind.Scalar, N Arity](seq iter.Seq[T]) Vector[T, N] {
	var v Vector[T, N]
	n := v.Len()
	i := 0
	for x := range seq {
		if i == n {
			break
		}
		v.c[i] = x
		i++
	}
	return v
}

// Len returns the number of components.
func (v Vector[T, N]) Len() int {
	var n N
	return n.Len()
}

// At returns component i. It panics with an error wrapping
// ErrIndexOutOfRange if i is outside [0, N).
func (v Vector[T, N]) At(i int) T {
	v.check(i)
	return v.c[i]
}

// SetAt sets component i. It panics like At.
func (v *Vector[T, N]) SetAt(i int, x T) {
	v.check(i)
	v.c[i] = x
}

func (v Vector[T, N]) check(i int) {
	if n := v.Len(); i < 0 || i >= n {
		panic(fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, n))
	}
}

// Slice returns the components in a new slice.
func (v Vector[T, N]) Slice() []T {
	out := make([]T, v.Len())
	copy(out, v.c[:])
	return out
}

// All iterates over index/component pairs in order.
func (v Vector[T, N]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(i, v.c[i]) {
				return
			}
		}
	}
}

// Hash returns a hash of the components that is equal for equal vectors.
func (v Vector[T, N]) Hash(seed maphash.Seed) uint64 {
	return maphash.Comparable(seed, v)
}

// Map applies f to every component.
func Map[T, R kind.Scalar, N Arity](v Vector[T, N], f func(T) R) Vector[R, N] {
	var r Vector[R, N]
	for i := 0; i < v.Len(); i++ {
		r.c[i] = f(v.c[i])
	}
	return r
}

func zip[A, B, R kind.Scalar, N Arity](a Vector[A, N], b Vector[B, N], f func(A, B) R) Vector[R, N] {
	var r Vector[R, N]
	for i := 0; i < a.Len(); i++ {
		r.c[i] = f(a.c[i], b.c[i])
	}
	return r
}

func zip3[A, B, C, R kind.Scalar, N Arity](a Vector[A, N], b Vector[B, N], c Vector[C, N], f func(A, B, C) R) Vector[R, N] {
	var r Vector[R, N]
	for i := 0; i < a.Len(); i++ {
		r.c[i] = f(a.c[i], b.c[i], c.c[i])
	}
	return r
}

// fold reduces the components pairwise in index order:
// x∘y, (x∘y)∘z and (x∘y)∘(z∘w).
func fold[T kind.Scalar, N Arity](v Vector[T, N], f func(T, T) T) T {
	switch v.Len() {
	case 2:
		return f(v.c[0], v.c[1])
	case 3:
		return f(f(v.c[0], v.c[1]), v.c[2])
	default:
		return f(f(v.c[0], v.c[1]), f(v.c[2], v.c[3]))
	}
}
