package vec

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-glm/kind"
)

// X returns component 0.
func (v Vector[T, N]) X() T { return v.c[0] }

// Y returns component 1.
func (v Vector[T, N]) Y() T { return v.c[1] }

// Z returns component 2. It panics for 2-component vectors.
func (v Vector[T, N]) Z() T { return v.At(2) }

// W returns component 3. It panics unless the vector has four components.
func (v Vector[T, N]) W() T { return v.At(3) }

func (v *Vector[T, N]) SetX(x T) { v.c[0] = x }
func (v *Vector[T, N]) SetY(y T) { v.c[1] = y }
func (v *Vector[T, N]) SetZ(z T) { v.SetAt(2, z) }
func (v *Vector[T, N]) SetW(w T) { v.SetAt(3, w) }

// R, G, B and A alias X, Y, Z and W for colour data.
func (v Vector[T, N]) R() T { return v.X() }
func (v Vector[T, N]) G() T { return v.Y() }
func (v Vector[T, N]) B() T { return v.Z() }
func (v Vector[T, N]) A() T { return v.W() }

// XY returns the first two components.
func (v Vector[T, N]) XY() Vector[T, Two] {
	return Vec2(v.c[0], v.c[1])
}

// SetXY overwrites the first two components and leaves the rest unchanged.
func (v *Vector[T, N]) SetXY(xy Vector[T, Two]) {
	v.c[0], v.c[1] = xy.c[0], xy.c[1]
}

// XYZ returns the first three components. It panics for 2-component vectors.
func (v Vector[T, N]) XYZ() Vector[T, Three] {
	v.check(2)
	return Vec3(v.c[0], v.c[1], v.c[2])
}

// SetXYZ overwrites the first three components.
func (v *Vector[T, N]) SetXYZ(xyz Vector[T, Three]) {
	v.check(2)
	v.c[0], v.c[1], v.c[2] = xyz.c[0], xyz.c[1], xyz.c[2]
}

var letterSets = [...]string{"xyzw", "rgba", "stpq"}

// ParsePattern maps a component pattern such as "zyx", "rrgg" or "st" to
// component indices. All letters must come from one of the sets xyzw, rgba
// and stpq, and the pattern holds between one and four letters. Repeats are
// allowed here; accessors that write disallow them.
func ParsePattern(pattern string) ([]int, error) {
	if len(pattern) == 0 || len(pattern) > 4 {
		return nil, fmt.Errorf("%w: %q must have 1 to 4 letters", ErrPattern, pattern)
	}
	for _, set := range letterSets {
		if !strings.ContainsRune(set, rune(pattern[0])) {
			continue
		}
		idx := make([]int, len(pattern))
		for i := 0; i < len(pattern); i++ {
			j := strings.IndexByte(set, pattern[i])
			if j < 0 {
				return nil, fmt.Errorf("%w: %q mixes letter sets or uses %q", ErrPattern, pattern, pattern[i])
			}
			idx[i] = j
		}
		return idx, nil
	}
	return nil, fmt.Errorf("%w: %q starts with unknown letter %q", ErrPattern, pattern, pattern[0])
}

// fieldIndices resolves a named-accessor pattern of exactly m letters
// without repeats, all addressing components below n.
func fieldIndices(name string, m, n int) ([]int, error) {
	idx, err := ParsePattern(name)
	if err != nil {
		return nil, err
	}
	if len(idx) != m {
		return nil, fmt.Errorf("%w: %q has %d letters, want %d", ErrPattern, name, len(idx), m)
	}
	var seen [4]bool
	for _, i := range idx {
		if seen[i] {
			return nil, fmt.Errorf("%w: %q repeats a component", ErrPattern, name)
		}
		seen[i] = true
		if i >= n {
			return nil, fmt.Errorf("%w: %q addresses component %d of %d", ErrIndexOutOfRange, name, i, n)
		}
	}
	return idx, nil
}

// Fields reads the named components of v, for example
//
//	zx, err := vec.Fields[vec.Two](v, "zx")
func Fields[M Arity, T kind.Scalar, N Arity](v Vector[T, N], name string) (Vector[T, M], error) {
	var r Vector[T, M]
	idx, err := fieldIndices(name, r.Len(), v.Len())
	if err != nil {
		return r, err
	}
	for k, i := range idx {
		r.c[k] = v.c[i]
	}
	return r, nil
}

// SetFields writes value into the named components of v. Components not
// named keep their values. On error v is unchanged.
func SetFields[M Arity, T kind.Scalar, N Arity](v *Vector[T, N], name string, value Vector[T, M]) error {
	idx, err := fieldIndices(name, value.Len(), v.Len())
	if err != nil {
		return err
	}
	for k, i := range idx {
		v.c[i] = value.c[k]
	}
	return nil
}
