package kind

import (
	"fmt"
	"strings"
)

// Kind identifies one scalar representation.
type Kind uint8

const (
	Bool Kind = iota
	Int32
	UInt32
	Int64
	UInt64
	Float32
	Float64
)

var kindNames = [...]string{
	Bool:    "bool",
	Int32:   "int32",
	UInt32:  "uint32",
	Int64:   "int64",
	UInt64:  "uint64",
	Float32: "float32",
	Float64: "float64",
}

// Kinds returns all kinds in declaration order.
func Kinds() []Kind {
	return []Kind{Bool, Int32, UInt32, Int64, UInt64, Float32, Float64}
}

// String returns the Go type name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind maps a Go type name ("int32", "float64", ...) to its Kind.
// The aliases "int", "uint", "float" and "double" are accepted.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "int":
		return Int32, nil
	case "uint":
		return UInt32, nil
	case "float":
		return Float32, nil
	case "double":
		return Float64, nil
	}
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Bits returns the storage width of the kind in bits. Bool reports 1.
func (k Kind) Bits() int {
	switch k {
	case Bool:
		return 1
	case Int32, UInt32, Float32:
		return 32
	case Int64, UInt64, Float64:
		return 64
	default:
		return 0
	}
}

// IsInteger reports whether k is one of the integer kinds.
func (k Kind) IsInteger() bool {
	return k == Int32 || k == UInt32 || k == Int64 || k == UInt64
}

// IsSigned reports whether k has a negative domain.
func (k Kind) IsSigned() bool {
	return k == Int32 || k == Int64 || k == Float32 || k == Float64
}

// IsFloat reports whether k is a floating point kind.
func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64
}

// NormKind returns the floating kind that lengths and norms of k are
// computed in: Float64 for the 64-bit kinds, Float32 otherwise.
func (k Kind) NormKind() Kind {
	if k.Bits() == 64 {
		return Float64
	}
	return Float32
}

// Family groups operations that share a legality rule.
type Family uint8

const (
	Arithmetic Family = iota
	Ordering
	Bitwise
	Shift
	Transcendental
	Geometric
)

func (f Family) String() string {
	switch f {
	case Arithmetic:
		return "arithmetic"
	case Ordering:
		return "ordering"
	case Bitwise:
		return "bitwise"
	case Shift:
		return "shift"
	case Transcendental:
		return "transcendental"
	case Geometric:
		return "geometric"
	default:
		return fmt.Sprintf("Family(%d)", uint8(f))
	}
}

// Allows reports whether operations of family f are defined on k.
// The vec and mat packages enforce the same table statically through the
// constraint interfaces of this package.
func (k Kind) Allows(f Family) bool {
	switch f {
	case Bitwise:
		return k == Bool || k.IsInteger()
	case Shift:
		return k.IsInteger()
	case Arithmetic, Ordering, Transcendental, Geometric:
		return k != Bool && int(k) < len(kindNames)
	default:
		return false
	}
}

// WidensTo reports whether every value of k is representable in to with
// the same sign domain. This is the lattice of implicit conversions.
func (k Kind) WidensTo(to Kind) bool {
	if k == to {
		return true
	}
	switch k {
	case Int32:
		return to == Int64 || to == Float64
	case UInt32:
		return to == Int64 || to == UInt64 || to == Float64
	case Float32:
		return to == Float64
	default:
		return false
	}
}
