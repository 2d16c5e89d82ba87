package kind

import "golang.org/x/exp/constraints"

// Scalar is the closed set of component kinds.
type Scalar interface {
	bool | int32 | uint32 | int64 | uint64 | float32 | float64
}

// Number is every Scalar that supports arithmetic and ordering.
type Number interface {
	int32 | uint32 | int64 | uint64 | float32 | float64
}

// Integer is the set of integer kinds.
type Integer interface {
	int32 | uint32 | int64 | uint64
}

// SignedInteger is the set of signed integer kinds.
type SignedInteger interface {
	int32 | int64
}

// Unsigned is the set of unsigned integer kinds.
type Unsigned interface {
	uint32 | uint64
}

// Float is the set of floating point kinds.
type Float interface {
	float32 | float64
}

// Signed is every kind with a negative domain: signed integers and floats.
// Negation, Sign and the reflection family are defined on it.
type Signed interface {
	int32 | int64 | float32 | float64
}

// ShiftCount admits any Go integer type, including int and named integer
// types, as a scalar shift amount.
type ShiftCount interface {
	constraints.Integer
}

// Bits is the set of kinds that support the bitwise family.
type Bits interface {
	bool | int32 | uint32 | int64 | uint64
}

// Int64Source lists the kinds that widen to int64 without loss.
type Int64Source interface {
	int32 | uint32 | int64
}

// Uint64Source lists the kinds that widen to uint64 without loss.
type Uint64Source interface {
	uint32 | uint64
}

// Float64Source lists the kinds that widen to float64 without loss.
type Float64Source interface {
	int32 | uint32 | float32 | float64
}
