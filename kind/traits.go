package kind

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Traits describes one scalar kind: its identities, limits, conversion rule
// and text representation.
type Traits[T Scalar] interface {
	// Kind reports the enumeration value of T.
	Kind() Kind

	// Zero and One are the additive and multiplicative identities.
	// For bool they are false and true.
	Zero() T
	One() T

	// Min and Max are the smallest and largest representable values.
	// Float kinds report the largest finite magnitudes.
	Min() T
	Max() T

	// Truncate maps a double precision result back onto T. Integer kinds
	// truncate toward zero and saturate at Min/Max, NaN becomes zero.
	// Float kinds pass the value through. Bool maps nonzero to true.
	Truncate(x float64) T

	// Float64 widens x to double precision. Bool maps to 1 or 0.
	Float64(x T) float64

	// Abs returns |x|. It is the identity for unsigned kinds and bool.
	Abs(x T) T

	// Less orders two values. For bool, false sorts before true.
	Less(a, b T) bool

	// Format returns the shortest text that Parse maps back to x.
	Format(x T) string

	// Parse reads a value written in Go literal syntax. Surrounding
	// whitespace is ignored.
	Parse(s string) (T, error)
}

// Of returns the traits of T.
func Of[T Scalar]() Traits[T] {
	var zero T
	var t any
	switch any(zero).(type) {
	case bool:
		t = boolTraits{}
	case int32:
		t = int32Traits
	case uint32:
		t = uint32Traits
	case int64:
		t = int64Traits
	case uint64:
		t = uint64Traits
	case float32:
		t = float32Traits
	case float64:
		t = float64Traits
	}
	return t.(Traits[T])
}

// KindOf returns the Kind of T.
func KindOf[T Scalar]() Kind {
	return Of[T]().Kind()
}

var (
	int32Traits = signedTraits[int32]{
		kind: Int32, min: math.MinInt32, max: math.MaxInt32,
		lo: math.MinInt32, hi: math.MaxInt32,
	}
	int64Traits = signedTraits[int64]{
		kind: Int64, min: math.MinInt64, max: math.MaxInt64,
		lo: math.MinInt64, hi: 1 << 63,
	}
	uint32Traits = unsignedTraits[uint32]{
		kind: UInt32, max: math.MaxUint32, hi: math.MaxUint32,
	}
	uint64Traits = unsignedTraits[uint64]{
		kind: UInt64, max: math.MaxUint64, hi: 1 << 64,
	}
	float32Traits = floatTraits[float32]{
		kind: Float32, max: math.MaxFloat32,
	}
	float64Traits = floatTraits[float64]{
		kind: Float64, max: math.MaxFloat64,
	}
)

// signedTraits serves int32 and int64. lo and hi are the saturation
// thresholds in double precision.
type signedTraits[I SignedInteger] struct {
	kind     Kind
	min, max I
	lo, hi   float64
}

func (t signedTraits[I]) Kind() Kind        { return t.kind }
func (signedTraits[I]) Zero() I             { return 0 }
func (signedTraits[I]) One() I              { return 1 }
func (t signedTraits[I]) Min() I            { return t.min }
func (t signedTraits[I]) Max() I            { return t.max }
func (signedTraits[I]) Float64(x I) float64 { return float64(x) }
func (signedTraits[I]) Less(a, b I) bool    { return a < b }
func (signedTraits[I]) Format(x I) string   { return strconv.FormatInt(int64(x), 10) }

func (t signedTraits[I]) Truncate(x float64) I {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= t.hi:
		return t.max
	case x <= t.lo:
		return t.min
	}
	return I(x)
}

func (signedTraits[I]) Abs(x I) I {
	if x < 0 {
		return -x
	}
	return x
}

func (t signedTraits[I]) Parse(s string) (I, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, t.kind.Bits())
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrParse, t.kind, s)
	}
	return I(v), nil
}

// unsignedTraits serves uint32 and uint64.
type unsignedTraits[U Unsigned] struct {
	kind Kind
	max  U
	hi   float64
}

func (t unsignedTraits[U]) Kind() Kind        { return t.kind }
func (unsignedTraits[U]) Zero() U             { return 0 }
func (unsignedTraits[U]) One() U              { return 1 }
func (unsignedTraits[U]) Min() U              { return 0 }
func (t unsignedTraits[U]) Max() U            { return t.max }
func (unsignedTraits[U]) Float64(x U) float64 { return float64(x) }
func (unsignedTraits[U]) Less(a, b U) bool    { return a < b }
func (unsignedTraits[U]) Format(x U) string   { return strconv.FormatUint(uint64(x), 10) }

// Abs of an unsigned value is the value itself.
func (unsignedTraits[U]) Abs(x U) U { return x }

func (t unsignedTraits[U]) Truncate(x float64) U {
	switch {
	case math.IsNaN(x), x <= 0:
		return 0
	case x >= t.hi:
		return t.max
	}
	return U(x)
}

func (t unsignedTraits[U]) Parse(s string) (U, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, t.kind.Bits())
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrParse, t.kind, s)
	}
	return U(v), nil
}

type floatTraits[F Float] struct {
	kind Kind
	max  F
}

func (t floatTraits[F]) Kind() Kind         { return t.kind }
func (floatTraits[F]) Zero() F              { return 0 }
func (floatTraits[F]) One() F               { return 1 }
func (t floatTraits[F]) Min() F             { return -t.max }
func (t floatTraits[F]) Max() F             { return t.max }
func (floatTraits[F]) Truncate(x float64) F { return F(x) }
func (floatTraits[F]) Float64(x F) float64  { return float64(x) }
func (floatTraits[F]) Less(a, b F) bool     { return a < b }

func (floatTraits[F]) Abs(x F) F {
	if x < 0 || (x == 0 && math.Signbit(float64(x))) {
		return -x
	}
	return x
}

func (t floatTraits[F]) Format(x F) string {
	return strconv.FormatFloat(float64(x), 'g', -1, t.kind.Bits())
}

func (t floatTraits[F]) Parse(s string) (F, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), t.kind.Bits())
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrParse, t.kind, s)
	}
	return F(v), nil
}

type boolTraits struct{}

func (boolTraits) Kind() Kind      { return Bool }
func (boolTraits) Zero() bool      { return false }
func (boolTraits) One() bool       { return true }
func (boolTraits) Min() bool       { return false }
func (boolTraits) Max() bool       { return true }
func (boolTraits) Abs(x bool) bool { return x }

func (boolTraits) Truncate(x float64) bool { return x != 0 }

func (boolTraits) Float64(x bool) float64 {
	if x {
		return 1
	}
	return 0
}

func (boolTraits) Less(a, b bool) bool  { return !a && b }
func (boolTraits) Format(x bool) string { return strconv.FormatBool(x) }

func (boolTraits) Parse(s string) (bool, error) {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, fmt.Errorf("%w: bool %q", ErrParse, s)
	}
	return v, nil
}
