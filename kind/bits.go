package kind

// BitOps is the bitwise family for one kind. For bool the operations are
// the logical ones: And is &&, Or is ||, Xor is != and Not is !.
type BitOps[T Bits] interface {
	And(a, b T) T
	Or(a, b T) T
	Xor(a, b T) T
	Not(a T) T
}

// BitsOf returns the bitwise operations of T.
func BitsOf[T Bits]() BitOps[T] {
	var zero T
	var ops any
	switch any(zero).(type) {
	case bool:
		ops = logicalOps{}
	case int32:
		ops = integerOps[int32]{}
	case uint32:
		ops = integerOps[uint32]{}
	case int64:
		ops = integerOps[int64]{}
	case uint64:
		ops = integerOps[uint64]{}
	}
	return ops.(BitOps[T])
}

type integerOps[I Integer] struct{}

func (integerOps[I]) And(a, b I) I { return a & b }
func (integerOps[I]) Or(a, b I) I  { return a | b }
func (integerOps[I]) Xor(a, b I) I { return a ^ b }
func (integerOps[I]) Not(a I) I    { return ^a }

type logicalOps struct{}

func (logicalOps) And(a, b bool) bool { return a && b }
func (logicalOps) Or(a, b bool) bool  { return a || b }
func (logicalOps) Xor(a, b bool) bool { return a != b }
func (logicalOps) Not(a bool) bool    { return !a }
