package vec

// Arity is the compile-time component count of a vector.
type Arity interface {
	Two | Three | Four
	Len() int
}

// Two is the arity of 2-component vectors.
type Two struct{}

// Three is the arity of 3-component vectors.
type Three struct{}

// Four is the arity of 4-component vectors.
type Four struct{}

func (Two) Len() int   { return 2 }
func (Three) Len() int { return 3 }
func (Four) Len() int  { return 4 }

// Dim returns the component count of arity N.
func Dim[N Arity]() int {
	var n N
	return n.Len()
}
