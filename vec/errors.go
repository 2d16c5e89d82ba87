package vec

import "errors"

var (
	// ErrIndexOutOfRange is wrapped by the panics of At/SetAt and by the
	// errors of pattern accessors that address a missing component.
	ErrIndexOutOfRange = errors.New("vec: index out of range")

	// ErrFormat is wrapped by Parse when the text does not split into the
	// expected number of components or a component does not parse.
	ErrFormat = errors.New("vec: invalid vector text")

	// ErrPattern is wrapped when a component pattern such as "xzy" is
	// malformed or not allowed for the requested accessor.
	ErrPattern = errors.New("vec: invalid component pattern")
)
