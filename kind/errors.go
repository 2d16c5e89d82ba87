package kind

import "errors"

var (
	// ErrUnknownKind is returned by ParseKind for an unrecognised name.
	ErrUnknownKind = errors.New("kind: unknown scalar kind")

	// ErrParse wraps failures of Traits.Parse.
	ErrParse = errors.New("kind: invalid scalar text")
)
