package swizzle

import "errors"

// ErrInvalidPattern is wrapped when a selection pattern is malformed or
// its length does not match the requested arity.
var ErrInvalidPattern = errors.New("swizzle: invalid pattern")
