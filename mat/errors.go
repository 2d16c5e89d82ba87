package mat

import "errors"

// ErrShape is returned when external data does not have the rows and
// columns of the requested matrix type.
var ErrShape = errors.New("mat: shape mismatch")
