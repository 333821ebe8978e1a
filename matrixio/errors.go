package matrixio

import "errors"

// ErrParse indicates the input did not conform to the matrix grammar, its
// declared dimensions did not match the number of values present, or a
// value was not 0 or 1.
var ErrParse = errors.New("matrixio: malformed matrix")
