package reduction

import "errors"

// ErrNoReduction indicates a component admits no forced move, no safe
// source, and no safe chain: the red-black graph has no c-reduction.
var ErrNoReduction = errors.New("reduction: no reduction exists")
