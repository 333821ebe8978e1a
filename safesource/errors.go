package safesource

import "errors"

// ErrIrreducible indicates the diagram has no safe source and no safe
// chain: the component is irreducible.
var ErrIrreducible = errors.New("safesource: no safe source or chain")
