package verifier

import (
	"context"

	"github.com/vezzo95/persistent-phylogeny/rbgraph"
)

// Verifier confirms that realizing seq, in order, against the matrix
// file reduces it to the empty graph.
type Verifier interface {
	Verify(ctx context.Context, file string, seq []rbgraph.Signed) (bool, error)
}
