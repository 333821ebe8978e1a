package verifier

import (
	"context"
	"os"

	"github.com/vezzo95/persistent-phylogeny/matrixio"
	"github.com/vezzo95/persistent-phylogeny/rbgraph"
)

// ReplayVerifier re-parses file and replays seq in-process, running
// closure after every realization, and reports whether the result is
// empty. Used by tests; the CLI does not fall back to it when no external
// verifier binary is configured.
type ReplayVerifier struct{}

func (ReplayVerifier) Verify(ctx context.Context, file string, seq []rbgraph.Signed) (bool, error) {
	f, err := os.Open(file)
	if err != nil {
		return false, err
	}
	defer f.Close()

	g, err := matrixio.Parse(f)
	if err != nil {
		return false, err
	}

	for _, sc := range seq {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}
		if err := g.Realize(sc); err != nil {
			return false, err
		}
		rbgraph.Closure(g)
	}

	return g.Empty(), nil
}
