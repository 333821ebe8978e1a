package reduction

import (
	"github.com/sirupsen/logrus"

	"github.com/vezzo95/persistent-phylogeny/rbgraph"
)

// tryForced applies the first forced move available in g: a universal
// character (emit Gain), else a free species (emit Lose for each of its
// red-adjacent characters, in canonical name order). Returns the signed
// characters realized and true, or (nil, false, nil) if no forced move
// applies. g is mutated in place; callers run rbgraph.Closure(g) afterward.
func tryForced(g *rbgraph.Graph, cfg Config) ([]rbgraph.Signed, bool, error) {
	for _, ch := range g.Characters() {
		if !g.IsUniversal(ch) {
			continue
		}
		sc := rbgraph.Signed{Name: ch, State: rbgraph.Gain}
		if err := g.Realize(sc); err != nil {
			return nil, false, err
		}
		logMove(cfg, "universal", ch, rbgraph.Gain)

		return []rbgraph.Signed{sc}, true, nil
	}

	for _, sp := range g.Species() {
		if !g.IsFree(sp) {
			continue
		}
		reds := g.RedNeighborsOfSpecies(sp)
		if len(reds) == 0 {
			// Free but with nothing to lose yet (every character in
			// its component is still inactive): no move to emit, and
			// nothing about the graph would change, so treat this
			// species as not-yet-actionable rather than looping
			// forever on a no-op forced move.
			continue
		}
		moves := make([]rbgraph.Signed, 0, len(reds))
		for _, ch := range reds {
			sc := rbgraph.Signed{Name: ch, State: rbgraph.Lose}
			if err := g.Realize(sc); err != nil {
				return nil, false, err
			}
			moves = append(moves, sc)
			logMove(cfg, "free", ch, rbgraph.Lose)
		}

		return moves, true, nil
	}

	return nil, false, nil
}

func logMove(cfg Config, kind, character string, state rbgraph.State) {
	if cfg.Logger == nil {
		return
	}
	cfg.Logger.WithFields(logrus.Fields{
		"character": character,
		"state":     state.String(),
	}).Debugf("forced move: %s", kind)
}
