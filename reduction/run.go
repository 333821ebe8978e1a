package reduction

import (
	"github.com/sirupsen/logrus"

	"github.com/vezzo95/persistent-phylogeny/component"
	"github.com/vezzo95/persistent-phylogeny/hasse"
	"github.com/vezzo95/persistent-phylogeny/maxchar"
	"github.com/vezzo95/persistent-phylogeny/rbgraph"
	"github.com/vezzo95/persistent-phylogeny/safesource"
)

// Run computes a c-reduction of g: decomposes g into black-components,
// reduces each independently, and concatenates the per-component
// sequences in discovery order. Returns ErrNoReduction if any component
// admits none.
//
// g is not mutated; every component is cloned before any realization is
// applied.
func Run(g *rbgraph.Graph, cfg Config) ([]rbgraph.Signed, error) {
	if g.Empty() {
		return nil, nil
	}

	var full []rbgraph.Signed
	for _, comp := range component.Decompose(g) {
		seq, err := reduceComponent(comp, cfg)
		if err != nil {
			return nil, err
		}
		full = append(full, seq...)
	}

	return full, nil
}

// reduceComponent reduces one black-component to the empty graph in
// place on its own clone.
func reduceComponent(g *rbgraph.Graph, cfg Config) ([]rbgraph.Signed, error) {
	var seq []rbgraph.Signed

	for {
		select {
		case <-cfg.ctx().Done():
			return nil, cfg.ctx().Err()
		default:
		}

		if g.Empty() {
			return seq, nil
		}

		if moves, applied, err := tryForced(g, cfg); err != nil {
			return nil, err
		} else if applied {
			rbgraph.Closure(g)
			seq = append(seq, moves...)

			continue
		}

		res := maxchar.Filter(g)
		diagram := hasse.Reduce(hasse.Build(res), g)

		cands, err := safesource.Find(cfg.Strategy, diagram, g)
		if err != nil {
			return nil, ErrNoReduction
		}

		if cfg.Strategy == safesource.Exponential {
			rest, branchSeq, ok := tryBranches(g, cands, cfg)
			if !ok {
				return nil, ErrNoReduction
			}
			seq = append(seq, branchSeq...)

			return append(seq, rest...), nil
		}

		chosen, err := pickCandidate(cfg, cands)
		if err != nil {
			return nil, err
		}

		if err := applyLabel(g, chosen.Label); err != nil {
			return nil, err
		}
		rbgraph.Closure(g)
		seq = append(seq, chosen.Label...)
		logCandidate(cfg, chosen)
	}
}

// pickCandidate selects the candidate to apply for Standard (always the
// first) and Interactive (delegated to cfg.Oracle) strategies.
func pickCandidate(cfg Config, cands []safesource.Candidate) (safesource.Candidate, error) {
	if cfg.Strategy == safesource.Interactive {
		idx, err := cfg.Oracle(cands)
		if err != nil {
			return safesource.Candidate{}, err
		}

		return cands[idx], nil
	}

	return cands[0], nil
}

// tryBranches explores every exponential candidate depth-first, each on
// its own clone, backtracking to the next candidate on ErrNoReduction.
func tryBranches(g *rbgraph.Graph, cands []safesource.Candidate, cfg Config) (rest, label []rbgraph.Signed, ok bool) {
	for _, cand := range cands {
		clone := g.Clone()
		if err := applyLabel(clone, cand.Label); err != nil {
			continue
		}
		rbgraph.Closure(clone)

		branchRest, err := reduceComponent(clone, cfg)
		if err != nil {
			logPruned(cfg, cand)

			continue
		}
		logCandidate(cfg, cand)

		return branchRest, cand.Label, true
	}

	return nil, nil, false
}

func applyLabel(g *rbgraph.Graph, label []rbgraph.Signed) error {
	for _, sc := range label {
		if err := g.Realize(sc); err != nil {
			return err
		}
	}

	return nil
}

func logCandidate(cfg Config, cand safesource.Candidate) {
	if cfg.Logger == nil {
		return
	}
	cfg.Logger.WithFields(logrus.Fields{
		"candidate": cand.Display,
	}).Debug("safe source selected")
}

func logPruned(cfg Config, cand safesource.Candidate) {
	if cfg.Logger == nil {
		return
	}
	cfg.Logger.WithFields(logrus.Fields{
		"candidate": cand.Display,
	}).Debug("branch pruned")
}
