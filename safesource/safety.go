package safesource

import (
	"github.com/vezzo95/persistent-phylogeny/component"
	"github.com/vezzo95/persistent-phylogeny/rbgraph"
)

// gainLabel builds the Gain-signed label for a sorted character set.
func gainLabel(chars []string) []rbgraph.Signed {
	out := make([]rbgraph.Signed, len(chars))
	for i, c := range chars {
		out[i] = rbgraph.Signed{Name: c, State: rbgraph.Gain}
	}

	return out
}

// isSafe clones g, realizes label in order, runs closure, and reports
// whether every resulting black-component is still reducible — no
// component is a dead end.
func isSafe(g *rbgraph.Graph, label []rbgraph.Signed) bool {
	clone := g.Clone()
	for _, sc := range label {
		if err := clone.Realize(sc); err != nil {
			return false
		}
	}
	rbgraph.Closure(clone)

	for _, comp := range component.Decompose(clone) {
		if isDeadEnd(comp) {
			return false
		}
	}

	return true
}

// isDeadEnd reports whether comp is a dead end: no species left with at
// least one character still stranded. With zero species left, no
// character is universal (IsUniversal returns false when there are no
// species) and there is no species to be free, so the condition is
// checked directly on the species and character counts.
func isDeadEnd(comp *rbgraph.Graph) bool {
	return len(comp.Species()) == 0 && len(comp.Characters()) > 0
}
