package safesource

import (
	"github.com/vezzo95/persistent-phylogeny/hasse"
	"github.com/vezzo95/persistent-phylogeny/rbgraph"
)

// Find locates safe sources of d against the live component graph g,
// according to strategy. Sources are tried in d.Sources() insertion order.
// Standard returns at most one candidate (the first safe one found);
// Exponential and Interactive both return every safe candidate found, for
// the driver or an interactive oracle to choose among.
//
// When no source is safe, Find falls back to safe chains: for every
// source whose out-degree is exactly 1, it extends along the unique
// out-edge until a vertex with out-degree != 1 (a true branch or a sink),
// and tests that vertex's full character set as the chain's label — the
// telescoping sum of a chain's edge labels equals the terminal vertex's
// character set, so no intermediate label needs to be assembled.
//
// Returns ErrIrreducible if neither a safe source nor a safe chain exists.
func Find(strategy Strategy, d *hasse.Diagram, g *rbgraph.Graph) ([]Candidate, error) {
	sources := d.Sources()

	var safeSources []Candidate
	for _, v := range sources {
		label := gainLabel(v.Characters)
		if !isSafe(g, label) {
			continue
		}
		safeSources = append(safeSources, Candidate{Label: label, Display: displayName(v)})
		if strategy == Standard {
			return safeSources, nil
		}
	}
	if len(safeSources) > 0 {
		return safeSources, nil
	}

	var safeChains []Candidate
	for _, v := range sources {
		terminal := chainTerminal(d, v)
		if terminal.ID == v.ID {
			continue // no extension possible; already covered above
		}
		label := gainLabel(terminal.Characters)
		if !isSafe(g, label) {
			continue
		}
		safeChains = append(safeChains, Candidate{Label: label, Display: displayName(terminal)})
		if strategy == Standard {
			return safeChains, nil
		}
	}
	if len(safeChains) > 0 {
		return safeChains, nil
	}

	return nil, ErrIrreducible
}

// chainTerminal walks forward from v along unique out-edges, stopping at
// the first vertex whose out-degree is not exactly 1.
func chainTerminal(d *hasse.Diagram, v *hasse.Vertex) *hasse.Vertex {
	cur := v
	for {
		out := d.Out(cur.ID)
		if len(out) != 1 {
			return cur
		}
		cur = d.Vertex(out[0].To)
	}
}
