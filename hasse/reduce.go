package hasse

import "github.com/vezzo95/persistent-phylogeny/rbgraph"

// Reduce prunes every vertex whose species list contains a species that is
// currently active (has ≥1 red edge) in g, the live component graph — not
// just the maximal reducible subgraph GM the diagram was built from — along
// with every edge incident to a pruned vertex. This produces the reduced
// Hasse diagram consumed by the safe-source finder.
//
// A species is active when it already carries a red edge, using
// rbgraph.Graph.IsActiveSpecies rather than the character-level IsActive.
// Complexity: O(V + E).
func Reduce(d *Diagram, g *rbgraph.Graph) *Diagram {
	keep := make(map[VertexID]bool, len(d.Vertices))
	for _, v := range d.Vertices {
		pruned := false
		for _, sp := range v.Species {
			if g.IsActiveSpecies(sp) {
				pruned = true

				break
			}
		}
		keep[v.ID] = !pruned
	}

	out := &Diagram{}
	for _, v := range d.Vertices {
		if keep[v.ID] {
			out.Vertices = append(out.Vertices, v)
		}
	}
	for _, e := range d.Edges {
		if keep[e.From] && keep[e.To] {
			out.Edges = append(out.Edges, e)
		}
	}
	out.rebuildIndex()

	return out
}
