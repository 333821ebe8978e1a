package component

import (
	"github.com/vezzo95/persistent-phylogeny/rbgraph"
)

// node is a (kind, name) pair used internally for the black-edge walk.
type node struct {
	kind rbgraph.Kind
	name string
}

// Decompose partitions g into its black-connected components and returns one
// *rbgraph.Graph per component, in the order each component's first vertex
// was discovered (species visited before characters in g.Species() order,
// which is sorted — this is what gives the reduction driver a deterministic
// discovery order to concatenate per-component sequences in).
//
// Each returned Graph is a full view of its component: every species and
// character reachable via black edges from one another, plus every edge
// (black or red) between two of those vertices.
// Complexity: O(V + E).
func Decompose(g *rbgraph.Graph) []*rbgraph.Graph {
	visited := make(map[node]bool)
	var comps []*rbgraph.Graph

	visitOrder := make([]node, 0, len(g.Species())+len(g.Characters()))
	for _, sp := range g.Species() {
		visitOrder = append(visitOrder, node{rbgraph.Species, sp})
	}
	for _, ch := range g.Characters() {
		visitOrder = append(visitOrder, node{rbgraph.Character, ch})
	}

	for _, start := range visitOrder {
		if visited[start] {
			continue
		}
		members := walkBlack(g, start, visited)

		var species, chars []string
		for _, m := range members {
			if m.kind == rbgraph.Species {
				species = append(species, m.name)
			} else {
				chars = append(chars, m.name)
			}
		}
		comp := g.Induced(species, chars, nil)
		comps = append(comps, comp)
	}

	return comps
}

// walkBlack runs a breadth-first walk from start using only black edges,
// marking every discovered vertex in visited, and returns the discovered
// vertices in visit order.
func walkBlack(g *rbgraph.Graph, start node, visited map[node]bool) []node {
	queue := []node{start}
	visited[start] = true
	var order []node

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)

		var neighbors []node
		if cur.kind == rbgraph.Species {
			for _, ch := range g.BlackNeighborsOfSpecies(cur.name) {
				neighbors = append(neighbors, node{rbgraph.Character, ch})
			}
		} else {
			for _, sp := range g.BlackNeighborsOfChar(cur.name) {
				neighbors = append(neighbors, node{rbgraph.Species, sp})
			}
		}
		for _, n := range neighbors {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}

	return order
}
