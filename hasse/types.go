package hasse

import "github.com/vezzo95/persistent-phylogeny/rbgraph"

// VertexID identifies a Hasse vertex by its insertion index. Insertion order
// is the canonical tie-break for deterministic output.
type VertexID int

// Vertex (HDV) carries the collapsed set of species sharing exactly one
// character set, and that character set itself (already expanded through
// maxchar aliases, so every original character name appears).
type Vertex struct {
	ID         VertexID
	Species    []string // sorted
	Characters []string // sorted, alias-expanded
}

// Edge (HDE) is a cover relation labeled by the signed characters gained
// moving from From to To — always state Gain.
type Edge struct {
	From, To VertexID
	Labels   []rbgraph.Signed
}

// Diagram is the directed acyclic graph of HDVs and HDEs built from one
// maximal reducible subgraph.
type Diagram struct {
	Vertices []*Vertex
	Edges    []*Edge

	out map[VertexID][]*Edge // outgoing edges, insertion order
	in  map[VertexID][]*Edge // incoming edges, insertion order
}

// Vertex looks up a vertex by ID.
func (d *Diagram) Vertex(id VertexID) *Vertex {
	for _, v := range d.Vertices {
		if v.ID == id {
			return v
		}
	}

	return nil
}

// Out returns the outgoing edges of id, in insertion order.
func (d *Diagram) Out(id VertexID) []*Edge {
	return d.out[id]
}

// In returns the incoming edges of id, in insertion order.
func (d *Diagram) In(id VertexID) []*Edge {
	return d.in[id]
}

// Sources returns every vertex with in-degree 0, in insertion order.
func (d *Diagram) Sources() []*Vertex {
	var out []*Vertex
	for _, v := range d.Vertices {
		if len(d.in[v.ID]) == 0 {
			out = append(out, v)
		}
	}

	return out
}

// rebuildIndex recomputes the out/in adjacency indices from Edges. Called
// once after construction and again after transitive reduction removes
// edges.
func (d *Diagram) rebuildIndex() {
	d.out = make(map[VertexID][]*Edge, len(d.Vertices))
	d.in = make(map[VertexID][]*Edge, len(d.Vertices))
	for _, e := range d.Edges {
		d.out[e.From] = append(d.out[e.From], e)
		d.in[e.To] = append(d.in[e.To], e)
	}
}
