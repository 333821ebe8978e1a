// Package maxchar computes the maximal reducible subgraph GM of a red-black
// graph component: the subgraph restricted to inactive characters whose
// species-set is not strictly contained in another character's. Characters
// with identical species-sets collapse to one representative; the collapsed
// names are retained in Aliases for the Hasse builder to re-expand onto its
// vertex labels.
//
// GM is built via rbgraph.Graph.Induced, producing a fresh, read-only view
// of the component rather than mutating it in place.
package maxchar
