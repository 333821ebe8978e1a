// Package hasse builds the Hasse diagram of the species poset ordered by
// character-set inclusion, from a maxchar.Result's maximal reducible
// subgraph: insert species in ascending |C(s)| order so every strictly
// smaller predecessor is already present, wire a cover edge from every
// existing vertex whose character set is a strict subset of the new
// species' set, then transitively reduce the resulting DAG.
//
// Build and Reduce return a fresh *Diagram on every call — the diagram is
// never mutated across recursion levels of the reduction search, and never
// holds a live reference back into the graph it was derived from.
package hasse
