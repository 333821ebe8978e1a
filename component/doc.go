// Package component decomposes a red-black graph into its black-connected
// components: maximal vertex sets reachable from one another using only
// black edges. Red edges are ignored for connectivity — they
// mark already-processed conflicts, not structural adjacency — but once a
// vertex set is identified, every edge (black or red) between two of its
// members belongs to that component's view.
//
// The walk itself is a queue-driven traversal over sorted neighbor lists
// for deterministic discovery order, rather than a union-find structure.
package component
