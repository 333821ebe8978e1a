// Package rbgraph implements the red-black graph: the bipartite, two-colored
// graph at the core of the c-reduction search. Vertices split into two
// disjoint kinds, species and characters; edges connect one of each kind and
// carry a color, black (character present in species) or red (character
// already realized / conflict marker).
//
// A small set of maps guarded by RWMutex, deterministic sorted iteration,
// sentinel errors checked with errors.Is — specialized to a fixed bipartite,
// two-colored domain: there is no directedness, no weights, and at most one
// edge between any species/character pair.
//
// Structural predicates (IsUniversal, IsFree, IsActive, IsPending, ...) and the
// two mutators driving the reduction search (Realize, Closure) live alongside
// the storage type: lifecycle (types.go), queries (methods.go), and mutators
// in the same package rather than splitting predicates into their own
// subpackage.
package rbgraph
