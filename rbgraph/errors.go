package rbgraph

import "errors"

// Sentinel errors for red-black graph operations. Callers branch on these
// with errors.Is; messages are not part of the contract.
var (
	// ErrEmptyName indicates a vertex name was the empty string.
	ErrEmptyName = errors.New("rbgraph: vertex name is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent
	// species or character.
	ErrVertexNotFound = errors.New("rbgraph: vertex not found")

	// ErrVertexExists indicates AddVertex was called with a name already
	// used by the other kind (species and character names share one
	// namespace so a Hasse label can never be ambiguous).
	ErrVertexExists = errors.New("rbgraph: name already used by the other vertex kind")

	// ErrNotBipartite indicates an edge was requested between two
	// vertices of the same kind.
	ErrNotBipartite = errors.New("rbgraph: edge must connect a species and a character")

	// ErrEdgeExists indicates a second edge was requested between a
	// species/character pair that already has one (at most one edge per
	// pair is allowed, see spec RBG invariants).
	ErrEdgeExists = errors.New("rbgraph: edge already exists between this pair")

	// ErrEdgeNotFound indicates a query or mutation referenced a
	// species/character pair with no edge between them.
	ErrEdgeNotFound = errors.New("rbgraph: no edge between this pair")

	// ErrInconsistentMove indicates a realization was attempted without
	// satisfying its precondition (lose on a character that is not active
	// or still has a black edge, or an unknown state). The
	// reduction driver uses this to prune branches in exponential mode
	// and treats it as fatal elsewhere.
	ErrInconsistentMove = errors.New("rbgraph: inconsistent move")
)
