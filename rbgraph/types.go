package rbgraph

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Kind distinguishes the two vertex classes of a red-black graph.
type Kind int

const (
	// Species is the vertex kind for a matrix row (a taxon).
	Species Kind = iota
	// Character is the vertex kind for a matrix column (a trait).
	Character
)

// String renders Kind for logging and error messages.
func (k Kind) String() string {
	if k == Species {
		return "species"
	}
	return "character"
}

// Color is the label on an edge of a red-black graph.
type Color int

const (
	// Black marks a character present in a species (not yet realized).
	Black Color = iota
	// Red marks a character already realized for a species, or a conflict.
	Red
)

// String renders Color for logging and error messages.
func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "red"
}

// State is the sign applied to a character when it is realized.
type State int

const (
	// Gain denotes `c+`: the character is processed, moving every
	// species of its component to a red edge (or removing a black one).
	Gain State = iota
	// Lose denotes `c-`: the character is fully conflicted (all red) and
	// is deleted from the graph.
	Lose
)

// String renders State as the `+`/`-` suffix used in the output format.
func (s State) String() string {
	if s == Gain {
		return "+"
	}
	return "-"
}

// Signed pairs a character name with the state it was realized in. At most
// one Lose may occur for a given character name across a full reduction.
type Signed struct {
	Name  string
	State State
}

// String renders a Signed as `name+` or `name-`.
func (s Signed) String() string {
	return s.Name + s.State.String()
}

// edge is the internal representation of a black or red connection between
// one species vertex and one character vertex, addressed by name.
type edge struct {
	id      string
	species string
	char    string
	color   Color
}

// Graph is the red-black graph: two disjoint vertex classes (species,
// characters), addressed by name, and at most one edge per (species,
// character) pair. Safe for concurrent use: muVert guards the vertex name
// sets, muEdge guards edges and the per-color adjacency indices.
type Graph struct {
	muVert sync.RWMutex
	muEdge sync.RWMutex

	species    map[string]struct{}
	characters map[string]struct{}

	edges map[string]*edge // edge ID -> edge

	// blackAdj[species][character] = edge ID, and its mirror
	// charBlackAdj[character][species] = edge ID, kept in lock-step so
	// neighbor queries by either endpoint are O(1).
	blackAdj     map[string]map[string]string
	charBlackAdj map[string]map[string]string
	redAdj       map[string]map[string]string
	charRedAdj   map[string]map[string]string
}

// NewGraph returns an empty red-black graph.
func NewGraph() *Graph {
	return &Graph{
		species:      make(map[string]struct{}),
		characters:   make(map[string]struct{}),
		edges:        make(map[string]*edge),
		blackAdj:     make(map[string]map[string]string),
		charBlackAdj: make(map[string]map[string]string),
		redAdj:       make(map[string]map[string]string),
		charRedAdj:   make(map[string]map[string]string),
	}
}

// newEdgeID mints a fresh, process-unique edge identifier.
func newEdgeID() string {
	return uuid.New().String()
}

// sortedKeys returns the keys of m in lexicographic order.
func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// sortedAdjKeys returns the keys of an adjacency row in lexicographic order.
func sortedAdjKeys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
