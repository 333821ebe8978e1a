package safesource

import (
	"strings"

	"github.com/vezzo95/persistent-phylogeny/hasse"
	"github.com/vezzo95/persistent-phylogeny/rbgraph"
)

// Strategy selects which safe-source policy Find applies.
type Strategy int

const (
	// Standard returns the first safe source in Hasse-vertex insertion
	// order.
	Standard Strategy = iota
	// Exponential returns every safe source found, for the driver to
	// branch over.
	Exponential
	// Interactive returns every safe source found, for the caller to
	// present to an oracle and re-select from.
	Interactive
)

// Candidate is one safe source or safe chain: the ordered signed-character
// label to realize, and a human-readable name for the interactive oracle.
type Candidate struct {
	// Label is the full ordered sequence of signed characters to
	// realize: the Gain of every character of the candidate's HDV (the
	// source itself, or a chain's terminal vertex), sorted by name.
	Label []rbgraph.Signed

	// Display is the rendered name of the candidate's HDV (the source,
	// or a chain's terminal vertex), e.g. "{s1,s2}+c3,c4", used by the
	// interactive oracle.
	Display string
}

// displayName renders a Hasse vertex as "{species...}+char1,char2,...".
func displayName(v *hasse.Vertex) string {
	var b strings.Builder
	b.WriteString("{")
	b.WriteString(strings.Join(v.Species, ","))
	b.WriteString("}+")
	b.WriteString(strings.Join(v.Characters, ","))

	return b.String()
}
