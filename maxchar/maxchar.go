package maxchar

import (
	"sort"

	"github.com/vezzo95/persistent-phylogeny/rbgraph"
)

// Result is the maximal reducible subgraph GM together with the alias table
// recording which original character names collapsed onto each surviving
// representative, so the Hasse builder can label vertices with every
// original name rather than just the representative's.
type Result struct {
	// GM is the maximal reducible subgraph: every species of the
	// component, plus one representative vertex per distinct
	// (inactive, undominated) character species-set.
	GM *rbgraph.Graph

	// Aliases maps a surviving representative character name to the
	// sorted list of every original character name (including itself)
	// that shares its species-set.
	Aliases map[string][]string
}

// Filter computes GM for component g.
// Complexity: O(C^2 * S) where C is the number of characters and S the
// number of species — dominance is checked pairwise over species-sets.
func Filter(g *rbgraph.Graph) *Result {
	speciesSets := make(map[string]map[string]struct{})
	for _, ch := range g.Characters() {
		if g.IsInactive(ch) {
			speciesSets[ch] = g.CharSpeciesSet(ch)
		}
	}

	// Group inactive characters by identical species-set, choosing the
	// lexicographically smallest name in each group as representative.
	groups := make(map[string][]string) // representative -> all tied names
	assigned := make(map[string]bool)
	names := sortedInactiveNames(speciesSets)
	for _, ch := range names {
		if assigned[ch] {
			continue
		}
		tied := []string{ch}
		assigned[ch] = true
		for _, other := range names {
			if assigned[other] {
				continue
			}
			if sameSet(speciesSets[ch], speciesSets[other]) {
				tied = append(tied, other)
				assigned[other] = true
			}
		}
		sort.Strings(tied)
		groups[ch] = tied
	}

	// Drop representatives whose species-set is strictly contained in
	// another representative's (dominated characters are not maximal).
	reps := make([]string, 0, len(groups))
	for rep := range groups {
		reps = append(reps, rep)
	}
	sort.Strings(reps)

	maximal := make([]string, 0, len(reps))
	for _, rep := range reps {
		dominated := false
		for _, other := range reps {
			if other == rep {
				continue
			}
			if isStrictSubset(speciesSets[rep], speciesSets[other]) {
				dominated = true

				break
			}
		}
		if !dominated {
			maximal = append(maximal, rep)
		}
	}
	sort.Strings(maximal)

	aliases := make(map[string][]string, len(maximal))
	for _, rep := range maximal {
		aliases[rep] = groups[rep]
	}

	gm := g.Induced(g.Species(), maximal, func(sp, ch string, color rbgraph.Color) bool {
		if color != rbgraph.Black {
			return false
		}
		_, ok := speciesSets[ch][sp]

		return ok
	})

	return &Result{GM: gm, Aliases: aliases}
}

func sortedInactiveNames(sets map[string]map[string]struct{}) []string {
	out := make([]string, 0, len(sets))
	for ch := range sets {
		out = append(out, ch)
	}
	sort.Strings(out)

	return out
}

func sameSet(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}

	return true
}

// isStrictSubset reports whether a is a (strict) subset of b: every member
// of a is in b, and b has at least one member a lacks.
func isStrictSubset(a, b map[string]struct{}) bool {
	if len(a) >= len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}

	return true
}
