package rbgraph

// IsActive reports whether character ch has at least one incident red edge.
func (g *Graph) IsActive(ch string) bool {
	_, red := g.Degree(Character, ch)

	return red > 0
}

// IsInactive reports whether character ch has no incident red edge (every
// incident edge, if any, is black).
func (g *Graph) IsInactive(ch string) bool {
	return !g.IsActive(ch)
}

// IsActiveSpecies reports whether species sp has at least one incident red
// edge. Used by the Hasse-diagram reduction step to decide whether a species
// has already begun participating in a realization.
func (g *Graph) IsActiveSpecies(sp string) bool {
	_, red := g.Degree(Species, sp)

	return red > 0
}

// IsUniversal reports whether character ch is connected by a black edge to
// every species currently in the graph and has no red edges. Callers invoke
// this per connected component (each component is its own *Graph view), so
// "every species of its component" reduces to "every species in g". A
// character in a component with zero remaining species is never universal
// (there being no species for it to vacuously cover) — a dangling
// character like that is a dead end the safe-source search must reject, not
// a forced move.
func (g *Graph) IsUniversal(ch string) bool {
	if !g.HasVertex(Character, ch) {
		return false
	}
	if g.IsActive(ch) {
		return false
	}
	n := len(g.Species())
	if n == 0 {
		return false
	}
	black, _ := g.Degree(Character, ch)

	return black == n
}

// IsFree reports whether species sp is connected by a black edge to every
// inactive character and by a red edge to every active character currently
// in the graph (i.e. within its component).
func (g *Graph) IsFree(sp string) bool {
	if !g.HasVertex(Species, sp) {
		return false
	}
	black := make(map[string]struct{})
	for _, c := range g.BlackNeighborsOfSpecies(sp) {
		black[c] = struct{}{}
	}
	red := make(map[string]struct{})
	for _, c := range g.RedNeighborsOfSpecies(sp) {
		red[c] = struct{}{}
	}
	for _, ch := range g.Characters() {
		if g.IsActive(ch) {
			if _, ok := red[ch]; !ok {
				return false
			}
		} else {
			if _, ok := black[ch]; !ok {
				return false
			}
		}
	}

	return true
}

// IsPending reports whether character ch is active but not yet fully
// realized: it still has at least one remaining black edge.
func (g *Graph) IsPending(ch string) bool {
	if !g.IsActive(ch) {
		return false
	}
	black, _ := g.Degree(Character, ch)

	return black > 0
}

// CharSpeciesSet returns the set of species names black-adjacent to ch, as a
// set suitable for Includes comparisons.
func (g *Graph) CharSpeciesSet(ch string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, sp := range g.BlackNeighborsOfChar(ch) {
		out[sp] = struct{}{}
	}

	return out
}

// Includes reports whether the species-set of c2 is a subset of the
// species-set of c1 (names compared, not identities), i.e. c1 includes c2.
func (g *Graph) Includes(c1, c2 string) bool {
	s1 := g.CharSpeciesSet(c1)
	s2 := g.CharSpeciesSet(c2)
	for sp := range s2 {
		if _, ok := s1[sp]; !ok {
			return false
		}
	}

	return true
}

// CharacterSetOf returns the sorted set of character names black-adjacent to
// sp — C(s), used to order species by character-set inclusion.
func (g *Graph) CharacterSetOf(sp string) []string {
	return g.BlackNeighborsOfSpecies(sp)
}
