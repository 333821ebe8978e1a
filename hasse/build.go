package hasse

import (
	"sort"

	"github.com/vezzo95/persistent-phylogeny/maxchar"
	"github.com/vezzo95/persistent-phylogeny/rbgraph"
)

// speciesEntry is the working record for one species during construction:
// its name and its alias-expanded, canonically sorted character-name set.
type speciesEntry struct {
	name  string
	chars []string // sorted
}

// Build constructs the Hasse diagram of the species poset of res.GM.
// Character names on both vertices and edge labels are expanded
// through res.Aliases so every original character name appears, not just
// the maxchar representative.
// Complexity: O(S^2 * C) for the cover-edge search, S species and C
// characters per maximal reducible subgraph — small in practice (species
// count per component).
func Build(res *maxchar.Result) *Diagram {
	gm := res.GM

	entries := make([]speciesEntry, 0, len(gm.Species()))
	for _, sp := range gm.Species() {
		entries = append(entries, speciesEntry{name: sp, chars: expand(gm.CharacterSetOf(sp), res.Aliases)})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].chars) < len(entries[j].chars)
	})

	d := &Diagram{}
	var nextID VertexID

	for _, entry := range entries {
		if v := findBySet(d, entry.chars); v != nil {
			v.Species = append(v.Species, entry.name)
			sort.Strings(v.Species)

			continue
		}

		newV := &Vertex{ID: nextID, Species: []string{entry.name}, Characters: entry.chars}
		nextID++

		for _, w := range d.Vertices {
			if isStrictSubsetStrings(w.Characters, entry.chars) {
				gained := diffSorted(entry.chars, w.Characters)
				labels := make([]rbgraph.Signed, 0, len(gained))
				for _, c := range gained {
					labels = append(labels, rbgraph.Signed{Name: c, State: rbgraph.Gain})
				}
				d.Edges = append(d.Edges, &Edge{From: w.ID, To: newV.ID, Labels: labels})
			}
		}

		d.Vertices = append(d.Vertices, newV)
	}

	d.rebuildIndex()
	transitiveReduce(d)

	return d
}

// expand maps a set of maxchar representative names onto the full set of
// original character names they stand in for, canonically sorted.
func expand(reps []string, aliases map[string][]string) []string {
	seen := make(map[string]struct{})
	for _, rep := range reps {
		for _, name := range aliases[rep] {
			seen[name] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

func findBySet(d *Diagram, chars []string) *Vertex {
	for _, v := range d.Vertices {
		if equalSorted(v.Characters, chars) {
			return v
		}
	}

	return nil
}

func equalSorted(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// isStrictSubsetStrings reports whether sorted slice a is a strict subset of
// sorted slice b.
func isStrictSubsetStrings(a, b []string) bool {
	if len(a) >= len(b) {
		return false
	}
	set := make(map[string]struct{}, len(b))
	for _, x := range b {
		set[x] = struct{}{}
	}
	for _, x := range a {
		if _, ok := set[x]; !ok {
			return false
		}
	}

	return true
}

// diffSorted returns the sorted elements of b that are absent from a,
// i.e. b \ a.
func diffSorted(b, a []string) []string {
	set := make(map[string]struct{}, len(a))
	for _, x := range a {
		set[x] = struct{}{}
	}
	var out []string
	for _, x := range b {
		if _, ok := set[x]; !ok {
			out = append(out, x)
		}
	}
	sort.Strings(out)

	return out
}

// transitiveReduce removes every edge (p, q) for which an alternate path
// p -> u -> q also exists. The result of transitive reduction on a DAG is
// unique, so removal order does not matter.
func transitiveReduce(d *Diagram) {
	redundant := make(map[[2]VertexID]bool)
	for _, u := range d.Vertices {
		in := d.In(u.ID)
		out := d.Out(u.ID)
		if len(in) == 0 || len(out) == 0 {
			continue
		}
		for _, pe := range in {
			for _, qe := range out {
				if pe.From == qe.To {
					continue
				}
				redundant[[2]VertexID{pe.From, qe.To}] = true
			}
		}
	}
	if len(redundant) == 0 {
		return
	}

	kept := d.Edges[:0:0]
	for _, e := range d.Edges {
		if redundant[[2]VertexID{e.From, e.To}] {
			continue
		}
		kept = append(kept, e)
	}
	d.Edges = kept
	d.rebuildIndex()
}
