package matrixio

import (
	"fmt"
	"io"

	"github.com/vezzo95/persistent-phylogeny/rbgraph"
)

// Parse reads the species/character matrix format from r and builds an
// *rbgraph.Graph with species s1..sm and characters c1..cn (1-indexed),
// a black edge wherever the matrix holds a 1. Returns ErrParse if the
// input does not conform to the grammar, the declared dimensions don't
// match the number of values present, or any value is not 0 or 1.
func Parse(r io.Reader) (*rbgraph.Graph, error) {
	var doc document
	if err := grammar.Parse(r, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if doc.M <= 0 || doc.N <= 0 {
		return nil, fmt.Errorf("%w: non-positive dimensions %d x %d", ErrParse, doc.M, doc.N)
	}
	if len(doc.Values) != doc.M*doc.N {
		return nil, fmt.Errorf("%w: expected %d values for a %d x %d matrix, got %d",
			ErrParse, doc.M*doc.N, doc.M, doc.N, len(doc.Values))
	}

	g := rbgraph.NewGraph()
	for i := 1; i <= doc.M; i++ {
		if err := g.AddVertex(rbgraph.Species, speciesName(i)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
	}
	for j := 1; j <= doc.N; j++ {
		if err := g.AddVertex(rbgraph.Character, characterName(j)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
	}

	for idx, v := range doc.Values {
		if v != 0 && v != 1 {
			return nil, fmt.Errorf("%w: value %d at position %d is not 0 or 1", ErrParse, v, idx)
		}
		if v == 0 {
			continue
		}
		row := idx / doc.N
		col := idx % doc.N
		if err := g.AddEdge(speciesName(row+1), characterName(col+1), rbgraph.Black); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
	}

	return g, nil
}

func speciesName(i int) string {
	return fmt.Sprintf("s%d", i)
}

func characterName(j int) string {
	return fmt.Sprintf("c%d", j)
}
