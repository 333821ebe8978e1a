package hasse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vezzo95/persistent-phylogeny/hasse"
	"github.com/vezzo95/persistent-phylogeny/maxchar"
	"github.com/vezzo95/persistent-phylogeny/rbgraph"
)

func TestBuild_Collapse(t *testing.T) {
	// S3: two species with identical character sets {c1, c2}.
	g := rbgraph.NewGraph()
	for _, sp := range []string{"s1", "s2"} {
		require.NoError(t, g.AddVertex(rbgraph.Species, sp))
	}
	for _, ch := range []string{"c1", "c2"} {
		require.NoError(t, g.AddVertex(rbgraph.Character, ch))
		for _, sp := range []string{"s1", "s2"} {
			require.NoError(t, g.AddEdge(sp, ch, rbgraph.Black))
		}
	}

	res := maxchar.Filter(g)
	d := hasse.Build(res)

	require.Len(t, d.Vertices, 1, "s1 and s2 collapse into one HDV")
	assert.ElementsMatch(t, []string{"s1", "s2"}, d.Vertices[0].Species)
	assert.Empty(t, d.Edges)
}

func TestBuild_TransitiveReduction(t *testing.T) {
	// S4: character sets {c1}, {c1,c2}, {c1,c2,c3}.
	g := rbgraph.NewGraph()
	for _, sp := range []string{"s1", "s2", "s3"} {
		require.NoError(t, g.AddVertex(rbgraph.Species, sp))
	}
	for _, ch := range []string{"c1", "c2", "c3"} {
		require.NoError(t, g.AddVertex(rbgraph.Character, ch))
	}
	require.NoError(t, g.AddEdge("s1", "c1", rbgraph.Black))
	require.NoError(t, g.AddEdge("s2", "c1", rbgraph.Black))
	require.NoError(t, g.AddEdge("s2", "c2", rbgraph.Black))
	require.NoError(t, g.AddEdge("s3", "c1", rbgraph.Black))
	require.NoError(t, g.AddEdge("s3", "c2", rbgraph.Black))
	require.NoError(t, g.AddEdge("s3", "c3", rbgraph.Black))

	// maxchar.Filter would drop c2 and c3 (their species-sets lie strictly
	// inside c1's), so the diagram is built from g itself with every
	// character standing for only itself.
	res := &maxchar.Result{GM: g, Aliases: map[string][]string{
		"c1": {"c1"}, "c2": {"c2"}, "c3": {"c3"},
	}}
	d := hasse.Build(res)

	require.Len(t, d.Vertices, 3)
	require.Len(t, d.Edges, 2, "no direct edge {c1}->{c1,c2,c3}, only the two covers")

	v1 := findVertex(t, d, "s1")
	v2 := findVertex(t, d, "s2")
	v3 := findVertex(t, d, "s3")

	assert.NotNil(t, findEdge(d, v1.ID, v2.ID))
	assert.NotNil(t, findEdge(d, v2.ID, v3.ID))
	assert.Nil(t, findEdge(d, v1.ID, v3.ID))

	e12 := findEdge(d, v1.ID, v2.ID)
	require.Len(t, e12.Labels, 1)
	assert.Equal(t, "c2", e12.Labels[0].Name)
	assert.Equal(t, rbgraph.Gain, e12.Labels[0].State)
}

func TestReduce_PrunesActiveSpecies(t *testing.T) {
	g := rbgraph.NewGraph()
	for _, sp := range []string{"s1", "s2"} {
		require.NoError(t, g.AddVertex(rbgraph.Species, sp))
	}
	require.NoError(t, g.AddVertex(rbgraph.Character, "c1"))
	require.NoError(t, g.AddVertex(rbgraph.Character, "c2"))
	require.NoError(t, g.AddEdge("s1", "c1", rbgraph.Black))
	require.NoError(t, g.AddEdge("s2", "c1", rbgraph.Black))
	require.NoError(t, g.AddEdge("s2", "c2", rbgraph.Black))
	// s1 already has a red edge elsewhere: it is active.
	require.NoError(t, g.AddVertex(rbgraph.Character, "cX"))
	require.NoError(t, g.AddEdge("s1", "cX", rbgraph.Red))

	res := maxchar.Filter(g)
	d := hasse.Build(res)
	reduced := hasse.Reduce(d, g)

	for _, v := range reduced.Vertices {
		assert.NotContains(t, v.Species, "s1")
	}
}

func TestReduce_PrunesSpeciesMadeActiveByGain(t *testing.T) {
	// s1 starts black-adjacent only to cA; s2 has its own character c2.
	// Gaining cA while it is not universal (s2 has no edge to it) leaves
	// s2 with a fresh red edge, the ordinary way a species becomes active
	// partway through a real reduction.
	g := rbgraph.NewGraph()
	for _, sp := range []string{"s1", "s2"} {
		require.NoError(t, g.AddVertex(rbgraph.Species, sp))
	}
	require.NoError(t, g.AddVertex(rbgraph.Character, "cA"))
	require.NoError(t, g.AddVertex(rbgraph.Character, "c2"))
	require.NoError(t, g.AddEdge("s1", "cA", rbgraph.Black))
	require.NoError(t, g.AddEdge("s2", "c2", rbgraph.Black))

	require.NoError(t, g.Realize(rbgraph.Signed{Name: "cA", State: rbgraph.Gain}))
	require.True(t, g.IsActiveSpecies("s2"), "s2 gained a red edge to cA since it had no prior edge to it")

	res := maxchar.Filter(g)
	d := hasse.Build(res)
	reduced := hasse.Reduce(d, g)

	for _, v := range reduced.Vertices {
		assert.NotContains(t, v.Species, "s2", "s2 is active and must be pruned")
	}
	found := false
	for _, v := range reduced.Vertices {
		if assert.ObjectsAreEqual([]string{"s1"}, v.Species) {
			found = true
		}
	}
	assert.True(t, found, "s1 is inactive and survives the prune")
}

func findVertex(t *testing.T, d *hasse.Diagram, species string) *hasse.Vertex {
	t.Helper()
	for _, v := range d.Vertices {
		for _, s := range v.Species {
			if s == species {
				return v
			}
		}
	}
	t.Fatalf("no vertex contains species %q", species)

	return nil
}

func findEdge(d *hasse.Diagram, from, to hasse.VertexID) *hasse.Edge {
	for _, e := range d.Edges {
		if e.From == from && e.To == to {
			return e
		}
	}

	return nil
}
