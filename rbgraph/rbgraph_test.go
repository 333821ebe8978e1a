package rbgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vezzo95/persistent-phylogeny/rbgraph"
)

// buildS1 constructs a fixture with species {s3, s4, s5}, characters
// {c1..c8}, with black
// edges s3-c2,s3-c3; s4-c1,s4-c2; s5-c1,s5-c2,s5-c3,s5-c5,s5-c7, and red
// edges s3-c4, s4-c4, s5-c4.
func buildS1(t *testing.T) *rbgraph.Graph {
	t.Helper()
	g := rbgraph.NewGraph()
	for _, sp := range []string{"s3", "s4", "s5"} {
		require.NoError(t, g.AddVertex(rbgraph.Species, sp))
	}
	for i := 1; i <= 8; i++ {
		require.NoError(t, g.AddVertex(rbgraph.Character, charName(i)))
	}
	black := []struct{ sp, ch string }{
		{"s3", "c2"}, {"s3", "c3"},
		{"s4", "c1"}, {"s4", "c2"},
		{"s5", "c1"}, {"s5", "c2"}, {"s5", "c3"}, {"s5", "c5"}, {"s5", "c7"},
	}
	for _, b := range black {
		require.NoError(t, g.AddEdge(b.sp, b.ch, rbgraph.Black))
	}
	for _, sp := range []string{"s3", "s4", "s5"} {
		require.NoError(t, g.AddEdge(sp, "c4", rbgraph.Red))
	}

	return g
}

func charName(i int) string {
	return "c" + string(rune('0'+i))
}

func TestS1_Universal(t *testing.T) {
	g := buildS1(t)

	assert.True(t, g.IsUniversal("c2"), "c2 is black-adjacent to every species and inactive")
	assert.False(t, g.IsUniversal("c4"), "c4 is active")
	assert.False(t, g.IsUniversal("c5"), "c5 is not adjacent to every species")
	assert.False(t, g.HasVertex(rbgraph.Character, "s3"), "s3 is a species, not a character")
}

func TestAddVertex_EmptyName(t *testing.T) {
	g := rbgraph.NewGraph()
	assert.ErrorIs(t, g.AddVertex(rbgraph.Species, ""), rbgraph.ErrEmptyName)
}

func TestAddVertex_CrossKindCollision(t *testing.T) {
	g := rbgraph.NewGraph()
	require.NoError(t, g.AddVertex(rbgraph.Species, "x"))
	assert.ErrorIs(t, g.AddVertex(rbgraph.Character, "x"), rbgraph.ErrVertexExists)
}

func TestAddEdge_Bipartiteness(t *testing.T) {
	g := rbgraph.NewGraph()
	require.NoError(t, g.AddVertex(rbgraph.Species, "s1"))
	require.NoError(t, g.AddVertex(rbgraph.Character, "c1"))
	require.NoError(t, g.AddEdge("s1", "c1", rbgraph.Black))

	assert.True(t, g.HasEdge("s1", "c1"))
	color, ok := g.EdgeColor("s1", "c1")
	assert.True(t, ok)
	assert.Equal(t, rbgraph.Black, color)

	assert.ErrorIs(t, g.AddEdge("s1", "c1", rbgraph.Red), rbgraph.ErrEdgeExists)
}

func TestRemoveVertex_DropsIncidentEdges(t *testing.T) {
	g := buildS1(t)
	require.NoError(t, g.RemoveVertex(rbgraph.Species, "s5"))

	assert.False(t, g.HasEdge("s5", "c1"))
	assert.False(t, g.HasEdge("s5", "c4"))
	assert.Equal(t, 2, len(g.Species()))
}

func TestRealizeGain_Universal(t *testing.T) {
	g := rbgraph.NewGraph()
	require.NoError(t, g.AddVertex(rbgraph.Species, "s1"))
	require.NoError(t, g.AddVertex(rbgraph.Character, "c1"))
	require.NoError(t, g.AddVertex(rbgraph.Character, "c2"))
	require.NoError(t, g.AddEdge("s1", "c1", rbgraph.Black))
	require.NoError(t, g.AddEdge("s1", "c2", rbgraph.Black))

	before := g.VertexCount() + g.EdgeCount()
	require.NoError(t, g.Realize(rbgraph.Signed{Name: "c1", State: rbgraph.Gain}))
	rbgraph.Closure(g)
	after := g.VertexCount() + g.EdgeCount()

	assert.Less(t, after, before, "realizing a universal character followed by closure must shrink the graph")
	assert.False(t, g.HasVertex(rbgraph.Character, "c1"), "c1, left with no edges, is removed by closure")
}

func TestRealizeLose_RequiresAllRed(t *testing.T) {
	g := rbgraph.NewGraph()
	require.NoError(t, g.AddVertex(rbgraph.Species, "s1"))
	require.NoError(t, g.AddVertex(rbgraph.Character, "c1"))
	require.NoError(t, g.AddEdge("s1", "c1", rbgraph.Black))

	err := g.Realize(rbgraph.Signed{Name: "c1", State: rbgraph.Lose})
	assert.ErrorIs(t, err, rbgraph.ErrInconsistentMove, "c1 is not active yet")

	require.NoError(t, g.RemoveEdge("s1", "c1"))
	require.NoError(t, g.AddEdge("s1", "c1", rbgraph.Red))
	require.NoError(t, g.Realize(rbgraph.Signed{Name: "c1", State: rbgraph.Lose}))
	assert.False(t, g.HasVertex(rbgraph.Character, "c1"))
}

func TestClone_Independence(t *testing.T) {
	g := buildS1(t)
	clone := g.Clone()

	require.NoError(t, clone.RemoveVertex(rbgraph.Species, "s3"))
	assert.True(t, g.HasVertex(rbgraph.Species, "s3"), "mutating the clone must not affect the original")
	assert.False(t, clone.HasVertex(rbgraph.Species, "s3"))
}

func TestIsUniversal_FalseWithNoSpecies(t *testing.T) {
	g := rbgraph.NewGraph()
	require.NoError(t, g.AddVertex(rbgraph.Character, "c1"))

	assert.False(t, g.IsUniversal("c1"), "a character with zero remaining species is never universal")
}

func TestClosure_PreservesActiveCharacter(t *testing.T) {
	g := rbgraph.NewGraph()
	require.NoError(t, g.AddVertex(rbgraph.Species, "s1"))
	require.NoError(t, g.AddVertex(rbgraph.Species, "s2"))
	require.NoError(t, g.AddVertex(rbgraph.Character, "c1"))
	require.NoError(t, g.AddEdge("s1", "c1", rbgraph.Black))

	// Gain c1 while it is not universal (s2 has no edge to it at all):
	// s1 loses its black edge, s2 gains a red one, c1 ends black=0, red=1.
	require.NoError(t, g.Realize(rbgraph.Signed{Name: "c1", State: rbgraph.Gain}))
	rbgraph.Closure(g)

	require.True(t, g.HasVertex(rbgraph.Character, "c1"), "an active (red>0) character must survive closure")
	assert.True(t, g.IsActive("c1"))
	assert.False(t, g.IsPending("c1"), "c1 has no black edges left, so it is Lose-eligible, not pending")

	require.NoError(t, g.Realize(rbgraph.Signed{Name: "c1", State: rbgraph.Lose}))
	assert.False(t, g.HasVertex(rbgraph.Character, "c1"), "only an explicit Lose removes an active character")
}

func TestIsPending(t *testing.T) {
	g := rbgraph.NewGraph()
	require.NoError(t, g.AddVertex(rbgraph.Species, "s1"))
	require.NoError(t, g.AddVertex(rbgraph.Species, "s2"))
	require.NoError(t, g.AddVertex(rbgraph.Character, "c1"))
	require.NoError(t, g.AddEdge("s1", "c1", rbgraph.Black))
	require.NoError(t, g.AddEdge("s2", "c1", rbgraph.Red))

	assert.True(t, g.IsPending("c1"), "c1 is active and still has a black edge remaining")
	assert.False(t, g.IsActive("c2"), "a character not present in the graph is never active")
}

func TestIsFree(t *testing.T) {
	g := rbgraph.NewGraph()
	require.NoError(t, g.AddVertex(rbgraph.Species, "s1"))
	require.NoError(t, g.AddVertex(rbgraph.Character, "c1"))
	require.NoError(t, g.AddVertex(rbgraph.Character, "c2"))
	require.NoError(t, g.AddEdge("s1", "c1", rbgraph.Black))
	require.NoError(t, g.AddEdge("s1", "c2", rbgraph.Red))

	assert.True(t, g.IsFree("s1"), "s1 is black to the only inactive char and red to the only active char")
}
