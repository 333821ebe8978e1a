package matrixio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vezzo95/persistent-phylogeny/matrixio"
	"github.com/vezzo95/persistent-phylogeny/rbgraph"
)

func TestParse_Basic(t *testing.T) {
	input := "2 3\n1 0 1\n0 1 1\n"

	g, err := matrixio.Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"s1", "s2"}, g.Species())
	assert.Equal(t, []string{"c1", "c2", "c3"}, g.Characters())

	assert.True(t, g.HasEdge("s1", "c1"))
	assert.False(t, g.HasEdge("s1", "c2"))
	assert.True(t, g.HasEdge("s1", "c3"))
	assert.False(t, g.HasEdge("s2", "c1"))
	assert.True(t, g.HasEdge("s2", "c2"))
	assert.True(t, g.HasEdge("s2", "c3"))

	color, ok := g.EdgeColor("s1", "c1")
	require.True(t, ok)
	assert.Equal(t, rbgraph.Black, color)
}

func TestParse_WrongValueCount(t *testing.T) {
	input := "2 3\n1 0\n0 1 1\n"

	_, err := matrixio.Parse(strings.NewReader(input))
	assert.ErrorIs(t, err, matrixio.ErrParse)
}

func TestParse_NonBinaryValue(t *testing.T) {
	input := "1 2\n1 2\n"

	_, err := matrixio.Parse(strings.NewReader(input))
	assert.ErrorIs(t, err, matrixio.ErrParse)
}

func TestParse_Malformed(t *testing.T) {
	input := "not a matrix at all"

	_, err := matrixio.Parse(strings.NewReader(input))
	assert.ErrorIs(t, err, matrixio.ErrParse)
}
