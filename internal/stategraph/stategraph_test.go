package stategraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gclverify/ltlcheck/internal/stategraph"
)

func TestGraph_AddEdgeAutoAddsEndpoints(t *testing.T) {
	g := stategraph.New()
	g.AddEdge("a", "b")

	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []string{"a", "b"}, g.Vertices())
}

func TestGraph_AddEdgeDeduplicatesParallelEdges(t *testing.T) {
	g := stategraph.New()
	g.AddEdge("a", "b")
	g.AddEdge("a", "b")

	assert.Equal(t, 1, g.EdgeCount())
	succ, err := g.Successors("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, succ)
}

func TestGraph_SuccessorsAreSortedAndCopied(t *testing.T) {
	g := stategraph.New()
	g.AddEdge("a", "c")
	g.AddEdge("a", "b")

	succ, err := g.Successors("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, succ)

	succ[0] = "mutated"
	again, err := g.Successors("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, again)
}

func TestGraph_SuccessorsUnknownVertex(t *testing.T) {
	g := stategraph.New()
	_, err := g.Successors("missing")
	assert.ErrorIs(t, err, stategraph.ErrVertexNotFound)
}

func TestGraph_AddVertexIsIdempotent(t *testing.T) {
	g := stategraph.New()
	g.AddVertex("a")
	g.AddVertex("a")
	assert.Equal(t, 1, g.VertexCount())
}
