// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in deterministic ordering of Vertices, NeighborIDs and Edges.
//   - Validate constraint enforcement (weights, loops, multi-edges, merge).

package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trailmaze/core"
)

// TestGraph_AddVertex verifies empty-ID rejection and idempotent insertion.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	assert.False(t, g.HasVertex(""))

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	assert.True(t, g.HasVertex("A"))
	assert.Equal(t, 1, g.VertexCount())
}

// TestGraph_AddEdgeConstraints verifies every AddEdge sentinel.
func TestGraph_AddEdgeConstraints(t *testing.T) {
	cases := []struct {
		name     string
		from, to string
		weight   int64
		want     error
	}{
		{"EmptyFrom", "", "B", 1, core.ErrEmptyVertexID},
		{"EmptyTo", "A", "", 1, core.ErrEmptyVertexID},
		{"Loop", "A", "A", 1, core.ErrLoopNotAllowed},
		{"ZeroWeight", "A", "B", 0, core.ErrBadWeight},
		{"NegativeWeight", "A", "B", -3, core.ErrBadWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph()
			assert.ErrorIs(t, g.AddEdge(tc.from, tc.to, tc.weight), tc.want)
			assert.Zero(t, g.EdgeCount())
		})
	}
}

// TestGraph_EdgesAreDirected verifies that A→B does not imply B→A and that
// endpoints are created on demand.
func TestGraph_EdgesAreDirected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 3))

	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))
	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))

	w, err := g.Weight("A", "B")
	require.NoError(t, err)
	assert.EqualValues(t, 3, w)
	_, err = g.Weight("B", "A")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

// TestGraph_ParallelEdges verifies the multi-edge policy with and without a
// merge function.
func TestGraph_ParallelEdges(t *testing.T) {
	strict := core.NewGraph()
	require.NoError(t, strict.AddEdge("A", "B", 2))
	assert.ErrorIs(t, strict.AddEdge("A", "B", 5), core.ErrMultiEdgeNotAllowed)

	merged := core.NewGraph(core.WithMerge(core.KeepMax))
	require.NoError(t, merged.AddEdge("A", "B", 2))
	require.NoError(t, merged.AddEdge("A", "B", 5))
	require.NoError(t, merged.AddEdge("A", "B", 4))
	w, err := merged.Weight("A", "B")
	require.NoError(t, err)
	assert.EqualValues(t, 5, w)
	assert.Equal(t, 1, merged.EdgeCount())
}

// TestGraph_RemoveEdge verifies removal leaves the reverse edge and the
// endpoints in place.
func TestGraph_RemoveEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "A", 1))

	require.NoError(t, g.RemoveEdge("B", "A"))
	assert.ErrorIs(t, g.RemoveEdge("B", "A"), core.ErrEdgeNotFound)
	assert.True(t, g.HasEdge("A", "B"))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, g.VertexCount())

	in, err := g.InNeighborIDs("A")
	require.NoError(t, err)
	assert.Empty(t, in)
}

// TestGraph_Ordering anchors the sorted output of every listing.
func TestGraph_Ordering(t *testing.T) {
	g := core.NewGraph()
	for _, e := range []core.Edge{
		{From: "C", To: "A", Weight: 1},
		{From: "A", To: "C", Weight: 2},
		{From: "A", To: "B", Weight: 3},
		{From: "B", To: "C", Weight: 4},
	} {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())

	out, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, out)

	in, err := g.InNeighborIDs("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, in)

	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 3},
		{From: "A", To: "C", Weight: 2},
		{From: "B", To: "C", Weight: 4},
		{From: "C", To: "A", Weight: 1},
	}, g.Edges())

	_, err = g.NeighborIDs("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestGraph_Degree verifies in, out and distinct-neighbour counts.
func TestGraph_Degree(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "A", 1))
	require.NoError(t, g.AddEdge("C", "A", 1))
	require.NoError(t, g.AddEdge("A", "D", 1))

	in, out, adjacent, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 2, in)
	assert.Equal(t, 2, out)
	assert.Equal(t, 3, adjacent)

	_, _, _, err = g.Degree("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestGraph_Clone verifies the clone is deep and keeps the merge policy.
func TestGraph_Clone(t *testing.T) {
	g := core.NewGraph(core.WithMerge(core.KeepMax))
	require.NoError(t, g.AddEdge("A", "B", 2))
	require.NoError(t, g.AddVertex("Z"))

	c := g.Clone()
	assert.Equal(t, g.Edges(), c.Edges())
	assert.Equal(t, g.Vertices(), c.Vertices())

	require.NoError(t, c.RemoveEdge("A", "B"))
	require.NoError(t, c.AddEdge("B", "A", 7))
	require.NoError(t, c.AddEdge("B", "A", 9))
	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	w, err := c.Weight("B", "A")
	require.NoError(t, err)
	assert.EqualValues(t, 9, w)
}

// TestGraph_ConcurrentReaders runs queries from many goroutines while a
// writer adds edges; run with -race.
func TestGraph_ConcurrentReaders(t *testing.T) {
	g := core.NewGraph(core.WithMerge(core.KeepMax))
	require.NoError(t, g.AddEdge("A", "B", 1))

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if _, err := g.NeighborIDs("A"); err != nil {
					errs <- err
					return
				}
				_ = g.Edges()
			}
		}()
	}
	for j := int64(1); j <= 200; j++ {
		require.NoError(t, g.AddEdge("A", "B", j))
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	w, err := g.Weight("A", "B")
	require.NoError(t, err)
	assert.EqualValues(t, 200, w)
}
