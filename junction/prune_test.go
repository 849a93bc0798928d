package junction_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trailmaze/junction"
	"github.com/katalvlaran/trailmaze/maze"
)

func latticeGrid(t *testing.T) *maze.Grid {
	t.Helper()
	data, err := os.ReadFile("../testdata/lattice5.txt")
	require.NoError(t, err)

	return mustParse(t, string(data))
}

// assertBackEdgesRemoved checks that every edge in gone existed before
// pruning, is missing afterwards, and that its forward twin survives.
func assertBackEdgesRemoved(t *testing.T, full, pruned *junction.Graph, gone [][2]maze.Point) {
	t.Helper()
	for _, e := range gone {
		assert.True(t, full.HasEdge(e[0], e[1]), "full graph lacks %v->%v", e[0], e[1])
		assert.False(t, pruned.HasEdge(e[0], e[1]), "pruned graph kept %v->%v", e[0], e[1])
		assert.True(t, pruned.HasEdge(e[1], e[0]), "forward edge %v->%v must survive", e[1], e[0])
	}
	assert.Equal(t, full.EdgeCount()-len(gone), pruned.EdgeCount())
}

// TestPrune_SampleUndirected checks the exact border back-edges removed from
// the sample graph.
func TestPrune_SampleUndirected(t *testing.T) {
	full, err := junction.Compile(sampleGrid(t), junction.WithMode(maze.Undirected), junction.WithPruning(false))
	require.NoError(t, err)
	pruned, err := junction.Compile(sampleGrid(t), junction.WithMode(maze.Undirected))
	require.NoError(t, err)

	assert.Equal(t, 24, full.EdgeCount())
	assertBackEdgesRemoved(t, full, pruned, [][2]maze.Point{
		{pt(11, 21), pt(3, 11)},
		{pt(19, 19), pt(11, 21)},
		{pt(19, 13), pt(13, 5)},
		{pt(19, 19), pt(19, 13)},
	})
}

// TestPrune_Lattice checks a 5×5 junction lattice: both border arms lose
// every edge pointing back toward the entrance corner.
func TestPrune_Lattice(t *testing.T) {
	for _, m := range maze.Modes {
		t.Run(m.String(), func(t *testing.T) {
			full, err := junction.Compile(latticeGrid(t), junction.WithMode(m), junction.WithPruning(false))
			require.NoError(t, err)
			pruned, err := junction.Compile(latticeGrid(t), junction.WithMode(m))
			require.NoError(t, err)

			assert.Equal(t, 25, full.NodeCount())
			assert.Equal(t, 80, full.EdgeCount())
			assertBackEdgesRemoved(t, full, pruned, [][2]maze.Point{
				// top and right side
				{pt(1, 5), pt(1, 3)},
				{pt(1, 7), pt(1, 5)},
				{pt(3, 9), pt(1, 7)},
				{pt(5, 9), pt(3, 9)},
				{pt(7, 9), pt(5, 9)},
				{pt(9, 9), pt(7, 9)},
				// left side and bottom
				{pt(5, 1), pt(3, 1)},
				{pt(7, 1), pt(5, 1)},
				{pt(9, 3), pt(7, 1)},
				{pt(9, 5), pt(9, 3)},
				{pt(9, 7), pt(9, 5)},
				{pt(9, 9), pt(9, 7)},
			})

			again := full.Clone()
			assert.Equal(t, 12, junction.Prune(again))
			assert.True(t, again.Equal(pruned))
			assert.Zero(t, junction.Prune(again), "pruning twice removes nothing more")
		})
	}
}

func TestPrune_SampleDirectionalHasNoBackEdges(t *testing.T) {
	jg, err := junction.Compile(sampleGrid(t), junction.WithPruning(false))
	require.NoError(t, err)
	assert.Zero(t, junction.Prune(jg))
	assert.Equal(t, 12, jg.EdgeCount())
}

// TestPrune_LeavesNonRingShapesAlone covers grids whose outer border is not a
// simple cycle of junctions; none of them may lose an edge.
func TestPrune_LeavesNonRingShapesAlone(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"EntranceToExit", "#.#\n#.#"},
		{"DeadEnd", "#.###\n#...#\n#.###\n#.###"},
		{"Isolated", "#.#\n###\n#.#"},
		// the dead end at 2,5 puts 2,4 on the border walk three times
		{"OpenBlob", "##.####\n##...##\n##....#\n####.##"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, m := range maze.Modes {
				jg, err := junction.Compile(mustParse(t, tc.text), junction.WithMode(m), junction.WithPruning(false))
				require.NoError(t, err)
				before := jg.Clone()
				assert.Zero(t, junction.Prune(jg), "mode %v", m)
				assert.True(t, before.Equal(jg), "mode %v", m)
			}
		})
	}
}
