package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/graphx/bfs"
	"github.com/katalvlaran/graphx/core"
	"github.com/katalvlaran/graphx/gridgraph"
	"github.com/stretchr/testify/require"
)

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, gridgraph.DefaultGridOptions())
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewGridGraph_DeepCopy ensures mutating the input after construction
// does not leak into the GridGraph.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	grid := [][]int{{1, 1}, {1, 1}}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	grid[0][0] = 0
	require.Equal(t, 1, gg.CellValues[0][0])
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{
		{0, 1, 0},
		{1, 0, 1},
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		require.True(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		require.False(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
}

// TestCoordinate_RoundTrip pins the row-major index mapping.
func TestCoordinate_RoundTrip(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 1, 1}, {1, 1, 1}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	x, y := gg.Coordinate(4)
	require.Equal(t, 1, x)
	require.Equal(t, 1, y)
}

// TestToGraph_Conn4 verifies node and edge counts on an all-land 2×2 grid:
// 4 nodes, 4 orthogonal edges, each endpoint carrying one arc per edge.
func TestToGraph_Conn4(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 1}, {1, 1}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	g, err := gg.ToGraph()
	require.NoError(t, err)
	require.False(t, g.Directed())
	require.Equal(t, 4, g.NodeCount())

	arcs := 0
	for id := 0; id < g.NodeCount(); id++ {
		arcs += g.Degree(id)
	}
	// 4 undirected edges → 8 arcs.
	require.Equal(t, 8, arcs)
}

// TestToGraph_Conn8 adds the two diagonals on the same 2×2 grid.
func TestToGraph_Conn8(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.NewGridGraph([][]int{{1, 1}, {1, 1}}, opts)
	require.NoError(t, err)

	g, err := gg.ToGraph()
	require.NoError(t, err)

	arcs := 0
	for id := 0; id < g.NodeCount(); id++ {
		arcs += g.Degree(id)
	}
	// 4 orthogonal + 2 diagonal edges → 12 arcs.
	require.Equal(t, 12, arcs)
}

// TestToGraph_WaterBlocks verifies water cells are neither interned nor
// connected.
func TestToGraph_WaterBlocks(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{
		{1, 0, 1},
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	g, err := gg.ToGraph()
	require.NoError(t, err)
	// Two land cells, no edges across the water gap.
	require.Equal(t, 2, g.NodeCount())

	id, err := g.Resolve(core.Pair(0, 0))
	require.NoError(t, err)
	require.Equal(t, 0, g.Degree(id))
}

// TestToGraph_RowMajorIds pins deterministic interning: land cells receive
// ids in row-major scan order, independent of edge discovery order.
func TestToGraph_RowMajorIds(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{
		{1, 0},
		{1, 1},
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	g, err := gg.ToGraph()
	require.NoError(t, err)

	want := []struct {
		x, y, id int
	}{
		{0, 0, 0},
		{0, 1, 1},
		{1, 1, 2},
	}
	for _, w := range want {
		id, err := g.Resolve(core.Pair(w.x, w.y))
		require.NoError(t, err)
		require.Equal(t, w.id, id, "cell (%d,%d)", w.x, w.y)
	}
}

// TestToGraph_MazeBFS runs the full pipeline: maze literal → graph → hop
// distance around a wall.
func TestToGraph_MazeBFS(t *testing.T) {
	// Walls force the path down and around: shortest route is 8 hops.
	gg, err := gridgraph.NewGridGraph([][]int{
		{1, 0, 1, 1, 1},
		{1, 0, 1, 0, 1},
		{1, 1, 1, 0, 1},
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	g, err := gg.ToGraph()
	require.NoError(t, err)

	tr, err := bfs.New(g)
	require.NoError(t, err)
	require.NoError(t, tr.Run(core.Pair(0, 0)))

	d, err := tr.MinDist(core.Pair(4, 0))
	require.NoError(t, err)
	require.Equal(t, 8, d)

	// A water cell is mintable on the query path and simply unreached.
	visited, err := tr.IsVisited(core.Pair(1, 0))
	require.NoError(t, err)
	require.False(t, visited)
}
