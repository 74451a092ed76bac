// Package gridgraph turns a 2D grid of integer cell values into a
// core.Graph whose nodes are core.Pair(x, y) keys, ready for hop-distance
// search with the bfs package.
//
// What
//
//   - NewGridGraph validates and deep-copies a rectangular grid.
//   - Cells with value ≥ LandThreshold are "land" (walkable); everything
//     below is "water" (blocked).
//   - ToGraph emits an undirected core.Graph with one unit-weight edge per
//     adjacent land-cell pair, under 4- or 8-connectivity. Cells keep
//     their coordinates as node identity — no hand-assigned indices.
//
// Why
//
//   - Grid and maze search is the motivating workload for composite node
//     keys; this package is the construction surface that feeds AddEdge so
//     callers go straight from a maze literal to MinDist queries.
//
// Determinism
//
//	Land cells are interned in row-major order before any edge is added,
//	so dense ids — and therefore BFS tie-breaking — are reproducible for a
//	fixed grid.
//
// Usage
//
//	grid := [][]int{
//	    {1, 1, 0},
//	    {0, 1, 1},
//	}
//	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
//	g, err := gg.ToGraph()
//	t, _ := bfs.New(g)
//	_ = t.Run(core.Pair(0, 0))
//
// Errors
//
//   - ErrEmptyGrid      if the grid has no rows or no columns.
//   - ErrNonRectangular if rows differ in length.
package gridgraph
