// Package gridgraph provides utilities to treat a 2D grid of integer cell
// values as graphx input. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Conversion to a *core.Graph keyed by core.Pair(x, y)
//
// Cells with value < LandThreshold are considered "water"; cells with
// value ≥ LandThreshold are "land".
package gridgraph

import (
	"github.com/katalvlaran/graphx/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
	}

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether the in-bounds cell (x,y) is walkable.
// Complexity: O(1).
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.CellValues[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// ToGraph converts the GridGraph into an undirected *core.Graph whose
// nodes are core.Pair(x, y) keys and whose edges connect neighboring land
// cells with unit weight, according to gg.Conn.
//
// Land cells are interned in row-major order before any edge is added, so
// dense ids are reproducible for a fixed grid. Capacity is W×H, leaving
// headroom for query-time minting of water cells.
// Complexity: O(W×H×d) time, O(W×H + E) memory.
func (gg *GridGraph) ToGraph() (*core.Graph, error) {
	g, err := core.NewGraph(gg.Width*gg.Height, core.WithDirected(false))
	if err != nil {
		return nil, err
	}
	// Intern every land cell first: isolated cells still deserve an id.
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue
			}
			if _, err = g.Resolve(core.Pair(x, y)); err != nil {
				return nil, err
			}
		}
	}
	// Add one edge per unordered land-cell pair: the mirror arc comes from
	// the graph's undirectedness, not from scanning both directions.
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue
			}
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) || !gg.IsLand(nx, ny) {
					continue
				}
				if gg.index(nx, ny) <= gg.index(x, y) {
					continue
				}
				if err = g.AddEdge(core.Pair(x, y), core.Pair(nx, ny), 1); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
