// This file implements the adjacency-list Graph: construction, edge
// insertion, and the read accessors consumed by traversals and tests.
package core

import "fmt"

// Arc is one adjacency entry: the dense id of the neighbor plus the edge
// weight. Weights are stored verbatim but play no role in hop-distance
// traversal; they are carried for callers that annotate edges.
type Arc struct {
	// To is the neighbor's dense id.
	To int

	// Weight is the cost recorded for this edge.
	Weight int64
}

// Graph is the core in-memory graph data structure: a fixed run of
// nodeCapacity adjacency lists indexed by dense id, fed through one shared
// KeyIndex so the same NodeKey always lands on the same id across
// insertion and traversal.
//
// Directedness is fixed at construction. Insertion order within each
// adjacency list is preserved; parallel edges and self-loops are stored
// as-is, with no suppression.
type Graph struct {
	capacity int
	directed bool

	adj   [][]Arc
	index *KeyIndex
}

// NewGraph creates an empty Graph with capacity preallocated adjacency
// lists, a fresh KeyIndex, and the given options. By default the Graph is
// directed; pass WithDirected(false) to mirror every inserted edge.
//
// capacity must upper-bound the number of distinct canonical triples that
// will ever be resolved through this Graph — including query-only keys,
// which also mint ids. The Graph does not grow.
// Returns ErrBadCapacity if capacity < 1.
// Complexity: O(capacity)
func NewGraph(capacity int, opts ...GraphOption) (*Graph, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}
	g := &Graph{
		capacity: capacity,
		directed: true,
		adj:      make([][]Arc, capacity),
		index:    NewKeyIndex(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Resolve interns key through the Graph's shared KeyIndex and enforces the
// capacity bound. Like KeyIndex.Resolve this is insert-or-get: a fresh key
// mints the next dense id as a side effect, even on a query path.
// Returns ErrInvalidKeyShape for a zero-value key, or ErrCapacityExceeded
// if the minted id reaches the Graph's capacity.
// Complexity: O(1) amortized
func (g *Graph) Resolve(key NodeKey) (int, error) {
	id, err := g.index.Resolve(key)
	if err != nil {
		return 0, err
	}
	if id >= g.capacity {
		return 0, fmt.Errorf("%w: key %v resolved to id %d, capacity %d",
			ErrCapacityExceeded, key, id, g.capacity)
	}

	return id, nil
}

// AddEdge inserts an edge u→v with the given weight, resolving both
// endpoints through the shared KeyIndex (which may mint new ids).
// For undirected graphs the mirror arc v→u is inserted as well.
//
// No de-duplication: repeated calls append parallel arcs, and self-loops
// are stored verbatim. Either both adjacency appends complete or the error
// is raised before any append — a capacity failure never leaves a
// half-inserted edge.
// Returns ErrInvalidKeyShape or ErrCapacityExceeded.
// Complexity: O(1) amortized
func (g *Graph) AddEdge(u, v NodeKey, weight int64) error {
	uID, err := g.Resolve(u)
	if err != nil {
		return err
	}
	vID, err := g.Resolve(v)
	if err != nil {
		return err
	}

	g.adj[uID] = append(g.adj[uID], Arc{To: vID, Weight: weight})
	if !g.directed {
		g.adj[vID] = append(g.adj[vID], Arc{To: uID, Weight: weight})
	}

	return nil
}

// Arcs returns the adjacency list of the given dense id, in insertion
// order. The returned slice is the Graph's backing storage: callers must
// treat it as read-only. Out-of-range ids yield nil.
// Complexity: O(1)
func (g *Graph) Arcs(id int) []Arc {
	if id < 0 || id >= g.capacity {
		return nil
	}

	return g.adj[id]
}

// Degree reports the number of outgoing arcs stored under id.
// Complexity: O(1)
func (g *Graph) Degree(id int) int {
	return len(g.Arcs(id))
}

// NodeCount reports how many distinct node keys have been resolved so far.
// Complexity: O(1)
func (g *Graph) NodeCount() int {
	return g.index.Len()
}

// Capacity reports the fixed upper bound on dense ids.
// Complexity: O(1)
func (g *Graph) Capacity() int {
	return g.capacity
}

// Directed reports whether edges are one-way.
// Complexity: O(1)
func (g *Graph) Directed() bool {
	return g.directed
}
