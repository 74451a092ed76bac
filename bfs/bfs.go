// Package bfs implements hop-distance breadth-first search over a
// core.Graph, addressed end to end by composite NodeKeys.
package bfs

import (
	"github.com/katalvlaran/graphx/core"
)

// Traversal holds reusable single-source BFS state over one core.Graph.
//
// The visited and dist arrays are sized to the graph's capacity and
// indexed by dense id. A Traversal is Idle after New or Clear and
// Completed after Run; query methods read whatever the last completed run
// left behind. Not safe for concurrent use.
type Traversal struct {
	g *core.Graph

	visited []bool
	dist    []int

	// completed guards against Run reusing stale state (Idle vs Completed).
	completed bool
}

// New creates an Idle Traversal over g: every node unvisited, every
// distance Unreached. Multiple independent Traversals may read the same
// graph, each carrying its own state.
// Returns ErrGraphNil if g is nil.
// Complexity: O(capacity)
func New(g *core.Graph) (*Traversal, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	t := &Traversal{
		g:       g,
		visited: make([]bool, g.Capacity()),
		dist:    make([]int, g.Capacity()),
	}
	t.Clear()

	return t, nil
}

// Clear forces the Traversal back to Idle: all nodes unvisited, all
// distances Unreached. Safe to call at any time, including on a Traversal
// that was never run. The graph is untouched.
// Complexity: O(capacity)
func (t *Traversal) Clear() {
	for i := range t.dist {
		t.dist[i] = Unreached
		t.visited[i] = false
	}
	t.completed = false
}

// Run explores the graph level by level from source, recording for every
// reachable node its hop distance (minimum number of edge traversals) and
// a visited flag. Arc weights are ignored. Resolving source may mint a new
// id — a never-inserted source is valid and simply has no outgoing arcs.
//
// Run demands a fresh or Clear-ed Traversal and fails with
// ErrStaleTraversal otherwise; it never auto-resets.
// Also returns core.ErrInvalidKeyShape or core.ErrCapacityExceeded from
// source resolution. Once started, Run always completes.
// Complexity: O(V + E) over the component reachable from source
func (t *Traversal) Run(source core.NodeKey) error {
	if t.completed {
		return ErrStaleTraversal
	}
	src, err := t.g.Resolve(source)
	if err != nil {
		return err
	}

	// Slice-backed FIFO with a head cursor; never re-sliced.
	queue := make([]int, 0, t.g.NodeCount())
	t.visited[src] = true
	t.dist[src] = 0
	queue = append(queue, src)

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, arc := range t.g.Arcs(cur) {
			if t.visited[arc.To] {
				continue
			}
			t.visited[arc.To] = true
			t.dist[arc.To] = t.dist[cur] + 1
			queue = append(queue, arc.To)
		}
	}
	t.completed = true

	return nil
}

// MinDist resolves target through the graph's shared KeyIndex and returns
// its hop distance from the last run's source. A key never seen before is
// minted on the spot and reports Unreached — it cannot have been visited.
// Returns core.ErrInvalidKeyShape or core.ErrCapacityExceeded.
// Complexity: O(1) amortized
func (t *Traversal) MinDist(target core.NodeKey) (int, error) {
	id, err := t.g.Resolve(target)
	if err != nil {
		return Unreached, err
	}

	return t.dist[id], nil
}

// IsVisited resolves target and reports whether the last run reached it.
// Returns core.ErrInvalidKeyShape or core.ErrCapacityExceeded.
// Complexity: O(1) amortized
func (t *Traversal) IsVisited(target core.NodeKey) (bool, error) {
	id, err := t.g.Resolve(target)
	if err != nil {
		return false, err
	}

	return t.visited[id], nil
}
