// Package bfs provides single-source breadth-first search over a
// core.Graph, producing per-node hop distances and visited flags that are
// queryable by raw NodeKeys.
//
// What
//
//   - Traversal owns reusable visited/distance state sized to the graph's
//     capacity; Run(source) explores level by level and records, for every
//     reachable node, the minimum number of edge traversals from source.
//   - Distances are hop counts. Edge weights are read off each arc but
//     never enter the computation — this is not a weighted shortest-path
//     solver.
//   - MinDist and IsVisited accept the same scalar / pair / triple keys
//     used at insertion time, translated through the graph's shared
//     KeyIndex; unreached nodes report Unreached (-1) and false.
//
// Why
//
//   - Hop distance is the metric of grid/maze search and small
//     combinatorial-state exploration, the problems the composite-key core
//     exists for.
//
// State machine
//
//	A Traversal is Idle (all distances Unreached, nothing visited) after
//	construction or Clear, and Completed after Run returns. Run demands the
//	Idle state: invoking it again without an intervening Clear fails with
//	ErrStaleTraversal instead of silently reusing the previous run's
//	visited set. Clear is safe at any time and never touches the graph.
//
// Determinism
//
//	For a fixed graph and source the visited set and every distance are
//	fully determined; enqueue order among equidistant nodes follows each
//	node's adjacency insertion order, so repeated runs on an unmodified
//	graph replay the exact queue sequence.
//
// Complexity (V = nodes reachable from source, E = their arcs)
//
//   - Time:   O(V + E)
//   - Memory: O(capacity) held by the Traversal, O(V) transient queue
//
// Usage
//
//	g, _ := core.NewGraph(16, core.WithDirected(false))
//	_ = g.AddEdge(core.Pair(0, 0), core.Pair(0, 1), 0)
//	_ = g.AddEdge(core.Pair(0, 1), core.Pair(1, 1), 0)
//
//	t, _ := bfs.New(g)
//	if err := t.Run(core.Pair(0, 0)); err != nil { /* … */ }
//	d, _ := t.MinDist(core.Pair(1, 1)) // 2
//
//	t.Clear() // back to Idle before the next source
//
// Errors
//
//   - ErrGraphNil              if New is given a nil graph.
//   - ErrStaleTraversal        if Run is invoked without a fresh or
//     Clear-ed Traversal.
//   - core.ErrInvalidKeyShape  if a zero-value NodeKey is supplied.
//   - core.ErrCapacityExceeded if resolving a key mints an id beyond the
//     graph's capacity.
package bfs
