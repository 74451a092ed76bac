// Package graphx is a compact in-memory graph toolkit for problems whose
// node identities are naturally composite — grid cells, (row, col, state)
// search states, coordinate pairs — rather than pre-assigned dense integers.
//
// 🚀 What is graphx?
//
//	A small, pure-Go library built from three tightly coupled pieces:
//		• core.KeyIndex — maps scalar / pair / triple node keys onto dense,
//		  contiguously assigned integer ids, first-seen order
//		• core.Graph   — a fixed-capacity weighted adjacency-list store,
//		  directed or undirected, addressed by those dense ids
//		• bfs.Traversal — single-source breadth-first search producing
//		  per-node hop distances and visited flags, queryable by raw keys
//
// ✨ Why choose graphx?
//
//   - Composite keys end-to-end – callers never see a raw array index;
//     core.Pair(r, c) and core.Triple(r, c, s) are first-class node names
//   - Deterministic – id assignment and BFS visit order are fully
//     reproducible for a fixed build sequence
//   - Pure Go – no cgo, no runtime dependencies
//
// Subpackages:
//
//	core/      — NodeKey, KeyIndex, and the adjacency-list Graph
//	bfs/       — hop-distance traversal over a core.Graph
//	gridgraph/ — turn a 2D integer grid into a core.Graph of Pair keys
//
// Quick ASCII example:
//
//	    (0,0)──(0,1)
//	      │      │
//	    (1,0)──(1,1)
//
//	a 2×2 grid whose four cells become four dense ids on first use.
//
//	go get github.com/katalvlaran/graphx
package graphx
