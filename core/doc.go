// Package core provides the fundamental graphx types: composite NodeKey
// identifiers, the KeyIndex that interns them as dense integer ids, and the
// fixed-capacity adjacency-list Graph addressed by those ids.
//
// What
//
//   - NodeKey: a scalar / pair / triple node identifier, canonicalized to a
//     single triple form before any lookup, so Scalar(5), Pair(5, 0) and
//     Triple(5, 0, 0) all name the same node.
//   - KeyIndex: an append-only interner assigning dense ids (0, 1, 2, …) to
//     distinct canonical triples in first-seen order.
//   - Graph: nodeCapacity preallocated adjacency lists of weighted arcs,
//     directed or undirected, fed exclusively through NodeKeys — callers
//     never handle raw indices.
//
// Why
//
//   - Grid and maze search, and small combinatorial-state graphs, name
//     their nodes by coordinates or (coordinate, state) tuples. Interning
//     those onto dense ids keeps the hot traversal loops on flat arrays
//     while the public surface stays in the caller's vocabulary.
//
// Determinism
//
//	Id assignment is a pure function of resolution order: replaying the
//	same AddEdge / Resolve sequence yields the same id for every key, and
//	adjacency lists preserve insertion order.
//
// Capacity model
//
//	The Graph does not grow. nodeCapacity must upper-bound the number of
//	distinct canonical triples that will ever be resolved through it;
//	a resolution landing at or beyond the bound fails with
//	ErrCapacityExceeded before any adjacency write.
//
// Concurrency
//
//	Not safe for concurrent mutation. A single logical owner drives
//	construction, edge insertion, and traversal sequentially; concurrent
//	reads are fine once mutation has stopped.
//
// Errors
//
//   - ErrInvalidKeyShape  if a zero-value NodeKey reaches any operation.
//   - ErrBadCapacity      if NewGraph is given a capacity below one.
//   - ErrCapacityExceeded if a resolved id reaches nodeCapacity.
package core
