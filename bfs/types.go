// This file declares sentinel errors and shared constants for the bfs
// package.
package bfs

import "errors"

// Unreached is the distance reported for nodes the last Run never visited,
// including nodes first seen on the query path.
const Unreached = -1

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed to New.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStaleTraversal is returned when Run is invoked on a Traversal
	// still carrying a previous run's state. Call Clear (or construct a
	// fresh Traversal) before each new source.
	ErrStaleTraversal = errors.New("bfs: traversal state not cleared since previous run")
)
