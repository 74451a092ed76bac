// Package core defines the central NodeKey, KeyIndex, and Graph types.
//
// This file declares NodeKey and its constructors, the canonical triple
// form, sentinel errors, and the GraphOption functional options.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graphx operations.
var (
	// ErrInvalidKeyShape indicates a NodeKey that was not built through
	// Scalar, Pair, or Triple (i.e. a zero-value NodeKey).
	ErrInvalidKeyShape = errors.New("core: node key must be scalar, pair, or triple")

	// ErrBadCapacity indicates a Graph capacity below one.
	ErrBadCapacity = errors.New("core: node capacity must be positive")

	// ErrCapacityExceeded indicates a resolved dense id reached nodeCapacity.
	// This is a caller-sizing error and is never recoverable at runtime.
	ErrCapacityExceeded = errors.New("core: node capacity exceeded")
)

// arity discriminates the NodeKey variants.
type arity uint8

const (
	arityNone arity = iota // zero value: invalid
	arityScalar
	arityPair
	arityTriple
)

// NodeKey is a caller-facing node identifier in scalar, pair, or triple
// form. Construct one with Scalar, Pair, or Triple; the zero value is
// invalid and rejected with ErrInvalidKeyShape wherever it appears.
//
// All variants canonicalize to a triple before lookup — Scalar(x) becomes
// (x, 0, 0) and Pair(x, y) becomes (x, y, 0) — so any two NodeKeys sharing
// a canonical triple name the same node. This is a load-bearing contract,
// not an implementation accident: Scalar(5) and Triple(5, 0, 0) collide.
type NodeKey struct {
	a, b, c int
	kind    arity
}

// Scalar returns the NodeKey for a single integer identifier.
func Scalar(x int) NodeKey {
	return NodeKey{a: x, kind: arityScalar}
}

// Pair returns the NodeKey for a coordinate pair, e.g. (row, col).
func Pair(x, y int) NodeKey {
	return NodeKey{a: x, b: y, kind: arityPair}
}

// Triple returns the NodeKey for a coordinate triple, e.g. (row, col, state).
func Triple(x, y, z int) NodeKey {
	return NodeKey{a: x, b: y, c: z, kind: arityTriple}
}

// triple is the canonical 3-int form every NodeKey normalizes to.
// It is comparable, so it serves directly as the KeyIndex map key.
type triple [3]int

// normalize reduces k to its canonical triple.
// Returns ErrInvalidKeyShape for the zero-value NodeKey.
// Complexity: O(1)
func (k NodeKey) normalize() (triple, error) {
	switch k.kind {
	case arityScalar:
		return triple{k.a, 0, 0}, nil
	case arityPair:
		return triple{k.a, k.b, 0}, nil
	case arityTriple:
		return triple{k.a, k.b, k.c}, nil
	default:
		return triple{}, ErrInvalidKeyShape
	}
}

// String renders the key in its original arity: "5", "(5,10)", "(5,10,15)".
// The zero value renders as "<invalid>".
func (k NodeKey) String() string {
	switch k.kind {
	case arityScalar:
		return fmt.Sprintf("%d", k.a)
	case arityPair:
		return fmt.Sprintf("(%d,%d)", k.a, k.b)
	case arityTriple:
		return fmt.Sprintf("(%d,%d,%d)", k.a, k.b, k.c)
	default:
		return "<invalid>"
	}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets edge directedness for the whole Graph
// (true = one-way edges only, false = every inserted edge is mirrored).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}
