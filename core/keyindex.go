// This file implements KeyIndex, the append-only interner that maps
// canonical triples onto dense ids.
package core

// KeyIndex assigns dense, contiguous, 0-based ids to distinct canonical
// triples in first-seen order. The mapping is append-only: ids are never
// reassigned or reused, and Len always equals the next id to be handed out.
//
// A KeyIndex is created empty, grows monotonically for the lifetime of the
// owning Graph, and never shrinks or resets.
type KeyIndex struct {
	ids map[triple]int
}

// NewKeyIndex creates an empty KeyIndex.
// Complexity: O(1)
func NewKeyIndex() *KeyIndex {
	return &KeyIndex{ids: make(map[triple]int)}
}

// Resolve normalizes key and returns its dense id, minting the next
// sequential id if the canonical triple has not been seen before.
// Every resolution is insert-or-get; there is no lookup-without-insert.
// Returns ErrInvalidKeyShape for a zero-value NodeKey.
//
// Deterministic given call order: replaying the same resolution sequence
// against a fresh index reproduces every id.
// Complexity: O(1) amortized
func (ix *KeyIndex) Resolve(key NodeKey) (int, error) {
	t, err := key.normalize()
	if err != nil {
		return 0, err
	}
	if id, ok := ix.ids[t]; ok {
		return id, nil
	}
	id := len(ix.ids)
	ix.ids[t] = id

	return id, nil
}

// Len reports the number of distinct triples interned so far,
// which is also the next id Resolve would mint.
// Complexity: O(1)
func (ix *KeyIndex) Len() int {
	return len(ix.ids)
}
