// SPDX-License-Identifier: MIT
// File: btree.go
// Role: Frontier backed by an ordered B-tree set (github.com/tidwall/btree).

package frontier

import (
	"fmt"

	"github.com/tidwall/btree"
)

// BTree keeps live entries in a B-tree ordered by (key, vertex).
// DecreaseKey is a delete of the old entry followed by an insert of the new one.
//
// Complexity:
//   - Insert, DecreaseKey, ExtractMin: O(log V).
//   - IsEmpty, Len, Contains, KeyOf: O(1).
type BTree struct {
	tree *btree.BTreeG[entry]
	keys []Key // current key of each live vertex
	slot []int // slotAbsent, slotExtracted, or 0 when live
}

// NewBTree returns an empty B-tree frontier for vertex ids in [0, capacity).
// The tree is created without internal locks: a frontier has a single owner.
func NewBTree(capacity int) *BTree {
	if capacity < 0 {
		capacity = 0
	}
	slot := make([]int, capacity)
	for i := range slot {
		slot[i] = slotAbsent
	}

	return &BTree{
		tree: btree.NewBTreeGOptions(before, btree.Options{NoLocks: true}),
		keys: make([]Key, capacity),
		slot: slot,
	}
}

// Insert adds v with key k.
func (b *BTree) Insert(v int, k Key) error {
	if err := checkRange("Insert", v, len(b.slot)); err != nil {
		return err
	}
	if b.slot[v] != slotAbsent {
		return fmt.Errorf("Insert: vertex %d: %w", v, ErrDuplicateVertex)
	}
	b.slot[v] = 0
	b.keys[v] = k
	b.tree.Set(entry{v: v, k: k})

	return nil
}

// DecreaseKey replaces the entry of live vertex v with a strictly smaller key.
func (b *BTree) DecreaseKey(v int, k Key) error {
	if err := checkRange("DecreaseKey", v, len(b.slot)); err != nil {
		return err
	}
	if b.slot[v] != 0 {
		return fmt.Errorf("DecreaseKey: vertex %d: %w", v, ErrNotInFrontier)
	}
	old := b.keys[v]
	if !k.Less(old) {
		return fmt.Errorf("DecreaseKey: vertex %d: %s -> %s: %w", v, old, k, ErrKeyNotDecreased)
	}
	b.tree.Delete(entry{v: v, k: old})
	b.keys[v] = k
	b.tree.Set(entry{v: v, k: k})

	return nil
}

// ExtractMin removes and returns the entry with the smallest (key, vertex).
func (b *BTree) ExtractMin() (int, Key, error) {
	e, ok := b.tree.PopMin()
	if !ok {
		return 0, Key{}, ErrFrontierEmpty
	}
	b.slot[e.v] = slotExtracted

	return e.v, e.k, nil
}

// IsEmpty reports whether the tree holds no live entries.
func (b *BTree) IsEmpty() bool { return b.tree.Len() == 0 }

// Len returns the number of live entries.
func (b *BTree) Len() int { return b.tree.Len() }

// Contains reports whether v is live.
func (b *BTree) Contains(v int) bool {
	return v >= 0 && v < len(b.slot) && b.slot[v] == 0
}

// KeyOf returns the key of live vertex v.
func (b *BTree) KeyOf(v int) (Key, bool) {
	if !b.Contains(v) {
		return Key{}, false
	}

	return b.keys[v], true
}
