// SPDX-License-Identifier: MIT
// File: heap.go
// Role: indexed binary min-heap Frontier on container/heap.
// Determinism:
//   - Ordering by (key, vertex) makes every extraction sequence reproducible.

package frontier

import (
	"container/heap"
	"fmt"
)

// Heap is an indexed binary min-heap: a position map pos[v] tracks where
// vertex v sits in the heap so DecreaseKey can sift it in O(log V).
//
// Complexity:
//   - Insert, DecreaseKey, ExtractMin: O(log V).
//   - Load: O(V).
//   - IsEmpty, Len, Contains, KeyOf: O(1).
type Heap struct {
	s heapSlice
}

// NewHeap returns an empty heap for vertex ids in [0, capacity).
func NewHeap(capacity int) *Heap {
	if capacity < 0 {
		capacity = 0
	}
	pos := make([]int, capacity)
	for i := range pos {
		pos[i] = slotAbsent
	}

	return &Heap{s: heapSlice{
		items: make([]entry, 0, capacity),
		pos:   pos,
	}}
}

// Load inserts keys[v] for every v in [0, len(keys)) and heapifies once.
// The heap must be empty and untouched; len(keys) must not exceed capacity.
// Complexity: O(V), against O(V log V) for V separate Inserts.
func (h *Heap) Load(keys []Key) error {
	if len(keys) > len(h.s.pos) {
		return fmt.Errorf("Load: %d keys for capacity %d: %w", len(keys), len(h.s.pos), ErrVertexOutOfRange)
	}
	for v := range keys {
		if h.s.pos[v] != slotAbsent {
			return fmt.Errorf("Load: vertex %d: %w", v, ErrDuplicateVertex)
		}
	}
	for v, k := range keys {
		h.s.pos[v] = len(h.s.items)
		h.s.items = append(h.s.items, entry{v: v, k: k})
	}
	heap.Init(&h.s)

	return nil
}

// Insert adds v with key k.
func (h *Heap) Insert(v int, k Key) error {
	if err := checkRange("Insert", v, len(h.s.pos)); err != nil {
		return err
	}
	if h.s.pos[v] != slotAbsent {
		return fmt.Errorf("Insert: vertex %d: %w", v, ErrDuplicateVertex)
	}
	heap.Push(&h.s, entry{v: v, k: k})

	return nil
}

// DecreaseKey lowers the key of live vertex v and sifts it up.
func (h *Heap) DecreaseKey(v int, k Key) error {
	if err := checkRange("DecreaseKey", v, len(h.s.pos)); err != nil {
		return err
	}
	i := h.s.pos[v]
	if i < 0 {
		return fmt.Errorf("DecreaseKey: vertex %d: %w", v, ErrNotInFrontier)
	}
	if !k.Less(h.s.items[i].k) {
		return fmt.Errorf("DecreaseKey: vertex %d: %s -> %s: %w", v, h.s.items[i].k, k, ErrKeyNotDecreased)
	}
	h.s.items[i].k = k
	heap.Fix(&h.s, i)

	return nil
}

// ExtractMin removes and returns the entry with the smallest (key, vertex).
func (h *Heap) ExtractMin() (int, Key, error) {
	if len(h.s.items) == 0 {
		return 0, Key{}, ErrFrontierEmpty
	}
	e := heap.Pop(&h.s).(entry)

	return e.v, e.k, nil
}

// IsEmpty reports whether the heap holds no live entries.
func (h *Heap) IsEmpty() bool { return len(h.s.items) == 0 }

// Len returns the number of live entries.
func (h *Heap) Len() int { return len(h.s.items) }

// Contains reports whether v is live.
func (h *Heap) Contains(v int) bool {
	return v >= 0 && v < len(h.s.pos) && h.s.pos[v] >= 0
}

// KeyOf returns the key of live vertex v.
func (h *Heap) KeyOf(v int) (Key, bool) {
	if !h.Contains(v) {
		return Key{}, false
	}

	return h.s.items[h.s.pos[v]].k, true
}

// heapSlice implements heap.Interface and keeps pos in sync on every move.
type heapSlice struct {
	items []entry
	pos   []int
}

// Len returns the number of entries in the heap.
func (s *heapSlice) Len() int { return len(s.items) }

// Less orders by key, then by vertex id.
func (s *heapSlice) Less(i, j int) bool { return before(s.items[i], s.items[j]) }

// Swap exchanges two entries and updates their positions.
func (s *heapSlice) Swap(i, j int) {
	s.items[i], s.items[j] = s.items[j], s.items[i]
	s.pos[s.items[i].v] = i
	s.pos[s.items[j].v] = j
}

// Push appends an entry; called by heap.Push.
func (s *heapSlice) Push(x any) {
	e := x.(entry)
	s.pos[e.v] = len(s.items)
	s.items = append(s.items, e)
}

// Pop removes the last entry; called by heap.Pop after moving the minimum there.
func (s *heapSlice) Pop() any {
	n := len(s.items)
	e := s.items[n-1]
	s.items = s.items[:n-1]
	s.pos[e.v] = slotExtracted

	return e
}
