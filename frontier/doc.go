// Package frontier provides the priority structure that drives Prim's
// algorithm: a mutable set of (vertex, key) entries supporting Insert,
// DecreaseKey, ExtractMin and IsEmpty.
//
// Keys
//
//	Key is a tagged value, Infinite() or Finite(w). The zero Key is Infinite,
//	so "no edge found yet" can never be confused with a large but real weight.
//
// Ordering
//
//	Every implementation orders entries by key ascending and breaks ties by
//	the lowest vertex id. For a fixed sequence of operations the extraction
//	order is therefore identical across runs and across implementations.
//
// Implementations
//
//   - Heap  - indexed binary heap on container/heap. Position map gives
//     O(log V) DecreaseKey; Load heapifies an initial key set in O(V).
//   - BTree - ordered set on github.com/tidwall/btree; DecreaseKey is
//     delete-then-insert. Useful as an independent implementation to
//     cross-check the heap, and competitive on very large frontiers.
//
// Select one by Kind with New(kind, capacity); ParseKind accepts "heap" or "btree".
//
// Errors
//
//	ErrFrontierEmpty, ErrVertexOutOfRange, ErrDuplicateVertex,
//	ErrNotInFrontier, ErrKeyNotDecreased, ErrUnknownKind.
package frontier
