// SPDX-License-Identifier: MIT
// File: types.go
// Role: tagged Key, Frontier contract, Kind selection and sentinel errors.

package frontier

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors returned by Frontier implementations.
var (
	// ErrFrontierEmpty indicates ExtractMin was called on an empty frontier.
	// Inside the MST engine this signals a bug in loop termination.
	ErrFrontierEmpty = errors.New("frontier: extract from empty frontier")

	// ErrVertexOutOfRange indicates a vertex id outside [0, capacity).
	ErrVertexOutOfRange = errors.New("frontier: vertex out of range")

	// ErrDuplicateVertex indicates a vertex was inserted more than once.
	ErrDuplicateVertex = errors.New("frontier: vertex already inserted")

	// ErrNotInFrontier indicates DecreaseKey on a vertex that is not live
	// (never inserted, or already extracted).
	ErrNotInFrontier = errors.New("frontier: vertex not in frontier")

	// ErrKeyNotDecreased indicates DecreaseKey with a key that is not strictly smaller.
	ErrKeyNotDecreased = errors.New("frontier: new key is not smaller")

	// ErrUnknownKind indicates an unsupported frontier implementation name.
	ErrUnknownKind = errors.New("frontier: unknown kind")
)

// Key is the candidate weight of a vertex: either Infinite (no connecting edge
// discovered yet) or Finite(w). The zero value is Infinite, so a fresh []Key
// is already "all unreached".
type Key struct {
	w      int64
	finite bool
}

// Infinite returns the key of a vertex with no known connecting edge.
func Infinite() Key { return Key{} }

// Finite returns the key for a known connecting edge of weight w.
func Finite(w int64) Key { return Key{w: w, finite: true} }

// IsInfinite reports whether k is Infinite.
func (k Key) IsInfinite() bool { return !k.finite }

// Weight returns the finite weight and true, or 0 and false for Infinite.
func (k Key) Weight() (int64, bool) { return k.w, k.finite }

// Less orders keys: every finite key is below Infinite; Infinite is not below Infinite.
func (k Key) Less(o Key) bool {
	if !k.finite {
		return false
	}
	if !o.finite {
		return true
	}

	return k.w < o.w
}

// String renders "inf" or the decimal weight.
func (k Key) String() string {
	if !k.finite {
		return "inf"
	}

	return strconv.FormatInt(k.w, 10)
}

// entry is one live (vertex, key) pair.
type entry struct {
	v int
	k Key
}

// before is the total order shared by all implementations:
// smaller key first, ties broken by lower vertex id.
func before(a, b entry) bool {
	if a.k.Less(b.k) {
		return true
	}
	if b.k.Less(a.k) {
		return false
	}

	return a.v < b.v
}

// Frontier is a mutable min-priority collection of (vertex, key) entries
// over vertex ids in [0, capacity).
//
// Ordering contract: ExtractMin returns the live entry with the smallest key;
// among equal keys the lowest vertex id wins.
type Frontier interface {
	// Insert adds v with key k. Each vertex may be inserted once per frontier.
	Insert(v int, k Key) error
	// DecreaseKey lowers the key of live vertex v to k; k must be strictly smaller.
	DecreaseKey(v int, k Key) error
	// ExtractMin removes and returns the minimum entry.
	ExtractMin() (int, Key, error)
	// IsEmpty reports whether no live entries remain. O(1).
	IsEmpty() bool
	// Len returns the number of live entries.
	Len() int
	// Contains reports whether v is live.
	Contains(v int) bool
	// KeyOf returns the current key of live vertex v.
	KeyOf(v int) (Key, bool)
}

// Kind names a Frontier implementation.
type Kind string

const (
	// KindHeap selects the indexed binary heap (default).
	KindHeap Kind = "heap"

	// KindBTree selects the B-tree ordered set.
	KindBTree Kind = "btree"
)

// ParseKind maps a name to a Kind. The empty string selects KindHeap.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case "", KindHeap:
		return KindHeap, nil
	case KindBTree:
		return KindBTree, nil
	default:
		return "", fmt.Errorf("kind %q: %w", s, ErrUnknownKind)
	}
}

// New returns an empty Frontier of the given kind for vertex ids in [0, capacity).
func New(kind Kind, capacity int) (Frontier, error) {
	switch kind {
	case KindHeap, "":
		return NewHeap(capacity), nil
	case KindBTree:
		return NewBTree(capacity), nil
	default:
		return nil, fmt.Errorf("kind %q: %w", kind, ErrUnknownKind)
	}
}

// Slot states shared by implementations.
const (
	slotAbsent    = -1 // never inserted
	slotExtracted = -2 // inserted, then extracted
)

// checkRange validates v against capacity n.
func checkRange(method string, v, n int) error {
	if v < 0 || v >= n {
		return fmt.Errorf("%s: vertex %d not in [0,%d): %w", method, v, n, ErrVertexOutOfRange)
	}

	return nil
}
