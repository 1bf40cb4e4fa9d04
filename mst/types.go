// SPDX-License-Identifier: MIT
// types.go: tagged Parent, Result, Stats, Options and sentinel errors.

package mst

import (
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/primst/core"
	"github.com/katalvlaran/primst/frontier"
)

// ErrNilGraph indicates that a nil *core.Graph was passed in.
var ErrNilGraph = errors.New("mst: graph is nil")

// ErrStartOutOfRange indicates that the start vertex is outside [0, V) for V > 0.
var ErrStartOutOfRange = errors.New("mst: start vertex out of range")

// ErrUnknownMethod indicates that Compute was asked for an unsupported algorithm.
var ErrUnknownMethod = errors.New("mst: unknown method")

// ErrBrokenTree indicates that a Result does not describe a valid spanning tree
// of the start vertex's component.
var ErrBrokenTree = errors.New("mst: parent pointers do not form a spanning tree")

// ErrWeightMismatch indicates that a Result's total weight differs from the
// reference minimum spanning tree weight.
var ErrWeightMismatch = errors.New("mst: tree weight differs from reference MST")

// MethodPrim selects Prim's algorithm (grow from a root using a priority frontier).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// parentKind tags the three states of a Parent.
type parentKind uint8

const (
	parentUnreached parentKind = iota // zero value: no path to the start vertex
	parentRoot                        // the start vertex itself
	parentAttached                    // attached to the tree through vertex v
)

// Parent is the tree-neighbor of a vertex: Root, AttachedTo(v) or Unreached.
// The zero value is Unreached.
type Parent struct {
	kind parentKind
	v    int
}

// Root returns the marker of the start vertex.
func Root() Parent { return Parent{kind: parentRoot} }

// AttachedTo returns a parent pointer to vertex v.
func AttachedTo(v int) Parent { return Parent{kind: parentAttached, v: v} }

// Unreached returns the marker of a vertex with no path to the start vertex.
func Unreached() Parent { return Parent{} }

// IsRoot reports whether p marks the start vertex.
func (p Parent) IsRoot() bool { return p.kind == parentRoot }

// IsUnreached reports whether p marks an unreachable vertex.
func (p Parent) IsUnreached() bool { return p.kind == parentUnreached }

// Vertex returns the parent id and true for an attached vertex; -1 and false otherwise.
func (p Parent) Vertex() (int, bool) {
	if p.kind != parentAttached {
		return -1, false
	}

	return p.v, true
}

// String renders "root", "unreached" or the parent's decimal id.
func (p Parent) String() string {
	switch p.kind {
	case parentRoot:
		return "root"
	case parentAttached:
		return strconv.Itoa(p.v)
	default:
		return "unreached"
	}
}

// Result is the outcome of one Prim run. The slices are owned by the caller.
//
// Parents[v] and Keys[v] are indexed by vertex id:
//
//	start vertex : Parents = Root(),          Keys = Finite(0)
//	reachable v  : Parents = AttachedTo(u),   Keys = Finite(w(u,v))
//	unreachable v: Parents = Unreached(),     Keys = Infinite()
type Result struct {
	// Start is the root vertex requested by the caller.
	Start int

	// Parents holds the tagged parent pointer of every vertex.
	Parents []Parent

	// Keys holds the weight of the edge attaching every vertex.
	Keys []frontier.Key
}

// Order returns the number of vertices covered by the result.
func (r *Result) Order() int { return len(r.Parents) }

// IsRoot reports whether v is the start vertex.
func (r *Result) IsRoot(v int) bool {
	return v >= 0 && v < len(r.Parents) && r.Parents[v].IsRoot()
}

// TotalWeight returns the sum of attaching edge weights of all reached vertices.
func (r *Result) TotalWeight() int64 {
	var total int64
	for _, k := range r.Keys {
		if w, ok := k.Weight(); ok {
			total += w
		}
	}

	return total
}

// Reached returns the number of vertices in the start vertex's tree (root included).
func (r *Result) Reached() int {
	n := 0
	for _, p := range r.Parents {
		if !p.IsUnreached() {
			n++
		}
	}

	return n
}

// Unreached returns the number of vertices with no path to the start vertex.
func (r *Result) Unreached() int { return r.Order() - r.Reached() }

// TreeEdges returns the tree edges {parent, v, key} in increasing v order.
func (r *Result) TreeEdges() []core.Edge {
	out := make([]core.Edge, 0, r.Order())
	for v, p := range r.Parents {
		u, ok := p.Vertex()
		if !ok {
			continue
		}
		w, _ := r.Keys[v].Weight()
		out = append(out, core.Edge{From: u, To: v, Weight: w})
	}

	return out
}

// ParentIDs flattens Parents to plain ints, using -1 for both Root and Unreached.
// Use IsRoot or Parents to tell those two apart.
func (r *Result) ParentIDs() []int {
	out := make([]int, len(r.Parents))
	for v, p := range r.Parents {
		out[v], _ = p.Vertex()
	}

	return out
}

// Stats describes one completed Prim run.
type Stats struct {
	RunID       uuid.UUID
	Frontier    frontier.Kind
	Vertices    int
	Edges       int
	Reached     int
	Unreached   int
	Extractions int
	Relaxations int
	TotalWeight int64
	Elapsed     time.Duration
}

// Observer receives Stats after every successful run.
// Implementations must be safe for concurrent use when runs are concurrent.
type Observer interface {
	ObserveRun(Stats)
}

// Options configures a Prim run.
//
// Fields:
//
//	Frontier frontier.Kind - priority structure; default frontier.KindHeap.
//	Logger   *slog.Logger  - debug logging of each run; default discards.
//	Observer Observer      - optional stats sink (metrics); default none.
type Options struct {
	Frontier frontier.Kind
	Logger   *slog.Logger
	Observer Observer
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithFrontier returns an Option that selects the frontier implementation.
func WithFrontier(kind frontier.Kind) Option {
	return func(o *Options) {
		o.Frontier = kind
	}
}

// WithLogger returns an Option that sets the run logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver returns an Option that registers a stats sink.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// DefaultOptions returns Options with the binary heap frontier, a discarding
// logger and no observer.
func DefaultOptions() Options {
	return Options{
		Frontier: frontier.KindHeap,
		Logger:   slog.New(slog.DiscardHandler),
	}
}
