// Package order defines the Node and Relation types, the relation Kind
// variant, sentinel errors, and the Node constructor with its options.
//
// This file declares Kind, Relation, Node, Option, ErrInvalidLoop, and New.
// Refinement lives in refine.go, queries in query.go, the transitive engine
// in search.go, transfer functions in transfer.go, pretty printing in
// format.go.
//
// Errors:
//
//	ErrInvalidLoop - a refinement contradicts the accumulated facts.
package order

import (
	"errors"

	"github.com/katalvlaran/intorder/intbound"
)

// Sentinel errors for order refinement.
var (
	// ErrInvalidLoop indicates a refinement would close a directed cycle
	// through a strict edge, i.e. the new ordering fact contradicts facts
	// already recorded. The trace being optimized is invalid; the caller
	// abandons it and must not reuse any of its Nodes.
	ErrInvalidLoop = errors.New("order: relation contradicts accumulated facts")
)

// Kind discriminates the two relation edge variants.
//
// Only two kinds exist and both are known at every call site, so a tagged
// variant is used rather than an interface.
type Kind uint8

const (
	// Lt asserts the edge's source is strictly less than its target.
	Lt Kind = iota

	// Le asserts the edge's source is less than or equal to its target.
	Le
)

// MinMargin returns the minimum concrete-value increment this kind
// enforces between source and target: 1 for strict, 0 for non-strict.
// It is the edge weight of the longest-path strictness engine.
func (k Kind) MinMargin() int64 {
	if k == Lt {
		return 1
	}

	return 0
}

// ConcreteCheck reports whether two concrete values a, b satisfy the
// relation: a < b for strict, a ≤ b for non-strict.
func (k Kind) ConcreteCheck(a, b int64) bool {
	if k == Lt {
		return a < b
	}

	return a <= b
}

// String renders the relation operator: "<" or "<=".
func (k Kind) String() string {
	if k == Lt {
		return "<"
	}

	return "<="
}

// Relation is one outgoing ordering edge of a Node.
//
// Fields are unexported: edges are created and upgraded only through
// MakeLt/MakeLe so that at most one edge exists per (source, target) pair
// and a non-strict edge is only ever upgraded in place, never weakened.
type Relation struct {
	kind   Kind  // strict (<) or non-strict (≤)
	target *Node // the greater side; must outlive this edge
}

// Kind returns the relation's variant.
func (r Relation) Kind() Kind { return r.kind }

// Target returns the node on the greater side of the relation.
func (r Relation) Target() *Node { return r.target }

// MinMargin returns the minimum concrete-value increment this edge enforces.
func (r Relation) MinMargin() int64 { return r.kind.MinMargin() }

// ConcreteCheck reports whether the concrete values a (source side) and
// b (target side) satisfy this edge.
func (r Relation) ConcreteCheck(a, b int64) bool { return r.kind.ConcreteCheck(a, b) }

// Node is the abstract value of one integer SSA variable: an interval plus
// outgoing ordering edges to other variables of the same trace.
//
// Nodes are compared by identity, never structurally. All Nodes of a trace
// die together when the optimizer discards the trace; edges hold plain
// references and rely on that shared lifetime.
//
// Node is not safe for concurrent use: the optimizer holds exclusive
// access while a pass runs.
type Node struct {
	// bounds is the numeric-range component. Mutable; refined monotonically.
	bounds *intbound.IntBound

	// relations are the outgoing edges, in insertion order. The slice only
	// grows; an entry is only ever upgraded Le→Lt in place.
	relations []Relation
}

// Option configures a Node before creation.
type Option func(*Node)

// WithBounds sets the node's initial interval. A nil bound is ignored and
// the node stays unbounded.
func WithBounds(b *intbound.IntBound) Option {
	return func(n *Node) {
		if b != nil {
			n.bounds = b
		}
	}
}

// New creates a Node with the given options.
// By default the node is unbounded and unrelated to every other node.
// Complexity: O(1)
func New(opts ...Option) *Node {
	n := &Node{bounds: intbound.Unbounded()}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Bounds returns the node's interval component. The returned pointer is the
// live value: the owning optimizer may refine it in place.
func (n *Node) Bounds() *intbound.IntBound { return n.bounds }

// Relations returns a snapshot copy of the node's outgoing edges.
func (n *Node) Relations() []Relation {
	out := make([]Relation, len(n.relations))
	copy(out, n.relations)

	return out
}
