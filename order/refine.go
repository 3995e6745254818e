// Monotonic refinement of the order graph.
//
// MakeLt and MakeLe are the only way edges enter a Node, which is what
// keeps the structural invariants: at most one edge per (source, target)
// pair, upgrades strictly strengthen, and no directed cycle ever contains
// a strict edge.

package order

import "fmt"

// MakeLt strengthens the abstract state to record n < other.
//
// The interval component is consulted first: if it already proves the
// fact, nothing is stored. Otherwise the intervals are refined, then the
// graph side runs — rejecting a contradiction with ErrInvalidLoop,
// no-opping when the graph already proves n < other, upgrading an
// existing ≤ edge to < in place, or appending a fresh strict edge.
//
// On error the abstract state is unspecified; abandon the trace.
func (n *Node) MakeLt(other *Node) error {
	if n.bounds.KnownLt(other.bounds) {
		return nil
	}
	if err := n.bounds.MakeLt(other.bounds); err != nil {
		return err
	}

	return n.makeLtGraph(other)
}

// MakeLe strengthens the abstract state to record n ≤ other.
// Same shape as MakeLt; only a strict reverse fact contradicts, so cycles
// made purely of ≤ edges (equality) are accepted.
func (n *Node) MakeLe(other *Node) error {
	if n.bounds.KnownLe(other.bounds) {
		return nil
	}
	if err := n.bounds.MakeLe(other.bounds); err != nil {
		return err
	}

	return n.makeLeGraph(other)
}

// makeLtGraph records n < other in the graph.
func (n *Node) makeLtGraph(other *Node) error {
	// 1) n < n can never hold, and any known reverse fact other ≤ n closes
	//    a directed cycle through the new strict edge: n < other ≤ n.
	//    No cycle may contain a strict edge, strict or mixed, so a reverse
	//    path of pure ≤ edges is just as fatal as a strict one — and
	//    rejecting it here is also what keeps the longest-path engine
	//    finite.
	if n == other || other.KnownLe(n) {
		return fmt.Errorf("%w: n < other and other ≤ n", ErrInvalidLoop)
	}

	// 2) Already provable: store nothing.
	if n.KnownLt(other) {
		return nil
	}

	// 3) Upgrade an existing edge to the same target in place, preserving
	//    its position. The entry found here is necessarily non-strict: a
	//    strict one would have satisfied KnownLt above.
	for i := range n.relations {
		if n.relations[i].target == other {
			n.relations[i].kind = Lt

			return nil
		}
	}

	// 4) No edge to other yet: append a fresh strict edge.
	n.relations = append(n.relations, Relation{kind: Lt, target: other})

	return nil
}

// makeLeGraph records n ≤ other in the graph.
func (n *Node) makeLeGraph(other *Node) error {
	// n ≤ other contradicts a known strict other < n.
	if other.KnownLt(n) {
		return fmt.Errorf("%w: n ≤ other and other < n", ErrInvalidLoop)
	}

	// Already provable (including n == other, which is trivially ≤).
	if n.KnownLe(other) {
		return nil
	}

	// An existing strict edge to other is stronger and cannot be here:
	// it would have satisfied KnownLe. Append the non-strict edge.
	n.relations = append(n.relations, Relation{kind: Le, target: other})

	return nil
}
