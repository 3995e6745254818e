// Ordering queries over one trace's abstract state.
//
// Every query tries the interval component first (O(1)) and falls back to
// the transitive engine in search.go only when the intervals are
// inconclusive. A false answer always means "not provable", never
// "disproven".

package order

// KnownLt reports whether n is provably strictly less than other.
func (n *Node) KnownLt(other *Node) bool {
	// ask bounds first, as it is cheaper
	return n.bounds.KnownLt(other.bounds) || n.knownLtGraph(other)
}

// KnownLe reports whether n is provably less than or equal to other.
// A node is trivially ≤ itself without any stored edge.
func (n *Node) KnownLe(other *Node) bool {
	// ask bounds first, as it is cheaper
	return n == other || n.bounds.KnownLe(other.bounds) || n.knownLeGraph(other)
}

// KnownNe reports whether n and other provably never hold the same value:
// either their intervals are disjoint, or a strict path runs between them
// in one direction or the other.
func (n *Node) KnownNe(other *Node) bool {
	return n.bounds.KnownNe(other.bounds) || n.knownLtGraph(other) || other.knownLtGraph(n)
}

// Contains validates an entire concrete valuation against the abstract
// state: every node in values must contain its concrete value, and every
// stored edge between two valued nodes must hold concretely. Edges whose
// target is absent from the valuation are skipped.
//
// Contains exists for (randomized) soundness checking in tests; the
// optimizer itself never materializes concrete valuations.
func (n *Node) Contains(values map[*Node]int64) bool {
	for node, v := range values {
		if !node.bounds.Contains(v) {
			return false
		}
		for _, rel := range node.relations {
			w, ok := values[rel.target]
			if !ok {
				continue
			}
			if !rel.ConcreteCheck(v, w) {
				return false
			}
		}
	}

	return true
}

// ContainsValue reports whether the single concrete value v is inside the
// node's interval, ignoring relational edges.
func (n *Node) ContainsValue(v int64) bool {
	return n.bounds.Contains(v)
}
