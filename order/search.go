// The transitive query engine: longest-path search over relation edges.
//
// "Is n provably < other?" is not plain reachability. The path
// a ≤ b ≤ c proves only a ≤ c, while a ≤ b < c proves a < c, so the
// engine must maximize the number of strict edges (each edge weighs its
// MinMargin, 0 or 1) over all directed paths — a longest-path problem.
// A shortest-path or visited-set search would settle on the zero-weight
// route and miss strict facts reachable along an alternative path.
//
// The frontier is a max-heap with the lazy decrease-key pattern: when a
// node's best strictness improves, a fresh entry is pushed and the stale
// one is skipped on pop. Termination on ≤-cycles: a node re-enters the
// frontier only when its best strictness strictly increases, and that sum
// is bounded by the strict edges on a simple path; strict edges form no
// cycle by the refinement invariant.

package order

import "container/heap"

// unreachable is the engine's sentinel strictness for "no path found".
const unreachable int64 = -1

// knownLtGraph reports whether the graph alone proves n < other: some
// directed path from n to other carries at least one strict edge.
func (n *Node) knownLtGraph(other *Node) bool {
	return n.maxStrictness(other, 1) >= 1
}

// knownLeGraph reports whether the graph alone proves n ≤ other: other is
// reachable from n along any directed path. Strictness is irrelevant here,
// so a plain visited-set scan suffices.
// Complexity: O(V + E)
func (n *Node) knownLeGraph(other *Node) bool {
	// Work stack of edges still to follow, seeded with n's own edges.
	todo := make([]Relation, len(n.relations))
	copy(todo, n.relations)
	seen := make(map[*Node]struct{}, len(n.relations))

	var rel Relation
	for len(todo) > 0 {
		rel, todo = todo[len(todo)-1], todo[:len(todo)-1]
		interm := rel.target
		if _, ok := seen[interm]; ok {
			continue
		}
		if interm == other {
			return true
		}
		seen[interm] = struct{}{}
		todo = append(todo, interm.relations...)
	}

	return false
}

// maxStrictness returns the largest number of strict edges on any directed
// path from n to other, or unreachable (-1) when no path exists.
//
// If cutoff ≥ 0 the search stops as soon as other's strictness reaches it;
// callers that only need "≥ cutoff" avoid exhausting the graph. A negative
// cutoff disables the early exit.
//
// Complexity: O((V + E) log V) with V, E bounded by the trace's graph;
// effectively constant for real traces.
func (n *Node) maxStrictness(other *Node, cutoff int64) int64 {
	// best maps each discovered node to the largest strictness sum found
	// so far on any path from n. The target is pre-registered at the
	// unreachable sentinel so the cutoff check below is meaningful before
	// the first path reaches it.
	best := make(map[*Node]int64, 1+len(n.relations))
	best[n] = 0
	best[other] = unreachable

	// Max-heap frontier, seeded with the source at strictness 0.
	pq := make(strictnessPQ, 0, 1+len(n.relations))
	heap.Init(&pq)
	heap.Push(&pq, &strictnessItem{node: n, strict: 0})

	for pq.Len() > 0 {
		// 1) Pop the frontier node with the largest strictness sum.
		item := heap.Pop(&pq).(*strictnessItem)

		// 2) Skip stale entries superseded by a later improvement
		//    (lazy decrease-key: improvements push duplicates).
		if item.strict < best[item.node] {
			continue
		}

		// 3) Relax all outgoing edges: a path through item extends its
		//    strictness sum by the edge's minimum margin (1 for <, 0 for ≤).
		for _, rel := range item.node.relations {
			tentative := item.strict + rel.MinMargin()
			cur, ok := best[rel.target]
			if !ok {
				cur = unreachable
			}
			if tentative > cur {
				best[rel.target] = tentative
				heap.Push(&pq, &strictnessItem{node: rel.target, strict: tentative})
			}
		}

		// 4) Early exit once the target's strictness answers the question.
		if cutoff >= 0 && best[other] >= cutoff {
			break
		}
	}

	return best[other]
}

// strictnessItem is one frontier entry: a node and the strictness sum of
// the path that discovered it.
type strictnessItem struct {
	node   *Node // discovered node
	strict int64 // strict-edge count of the discovering path
}

// strictnessPQ is a max-heap of *strictnessItem ordered by strict
// descending. Improvements push duplicate entries; stale ones are ignored
// when popped (checked against best in maxStrictness).
type strictnessPQ []*strictnessItem

// Len returns the number of items in the heap.
func (pq strictnessPQ) Len() int { return len(pq) }

// Less defines the comparison: larger strictness → higher priority.
func (pq strictnessPQ) Less(i, j int) bool { return pq[i].strict > pq[j].strict }

// Swap swaps two elements in the heap.
func (pq strictnessPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *strictnessItem.
func (pq *strictnessPQ) Push(x interface{}) { *pq = append(*pq, x.(*strictnessItem)) }

// Pop removes and returns the largest element from the heap.
// Called by heap.Pop.
func (pq *strictnessPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
