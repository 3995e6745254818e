// Package order implements the relational half of the integer abstract
// domain: a directed graph of ordering facts ("x < y", "x ≤ y") between the
// integer SSA variables of one trace, layered on top of the intbound
// interval domain.
//
// Each variable is represented by one Node, compared by identity: two
// variables with equal intervals are still distinct program quantities.
// A Node owns its interval (Bounds) and its outgoing relation edges, each
// either strict (<) or non-strict (≤). The two components are deliberately
// not kept mutually saturated — a fact may live in the graph but not in the
// intervals, or vice versa — so every query consults both, interval first
// because it is cheaper.
//
// Refinement is monotonic: MakeLt and MakeLe only ever add or strengthen
// facts. A refinement that would close a directed cycle through a strict
// edge is a contradiction and fails with ErrInvalidLoop; the optimizer
// abandons the trace and discards all Nodes. Cycles made solely of ≤ edges
// are legal and encode equality.
//
// Transitive queries are a longest-path problem, not plain reachability:
// the path a ≤ b ≤ c proves only a ≤ c, while a ≤ b < c proves a < c, so
// the engine maximizes the number of strict edges along a path rather than
// searching for any path. A node may re-enter the frontier with a larger
// strictness sum; a plain visited-set traversal would miss facts.
//
// Transfer functions (AddConst, Add, Sub, Mul) build the result Node of an
// arithmetic operation: interval transfer first, then — only when intbound
// proves the operand pair cannot overflow — ordering edges inferred from
// operand signs. Under possible overflow no edge is attached, because a
// wrapped result can land anywhere.
//
// Complexity:
//
//   - MakeLt / MakeLe: one longest-path query over the trace's graph,
//     O((V + E) log V) worst case with the heap frontier; effectively
//     constant for real traces (tens of nodes, a few edges each).
//   - KnownLt: O(1) interval fast path, then one engine run.
//   - KnownNe: O(1) interval fast path, then up to two engine runs (one
//     per direction).
//   - KnownLe: O(1) fast path, then one reachability scan, O(V + E).
//   - Transfer functions: a constant number of refinements plus O(1)
//     interval arithmetic.
//
// Errors (sentinel):
//
//   - ErrInvalidLoop if a refinement contradicts the accumulated facts.
//     State after the error is unspecified; abandon the trace.
//   - intbound.ErrEmptyBound propagates transparently from interval
//     refinement.
//
// The package is single-threaded by design: one optimizer pass over one
// trace holds exclusive access, and the guard-query hot path takes no locks.
package order
