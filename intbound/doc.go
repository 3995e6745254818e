// Package intbound implements the numeric-interval half of the integer
// abstract domain: a conservative [lo..hi] over-approximation of the set of
// values an integer variable may take, with two's-complement overflow
// awareness in all abstract arithmetic.
//
// An IntBound is mutable and refined monotonically: every Make* call can
// only narrow the interval, never widen it. A refinement that would empty
// the interval fails with ErrEmptyBound — the caller (typically a trace
// optimizer) treats that as a contradiction and abandons the trace.
//
// Queries (KnownLt, KnownLe, KnownNe, KnownGtConst, …) answer "provable
// from the interval alone"; a false answer means unknown, not disproven.
// Relational knowledge between variables lives in the sibling order
// package, which consults these queries as its cheap fast path.
//
// Abstract arithmetic (AddBound, SubBound, MulBound) returns a fresh bound
// for the result of the operation under wraparound semantics: whenever any
// endpoint computation overflows int64, the whole result collapses to
// Unbounded, because a wrapped concrete result can land anywhere. Each
// transfer has a paired *CannotOverflow predicate reporting whether every
// concrete operand pair drawn from the two intervals is overflow-free;
// callers use it to decide whether order edges may be attached.
//
// Complexity:
//
//   - All queries and refinements: O(1)
//   - All transfers: O(1) (at most four endpoint computations)
//
// Errors (sentinel):
//
//   - ErrEmptyBound if a refinement would leave no representable value.
//
// NewBound panics on lo > hi: an inverted interval is a programming error,
// not a runtime condition.
package intbound
