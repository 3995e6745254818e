// Package intorder is an integer-order abstract domain for tracing JIT
// optimizers, written in pure Go.
//
// 🚀 What is intorder?
//
//	A small, allocation-light library that tracks what a trace optimizer
//	knows about its integer SSA variables:
//
//	  • Numeric ranges: an interval domain with two's-complement overflow
//	    awareness (intbound/)
//	  • Ordering facts: "x < y", "x ≤ y" between distinct variables,
//	    refined monotonically and queried transitively (order/)
//	  • Transfer functions: overflow-aware add / add-const / sub / mul
//	    that both compute result ranges and infer new ordering edges
//
// ✨ Why intorder?
//
//   - Sound by construction — queries answer "proven" or "unknown", never
//     guess; every refinement is checked against the accumulated state
//   - Deterministic      — no time, no global state, no randomness
//   - Single-threaded    — built for one optimizer pass over one trace;
//     no locks on the hot guard-query path
//   - Pure Go            — no cgo, no hidden dependencies
//
// Under the hood, everything is organized under two subpackages:
//
//	intbound/ — IntBound interval values: queries, monotonic refinement,
//	            and overflow-aware abstract arithmetic
//	order/    — Node order graph: strict/non-strict relation edges, the
//	            longest-path strictness engine, transfer functions, and
//	            contradiction signalling via ErrInvalidLoop
//
// Quick ASCII example:
//
//	    a ──<── b
//	            │
//	            ≤
//	            │
//	            ▼
//	            c
//
//	a < b and b ≤ c together prove a < c: any path carrying at least one
//	strict edge proves strict inequality end to end.
//
// See order/doc.go and intbound/doc.go for the full contracts.
//
//	go get github.com/katalvlaran/intorder
package intorder
