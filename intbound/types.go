// Package intbound defines the IntBound interval type, its sentinel errors,
// and its constructors.
//
// This file declares IntBound, ErrEmptyBound, and the NewBound / Unbounded /
// FromConstant constructors. Queries and refinements live in intbound.go;
// abstract arithmetic lives in arith.go.
package intbound

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for interval refinement.
var (
	// ErrEmptyBound indicates a refinement would leave the interval empty,
	// i.e. the new fact contradicts the values still considered possible.
	ErrEmptyBound = errors.New("intbound: refinement empties the bound")
)

// MinInt and MaxInt are the extreme representable values of the domain.
// An IntBound spanning [MinInt..MaxInt] carries no information.
const (
	MinInt = math.MinInt64
	MaxInt = math.MaxInt64
)

// IntBound is a closed integer interval [lo..hi] with lo ≤ hi.
//
// The zero value is not meaningful; use Unbounded, FromConstant or NewBound.
// IntBound is mutable: the Make* refinement methods narrow the receiver in
// place. It is not safe for concurrent mutation; the owning optimizer holds
// exclusive access while a pass runs.
type IntBound struct {
	lo int64 // smallest value still considered possible
	hi int64 // largest value still considered possible
}

// Unbounded returns a fresh interval spanning every representable value.
func Unbounded() *IntBound {
	return &IntBound{lo: MinInt, hi: MaxInt}
}

// FromConstant returns a fresh singleton interval [k..k].
func FromConstant(k int64) *IntBound {
	return &IntBound{lo: k, hi: k}
}

// NewBound returns a fresh interval [lo..hi].
// Panics if lo > hi: an inverted interval is a construction bug, caught early
// the same way invalid option values are.
func NewBound(lo, hi int64) *IntBound {
	if lo > hi {
		panic(fmt.Sprintf("intbound: inverted interval [%d..%d]", lo, hi))
	}

	return &IntBound{lo: lo, hi: hi}
}

// Lo returns the inclusive lower endpoint.
func (b *IntBound) Lo() int64 { return b.lo }

// Hi returns the inclusive upper endpoint.
func (b *IntBound) Hi() int64 { return b.hi }

// Clone returns an independent copy of b.
func (b *IntBound) Clone() *IntBound {
	return &IntBound{lo: b.lo, hi: b.hi}
}

// String renders the interval for debugging and pretty-printed order graphs:
// "unbounded", "[lo..hi]", "(-inf..hi]" or "[lo..+inf)".
// The format is for human inspection, not a stable machine format.
func (b *IntBound) String() string {
	switch {
	case b.lo == MinInt && b.hi == MaxInt:
		return "unbounded"
	case b.lo == MinInt:
		return fmt.Sprintf("(-inf..%d]", b.hi)
	case b.hi == MaxInt:
		return fmt.Sprintf("[%d..+inf)", b.lo)
	default:
		return fmt.Sprintf("[%d..%d]", b.lo, b.hi)
	}
}
