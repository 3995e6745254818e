// Abstract arithmetic on IntBound intervals under two's-complement
// wraparound semantics.
//
// Each transfer computes the interval of the concrete result assuming no
// overflow, and collapses to Unbounded whenever any endpoint computation
// overflows int64: once a single operand pair can wrap, the concrete result
// can land anywhere in the domain, so no tighter sound interval exists.
//
// The *CannotOverflow predicates report the exact condition under which
// every operand pair drawn from the two intervals stays in range. They are
// the gate the order package uses before attaching relational edges.

package intbound

// AddBound returns a fresh interval containing x+y for every x in b and
// y in other, including wrapped results.
//
// Complexity: O(1)
func (b *IntBound) AddBound(other *IntBound) *IntBound {
	lo, ok1 := addOvf(b.lo, other.lo)
	hi, ok2 := addOvf(b.hi, other.hi)
	if !ok1 || !ok2 {
		return Unbounded()
	}

	return &IntBound{lo: lo, hi: hi}
}

// AddBoundCannotOverflow reports whether x+y stays in range for every
// x in b and y in other. Since addition is monotone in both operands, it
// suffices to check the two extreme sums.
func (b *IntBound) AddBoundCannotOverflow(other *IntBound) bool {
	_, ok1 := addOvf(b.lo, other.lo)
	_, ok2 := addOvf(b.hi, other.hi)

	return ok1 && ok2
}

// SubBound returns a fresh interval containing x-y for every x in b and
// y in other, including wrapped results.
func (b *IntBound) SubBound(other *IntBound) *IntBound {
	lo, ok1 := subOvf(b.lo, other.hi)
	hi, ok2 := subOvf(b.hi, other.lo)
	if !ok1 || !ok2 {
		return Unbounded()
	}

	return &IntBound{lo: lo, hi: hi}
}

// SubBoundCannotOverflow reports whether x-y stays in range for every
// x in b and y in other. The extreme differences are lo-other.hi and
// hi-other.lo.
func (b *IntBound) SubBoundCannotOverflow(other *IntBound) bool {
	_, ok1 := subOvf(b.lo, other.hi)
	_, ok2 := subOvf(b.hi, other.lo)

	return ok1 && ok2
}

// MulBound returns a fresh interval containing x*y for every x in b and
// y in other, including wrapped results.
//
// Multiplication is not monotone across sign changes, so all four corner
// products are candidates for either endpoint.
func (b *IntBound) MulBound(other *IntBound) *IntBound {
	p1, ok1 := mulOvf(b.lo, other.lo)
	p2, ok2 := mulOvf(b.lo, other.hi)
	p3, ok3 := mulOvf(b.hi, other.lo)
	p4, ok4 := mulOvf(b.hi, other.hi)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return Unbounded()
	}

	return &IntBound{lo: min4(p1, p2, p3, p4), hi: max4(p1, p2, p3, p4)}
}

// MulBoundCannotOverflow reports whether x*y stays in range for every
// x in b and y in other. If all four corner products are in range, so is
// every interior product: |x*y| is maximized at the corners.
func (b *IntBound) MulBoundCannotOverflow(other *IntBound) bool {
	_, ok1 := mulOvf(b.lo, other.lo)
	_, ok2 := mulOvf(b.lo, other.hi)
	_, ok3 := mulOvf(b.hi, other.lo)
	_, ok4 := mulOvf(b.hi, other.hi)

	return ok1 && ok2 && ok3 && ok4
}

// addOvf returns a+b and whether the sum stayed in int64 range.
func addOvf(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}

	return s, true
}

// subOvf returns a-b and whether the difference stayed in int64 range.
func subOvf(a, b int64) (int64, bool) {
	d := a - b
	if (b < 0 && d < a) || (b > 0 && d > a) {
		return 0, false
	}

	return d, true
}

// mulOvf returns a*b and whether the product stayed in int64 range.
// MinInt * -1 is the one case the division check below cannot catch,
// because MinInt / -1 itself wraps; the explicit guard also rejects
// -1 * MinInt, which the division check would catch on its own.
func mulOvf(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == MinInt && b == -1) || (b == MinInt && a == -1) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}

	return p, true
}

func min4(a, b, c, d int64) int64 {
	return min(min(a, b), min(c, d))
}

func max4(a, b, c, d int64) int64 {
	return max(max(a, b), max(c, d))
}
