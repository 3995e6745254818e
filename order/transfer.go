// Abstract transfer functions: the domain's model of integer add, sub and
// mul on trace operations.
//
// Each transfer builds a fresh result Node from intbound's interval
// transfer, then attaches ordering edges — but only when intbound proves
// the operand pair cannot overflow, because a wrapped result can land
// anywhere and ordering facts about it would be unsound. Edges go through
// MakeLt, so the transfers inherit cycle rejection and the interval
// fast path for free.

package order

import "github.com/katalvlaran/intorder/intbound"

// AddConst returns the abstract result of n + k.
//
// Under no-overflow, adding a positive constant makes the result strictly
// greater than n; a negative one, strictly smaller. k == 0 attaches
// nothing: the domain records ordering facts, not aliasing.
func (n *Node) AddConst(k int64) (*Node, error) {
	kb := intbound.FromConstant(k)
	res := New(WithBounds(n.bounds.AddBound(kb)))
	if n.bounds.AddBoundCannotOverflow(kb) {
		switch {
		case k > 0:
			if err := n.MakeLt(res); err != nil {
				return nil, err
			}
		case k < 0:
			if err := res.MakeLt(n); err != nil {
				return nil, err
			}
		}
	}

	return res, nil
}

// Add returns the abstract result of n + other.
//
// Under no-overflow, a known-positive operand pushes the result strictly
// above the other operand, and a known-negative one pulls it strictly
// below; both operands are checked symmetrically.
func (n *Node) Add(other *Node) (*Node, error) {
	res := New(WithBounds(n.bounds.AddBound(other.bounds)))
	if n.bounds.AddBoundCannotOverflow(other.bounds) {
		if other.bounds.KnownGtConst(0) {
			if err := n.MakeLt(res); err != nil {
				return nil, err
			}
		} else if other.bounds.KnownLtConst(0) {
			if err := res.MakeLt(n); err != nil {
				return nil, err
			}
		}
		if n.bounds.KnownGtConst(0) {
			if err := other.MakeLt(res); err != nil {
				return nil, err
			}
		} else if n.bounds.KnownLtConst(0) {
			if err := res.MakeLt(other); err != nil {
				return nil, err
			}
		}
	}

	return res, nil
}

// Sub returns the abstract result of n - other.
//
// Under no-overflow, subtracting a known-positive operand pulls the result
// strictly below n, a known-negative one pushes it strictly above.
// Additionally the result's interval is refined against zero from the
// order graph: a known n < other forces n - other < 0, and other < n
// forces it > 0 — a fact the intervals alone cannot see.
func (n *Node) Sub(other *Node) (*Node, error) {
	res := New(WithBounds(n.bounds.SubBound(other.bounds)))
	if n.bounds.SubBoundCannotOverflow(other.bounds) {
		if other.bounds.KnownGtConst(0) {
			if err := res.MakeLt(n); err != nil {
				return nil, err
			}
		} else if other.bounds.KnownLtConst(0) {
			if err := n.MakeLt(res); err != nil {
				return nil, err
			}
		}
		// refine resulting bounds by the operands' relations
		if n.knownLtGraph(other) {
			if err := res.bounds.MakeLtConst(0); err != nil {
				return nil, err
			}
		} else if other.knownLtGraph(n) {
			if err := res.bounds.MakeGtConst(0); err != nil {
				return nil, err
			}
		}
	}

	return res, nil
}

// Mul returns the abstract result of n * other.
//
// Ordering facts about a product are subtle; every case here demands both
// the no-overflow proof and an operand-sign proof, and when in doubt no
// edge is attached. A multiplier strictly above 1 moves a known-positive
// operand strictly up and a known-negative one strictly down; the roles of
// the operands are then checked symmetrically.
func (n *Node) Mul(other *Node) (*Node, error) {
	res := New(WithBounds(n.bounds.MulBound(other.bounds)))
	if n.bounds.MulBoundCannotOverflow(other.bounds) {
		if other.bounds.KnownGtConst(1) {
			if n.bounds.KnownGtConst(0) {
				if err := n.MakeLt(res); err != nil {
					return nil, err
				}
			} else if n.bounds.KnownLtConst(0) {
				if err := res.MakeLt(n); err != nil {
					return nil, err
				}
			}
		}
		if n.bounds.KnownGtConst(1) {
			if other.bounds.KnownGtConst(0) {
				if err := other.MakeLt(res); err != nil {
					return nil, err
				}
			} else if other.bounds.KnownLtConst(0) {
				if err := res.MakeLt(other); err != nil {
					return nil, err
				}
			}
		}
	}

	return res, nil
}
