package intbound_test

import (
	"fmt"

	"github.com/katalvlaran/intorder/intbound"
)

// ExampleIntBound_AddBound shows exact interval addition and its
// no-overflow predicate.
func ExampleIntBound_AddBound() {
	a := intbound.NewBound(0, 10)
	b := intbound.FromConstant(5)

	fmt.Println(a.AddBound(b))
	fmt.Println(a.AddBoundCannotOverflow(b))
	// Output:
	// [5..15]
	// true
}

// ExampleIntBound_MakeLtConst shows monotonic narrowing and the
// contradiction signal when no value remains.
func ExampleIntBound_MakeLtConst() {
	b := intbound.NewBound(0, 100)
	_ = b.MakeLtConst(50)
	fmt.Println(b)

	err := b.MakeLtConst(0)
	fmt.Println(err != nil)
	// Output:
	// [0..49]
	// true
}
